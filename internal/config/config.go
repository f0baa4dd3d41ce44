package config

import "os"

const (
	defaultPort        = "3000"
	defaultOpenAIModel = "gpt-5"
	defaultGeminiModel = "gemini-2.0-flash"
)

// MaxReplyTokens bounds the length of a single generated chat reply.
const MaxReplyTokens = 500

func Port() string {
	return getenv("PORT", defaultPort)
}

func OpenAIModel() string {
	return getenv("OPENAI_MODEL", defaultOpenAIModel)
}

func GeminiModel() string {
	return getenv("GEMINI_MODEL_ID", defaultGeminiModel)
}

// OpenAIKey may be empty; the chat client degrades to a canned reply then.
func OpenAIKey() string {
	return os.Getenv("OPENAI_API_KEY")
}

// GeminiKey may be empty; the chat client degrades to a canned reply then.
func GeminiKey() string {
	return os.Getenv("GEMINI_API_KEY")
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
