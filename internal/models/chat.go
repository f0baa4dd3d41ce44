package models

// Role of a single chat turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Mode selects which persona the chat assistant answers with.
type Mode string

const (
	ModeDeveloper    Mode = "developer"
	ModeAIMLAspirant Mode = "aiml_aspirant"
	ModeMentor       Mode = "mentor"
)

// Provider selects which chat backend serves the request.
type Provider string

const (
	ProviderOpenAI Provider = "openai"
	ProviderGemini Provider = "gemini"
)

// ChatTurn is one client-supplied turn of the conversation. Turns are never
// stored server-side beyond the request that carries them.
type ChatTurn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the body of POST /api/chat. Mode and AIProvider are optional;
// Normalize fills in the documented defaults.
type ChatRequest struct {
	Messages   []ChatTurn `json:"messages"`
	Mode       Mode       `json:"mode,omitempty"`
	AIProvider Provider   `json:"aiProvider,omitempty"`
}
