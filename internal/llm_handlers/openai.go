package llmHandlers

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"portfolio-backend/internal/config"
	"portfolio-backend/internal/models"
)

// OpenAIClient implements Client via the OpenAI chat-completions API. A client
// built without a credential stays usable and answers with the canned
// not-configured reply instead of calling out.
type OpenAIClient struct {
	llm llms.Model
}

func NewOpenAIClient() (*OpenAIClient, error) {
	apiKey := config.OpenAIKey()
	if apiKey == "" {
		return &OpenAIClient{}, nil
	}

	llm, err := openai.New(
		openai.WithModel(config.OpenAIModel()),
		openai.WithToken(apiKey),
	)
	if err != nil {
		return nil, fmt.Errorf("create openai client: %w", err)
	}

	return &OpenAIClient{llm: llm}, nil
}

func (c *OpenAIClient) GenerateReply(ctx context.Context, history []Message, mode models.Mode, projectsSummary string) (string, error) {
	if c.llm == nil {
		return notConfiguredReply("OpenAI", "OPENAI_API_KEY"), nil
	}

	msgs := make([]llms.MessageContent, 0, len(history)+1)
	msgs = append(msgs, llms.TextParts(llms.ChatMessageTypeSystem, SystemPrompt(mode, projectsSummary)))
	for _, m := range history {
		msgType := llms.ChatMessageTypeHuman
		if m.Role == models.RoleAssistant {
			msgType = llms.ChatMessageTypeAI
		}
		msgs = append(msgs, llms.TextParts(msgType, m.Content))
	}

	resp, err := c.llm.GenerateContent(ctx, msgs, llms.WithMaxTokens(config.MaxReplyTokens))
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Content == "" {
		return apologyReply, nil
	}
	return resp.Choices[0].Content, nil
}
