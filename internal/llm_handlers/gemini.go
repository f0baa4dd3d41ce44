package llmHandlers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"portfolio-backend/internal/config"
	"portfolio-backend/internal/models"
)

// GeminiClient implements Client for Gemini via the Google AI API. Like the
// OpenAI backend, a client built without a credential degrades to the canned
// not-configured reply.
type GeminiClient struct {
	client  *genai.Client
	modelID string
}

func NewGeminiClient(ctx context.Context) (*GeminiClient, error) {
	apiKey := config.GeminiKey()
	if apiKey == "" {
		return &GeminiClient{}, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("genai.NewClient: %w", err)
	}

	return &GeminiClient{
		client:  client,
		modelID: config.GeminiModel(),
	}, nil
}

func (c *GeminiClient) GenerateReply(ctx context.Context, history []Message, mode models.Mode, projectsSummary string) (string, error) {
	if c.client == nil {
		return notConfiguredReply("Gemini", "GEMINI_API_KEY"), nil
	}

	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	contents := make([]*genai.Content, 0, len(history))
	for _, m := range history {
		// Gemini calls the assistant role "model".
		role := "user"
		if m.Role == models.RoleAssistant {
			role = "model"
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []*genai.Part{{Text: m.Content}},
		})
	}

	genConfig := &genai.GenerateContentConfig{
		MaxOutputTokens: config.MaxReplyTokens,
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: SystemPrompt(mode, projectsSummary)}},
		},
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.modelID, contents, genConfig)
	if err != nil {
		return "", fmt.Errorf("gemini GenerateContent: %w", err)
	}

	if resp == nil || len(resp.Candidates) == 0 {
		return apologyReply, nil
	}

	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			sb.WriteString(part.Text)
		}
	}

	if sb.Len() == 0 {
		return apologyReply, nil
	}
	return sb.String(), nil
}
