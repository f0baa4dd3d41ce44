package llmHandlers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/models"
)

func TestOpenAIClientNotConfigured(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	c, err := NewOpenAIClient()
	require.NoError(t, err)

	reply, err := c.GenerateReply(context.Background(), []Message{
		{Role: models.RoleUser, Content: "What projects have you built?"},
	}, models.ModeDeveloper, "")

	require.NoError(t, err)
	assert.Contains(t, reply, "not configured")
	assert.Contains(t, reply, "OPENAI_API_KEY")
}

func TestGeminiClientNotConfigured(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	c, err := NewGeminiClient(context.Background())
	require.NoError(t, err)

	reply, err := c.GenerateReply(context.Background(), []Message{
		{Role: models.RoleUser, Content: "What projects have you built?"},
	}, models.ModeDeveloper, "")

	require.NoError(t, err)
	assert.Contains(t, reply, "not configured")
	assert.Contains(t, reply, "GEMINI_API_KEY")
}

func TestNewClientUnknownProvider(t *testing.T) {
	_, err := NewClient(context.Background(), "openrouter")
	require.Error(t, err)
}

func TestNewClientsCoversSupportedProviders(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")

	clients, err := NewClients(context.Background())
	require.NoError(t, err)

	require.Contains(t, clients, models.ProviderOpenAI)
	require.Contains(t, clients, models.ProviderGemini)
}
