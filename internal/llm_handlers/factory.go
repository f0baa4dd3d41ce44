package llmHandlers

import (
	"context"
	"fmt"

	"portfolio-backend/internal/models"
)

// NewClient builds the backend for the given provider selector.
func NewClient(ctx context.Context, provider models.Provider) (Client, error) {
	switch provider {
	case models.ProviderOpenAI:
		return NewOpenAIClient()
	case models.ProviderGemini:
		return NewGeminiClient(ctx)
	default:
		return nil, fmt.Errorf("unknown provider %q", provider)
	}
}

// NewClients builds one client per supported provider. A missing credential is
// not an error here; the affected client answers with a canned explanation.
func NewClients(ctx context.Context) (map[models.Provider]Client, error) {
	clients := make(map[models.Provider]Client)
	for _, p := range []models.Provider{models.ProviderOpenAI, models.ProviderGemini} {
		c, err := NewClient(ctx, p)
		if err != nil {
			return nil, fmt.Errorf("init %s client: %w", p, err)
		}
		clients[p] = c
	}
	return clients, nil
}
