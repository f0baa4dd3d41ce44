package llmHandlers

import (
	"context"
	"fmt"

	"portfolio-backend/internal/models"
)

// Message is a single conversation turn forwarded to a provider.
type Message struct {
	Role    models.Role `json:"role"`
	Content string      `json:"content"`
}

// Client is implemented by every chat provider backend. Implementations are
// stateless: one outbound call per invocation, nothing retained in between.
//
// GenerateReply always hands the caller a usable string unless the upstream
// call itself failed; a missing credential or an empty provider answer yields
// a canned reply, not an error.
type Client interface {
	GenerateReply(ctx context.Context, history []Message, mode models.Mode, projectsSummary string) (string, error)
}

// apologyReply is returned when a provider answers with no usable content.
const apologyReply = "I apologize, I couldn't generate a response. Please try again."

// notConfiguredReply is the graceful-degradation answer used when a provider
// credential is absent. No network call is attempted in that case.
func notConfiguredReply(provider, envVar string) string {
	return fmt.Sprintf(
		"I apologize, but the %s API is not configured yet. Please ask the developer to set up the %s environment variable to enable AI chat functionality.",
		provider, envVar,
	)
}
