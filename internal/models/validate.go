package models

import (
	"fmt"
	"net/mail"
	"strings"
)

// FieldError is a single validation failure, reported to the caller as a
// (field, reason) pair.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

const minMessageLen = 10

// Validate checks the contact form constraints. A nil result means valid.
func (in ContactInput) Validate() []FieldError {
	var errs []FieldError

	if strings.TrimSpace(in.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Reason: "Name is required"})
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		errs = append(errs, FieldError{Field: "email", Reason: "Invalid email address"})
	}
	if len(in.Message) < minMessageLen {
		errs = append(errs, FieldError{
			Field:  "message",
			Reason: fmt.Sprintf("Message must be at least %d characters", minMessageLen),
		})
	}

	return errs
}

// Normalize applies the documented defaults for omitted fields.
func (r *ChatRequest) Normalize() {
	if r.Mode == "" {
		r.Mode = ModeDeveloper
	}
	if r.AIProvider == "" {
		r.AIProvider = ProviderOpenAI
	}
}

// Validate checks the chat request shape. Callers should Normalize first so
// omitted mode/provider fields don't report as invalid.
func (r ChatRequest) Validate() []FieldError {
	var errs []FieldError

	if len(r.Messages) == 0 {
		errs = append(errs, FieldError{Field: "messages", Reason: "At least one message is required"})
	}
	for i, m := range r.Messages {
		if m.Role != RoleUser && m.Role != RoleAssistant {
			errs = append(errs, FieldError{
				Field:  fmt.Sprintf("messages[%d].role", i),
				Reason: "Role must be user or assistant",
			})
		}
		if m.Content == "" {
			errs = append(errs, FieldError{
				Field:  fmt.Sprintf("messages[%d].content", i),
				Reason: "Content is required",
			})
		}
	}

	switch r.Mode {
	case ModeDeveloper, ModeAIMLAspirant, ModeMentor:
	default:
		errs = append(errs, FieldError{Field: "mode", Reason: "Mode must be developer, aiml_aspirant or mentor"})
	}
	switch r.AIProvider {
	case ProviderOpenAI, ProviderGemini:
	default:
		errs = append(errs, FieldError{Field: "aiProvider", Reason: "Provider must be openai or gemini"})
	}

	return errs
}
