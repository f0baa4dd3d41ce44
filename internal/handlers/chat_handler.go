package handlers

import (
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	llmHandlers "portfolio-backend/internal/llm_handlers"
	"portfolio-backend/internal/models"
	"portfolio-backend/internal/store"
)

type ChatHandler struct {
	store   store.Store
	clients map[models.Provider]llmHandlers.Client
}

func NewChatHandler(st store.Store, clients map[models.Provider]llmHandlers.Client) *ChatHandler {
	return &ChatHandler{store: st, clients: clients}
}

// Chat validates the request, grounds the persona prompt in the current
// project list and forwards the conversation to the selected provider. The
// history is forwarded as supplied; capping it at 10 turns is the caller's
// responsibility.
func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	var req models.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	req.Normalize()
	if errs := req.Validate(); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid request format",
			"details": errs,
		})
	}

	client, ok := h.clients[req.AIProvider]
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request format",
			"details": []models.FieldError{
				{Field: "aiProvider", Reason: fmt.Sprintf("Unsupported provider %q", req.AIProvider)},
			},
		})
	}

	history := make([]llmHandlers.Message, 0, len(req.Messages))
	for _, m := range req.Messages {
		history = append(history, llmHandlers.Message{Role: m.Role, Content: m.Content})
	}

	reply, err := client.GenerateReply(c.UserContext(), history, req.Mode, projectsSummary(h.store.ListProjects()))
	if err != nil {
		// Provider detail stays in the server log; the client gets a
		// generic 500.
		log.Println(err, "Error generating chat reply")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate response",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"reply": reply,
	})
}

// projectsSummary renders one line per project for prompt grounding.
func projectsSummary(projects []models.Project) string {
	lines := make([]string, 0, len(projects))
	for _, p := range projects {
		lines = append(lines, fmt.Sprintf("- %s: %s (Technologies: %s)",
			p.Title, p.Description, strings.Join(p.TechStack, ", ")))
	}
	return strings.Join(lines, "\n")
}
