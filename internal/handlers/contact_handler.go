package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"portfolio-backend/internal/models"
	"portfolio-backend/internal/store"
)

type ContactHandler struct {
	store store.Store
}

func NewContactHandler(st store.Store) *ContactHandler {
	return &ContactHandler{store: st}
}

// SubmitContact validates the contact form and appends the message to the
// store. Nothing is written on a validation failure.
func (h *ContactHandler) SubmitContact(c *fiber.Ctx) error {
	var in models.ContactInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if errs := in.Validate(); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Validation failed",
			"details": errs,
		})
	}

	msg := h.store.CreateContactMessage(in)

	// Contact submissions are fire-and-forget; this log line is the
	// operator's notification channel.
	log.Printf("📧 New contact message from %s (%s): %s", msg.Name, msg.Email, msg.Message)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Message received successfully",
	})
}
