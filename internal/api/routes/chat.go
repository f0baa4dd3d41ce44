package routes

import (
	"github.com/gofiber/fiber/v2"

	"portfolio-backend/internal/handlers"
	llmHandlers "portfolio-backend/internal/llm_handlers"
	"portfolio-backend/internal/models"
	"portfolio-backend/internal/store"
)

func registerChat(r fiber.Router, st store.Store, clients map[models.Provider]llmHandlers.Client) {
	chatHandler := handlers.NewChatHandler(st, clients)

	r.Post("/chat", chatHandler.Chat)
}
