package routes

import (
	"github.com/gofiber/fiber/v2"

	llmHandlers "portfolio-backend/internal/llm_handlers"
	"portfolio-backend/internal/models"
	"portfolio-backend/internal/store"
)

// Register mounts the JSON API under /api. The store and chat clients are
// constructed by the caller and injected here.
func Register(app *fiber.App, st store.Store, clients map[models.Provider]llmHandlers.Client) {
	api := app.Group("/api")

	registerHealth(api)
	registerPortfolio(api, st)
	registerChat(api, st, clients)
}
