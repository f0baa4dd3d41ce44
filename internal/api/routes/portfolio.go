package routes

import (
	"github.com/gofiber/fiber/v2"

	"portfolio-backend/internal/handlers"
	"portfolio-backend/internal/store"
)

func registerPortfolio(r fiber.Router, st store.Store) {
	portfolioHandler := handlers.NewPortfolioHandler(st)
	contactHandler := handlers.NewContactHandler(st)

	r.Get("/projects", portfolioHandler.GetProjects)
	r.Get("/certifications", portfolioHandler.GetCertifications)
	r.Post("/contact", contactHandler.SubmitContact)
}
