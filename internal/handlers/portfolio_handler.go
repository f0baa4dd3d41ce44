package handlers

import (
	"github.com/gofiber/fiber/v2"

	"portfolio-backend/internal/store"
)

// for simple read endpoints a service layer is not required
type PortfolioHandler struct {
	store store.Store
}

func NewPortfolioHandler(st store.Store) *PortfolioHandler {
	return &PortfolioHandler{store: st}
}

// GetProjects returns every seeded project as a bare JSON array.
func (h *PortfolioHandler) GetProjects(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.store.ListProjects())
}

// GetCertifications returns every seeded certification as a bare JSON array.
func (h *PortfolioHandler) GetCertifications(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.store.ListCertifications())
}
