package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/models"
	"portfolio-backend/internal/store"
)

func newPortfolioApp(st store.Store) *fiber.App {
	app := fiber.New()
	h := NewPortfolioHandler(st)
	app.Get("/api/projects", h.GetProjects)
	app.Get("/api/certifications", h.GetCertifications)
	return app
}

func TestGetProjects(t *testing.T) {
	app := newPortfolioApp(store.New())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/projects", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var projects []models.Project
	decodeBody(t, resp, &projects)
	require.Len(t, projects, 3)
	for _, p := range projects {
		assert.NotEmpty(t, p.ID)
		assert.NotEmpty(t, p.Title)
	}
}

func TestGetCertifications(t *testing.T) {
	app := newPortfolioApp(store.New())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/certifications", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var certs []models.Certification
	decodeBody(t, resp, &certs)
	require.Len(t, certs, 2)
	for _, cert := range certs {
		assert.NotEmpty(t, cert.ID)
		assert.NotEmpty(t, cert.Issuer)
	}
}
