package routes_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/api"
	"portfolio-backend/internal/api/routes"
	llmHandlers "portfolio-backend/internal/llm_handlers"
	"portfolio-backend/internal/models"
	"portfolio-backend/internal/store"
)

// newApp wires the full server the way cmd/main.go does, with no provider
// credentials configured.
func newApp(t *testing.T, st *store.MemoryStore) *fiber.App {
	t.Helper()
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")

	clients, err := llmHandlers.NewClients(context.Background())
	require.NoError(t, err)

	app := api.NewServer()
	routes.Register(app, st, clients)
	return app
}

func get(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
	require.NoError(t, err)
	return resp
}

func post(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestHealth(t *testing.T) {
	app := newApp(t, store.New())

	resp := get(t, app, "/api/health")
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestProjectsAndCertificationsEndpoints(t *testing.T) {
	app := newApp(t, store.New())

	resp := get(t, app, "/api/projects")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var projects []models.Project
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &projects))
	assert.Len(t, projects, 3)

	resp = get(t, app, "/api/certifications")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var certs []models.Certification
	raw, err = io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &certs))
	assert.Len(t, certs, 2)
}

func TestContactEndToEnd(t *testing.T) {
	st := store.New()
	app := newApp(t, st)

	resp := post(t, app, "/api/contact",
		`{"name":"Jane","email":"jane@x.com","message":"Hello, I would like to connect!"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.True(t, body.Success)
	assert.Equal(t, "Message received successfully", body.Message)

	require.Len(t, st.ContactMessages(), 1)
}

func TestChatEndToEndWithoutCredentials(t *testing.T) {
	app := newApp(t, store.New())

	resp := post(t, app, "/api/chat",
		`{"messages":[{"role":"user","content":"What projects have you built?"}]}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Reply string `json:"reply"`
	}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &body))

	// openai is the default provider; with no key configured the reply is
	// the canned explanation, not an error status.
	assert.Contains(t, body.Reply, "not configured")
	assert.Contains(t, body.Reply, "OPENAI_API_KEY")
}

func TestChatGeminiWithoutCredentials(t *testing.T) {
	app := newApp(t, store.New())

	resp := post(t, app, "/api/chat",
		`{"messages":[{"role":"user","content":"hi"}],"aiProvider":"gemini"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Reply string `json:"reply"`
	}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Contains(t, body.Reply, "GEMINI_API_KEY")
}

func TestUnknownRouteReturnsJSONError(t *testing.T) {
	app := newApp(t, store.New())

	resp := get(t, app, "/api/nope")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Contains(t, body, "error")
}
