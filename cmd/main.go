package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"portfolio-backend/internal/api"
	"portfolio-backend/internal/api/routes"
	llmHandlers "portfolio-backend/internal/llm_handlers"
	"portfolio-backend/internal/store"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// Seed the in-memory store
	st := store.New()

	// Build one chat client per supported provider
	clients, err := llmHandlers.NewClients(context.Background())
	if err != nil {
		log.Fatal("Failed to init chat providers:", err)
	}

	// Create and configure Fiber app
	app := api.NewServer()

	// Register routes
	routes.Register(app, st, clients)

	// Start server
	if err := api.StartServer(app); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
