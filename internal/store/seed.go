package store

import (
	"github.com/google/uuid"

	"portfolio-backend/internal/models"
)

// Seed data stands in for a real persistence layer. Each record gets a fresh
// id per process start.

func seedProjects() []models.Project {
	data := []models.Project{
		{
			Title: "AI-Powered Task Manager",
			Description: "A smart task management application with AI-driven priority suggestions " +
				"and natural language input. Built with React, Node.js, and OpenAI API for " +
				"intelligent task categorization.",
			TechStack: []string{"React", "TypeScript", "Node.js", "OpenAI", "PostgreSQL"},
			Link:      "https://example.com/task-manager",
			Github:    "https://github.com/yourusername/ai-task-manager",
		},
		{
			Title: "Real-Time Collaboration Platform",
			Description: "A modern collaboration tool enabling teams to work together seamlessly " +
				"with real-time updates, video calls, and shared workspaces. Features WebSocket " +
				"integration for instant synchronization.",
			TechStack: []string{"Next.js", "WebSocket", "MongoDB", "Tailwind CSS", "WebRTC"},
			Link:      "https://example.com/collab-platform",
			Github:    "https://github.com/yourusername/collab-platform",
		},
		{
			Title: "E-Commerce Analytics Dashboard",
			Description: "Comprehensive analytics dashboard for e-commerce businesses featuring " +
				"real-time sales tracking, customer insights, and predictive analytics using " +
				"machine learning models.",
			TechStack: []string{"Vue.js", "Python", "FastAPI", "TensorFlow", "Redis"},
			Link:      "https://example.com/analytics",
			Github:    "https://github.com/yourusername/ecommerce-analytics",
		},
	}

	for i := range data {
		data[i].ID = uuid.NewString()
	}
	return data
}

func seedCertifications() []models.Certification {
	data := []models.Certification{
		{
			Title:  "AWS Certified Solutions Architect",
			Issuer: "Amazon Web Services",
			Date:   "2024",
			Link:   "https://aws.amazon.com/certification/",
		},
		{
			Title:  "Professional Scrum Master I",
			Issuer: "Scrum.org",
			Date:   "2023",
			Link:   "https://www.scrum.org/assessments/professional-scrum-master-i-certification",
		},
	}

	for i := range data {
		data[i].ID = uuid.NewString()
	}
	return data
}
