package models

import "time"

// Project is a portfolio entry. Projects are seeded once at startup and never
// change afterwards.
type Project struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	TechStack   []string `json:"techStack"`
	Link        string   `json:"link,omitempty"`
	Github      string   `json:"github,omitempty"`
}

// Certification has the same lifecycle as Project: seeded once, immutable.
// Date is a display string, not a parsed date.
type Certification struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
	Link   string `json:"link,omitempty"`
}

// ContactInput is the caller-supplied part of a contact submission.
type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// ContactMessage is a stored contact submission with generated fields. Records
// live for the process lifetime only.
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}
