package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"portfolio-backend/internal/models"
)

// Store is the data-access surface the HTTP handlers depend on.
type Store interface {
	ListProjects() []models.Project
	ListCertifications() []models.Certification
	CreateContactMessage(in models.ContactInput) models.ContactMessage
	ContactMessages() []models.ContactMessage
}

// MemoryStore owns all server-side application data for the process lifetime.
// Projects and certifications are seeded at construction and immutable
// afterwards; contact messages are append-only and discarded on process exit.
type MemoryStore struct {
	mu             sync.RWMutex
	projects       []models.Project
	certifications []models.Certification
	contacts       []models.ContactMessage
}

// New builds a store seeded with the built-in portfolio data. The contact
// collection starts empty.
func New() *MemoryStore {
	return &MemoryStore{
		projects:       seedProjects(),
		certifications: seedCertifications(),
	}
}

// ListProjects returns a copy of the seeded projects.
func (s *MemoryStore) ListProjects() []models.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Project, len(s.projects))
	copy(out, s.projects)
	return out
}

// ListCertifications returns a copy of the seeded certifications.
func (s *MemoryStore) ListCertifications() []models.Certification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Certification, len(s.certifications))
	copy(out, s.certifications)
	return out
}

// CreateContactMessage assigns a fresh id and creation timestamp, appends the
// record and returns it. Input is expected to be pre-validated by the caller.
func (s *MemoryStore) CreateContactMessage(in models.ContactInput) models.ContactMessage {
	msg := models.ContactMessage{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Email:     in.Email,
		Message:   in.Message,
		CreatedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	s.contacts = append(s.contacts, msg)
	s.mu.Unlock()

	return msg
}

// ContactMessages returns the submissions received so far, in creation order.
// Operator/test visibility only; not exposed through the API.
func (s *MemoryStore) ContactMessages() []models.ContactMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.ContactMessage, len(s.contacts))
	copy(out, s.contacts)
	return out
}
