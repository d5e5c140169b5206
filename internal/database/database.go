package database

import (
	"strconv"

	"notes/internal/database/models"
)

// Service represents the in-memory database the server talks to.
type Service interface {
	// Health returns a map of health status information.
	Health() map[string]string

	// Store returns the note store owned by this service.
	Store() *Store
}

type service struct {
	store *Store
}

// New creates a database service whose store starts with the given notes.
func New(seed []models.Note) Service {
	return &service{store: NewStore(seed)}
}

func (s *service) Health() map[string]string {
	return map[string]string{
		"status": "up",
		"notes":  strconv.Itoa(s.store.Len()),
	}
}

func (s *service) Store() *Store {
	return s.store
}
