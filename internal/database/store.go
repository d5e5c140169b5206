package database

import (
	"sync"

	"notes/internal/database/models"
)

// Store holds every note of the process. Readers always get a copy, so a
// snapshot handed out by List is never mutated behind their back.
type Store struct {
	mu    sync.RWMutex
	notes []models.Note
}

func NewStore(seed []models.Note) *Store {
	return &Store{notes: cloneNotes(seed)}
}

func (s *Store) List() []models.Note {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneNotes(s.notes)
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.notes)
}

// Replace swaps the whole collection.
func (s *Store) Replace(notes []models.Note) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes = cloneNotes(notes)
}

// Update runs a read-modify-write under the write lock. fn receives a copy of
// the current notes; its result replaces them unless it returns an error.
func (s *Store) Update(fn func(notes []models.Note) ([]models.Note, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := fn(cloneNotes(s.notes))
	if err != nil {
		return err
	}
	s.notes = next
	return nil
}

func cloneNotes(notes []models.Note) []models.Note {
	out := make([]models.Note, len(notes))
	copy(out, notes)
	return out
}
