package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"notes/internal/database"
	"notes/internal/database/models"
)

var (
	ErrNoteNotFound   = errors.New("note not found")
	ErrContentMissing = errors.New("content missing")
)

type NoteRepository interface {
	Create(ctx context.Context, note *models.Note) error
	GetByID(ctx context.Context, id int) (*models.Note, error)
	GetAll(ctx context.Context) ([]models.Note, error)
	Delete(ctx context.Context, id int) error
}

type noteRepository struct {
	store *database.Store
	now   func() time.Time
}

func NewNoteRepository(store *database.Store) NoteRepository {
	return &noteRepository{store: store, now: now}
}

// now is the creation time of a note: UTC, millisecond precision.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// NextID returns one more than the largest id in notes, or 1 when there are none.
func NextID(notes []models.Note) int {
	maxID := 0
	for _, n := range notes {
		if n.ID > maxID {
			maxID = n.ID
		}
	}
	return maxID + 1
}

// Create assigns the note its id and creation date and appends it to the store.
func (r *noteRepository) Create(ctx context.Context, note *models.Note) error {
	if note.Content == "" {
		return ErrContentMissing
	}
	err := r.store.Update(func(notes []models.Note) ([]models.Note, error) {
		date := r.now()
		note.ID = NextID(notes)
		note.Date = &date
		return append(notes, *note), nil
	})
	if err != nil {
		return fmt.Errorf("error creating note: %w", err)
	}
	return nil
}

func (r *noteRepository) GetByID(ctx context.Context, id int) (*models.Note, error) {
	for _, n := range r.store.List() {
		if n.ID == id {
			return &n, nil
		}
	}
	return nil, ErrNoteNotFound
}

func (r *noteRepository) GetAll(ctx context.Context) ([]models.Note, error) {
	return r.store.List(), nil
}

// Delete removes every note with the given id. Deleting an id that does not
// exist is not an error.
func (r *noteRepository) Delete(ctx context.Context, id int) error {
	err := r.store.Update(func(notes []models.Note) ([]models.Note, error) {
		kept := notes[:0]
		for _, n := range notes {
			if n.ID != id {
				kept = append(kept, n)
			}
		}
		return kept, nil
	})
	if err != nil {
		return fmt.Errorf("error deleting note: %w", err)
	}
	return nil
}
