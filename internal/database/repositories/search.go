package repositories

import (
	"context"
	"strings"

	"notes/internal/database"
	"notes/internal/database/models"
)

type SearchRepository interface {
	SearchQuery(ctx context.Context, query string) ([]models.Note, error)
}

type searchRepository struct {
	store *database.Store
}

func NewSearchRepository(store *database.Store) SearchRepository {
	return &searchRepository{store: store}
}

// SearchQuery returns the notes whose content contains every term of query,
// ignoring case. A blank query matches everything.
func (s *searchRepository) SearchQuery(ctx context.Context, query string) ([]models.Note, error) {
	terms := searchTerms(query)
	notes := s.store.List()
	if len(terms) == 0 {
		return notes, nil
	}

	matched := make([]models.Note, 0, len(notes))
	for _, note := range notes {
		content := strings.ToLower(note.Content)
		ok := true
		for _, term := range terms {
			if !strings.Contains(content, term) {
				ok = false
				break
			}
		}
		if ok {
			matched = append(matched, note)
		}
	}
	return matched, nil
}

func searchTerms(query string) []string {
	return strings.Fields(strings.ToLower(query))
}
