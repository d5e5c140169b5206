package repositories

import (
	"context"
	"sync"
	"testing"
	"time"

	"notes/internal/database"
	"notes/internal/database/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextID(t *testing.T) {
	tests := []struct {
		name  string
		notes []models.Note
		want  int
	}{
		{"empty", nil, 1},
		{"seed", models.SeedNotes(), 4},
		{"gaps", []models.Note{{ID: 9}, {ID: 2}}, 10},
		{"single", []models.Note{{ID: 1}}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextID(tt.notes))
		})
	}
}

func newRepo(t *testing.T) (*database.Store, *noteRepository) {
	t.Helper()
	store := database.NewStore(models.SeedNotes())
	fixed := time.Date(2024, 5, 30, 17, 30, 31, 0, time.UTC)
	return store, &noteRepository{store: store, now: func() time.Time { return fixed }}
}

func TestNoteRepository_Create(t *testing.T) {
	store, repo := newRepo(t)
	ctx := context.Background()

	note := models.Note{Content: "test", Important: true}
	require.NoError(t, repo.Create(ctx, &note))

	assert.Equal(t, 4, note.ID)
	require.NotNil(t, note.Date)
	assert.Equal(t, 2024, note.Date.Year())
	assert.Equal(t, 4, store.Len())

	got, err := repo.GetByID(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, note, *got)
}

func TestNoteRepository_CreateIDsIncrease(t *testing.T) {
	_, repo := newRepo(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		before, err := repo.GetAll(ctx)
		require.NoError(t, err)

		note := models.Note{Content: "n"}
		require.NoError(t, repo.Create(ctx, &note))
		for _, existing := range before {
			assert.Greater(t, note.ID, existing.ID)
		}
	}
}

func TestNoteRepository_CreateMissingContent(t *testing.T) {
	store, repo := newRepo(t)

	note := models.Note{Important: true}
	err := repo.Create(context.Background(), &note)

	assert.ErrorIs(t, err, ErrContentMissing)
	assert.Equal(t, models.SeedNotes(), store.List())
}

func TestNoteRepository_GetByIDNotFound(t *testing.T) {
	_, repo := newRepo(t)

	note, err := repo.GetByID(context.Background(), 99)
	assert.Nil(t, note)
	assert.ErrorIs(t, err, ErrNoteNotFound)
}

func TestNoteRepository_DeleteIsIdempotent(t *testing.T) {
	store, repo := newRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Delete(ctx, 2))
	afterFirst := store.List()
	require.NoError(t, repo.Delete(ctx, 2))

	assert.Equal(t, afterFirst, store.List())
	assert.Len(t, afterFirst, 2)
	_, err := repo.GetByID(ctx, 2)
	assert.ErrorIs(t, err, ErrNoteNotFound)
}

func TestNoteRepository_DeleteMaxThenCreate(t *testing.T) {
	_, repo := newRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Delete(ctx, 3))
	note := models.Note{Content: "reuses the max"}
	require.NoError(t, repo.Create(ctx, &note))

	assert.Equal(t, 3, note.ID)
}

func TestNoteRepository_ConcurrentCreate(t *testing.T) {
	store := database.NewStore(models.SeedNotes())
	repo := NewNoteRepository(store)
	ctx := context.Background()

	const workers = 50
	ids := make([]int, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			note := models.Note{Content: "concurrent"}
			if err := repo.Create(ctx, &note); err == nil {
				ids[i] = note.ID
			}
		}(i)
	}
	wg.Wait()

	seen := make(map[int]bool, workers)
	for _, id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		assert.GreaterOrEqual(t, id, 4)
		seen[id] = true
	}
	assert.Equal(t, 3+workers, store.Len())
}

func TestNoteRepository_CreateDateIsUTCMillis(t *testing.T) {
	repo := NewNoteRepository(database.NewStore(nil))

	note := models.Note{Content: "dated"}
	require.NoError(t, repo.Create(context.Background(), &note))

	require.NotNil(t, note.Date)
	assert.Equal(t, time.UTC, note.Date.Location())
	assert.Zero(t, note.Date.Nanosecond()%int(time.Millisecond))
	assert.WithinDuration(t, time.Now(), *note.Date, time.Minute)
}
