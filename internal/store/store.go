package store

import (
	"context"
	"errors"

	journalmodels "github.com/Alllfr/snap-journal/internal/models/journal"
)

// ErrNotFound is returned when no journal exists under the requested id.
var ErrNotFound = errors.New("journal not found")

// Journals is the persistence surface for journal entries. Rows are keyed by
// id and scoped by owner; listing is newest first.
type Journals interface {
	Create(ctx context.Context, j *journalmodels.Journal) error
	GetByID(ctx context.Context, id string) (*journalmodels.Journal, error)
	ListByOwner(ctx context.Context, ownerID string) ([]journalmodels.Journal, error)
	Update(ctx context.Context, j *journalmodels.Journal) error
	Delete(ctx context.Context, id string) error

	// ListDataURIMedia returns entries whose media is still an inline data
	// URI, oldest first, for the offloader to persist to disk.
	ListDataURIMedia(ctx context.Context, limit int) ([]journalmodels.Journal, error)
	// SetMediaPath rewrites an entry's media to a relative storage path.
	SetMediaPath(ctx context.Context, id, path string) error
}
