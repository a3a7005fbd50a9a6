// Package storage defines the data-access contract the API layer consumes.
package storage

import (
	"context"

	"github.com/starford/noteful/internal/models"
)

// Accessor is the narrow persistence interface for one resource.
// R is the stored record, N the create payload and P the partial update.
type Accessor[R, N, P any] interface {
	// List returns every record, ordered by id.
	List(ctx context.Context) ([]R, error)
	// Get returns the record with id, or apperr.ErrNotFound.
	Get(ctx context.Context, id int64) (*R, error)
	// Insert stores n and returns the record with its server-assigned fields.
	Insert(ctx context.Context, n N) (*R, error)
	// Update applies the non-nil fields of p to the record with id.
	Update(ctx context.Context, id int64, p P) error
	// Delete removes the record with id.
	Delete(ctx context.Context, id int64) error
}

// FolderAccessor persists folders.
type FolderAccessor = Accessor[models.Folder, models.NewFolder, models.FolderPatch]

// NoteAccessor persists notes.
type NoteAccessor = Accessor[models.Note, models.NewNote, models.NotePatch]

// Provider is a connected store handing out per-resource accessors.
type Provider interface {
	Folders() FolderAccessor
	Notes() NoteAccessor
	Ping(ctx context.Context) error
	Close() error
}
