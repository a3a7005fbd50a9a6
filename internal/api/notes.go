package api

import (
	"github.com/starford/noteful/internal/models"
	"github.com/starford/noteful/internal/sse"
	"github.com/starford/noteful/internal/storage"
)

// Note patches may also move a note with folder_id, but only a title or
// content counts towards a non-empty update.
func newNoteResource(acc storage.NoteAccessor, events *sse.Broker) *resource[models.Note, models.NewNote, models.NotePatch, NoteResponse] {
	return &resource[models.Note, models.NewNote, models.NotePatch, NoteResponse]{
		name:        "note",
		notFound:    "Note does not exist",
		emptyUpdate: "Request body must contain either 'note_title' or 'content'",
		required:    []string{"note_title", "content", "folder_id"},
		updatable:   []string{"note_title", "content"},
		acc:         acc,
		id:          func(n *models.Note) int64 { return n.ID },
		serialize:   SerializeNote,
		events:      events,
	}
}
