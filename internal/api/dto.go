package api

import (
	"time"

	"github.com/starford/noteful/internal/models"
	"github.com/starford/noteful/internal/sanitize"
)

// FolderResponse is the public shape of a folder.
type FolderResponse struct {
	ID         int64  `json:"id" example:"1"`
	FolderName string `json:"folder_name" example:"Home"`
}

// NoteResponse is the public shape of a note.
type NoteResponse struct {
	ID           int64     `json:"id" example:"1"`
	NoteTitle    string    `json:"note_title" example:"Dogs!"`
	DateModified time.Time `json:"date_modified"`
	FolderID     int64     `json:"folder_id" example:"1"`
	Content      string    `json:"content" example:"Bacon ipsum dolor amet"`
}

// SerializeFolder returns the sanitized public shape of f.
func SerializeFolder(f *models.Folder) FolderResponse {
	clean := sanitize.Folder(*f)
	return FolderResponse{
		ID:         clean.ID,
		FolderName: clean.FolderName,
	}
}

// SerializeNote returns the sanitized public shape of n.
func SerializeNote(n *models.Note) NoteResponse {
	clean := sanitize.Note(*n)
	return NoteResponse{
		ID:           clean.ID,
		NoteTitle:    clean.NoteTitle,
		DateModified: clean.DateModified,
		FolderID:     clean.FolderID,
		Content:      clean.Content,
	}
}
