// Package models defines the domain types for Noteful.
package models

import "time"

// Note is a stored note. DateModified is owned by the store.
type Note struct {
	ID           int64
	NoteTitle    string
	Content      string
	FolderID     int64
	DateModified time.Time
}

// NewNote carries the fields accepted when creating a note.
type NewNote struct {
	NoteTitle string `json:"note_title"`
	Content   string `json:"content"`
	FolderID  int64  `json:"folder_id"`
}

// NotePatch is a partial update. Nil fields are left untouched.
type NotePatch struct {
	NoteTitle *string `json:"note_title"`
	Content   *string `json:"content"`
	FolderID  *int64  `json:"folder_id"`
}

// Empty reports whether the patch changes nothing.
func (p NotePatch) Empty() bool {
	return p.NoteTitle == nil && p.Content == nil && p.FolderID == nil
}
