package sanitize

import "github.com/starford/noteful/internal/models"

// Folder returns a copy of f safe to hand to a client.
func Folder(f models.Folder) models.Folder {
	f.FolderName = Text(f.FolderName)
	return f
}

// Note returns a copy of n safe to hand to a client.
func Note(n models.Note) models.Note {
	n.NoteTitle = Text(n.NoteTitle)
	n.Content = Markup(n.Content)
	return n
}
