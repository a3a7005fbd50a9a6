// Package testutil provides shared test helpers for setting up stores.
package testutil

import (
	"context"
	"os"
	"testing"

	"github.com/starford/noteful/internal/models"
	"github.com/starford/noteful/internal/storage/sqlite"
)

// TestDB creates a temporary SQLite database that is automatically cleaned up.
func TestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	dbFile, err := os.CreateTemp("", "noteful-test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	dbFile.Close()
	t.Cleanup(func() { os.Remove(dbFile.Name()) })

	db, err := sqlite.Open(dbFile.Name())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// Folders returns the fixture folders, in insertion order.
func Folders() []models.NewFolder {
	return []models.NewFolder{
		{FolderName: "Home"},
		{FolderName: "Work"},
		{FolderName: "Errands"},
	}
}

// Notes returns the fixture notes. All of them live in the first folder.
func Notes() []models.NewNote {
	return []models.NewNote{
		{NoteTitle: "Dogs!", FolderID: 1, Content: "Bacon ipsum dolor amet flank frankfurter pork belly pig, tongue landjaeger biltong turducken porchetta bresaola chicken."},
		{NoteTitle: "Cats", FolderID: 1, Content: "Kielbasa shankle salami burgdoggen. Rump ham hock porchetta, boudin short loin burgdoggen alcatra venison ribeye."},
		{NoteTitle: "Pigs", FolderID: 1, Content: "Leberkas sausage pork belly turkey hamburger. Tenderloin sausage buffalo pork belly, beef ribs jerky ribeye."},
		{NoteTitle: "Birds", FolderID: 1, Content: "Porchetta brisket ham sirloin. Bresaola andouille swine pancetta shank beef ribs pork ground round."},
	}
}

// Seed inserts the fixture folders and notes into db.
func Seed(t *testing.T, db *sqlite.DB) {
	t.Helper()
	ctx := context.Background()
	for _, f := range Folders() {
		if _, err := db.Folders().Insert(ctx, f); err != nil {
			t.Fatalf("seed folder: %v", err)
		}
	}
	for _, n := range Notes() {
		if _, err := db.Notes().Insert(ctx, n); err != nil {
			t.Fatalf("seed note: %v", err)
		}
	}
}
