package sqlite

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/starford/noteful/internal/apperr"
	"github.com/starford/noteful/internal/models"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	f, err := os.CreateTemp("", "noteful-sqlite-test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	f.Close()
	t.Cleanup(func() { os.Remove(f.Name()) })

	db, err := Open(f.Name())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func ptr[T any](v T) *T { return &v }

func TestSchemaCreation(t *testing.T) {
	db := testDB(t)
	var count int
	if err := db.conn.QueryRow(`SELECT count(*) FROM folders`).Scan(&count); err != nil {
		t.Fatalf("folders table missing: %v", err)
	}
	if err := db.conn.QueryRow(`SELECT count(*) FROM notes`).Scan(&count); err != nil {
		t.Fatalf("notes table missing: %v", err)
	}
}

func TestFolderCRUD(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	folders := db.Folders()

	list, err := folders.List(ctx)
	if err != nil || len(list) != 0 {
		t.Fatalf("empty list = %v, %v", list, err)
	}

	f, err := folders.Insert(ctx, models.NewFolder{FolderName: "Home"})
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if f.ID <= 0 {
		t.Errorf("id = %d, want positive", f.ID)
	}

	if err := folders.Update(ctx, f.ID, models.FolderPatch{FolderName: ptr("Away")}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, err := folders.Get(ctx, f.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.FolderName != "Away" {
		t.Errorf("folder_name = %q, want Away", got.FolderName)
	}

	if err := folders.Delete(ctx, f.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := folders.Get(ctx, f.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("Get after delete err = %v, want ErrNotFound", err)
	}
	if err := folders.Delete(ctx, f.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("second Delete err = %v, want ErrNotFound", err)
	}
}

func TestNoteInsertSetsDateModified(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	fixed := time.Date(2019, 1, 3, 0, 0, 0, 0, time.UTC)
	db.now = func() time.Time { return fixed }

	f, _ := db.Folders().Insert(ctx, models.NewFolder{FolderName: "Home"})
	n, err := db.Notes().Insert(ctx, models.NewNote{NoteTitle: "Dogs!", Content: "", FolderID: f.ID})
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	got, err := db.Notes().Get(ctx, n.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !got.DateModified.Equal(fixed) {
		t.Errorf("date_modified = %v, want %v", got.DateModified, fixed)
	}
	if got.Content != "" || got.FolderID != f.ID {
		t.Errorf("note = %+v", got)
	}
}

func TestNotePartialUpdate(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	f, _ := db.Folders().Insert(ctx, models.NewFolder{FolderName: "Home"})
	n, _ := db.Notes().Insert(ctx, models.NewNote{NoteTitle: "Cats", Content: "meow", FolderID: f.ID})

	later := time.Date(2030, 5, 1, 12, 0, 0, 0, time.UTC)
	db.now = func() time.Time { return later }

	if err := db.Notes().Update(ctx, n.ID, models.NotePatch{NoteTitle: ptr("Kittens")}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, _ := db.Notes().Get(ctx, n.ID)
	if got.NoteTitle != "Kittens" {
		t.Errorf("note_title = %q", got.NoteTitle)
	}
	if got.Content != "meow" || got.FolderID != f.ID {
		t.Errorf("untouched fields changed: %+v", got)
	}
	if !got.DateModified.Equal(later) {
		t.Errorf("date_modified = %v, want %v", got.DateModified, later)
	}
}

func TestNoteRequiresExistingFolder(t *testing.T) {
	db := testDB(t)
	_, err := db.Notes().Insert(context.Background(), models.NewNote{NoteTitle: "x", Content: "y", FolderID: 999})
	if err == nil {
		t.Fatal("insert with unknown folder_id should fail")
	}
	if errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("constraint failure should not read as not found: %v", err)
	}
}

func TestFolderDeleteCascades(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	f, _ := db.Folders().Insert(ctx, models.NewFolder{FolderName: "Home"})
	n, _ := db.Notes().Insert(ctx, models.NewNote{NoteTitle: "a", Content: "b", FolderID: f.ID})

	if err := db.Folders().Delete(ctx, f.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := db.Notes().Get(ctx, n.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("note should be gone with its folder, err = %v", err)
	}
}

func TestIDsNotReused(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	a, _ := db.Folders().Insert(ctx, models.NewFolder{FolderName: "a"})
	_ = db.Folders().Delete(ctx, a.ID)
	b, _ := db.Folders().Insert(ctx, models.NewFolder{FolderName: "b"})
	if b.ID == a.ID {
		t.Errorf("id %d reused after delete", a.ID)
	}
}

func TestWithParams(t *testing.T) {
	cases := map[string]string{
		"noteful.db":                   "noteful.db?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on",
		"file:noteful.db?cache=shared": "file:noteful.db?cache=shared&_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on",
	}
	for in, want := range cases {
		if got := withParams(in); got != want {
			t.Errorf("withParams(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestOpen_DSNWithQueryString(t *testing.T) {
	f, err := os.CreateTemp("", "noteful-sqlite-dsn-*.db")
	if err != nil {
		t.Fatal(err)
	}
	f.Close()
	t.Cleanup(func() { os.Remove(f.Name()) })

	db, err := Open("file:" + f.Name() + "?cache=shared")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()

	var fk int
	if err := db.conn.QueryRow(`PRAGMA foreign_keys`).Scan(&fk); err != nil {
		t.Fatal(err)
	}
	if fk != 1 {
		t.Errorf("foreign_keys = %d, want 1", fk)
	}
}
