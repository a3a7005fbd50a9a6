// Package sqlite implements the storage accessors on SQLite.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/starford/noteful/internal/storage"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS folders (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	folder_name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS notes (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	note_title    TEXT NOT NULL,
	content       TEXT NOT NULL DEFAULT '',
	folder_id     INTEGER NOT NULL REFERENCES folders(id) ON DELETE CASCADE,
	date_modified DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_notes_folder_id ON notes(folder_id);
`

// DB wraps a sql.DB and hands out folder and note accessors.
type DB struct {
	conn *sql.DB
	now  func() time.Time
}

var _ storage.Provider = (*DB)(nil)

// Open opens (or creates) the SQLite database and applies the schema.
func Open(dsn string) (*DB, error) {
	conn, err := sql.Open("sqlite3", withParams(dsn))
	if err != nil {
		return nil, fmt.Errorf("sqlite: open db: %w", err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: ping: %w", err)
	}
	if _, err := conn.Exec(schemaSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: apply schema: %w", err)
	}
	return &DB{conn: conn, now: timestamp}, nil
}

// withParams appends the connection pragmas, keeping any query string the
// caller already put on dsn.
func withParams(dsn string) string {
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on"
}

// Folders returns the folder accessor.
func (db *DB) Folders() storage.FolderAccessor {
	return &folderRepo{conn: db.conn}
}

// Notes returns the note accessor.
func (db *DB) Notes() storage.NoteAccessor {
	return &noteRepo{conn: db.conn, now: db.now}
}

// Ping checks the connection is usable.
func (db *DB) Ping(ctx context.Context) error {
	return db.conn.PingContext(ctx)
}

// Close closes the underlying database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// timestamp is the date_modified clock, in UTC with millisecond precision.
func timestamp() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
