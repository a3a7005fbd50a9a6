// Package postgres implements the storage accessors on PostgreSQL via pgx.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/starford/noteful/internal/apperr"
	"github.com/starford/noteful/internal/storage"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS folders (
	id          BIGINT PRIMARY KEY GENERATED BY DEFAULT AS IDENTITY,
	folder_name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS notes (
	id            BIGINT PRIMARY KEY GENERATED BY DEFAULT AS IDENTITY,
	note_title    TEXT NOT NULL,
	content       TEXT NOT NULL DEFAULT '',
	folder_id     BIGINT NOT NULL REFERENCES folders(id) ON DELETE CASCADE,
	date_modified TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_notes_folder_id ON notes(folder_id);
`

// Store is a pgx connection pool handing out folder and note accessors.
type Store struct {
	pool *pgxpool.Pool
}

var _ storage.Provider = (*Store)(nil)

// Open connects to the database at url and applies the schema.
func Open(ctx context.Context, url string) (*Store, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("postgres: open pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres: ping: %w", err)
	}
	if _, err := pool.Exec(ctx, schemaSQL); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres: apply schema: %w", err)
	}
	return &Store{pool: pool}, nil
}

// Folders returns the folder accessor.
func (s *Store) Folders() storage.FolderAccessor {
	return &folderRepo{pool: s.pool}
}

// Notes returns the note accessor.
func (s *Store) Notes() storage.NoteAccessor {
	return &noteRepo{pool: s.pool}
}

// Ping checks a pooled connection is usable.
func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Close releases every pooled connection.
func (s *Store) Close() error {
	s.pool.Close()
	return nil
}

// wrap annotates err with the operation and, for server errors, the SQLSTATE
// class so fault logs tell constraint violations from connectivity problems.
func wrap(op string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return fmt.Errorf("postgres: %s: %w", op, err)
	}
	switch {
	case pgerrcode.IsIntegrityConstraintViolation(pgErr.Code):
		return fmt.Errorf("postgres: %s: integrity constraint %q violated (%s): %w", op, pgErr.ConstraintName, pgErr.Code, err)
	case pgerrcode.IsConnectionException(pgErr.Code), pgerrcode.IsOperatorIntervention(pgErr.Code):
		return fmt.Errorf("postgres: %s: connection failure (%s): %w", op, pgErr.Code, err)
	default:
		return fmt.Errorf("postgres: %s: sqlstate %s: %w", op, pgErr.Code, err)
	}
}

func expectRow(tag pgconn.CommandTag) error {
	if tag.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
