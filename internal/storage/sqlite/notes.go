package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/starford/noteful/internal/apperr"
	"github.com/starford/noteful/internal/models"
)

const noteColumns = `id, note_title, content, folder_id, date_modified`

type noteRepo struct {
	conn *sql.DB
	now  func() time.Time
}

type scanner interface {
	Scan(dest ...any) error
}

func scanNote(s scanner) (models.Note, error) {
	var n models.Note
	err := s.Scan(&n.ID, &n.NoteTitle, &n.Content, &n.FolderID, &n.DateModified)
	return n, err
}

func (r *noteRepo) List(ctx context.Context) ([]models.Note, error) {
	rows, err := r.conn.QueryContext(ctx, `SELECT `+noteColumns+` FROM notes ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("sqlite: list notes: %w", err)
	}
	defer rows.Close()

	out := []models.Note{}
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (r *noteRepo) Get(ctx context.Context, id int64) (*models.Note, error) {
	n, err := scanNote(r.conn.QueryRowContext(ctx, `SELECT `+noteColumns+` FROM notes WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("sqlite: get note %d: %w", id, err)
	}
	return &n, nil
}

func (r *noteRepo) Insert(ctx context.Context, in models.NewNote) (*models.Note, error) {
	modified := r.now()
	res, err := r.conn.ExecContext(ctx,
		`INSERT INTO notes (note_title, content, folder_id, date_modified) VALUES (?, ?, ?, ?)`,
		in.NoteTitle, in.Content, in.FolderID, modified)
	if err != nil {
		return nil, fmt.Errorf("sqlite: insert note: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("sqlite: insert note: %w", err)
	}
	return &models.Note{
		ID:           id,
		NoteTitle:    in.NoteTitle,
		Content:      in.Content,
		FolderID:     in.FolderID,
		DateModified: modified,
	}, nil
}

func (r *noteRepo) Update(ctx context.Context, id int64, p models.NotePatch) error {
	if p.Empty() {
		return nil
	}
	var (
		sets []string
		args []any
	)
	if p.NoteTitle != nil {
		sets = append(sets, "note_title = ?")
		args = append(args, *p.NoteTitle)
	}
	if p.Content != nil {
		sets = append(sets, "content = ?")
		args = append(args, *p.Content)
	}
	if p.FolderID != nil {
		sets = append(sets, "folder_id = ?")
		args = append(args, *p.FolderID)
	}
	sets = append(sets, "date_modified = ?")
	args = append(args, r.now(), id)

	res, err := r.conn.ExecContext(ctx, `UPDATE notes SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return fmt.Errorf("sqlite: update note %d: %w", id, err)
	}
	return expectRow(res)
}

func (r *noteRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.conn.ExecContext(ctx, `DELETE FROM notes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("sqlite: delete note %d: %w", id, err)
	}
	return expectRow(res)
}
