package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/starford/noteful/internal/models"
)

const noteColumns = `id, note_title, content, folder_id, date_modified`

type noteRepo struct {
	pool *pgxpool.Pool
}

func scanNote(row pgx.Row) (models.Note, error) {
	var n models.Note
	err := row.Scan(&n.ID, &n.NoteTitle, &n.Content, &n.FolderID, &n.DateModified)
	if err == nil {
		n.DateModified = n.DateModified.UTC()
	}
	return n, err
}

func (r *noteRepo) List(ctx context.Context) ([]models.Note, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+noteColumns+` FROM notes ORDER BY id`)
	if err != nil {
		return nil, wrap("list notes", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Note, error) {
		return scanNote(row)
	})
	if err != nil {
		return nil, wrap("list notes", err)
	}
	if out == nil {
		out = []models.Note{}
	}
	return out, nil
}

func (r *noteRepo) Get(ctx context.Context, id int64) (*models.Note, error) {
	n, err := scanNote(r.pool.QueryRow(ctx, `SELECT `+noteColumns+` FROM notes WHERE id = $1`, id))
	if err != nil {
		return nil, wrap(fmt.Sprintf("get note %d", id), err)
	}
	return &n, nil
}

func (r *noteRepo) Insert(ctx context.Context, in models.NewNote) (*models.Note, error) {
	n, err := scanNote(r.pool.QueryRow(ctx,
		`INSERT INTO notes (note_title, content, folder_id, date_modified)
		 VALUES ($1, $2, $3, date_trunc('milliseconds', now()))
		 RETURNING `+noteColumns,
		in.NoteTitle, in.Content, in.FolderID))
	if err != nil {
		return nil, wrap("insert note", err)
	}
	return &n, nil
}

func (r *noteRepo) Update(ctx context.Context, id int64, p models.NotePatch) error {
	if p.Empty() {
		return nil
	}
	var (
		sets []string
		args []any
	)
	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if p.NoteTitle != nil {
		add("note_title", *p.NoteTitle)
	}
	if p.Content != nil {
		add("content", *p.Content)
	}
	if p.FolderID != nil {
		add("folder_id", *p.FolderID)
	}
	sets = append(sets, "date_modified = date_trunc('milliseconds', now())")
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE notes SET %s WHERE id = $%d`, strings.Join(sets, ", "), len(args))
	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return wrap(fmt.Sprintf("update note %d", id), err)
	}
	return expectRow(tag)
}

func (r *noteRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM notes WHERE id = $1`, id)
	if err != nil {
		return wrap(fmt.Sprintf("delete note %d", id), err)
	}
	return expectRow(tag)
}
