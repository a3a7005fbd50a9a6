package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/starford/noteful/internal/apperr"
	"github.com/starford/noteful/internal/models"
)

type folderRepo struct {
	conn *sql.DB
}

func (r *folderRepo) List(ctx context.Context) ([]models.Folder, error) {
	rows, err := r.conn.QueryContext(ctx, `SELECT id, folder_name FROM folders ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("sqlite: list folders: %w", err)
	}
	defer rows.Close()

	out := []models.Folder{}
	for rows.Next() {
		var f models.Folder
		if err := rows.Scan(&f.ID, &f.FolderName); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r *folderRepo) Get(ctx context.Context, id int64) (*models.Folder, error) {
	var f models.Folder
	err := r.conn.QueryRowContext(ctx, `SELECT id, folder_name FROM folders WHERE id = ?`, id).
		Scan(&f.ID, &f.FolderName)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("sqlite: get folder %d: %w", id, err)
	}
	return &f, nil
}

func (r *folderRepo) Insert(ctx context.Context, n models.NewFolder) (*models.Folder, error) {
	res, err := r.conn.ExecContext(ctx, `INSERT INTO folders (folder_name) VALUES (?)`, n.FolderName)
	if err != nil {
		return nil, fmt.Errorf("sqlite: insert folder: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("sqlite: insert folder: %w", err)
	}
	return &models.Folder{ID: id, FolderName: n.FolderName}, nil
}

func (r *folderRepo) Update(ctx context.Context, id int64, p models.FolderPatch) error {
	if p.Empty() {
		return nil
	}
	res, err := r.conn.ExecContext(ctx, `UPDATE folders SET folder_name = ? WHERE id = ?`, *p.FolderName, id)
	if err != nil {
		return fmt.Errorf("sqlite: update folder %d: %w", id, err)
	}
	return expectRow(res)
}

func (r *folderRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.conn.ExecContext(ctx, `DELETE FROM folders WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("sqlite: delete folder %d: %w", id, err)
	}
	return expectRow(res)
}

// expectRow maps a statement that touched no row to ErrNotFound.
func expectRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
