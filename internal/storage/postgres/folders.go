package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/starford/noteful/internal/models"
)

type folderRepo struct {
	pool *pgxpool.Pool
}

func (r *folderRepo) List(ctx context.Context) ([]models.Folder, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, folder_name FROM folders ORDER BY id`)
	if err != nil {
		return nil, wrap("list folders", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Folder, error) {
		var f models.Folder
		err := row.Scan(&f.ID, &f.FolderName)
		return f, err
	})
	if err != nil {
		return nil, wrap("list folders", err)
	}
	if out == nil {
		out = []models.Folder{}
	}
	return out, nil
}

func (r *folderRepo) Get(ctx context.Context, id int64) (*models.Folder, error) {
	var f models.Folder
	err := r.pool.QueryRow(ctx, `SELECT id, folder_name FROM folders WHERE id = $1`, id).
		Scan(&f.ID, &f.FolderName)
	if err != nil {
		return nil, wrap(fmt.Sprintf("get folder %d", id), err)
	}
	return &f, nil
}

func (r *folderRepo) Insert(ctx context.Context, n models.NewFolder) (*models.Folder, error) {
	var f models.Folder
	err := r.pool.QueryRow(ctx,
		`INSERT INTO folders (folder_name) VALUES ($1) RETURNING id, folder_name`, n.FolderName).
		Scan(&f.ID, &f.FolderName)
	if err != nil {
		return nil, wrap("insert folder", err)
	}
	return &f, nil
}

func (r *folderRepo) Update(ctx context.Context, id int64, p models.FolderPatch) error {
	if p.Empty() {
		return nil
	}
	tag, err := r.pool.Exec(ctx, `UPDATE folders SET folder_name = $1 WHERE id = $2`, *p.FolderName, id)
	if err != nil {
		return wrap(fmt.Sprintf("update folder %d", id), err)
	}
	return expectRow(tag)
}

func (r *folderRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM folders WHERE id = $1`, id)
	if err != nil {
		return wrap(fmt.Sprintf("delete folder %d", id), err)
	}
	return expectRow(tag)
}
