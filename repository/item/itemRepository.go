package itemrepo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"equiploan/model"
)

type Repo interface {
	Insert(ctx context.Context, it *model.Item) error
	Delete(ctx context.Context, name string) (bool, error)
	ByName(ctx context.Context, name string) (*model.Item, error)
	List(ctx context.Context) ([]model.Item, error)
}

type repo struct{ db *sqlx.DB }

func New(db *sqlx.DB) Repo { return &repo{db: db} }

func (r *repo) Insert(ctx context.Context, it *model.Item) error {
	const q = `
		INSERT INTO items (id, name, description, status)
		VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, r.db.Rebind(q), it.ID, it.Name, it.Description, it.Status)
	return err
}

func (r *repo) Delete(ctx context.Context, name string) (bool, error) {
	const q = `DELETE FROM items WHERE name = ?`
	res, err := r.db.ExecContext(ctx, r.db.Rebind(q), name)
	if err != nil {
		return false, err
	}
	aff, _ := res.RowsAffected()
	return aff > 0, nil
}

func (r *repo) ByName(ctx context.Context, name string) (*model.Item, error) {
	const q = `
		SELECT id, name, description, status
		FROM items
		WHERE name = ?`
	var it model.Item
	err := r.db.GetContext(ctx, &it, r.db.Rebind(q), name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *repo) List(ctx context.Context) ([]model.Item, error) {
	const q = `
		SELECT id, name, description, status
		FROM items
		ORDER BY name`
	var out []model.Item
	if err := r.db.SelectContext(ctx, &out, q); err != nil {
		return nil, err
	}
	return out, nil
}
