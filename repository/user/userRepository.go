package userrepo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"equiploan/model"
)

type Repo interface {
	Create(ctx context.Context, u *model.User) error
	ByUsername(ctx context.Context, username string) (*model.User, error)
}

type repo struct{ db *sqlx.DB }

func New(db *sqlx.DB) Repo { return &repo{db: db} }

func (r *repo) Create(ctx context.Context, u *model.User) error {
	const q = `
		INSERT INTO users (id, username, password_hash, salt, email, permissions, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, r.db.Rebind(q),
		u.ID, u.Username, u.PasswordHash, u.Salt, u.Email, u.Permissions, u.CreatedAt.Unix(),
	)
	return err
}

func (r *repo) ByUsername(ctx context.Context, username string) (*model.User, error) {
	const q = `
		SELECT id, username, password_hash, salt, email, permissions
		FROM users
		WHERE username = ?`
	u := &model.User{}
	err := r.db.QueryRowContext(ctx, r.db.Rebind(q), username).
		Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Salt, &u.Email, &u.Permissions)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}
