package itemsvc

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"equiploan/model"
)

type ErrCode string

const (
	ErrAuthFailed   ErrCode = "AUTH_FAILED"
	ErrNotAllowed   ErrCode = "NOT_ALLOWED"
	ErrNameTaken    ErrCode = "NAME_TAKEN"
	ErrItemNotFound ErrCode = "ITEM_NOT_FOUND"
	ErrBadInput     ErrCode = "BAD_INPUT"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

type Authenticator interface {
	Verify(ctx context.Context, username, password string) (bool, error)
	IsAdmin(ctx context.Context, username string) (bool, error)
}

type Repo interface {
	Insert(ctx context.Context, it *model.Item) error
	Delete(ctx context.Context, name string) (bool, error)
	List(ctx context.Context) ([]model.Item, error)
}

type Service interface {
	// Add creates an inventory item; admin only. New items start available.
	Add(ctx context.Context, username, password, name, description string) (*model.Item, error)

	// Remove deletes an item from inventory; admin only. Reservation history
	// for the item is kept.
	Remove(ctx context.Context, username, password, name string) error

	List(ctx context.Context) ([]model.Item, error)
}

type service struct {
	auth Authenticator
	r    Repo
}

func New(auth Authenticator, r Repo) Service { return &service{auth: auth, r: r} }

func (s *service) Add(ctx context.Context, username, password, name, description string) (*model.Item, error) {
	if err := s.requireAdmin(ctx, username, password); err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, makeErr(ErrBadInput)
	}

	it := &model.Item{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		Status:      model.ItemAvailable,
	}
	if err := s.r.Insert(ctx, it); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, makeErr(ErrNameTaken)
		}
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return nil, makeErr(ErrNameTaken)
		}
		return nil, err
	}
	return it, nil
}

func (s *service) Remove(ctx context.Context, username, password, name string) error {
	if err := s.requireAdmin(ctx, username, password); err != nil {
		return err
	}
	gone, err := s.r.Delete(ctx, name)
	if err != nil {
		return err
	}
	if !gone {
		return makeErr(ErrItemNotFound)
	}
	return nil
}

func (s *service) List(ctx context.Context) ([]model.Item, error) { return s.r.List(ctx) }

func (s *service) requireAdmin(ctx context.Context, username, password string) error {
	ok, err := s.auth.Verify(ctx, username, password)
	if err != nil {
		return err
	}
	if !ok {
		return makeErr(ErrAuthFailed)
	}
	admin, err := s.auth.IsAdmin(ctx, username)
	if err != nil {
		return err
	}
	if !admin {
		return makeErr(ErrNotAllowed)
	}
	return nil
}
