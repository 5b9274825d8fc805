package authsvc

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"equiploan/model"
	userrepo "equiploan/repository/user"
	"equiploan/util/hash"
	jwtutil "equiploan/util/jwt"
)

// errors used by controllers

type ErrCode string

const (
	ErrAuthFailed    ErrCode = "AUTH_FAILED"
	ErrNotAllowed    ErrCode = "NOT_ALLOWED"
	ErrUsernameTaken ErrCode = "USERNAME_TAKEN"
	ErrBadInput      ErrCode = "BAD_INPUT"
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

type LoggedIn struct {
	Username    string
	Permissions string
	Token       string
}

type Service interface {
	// Verify checks a username/password pair against the stored hash.
	Verify(ctx context.Context, username, password string) (bool, error)

	// IsAdmin reports whether the user holds admin permissions.
	IsAdmin(ctx context.Context, username string) (bool, error)

	// Login verifies credentials and issues a session token.
	Login(ctx context.Context, req model.LoginReq) (*LoggedIn, error)

	// Register creates a new account; only admins may call it.
	Register(ctx context.Context, req model.RegisterReq) (*model.User, error)
}

type service struct {
	ur     userrepo.Repo
	secret string
}

func New(ur userrepo.Repo, secret string) Service { return &service{ur: ur, secret: secret} }

func (s *service) Verify(ctx context.Context, username, password string) (bool, error) {
	u, err := s.ur.ByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	if u == nil {
		return false, nil
	}
	return hash.Check(u.PasswordHash, u.Salt, password), nil
}

func (s *service) IsAdmin(ctx context.Context, username string) (bool, error) {
	u, err := s.ur.ByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	return u != nil && u.IsAdmin(), nil
}

func (s *service) Login(ctx context.Context, req model.LoginReq) (*LoggedIn, error) {
	u, err := s.ur.ByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if u == nil || !hash.Check(u.PasswordHash, u.Salt, req.Password) {
		return nil, makeErr(ErrAuthFailed)
	}
	token, err := jwtutil.Issue(s.secret, u.Username, u.Permissions, 24)
	if err != nil {
		return nil, err
	}
	return &LoggedIn{Username: u.Username, Permissions: u.Permissions, Token: token}, nil
}

func (s *service) Register(ctx context.Context, req model.RegisterReq) (*model.User, error) {
	ok, err := s.Verify(ctx, req.Username, req.Password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, makeErr(ErrAuthFailed)
	}
	admin, err := s.IsAdmin(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if !admin {
		return nil, makeErr(ErrNotAllowed)
	}

	salt, err := hash.NewSalt()
	if err != nil {
		return nil, err
	}
	u := &model.User{
		ID:           uuid.NewString(),
		Username:     strings.TrimSpace(req.NewUsername),
		PasswordHash: hash.Password(req.NewPassword, salt),
		Salt:         salt,
		Email:        strings.ToLower(strings.TrimSpace(req.NewEmail)),
		Permissions:  req.Permissions,
		CreatedAt:    time.Now().UTC(),
	}
	if u.Username == "" {
		return nil, makeErr(ErrBadInput)
	}

	if err := s.ur.Create(ctx, u); err != nil {
		if derr := mapDuplicateErr(err); derr != nil {
			return nil, derr
		}
		return nil, err
	}
	return u, nil
}

func mapDuplicateErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return makeErr(ErrUsernameTaken)
	}
	// modernc/sqlite surfaces constraint failures as plain errors
	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return makeErr(ErrUsernameTaken)
	}
	return nil
}
