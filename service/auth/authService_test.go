package authsvc

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"equiploan/model"
	userrepo "equiploan/repository/user"
	"equiploan/util/hash"
)

type mockRepo struct {
	byUsernameFn func(ctx context.Context, username string) (*model.User, error)
	createFn     func(ctx context.Context, u *model.User) error
}

var _ userrepo.Repo = (*mockRepo)(nil)

func (m *mockRepo) ByUsername(ctx context.Context, username string) (*model.User, error) {
	if m.byUsernameFn == nil {
		return nil, nil
	}
	return m.byUsernameFn(ctx, username)
}

func (m *mockRepo) Create(ctx context.Context, u *model.User) error {
	if m.createFn == nil {
		return nil
	}
	return m.createFn(ctx, u)
}

func storedUser(t *testing.T, username, password, permissions string) *model.User {
	t.Helper()
	salt, err := hash.NewSalt()
	require.NoError(t, err)
	return &model.User{
		ID:           "u1",
		Username:     username,
		PasswordHash: hash.Password(password, salt),
		Salt:         salt,
		Email:        username + "@example.com",
		Permissions:  permissions,
	}
}

func repoWith(users ...*model.User) *mockRepo {
	byName := map[string]*model.User{}
	for _, u := range users {
		byName[u.Username] = u
	}
	return &mockRepo{
		byUsernameFn: func(ctx context.Context, username string) (*model.User, error) {
			return byName[username], nil
		},
	}
}

func TestVerify(t *testing.T) {
	ctx := context.Background()
	svc := New(repoWith(storedUser(t, "alice", "secret123", model.PermUser)), "test-secret")

	ok, err := svc.Verify(ctx, "alice", "secret123")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = svc.Verify(ctx, "alice", "wrong")
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = svc.Verify(ctx, "nobody", "secret123")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc := New(repoWith(storedUser(t, "root", "admin123", model.PermAdmin)), "test-secret")

	out, err := svc.Login(ctx, model.LoginReq{Username: "root", Password: "admin123"})
	require.NoError(t, err)
	require.Equal(t, "root", out.Username)
	require.Equal(t, model.PermAdmin, out.Permissions)
	require.NotEmpty(t, out.Token)

	_, err = svc.Login(ctx, model.LoginReq{Username: "root", Password: "nope"})
	require.Equal(t, ErrAuthFailed, Code(err))

	_, err = svc.Login(ctx, model.LoginReq{Username: "ghost", Password: "admin123"})
	require.Equal(t, ErrAuthFailed, Code(err))
}

func TestRegister_AdminGate(t *testing.T) {
	ctx := context.Background()

	admin := storedUser(t, "root", "admin123", model.PermAdmin)
	user := storedUser(t, "alice", "secret123", model.PermUser)

	req := model.RegisterReq{
		NewUsername: "carol",
		NewPassword: "hunter22",
		NewEmail:    "Carol@Example.com",
		Permissions: model.PermUser,
	}

	// non-admin caller is rejected before anything is created
	svc := New(repoWith(admin, user), "test-secret")
	req.Username, req.Password = "alice", "secret123"
	_, err := svc.Register(ctx, req)
	require.Equal(t, ErrNotAllowed, Code(err))

	// bad admin password
	req.Username, req.Password = "root", "wrong"
	_, err = svc.Register(ctx, req)
	require.Equal(t, ErrAuthFailed, Code(err))

	// admin succeeds; new account gets a fresh salt and a verifying hash
	var created *model.User
	m := repoWith(admin)
	m.createFn = func(ctx context.Context, u *model.User) error {
		created = u
		return nil
	}
	svc = New(m, "test-secret")
	req.Username, req.Password = "root", "admin123"

	u, err := svc.Register(ctx, req)
	require.NoError(t, err)
	require.NotNil(t, created)
	require.Equal(t, "carol", u.Username)
	require.Equal(t, "carol@example.com", u.Email)
	require.Len(t, u.Salt, 16)
	require.True(t, hash.Check(u.PasswordHash, u.Salt, "hunter22"))
}

func TestRegister_CreateError(t *testing.T) {
	ctx := context.Background()
	m := repoWith(storedUser(t, "root", "admin123", model.PermAdmin))
	m.createFn = func(ctx context.Context, u *model.User) error {
		return errors.New("db down")
	}
	svc := New(m, "test-secret")

	_, err := svc.Register(ctx, model.RegisterReq{
		Username: "root", Password: "admin123",
		NewUsername: "carol", NewPassword: "hunter22",
		NewEmail: "c@example.com", Permissions: model.PermUser,
	})
	require.Error(t, err)
	require.Equal(t, ErrCode(""), Code(err))
}
