// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/photogear/camera-catalog/internal/config"
	"github.com/photogear/camera-catalog/internal/logger"
	"github.com/photogear/camera-catalog/internal/store"
	"github.com/photogear/camera-catalog/internal/utils"
	"github.com/photogear/camera-catalog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createFn         func(ctx context.Context, user models.User) (models.User, error)
	findByUsernameFn func(ctx context.Context, username string) (models.User, error)
	findByIDFn       func(ctx context.Context, id int64) (models.User, error)
	listFn           func(ctx context.Context) ([]models.User, error)
	updateFn         func(ctx context.Context, id int64, update models.UserUpdate) (models.User, error)
	deleteFn         func(ctx context.Context, id int64) error
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	if m.findByUsernameFn != nil {
		return m.findByUsernameFn(ctx, username)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockUserRepository) UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (models.User, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, update)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) DeleteUser(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

// ─────────────────────────────────────────────
// Helper
// ─────────────────────────────────────────────

func newTestAuthService(repo store.UserRepository) AuthService {
	return NewAuthService(repo, config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "camera-catalog",
		TokenDuration: time.Hour,
	}, logger.Nop())
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	return hash
}

// ─────────────────────────────────────────────
// RegisterUser
// ─────────────────────────────────────────────

func TestAuthService_RegisterUser_Success(t *testing.T) {
	var persisted models.User
	repo := &mockUserRepository{
		createFn: func(_ context.Context, user models.User) (models.User, error) {
			persisted = user
			user.ID = 1
			return user, nil
		},
	}
	svc := newTestAuthService(repo)

	registered, err := svc.RegisterUser(context.Background(), models.UserCreate{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "Sup3rSecret",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), registered.ID)
	assert.Equal(t, models.RoleUser, persisted.Role)
	assert.NotEmpty(t, persisted.PasswordHash)
	assert.NotEqual(t, "Sup3rSecret", persisted.PasswordHash)
	assert.True(t, utils.VerifyPassword("Sup3rSecret", persisted.PasswordHash))
}

func TestAuthService_RegisterUser_ForcesUserRole(t *testing.T) {
	var persisted models.User
	repo := &mockUserRepository{
		createFn: func(_ context.Context, user models.User) (models.User, error) {
			persisted = user
			return user, nil
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.RegisterUser(context.Background(), models.UserCreate{
		Username: "mallory",
		Email:    "mallory@example.com",
		Password: "Sup3rSecret",
		Role:     "admin",
	})

	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, persisted.Role)
}

func TestAuthService_RegisterUser_WeakPassword(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	_, err := svc.RegisterUser(context.Background(), models.UserCreate{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "password",
	})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_RegisterUser_UsernameTaken(t *testing.T) {
	repo := &mockUserRepository{
		createFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, store.ErrUsernameAlreadyExists
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.RegisterUser(context.Background(), models.UserCreate{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "Sup3rSecret",
	})

	assert.ErrorIs(t, err, store.ErrUsernameAlreadyExists)
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	hash := mustHash(t, "Sup3rSecret")
	repo := &mockUserRepository{
		findByUsernameFn: func(_ context.Context, username string) (models.User, error) {
			assert.Equal(t, "alice", username)
			return models.User{ID: 1, Username: "alice", PasswordHash: hash, Role: models.RoleUser}, nil
		},
	}
	svc := newTestAuthService(repo)

	user, err := svc.Login(context.Background(), models.Credentials{Username: "alice", Password: "Sup3rSecret"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	hash := mustHash(t, "Sup3rSecret")
	repo := &mockUserRepository{
		findByUsernameFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{ID: 1, Username: "alice", PasswordHash: hash}, nil
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.Login(context.Background(), models.Credentials{Username: "alice", Password: "wrong-one"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	repo := &mockUserRepository{
		findByUsernameFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, store.ErrUserNotFound
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.Login(context.Background(), models.Credentials{Username: "ghost", Password: "whatever"})

	// indistinguishable from a wrong password
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_EmptyFields(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	_, err := svc.Login(context.Background(), models.Credentials{})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_Login_StorageError(t *testing.T) {
	errStorage := errors.New("storage error")
	repo := &mockUserRepository{
		findByUsernameFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, errStorage
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.Login(context.Background(), models.Credentials{Username: "alice", Password: "whatever"})

	assert.ErrorIs(t, err, errStorage)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

// ─────────────────────────────────────────────
// CreateToken / ParseToken
// ─────────────────────────────────────────────

func TestAuthService_TokenRoundTrip(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})
	user := models.User{Username: "alice", Role: models.RoleAdmin}

	token, err := svc.CreateToken(context.Background(), user)
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(context.Background(), token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "alice", parsed.Username)
	assert.Equal(t, models.RoleAdmin, parsed.Role)
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	_, err := svc.ParseToken(context.Background(), "definitely.not.a-token")

	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_ParseToken_WrongKey(t *testing.T) {
	issuing := NewAuthService(&mockUserRepository{}, config.App{
		TokenSignKey:  "other-sign-key",
		TokenIssuer:   "camera-catalog",
		TokenDuration: time.Hour,
	}, logger.Nop())
	verifying := newTestAuthService(&mockUserRepository{})

	token, err := issuing.CreateToken(context.Background(), models.User{Username: "alice", Role: models.RoleUser})
	require.NoError(t, err)

	_, err = verifying.ParseToken(context.Background(), token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
