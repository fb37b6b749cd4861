package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/photogear/camera-catalog/internal/logger"
	"github.com/photogear/camera-catalog/internal/service"
	"github.com/photogear/camera-catalog/internal/store"
	"github.com/photogear/camera-catalog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: service.AuthService
// ─────────────────────────────────────────────

type mockAuthService struct {
	registerFn    func(ctx context.Context, user models.UserCreate) (models.User, error)
	loginFn       func(ctx context.Context, creds models.Credentials) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.UserCreate) (models.User, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, user)
	}
	return models.User{}, nil
}

func (m *mockAuthService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, creds)
	}
	return models.User{}, nil
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn != nil {
		return m.createTokenFn(ctx, user)
	}
	return models.Token{SignedString: "signed-token"}, nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, tokenString)
	}
	return models.Token{}, nil
}

func newTestHTTPHandler(auth service.AuthService) *Handler {
	return NewHandler(&service.Services{AuthService: auth}, logger.Nop())
}

// ─────────────────────────────────────────────
// register
// ─────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	auth := &mockAuthService{
		registerFn: func(_ context.Context, user models.UserCreate) (models.User, error) {
			return models.User{ID: 1, Username: user.Username, Email: user.Email, Role: models.RoleUser}, nil
		},
	}
	h := newTestHTTPHandler(auth)

	body := `{"username":"alice","email":"alice@example.com","password":"Sup3rSecret"}`
	req := httptest.NewRequest(http.MethodPost, "/users/register", strings.NewReader(body))
	rr := httptest.NewRecorder()

	h.register(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)

	var created models.User
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "alice", created.Username)
	assert.Equal(t, models.RoleUser, created.Role)
}

func TestRegister_InvalidJSON(t *testing.T) {
	h := newTestHTTPHandler(&mockAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/users/register", strings.NewReader("{not json"))
	rr := httptest.NewRecorder()

	h.register(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRegister_UsernameTaken(t *testing.T) {
	auth := &mockAuthService{
		registerFn: func(_ context.Context, _ models.UserCreate) (models.User, error) {
			return models.User{}, store.ErrUsernameAlreadyExists
		},
	}
	h := newTestHTTPHandler(auth)

	body := `{"username":"alice","email":"alice@example.com","password":"Sup3rSecret"}`
	req := httptest.NewRequest(http.MethodPost, "/users/register", strings.NewReader(body))
	rr := httptest.NewRecorder()

	h.register(rr, req)

	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestRegister_WeakPassword(t *testing.T) {
	auth := &mockAuthService{
		registerFn: func(_ context.Context, _ models.UserCreate) (models.User, error) {
			return models.User{}, service.ErrInvalidDataProvided
		},
	}
	h := newTestHTTPHandler(auth)

	body := `{"username":"alice","email":"alice@example.com","password":"weak"}`
	req := httptest.NewRequest(http.MethodPost, "/users/register", strings.NewReader(body))
	rr := httptest.NewRecorder()

	h.register(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

// ─────────────────────────────────────────────
// token
// ─────────────────────────────────────────────

func tokenRequest(username, password string) *http.Request {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	req := httptest.NewRequest(http.MethodPost, "/users/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestToken_Success(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, creds models.Credentials) (models.User, error) {
			assert.Equal(t, "alice", creds.Username)
			assert.Equal(t, "Sup3rSecret", creds.Password)
			return models.User{ID: 1, Username: "alice", Role: models.RoleUser}, nil
		},
		createTokenFn: func(_ context.Context, user models.User) (models.Token, error) {
			return models.Token{SignedString: "signed-jwt", Username: user.Username, Role: user.Role}, nil
		},
	}
	h := newTestHTTPHandler(auth)

	rr := httptest.NewRecorder()
	h.token(rr, tokenRequest("alice", "Sup3rSecret"))

	require.Equal(t, http.StatusOK, rr.Code)

	var resp models.TokenResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "signed-jwt", resp.AccessToken)
	assert.Equal(t, "bearer", resp.TokenType)
}

func TestToken_BadCredentials(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ models.Credentials) (models.User, error) {
			return models.User{}, service.ErrInvalidCredentials
		},
	}
	h := newTestHTTPHandler(auth)

	rr := httptest.NewRecorder()
	h.token(rr, tokenRequest("alice", "wrong"))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestToken_EmptyForm(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ models.Credentials) (models.User, error) {
			return models.User{}, service.ErrInvalidDataProvided
		},
	}
	h := newTestHTTPHandler(auth)

	rr := httptest.NewRecorder()
	h.token(rr, tokenRequest("", ""))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestToken_TokenCreationFails(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ models.Credentials) (models.User, error) {
			return models.User{ID: 1, Username: "alice"}, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return models.Token{}, service.ErrTokenCreationFailed
		},
	}
	h := newTestHTTPHandler(auth)

	rr := httptest.NewRecorder()
	h.token(rr, tokenRequest("alice", "Sup3rSecret"))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
