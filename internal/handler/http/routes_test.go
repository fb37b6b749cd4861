package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/photogear/camera-catalog/internal/logger"
	"github.com/photogear/camera-catalog/internal/service"
	"github.com/photogear/camera-catalog/models"
	"github.com/stretchr/testify/assert"
)

type mockBrandService struct {
	createFn func(ctx context.Context, brand models.BrandCreate) (models.Brand, error)
	getFn    func(ctx context.Context, id int64) (models.Brand, error)
	listFn   func(ctx context.Context) ([]models.Brand, error)
	updateFn func(ctx context.Context, id int64, update models.BrandUpdate) (models.Brand, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (m *mockBrandService) CreateBrand(ctx context.Context, brand models.BrandCreate) (models.Brand, error) {
	if m.createFn != nil {
		return m.createFn(ctx, brand)
	}
	return models.Brand{ID: 1, BrandNameEN: brand.BrandNameEN}, nil
}

func (m *mockBrandService) GetBrand(ctx context.Context, id int64) (models.Brand, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return models.Brand{ID: id}, nil
}

func (m *mockBrandService) ListBrands(ctx context.Context) ([]models.Brand, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return []models.Brand{}, nil
}

func (m *mockBrandService) UpdateBrand(ctx context.Context, id int64, update models.BrandUpdate) (models.Brand, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, update)
	}
	return models.Brand{ID: id}, nil
}

func (m *mockBrandService) DeleteBrand(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

// newTestRouter wires a full chi router around mock services. The auth mock
// accepts "user-token" and "admin-token" bearer tokens and rejects anything
// else.
func newTestRouter() http.Handler {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			switch tokenString {
			case "user-token":
				return models.Token{Username: "alice", Role: models.RoleUser}, nil
			case "admin-token":
				return models.Token{Username: "root", Role: models.RoleAdmin}, nil
			default:
				return models.Token{}, service.ErrTokenIsExpiredOrInvalid
			}
		},
	}

	h := NewHandler(&service.Services{
		AuthService:  auth,
		BrandService: &mockBrandService{},
	}, logger.Nop())

	return h.Init()
}

func TestRoutes_AccessControl(t *testing.T) {
	router := newTestRouter()

	tests := []struct {
		name           string
		method         string
		path           string
		token          string
		expectedStatus int
	}{
		{
			name:           "welcome route is public",
			method:         http.MethodGet,
			path:           "/",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "brand listing is public",
			method:         http.MethodGet,
			path:           "/brands",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "brand details are public",
			method:         http.MethodGet,
			path:           "/brands/1",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "brand creation requires a token",
			method:         http.MethodPost,
			path:           "/brands",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "brand creation rejects plain users",
			method:         http.MethodPost,
			path:           "/brands",
			token:          "user-token",
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "brand deletion rejects plain users",
			method:         http.MethodDelete,
			path:           "/brands/1",
			token:          "user-token",
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "brand deletion allows administrators",
			method:         http.MethodDelete,
			path:           "/brands/1",
			token:          "admin-token",
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "garbage token is rejected",
			method:         http.MethodDelete,
			path:           "/brands/1",
			token:          "garbage",
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}
}
