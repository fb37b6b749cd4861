package service

import (
	"context"

	"github.com/photogear/camera-catalog/models"
)

// AuthService covers the full credential and token lifecycle: account
// self-registration, password verification and JWT issuance/parsing.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.UserCreate) (models.User, error)
	Login(ctx context.Context, creds models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// UserService exposes administrative account management.
// Unlike AuthService.RegisterUser, CreateUser honours the requested role.
type UserService interface {
	CreateUser(ctx context.Context, user models.UserCreate) (models.User, error)
	GetUser(ctx context.Context, id int64) (models.User, error)
	GetUserByUsername(ctx context.Context, username string) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

type BrandService interface {
	CreateBrand(ctx context.Context, brand models.BrandCreate) (models.Brand, error)
	GetBrand(ctx context.Context, id int64) (models.Brand, error)
	ListBrands(ctx context.Context) ([]models.Brand, error)
	UpdateBrand(ctx context.Context, id int64, update models.BrandUpdate) (models.Brand, error)
	DeleteBrand(ctx context.Context, id int64) error
}

type CameraService interface {
	CreateCamera(ctx context.Context, camera models.CameraCreate) (models.Camera, error)
	GetCamera(ctx context.Context, id int64) (models.Camera, error)
	ListCameras(ctx context.Context) ([]models.Camera, error)
	UpdateCamera(ctx context.Context, id int64, update models.CameraUpdate) (models.Camera, error)
	DeleteCamera(ctx context.Context, id int64) error
}

type LensService interface {
	CreateLens(ctx context.Context, lens models.LensCreate) (models.Lens, error)
	GetLens(ctx context.Context, id int64) (models.Lens, error)
	ListLenses(ctx context.Context) ([]models.Lens, error)
	UpdateLens(ctx context.Context, id int64, update models.LensUpdate) (models.Lens, error)
	DeleteLens(ctx context.Context, id int64) error
}
