package store

import (
	"context"

	"github.com/photogear/camera-catalog/models"
)

// UserRepository is the persistent user directory. It exclusively owns user
// records; services never mutate users except through it. Username uniqueness
// is enforced at the storage layer.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByID(ctx context.Context, id int64) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)

	// UpdateUser applies a partial update. By the time the update reaches
	// the repository, the Password field (if set) carries the bcrypt digest,
	// never the plaintext.
	UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

type BrandRepository interface {
	CreateBrand(ctx context.Context, brand models.BrandCreate) (models.Brand, error)
	FindBrandByID(ctx context.Context, id int64) (models.Brand, error)
	ListBrands(ctx context.Context) ([]models.Brand, error)
	UpdateBrand(ctx context.Context, id int64, update models.BrandUpdate) (models.Brand, error)
	DeleteBrand(ctx context.Context, id int64) error
}

type CameraRepository interface {
	CreateCamera(ctx context.Context, camera models.CameraCreate) (models.Camera, error)
	FindCameraByID(ctx context.Context, id int64) (models.Camera, error)
	ListCameras(ctx context.Context) ([]models.Camera, error)
	UpdateCamera(ctx context.Context, id int64, update models.CameraUpdate) (models.Camera, error)
	DeleteCamera(ctx context.Context, id int64) error
}

type LensRepository interface {
	CreateLens(ctx context.Context, lens models.LensCreate) (models.Lens, error)
	FindLensByID(ctx context.Context, id int64) (models.Lens, error)
	ListLenses(ctx context.Context) ([]models.Lens, error)
	UpdateLens(ctx context.Context, id int64, update models.LensUpdate) (models.Lens, error)
	DeleteLens(ctx context.Context, id int64) error
}
