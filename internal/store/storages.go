package store

import (
	"context"
	"fmt"

	"github.com/photogear/camera-catalog/internal/config"
	"github.com/photogear/camera-catalog/internal/logger"
)

// Storages bundles every repository backed by the shared database
// connection. It is constructed once at startup and injected into the
// service layer.
type Storages struct {
	UserRepository   UserRepository
	BrandRepository  BrandRepository
	CameraRepository CameraRepository
	LensRepository   LensRepository
}

// NewStorages connects to PostgreSQL, applies pending schema migrations, and
// wires all repositories onto the shared connection.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	return &Storages{
		UserRepository:   NewUserRepository(db, log),
		BrandRepository:  NewBrandRepository(db, log),
		CameraRepository: NewCameraRepository(db, log),
		LensRepository:   NewLensRepository(db, log),
	}, nil
}
