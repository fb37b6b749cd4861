package service

import (
	"github.com/photogear/camera-catalog/internal/config"
	"github.com/photogear/camera-catalog/internal/logger"
	"github.com/photogear/camera-catalog/internal/store"
)

type Services struct {
	AuthService   AuthService
	UserService   UserService
	BrandService  BrandService
	CameraService CameraService
	LensService   LensService
}

func NewServices(storages store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:   NewAuthService(storages.UserRepository, cfg.App, logger),
		UserService:   NewUserService(storages.UserRepository, logger),
		BrandService:  NewBrandService(storages.BrandRepository, logger),
		CameraService: NewCameraService(storages.CameraRepository, logger),
		LensService:   NewLensService(storages.LensRepository, logger),
	}
}
