package service

import (
	"context"
	"fmt"

	"github.com/photogear/camera-catalog/internal/logger"
	"github.com/photogear/camera-catalog/internal/store"
	"github.com/photogear/camera-catalog/models"
)

// cameraService implements CameraService on top of a CameraRepository.
type cameraService struct {
	cameraRepository store.CameraRepository
	logger           *logger.Logger
}

func NewCameraService(cameraRepository store.CameraRepository, logger *logger.Logger) CameraService {
	return &cameraService{
		cameraRepository: cameraRepository,
		logger:           logger,
	}
}

func (s *cameraService) CreateCamera(ctx context.Context, camera models.CameraCreate) (models.Camera, error) {
	log := logger.FromContext(ctx)

	if camera.Model == "" || camera.BrandID == 0 {
		log.Error().Msg("camera model and brand are required")
		return models.Camera{}, fmt.Errorf("%w: model and brand_id are required", ErrInvalidDataProvided)
	}

	return s.cameraRepository.CreateCamera(ctx, camera)
}

func (s *cameraService) GetCamera(ctx context.Context, id int64) (models.Camera, error) {
	return s.cameraRepository.FindCameraByID(ctx, id)
}

func (s *cameraService) ListCameras(ctx context.Context) ([]models.Camera, error) {
	return s.cameraRepository.ListCameras(ctx)
}

func (s *cameraService) UpdateCamera(ctx context.Context, id int64, update models.CameraUpdate) (models.Camera, error) {
	log := logger.FromContext(ctx)

	if update.Model != nil && *update.Model == "" {
		log.Error().Int64("id", id).Msg("camera model cannot be cleared")
		return models.Camera{}, fmt.Errorf("%w: model cannot be empty", ErrInvalidDataProvided)
	}

	return s.cameraRepository.UpdateCamera(ctx, id, update)
}

func (s *cameraService) DeleteCamera(ctx context.Context, id int64) error {
	return s.cameraRepository.DeleteCamera(ctx, id)
}
