package service

import (
	"context"
	"fmt"

	"github.com/photogear/camera-catalog/internal/logger"
	"github.com/photogear/camera-catalog/internal/store"
	"github.com/photogear/camera-catalog/models"
)

// lensService implements LensService on top of a LensRepository.
type lensService struct {
	lensRepository store.LensRepository
	logger         *logger.Logger
}

func NewLensService(lensRepository store.LensRepository, logger *logger.Logger) LensService {
	return &lensService{
		lensRepository: lensRepository,
		logger:         logger,
	}
}

func (s *lensService) CreateLens(ctx context.Context, lens models.LensCreate) (models.Lens, error) {
	log := logger.FromContext(ctx)

	if lens.Model == "" || lens.BrandID == 0 {
		log.Error().Msg("lens model and brand are required")
		return models.Lens{}, fmt.Errorf("%w: model and brand_id are required", ErrInvalidDataProvided)
	}

	if err := validateFocalRange(lens.MinFocalLength, lens.MaxFocalLength); err != nil {
		log.Err(err).Str("model", lens.Model).Msg("invalid focal length range")
		return models.Lens{}, err
	}

	return s.lensRepository.CreateLens(ctx, lens)
}

func (s *lensService) GetLens(ctx context.Context, id int64) (models.Lens, error) {
	return s.lensRepository.FindLensByID(ctx, id)
}

func (s *lensService) ListLenses(ctx context.Context) ([]models.Lens, error) {
	return s.lensRepository.ListLenses(ctx)
}

func (s *lensService) UpdateLens(ctx context.Context, id int64, update models.LensUpdate) (models.Lens, error) {
	log := logger.FromContext(ctx)

	if update.Model != nil && *update.Model == "" {
		log.Error().Int64("id", id).Msg("lens model cannot be cleared")
		return models.Lens{}, fmt.Errorf("%w: model cannot be empty", ErrInvalidDataProvided)
	}

	if update.MinFocalLength != nil && update.MaxFocalLength != nil {
		if err := validateFocalRange(update.MinFocalLength, update.MaxFocalLength); err != nil {
			log.Err(err).Int64("id", id).Msg("invalid focal length range")
			return models.Lens{}, err
		}
	}

	return s.lensRepository.UpdateLens(ctx, id, update)
}

func (s *lensService) DeleteLens(ctx context.Context, id int64) error {
	return s.lensRepository.DeleteLens(ctx, id)
}

// validateFocalRange rejects a range whose minimum exceeds its maximum.
// Either bound may be absent; primes carry equal bounds.
func validateFocalRange(minFocal, maxFocal *float64) error {
	if minFocal == nil || maxFocal == nil {
		return nil
	}
	if *minFocal > *maxFocal {
		return fmt.Errorf("%w: min_focal_length exceeds max_focal_length", ErrInvalidDataProvided)
	}

	return nil
}
