package service

import (
	"context"
	"fmt"

	"github.com/photogear/camera-catalog/internal/logger"
	"github.com/photogear/camera-catalog/internal/store"
	"github.com/photogear/camera-catalog/models"
)

// brandService implements BrandService on top of a BrandRepository.
// Business rules live here; the repository only speaks SQL.
type brandService struct {
	brandRepository store.BrandRepository
	logger          *logger.Logger
}

func NewBrandService(brandRepository store.BrandRepository, logger *logger.Logger) BrandService {
	return &brandService{
		brandRepository: brandRepository,
		logger:          logger,
	}
}

func (s *brandService) CreateBrand(ctx context.Context, brand models.BrandCreate) (models.Brand, error) {
	log := logger.FromContext(ctx)

	if brand.BrandNameEN == "" {
		log.Error().Msg("brand name is required")
		return models.Brand{}, fmt.Errorf("%w: brand_name_en is required", ErrInvalidDataProvided)
	}

	return s.brandRepository.CreateBrand(ctx, brand)
}

func (s *brandService) GetBrand(ctx context.Context, id int64) (models.Brand, error) {
	return s.brandRepository.FindBrandByID(ctx, id)
}

func (s *brandService) ListBrands(ctx context.Context) ([]models.Brand, error) {
	return s.brandRepository.ListBrands(ctx)
}

func (s *brandService) UpdateBrand(ctx context.Context, id int64, update models.BrandUpdate) (models.Brand, error) {
	log := logger.FromContext(ctx)

	if update.BrandNameEN != nil && *update.BrandNameEN == "" {
		log.Error().Int64("id", id).Msg("brand name cannot be cleared")
		return models.Brand{}, fmt.Errorf("%w: brand_name_en cannot be empty", ErrInvalidDataProvided)
	}

	return s.brandRepository.UpdateBrand(ctx, id, update)
}

func (s *brandService) DeleteBrand(ctx context.Context, id int64) error {
	return s.brandRepository.DeleteBrand(ctx, id)
}
