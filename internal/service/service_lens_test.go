package service

import (
	"context"
	"testing"

	"github.com/photogear/camera-catalog/internal/logger"
	"github.com/photogear/camera-catalog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockLensRepository struct {
	createFn   func(ctx context.Context, lens models.LensCreate) (models.Lens, error)
	findByIDFn func(ctx context.Context, id int64) (models.Lens, error)
	listFn     func(ctx context.Context) ([]models.Lens, error)
	updateFn   func(ctx context.Context, id int64, update models.LensUpdate) (models.Lens, error)
	deleteFn   func(ctx context.Context, id int64) error
}

func (m *mockLensRepository) CreateLens(ctx context.Context, lens models.LensCreate) (models.Lens, error) {
	if m.createFn != nil {
		return m.createFn(ctx, lens)
	}
	return models.Lens{}, nil
}

func (m *mockLensRepository) FindLensByID(ctx context.Context, id int64) (models.Lens, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return models.Lens{}, nil
}

func (m *mockLensRepository) ListLenses(ctx context.Context) ([]models.Lens, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockLensRepository) UpdateLens(ctx context.Context, id int64, update models.LensUpdate) (models.Lens, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, update)
	}
	return models.Lens{}, nil
}

func (m *mockLensRepository) DeleteLens(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func TestLensService_CreateLens_Success(t *testing.T) {
	repo := &mockLensRepository{
		createFn: func(_ context.Context, lens models.LensCreate) (models.Lens, error) {
			return models.Lens{ID: 1, BrandID: lens.BrandID, Model: lens.Model}, nil
		},
	}
	svc := NewLensService(repo, logger.Nop())

	minFL, maxFL := 24.0, 70.0
	lens, err := svc.CreateLens(context.Background(), models.LensCreate{
		BrandID:        2,
		Model:          "RF 24-70mm F2.8",
		MinFocalLength: &minFL,
		MaxFocalLength: &maxFL,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), lens.ID)
}

func TestLensService_CreateLens_MissingRequiredFields(t *testing.T) {
	svc := NewLensService(&mockLensRepository{}, logger.Nop())

	_, err := svc.CreateLens(context.Background(), models.LensCreate{Model: "orphan lens"})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestLensService_CreateLens_InvertedFocalRange(t *testing.T) {
	svc := NewLensService(&mockLensRepository{}, logger.Nop())

	minFL, maxFL := 200.0, 70.0
	_, err := svc.CreateLens(context.Background(), models.LensCreate{
		BrandID:        2,
		Model:          "impossible zoom",
		MinFocalLength: &minFL,
		MaxFocalLength: &maxFL,
	})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestLensService_UpdateLens_CannotClearModel(t *testing.T) {
	svc := NewLensService(&mockLensRepository{}, logger.Nop())

	empty := ""
	_, err := svc.UpdateLens(context.Background(), 1, models.LensUpdate{Model: &empty})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}
