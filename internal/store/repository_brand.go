package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/photogear/camera-catalog/internal/logger"
	"github.com/photogear/camera-catalog/models"
)

// brandRepository is the PostgreSQL-backed implementation of [BrandRepository].
type brandRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewBrandRepository(db *DB, logger *logger.Logger) BrandRepository {
	logger.Debug().Msg("creating brand repository")
	return &brandRepository{
		db:     db,
		logger: logger,
	}
}

func (r *brandRepository) CreateBrand(ctx context.Context, brand models.BrandCreate) (models.Brand, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createBrand, brand.BrandNameEN, brand.BrandNameZH, brand.LogoURL, brand.OfficialWebsite)

	var created models.Brand
	if err := scanBrand(row, &created); err != nil {
		log.Err(err).Str("func", "*brandRepository.CreateBrand").Msg("error: scanning error")
		return models.Brand{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

func (r *brandRepository) FindBrandByID(ctx context.Context, id int64) (models.Brand, error) {
	log := logger.FromContext(ctx)

	var found models.Brand
	row := r.db.QueryRowContext(ctx, findBrandByID, id)

	if err := scanBrand(row, &found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Brand{}, ErrBrandNotFound
		}

		log.Err(err).Str("func", "*brandRepository.FindBrandByID").Msg("error: scanning error")
		return models.Brand{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

func (r *brandRepository) ListBrands(ctx context.Context) ([]models.Brand, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listBrands)
	if err != nil {
		log.Err(err).Str("func", "*brandRepository.ListBrands").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	brands := make([]models.Brand, 0)
	for rows.Next() {
		var brand models.Brand
		if err := scanBrand(rows, &brand); err != nil {
			log.Err(err).Str("func", "*brandRepository.ListBrands").Msg("error scanning rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		brands = append(brands, brand)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return brands, nil
}

func (r *brandRepository) UpdateBrand(ctx context.Context, id int64, update models.BrandUpdate) (models.Brand, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildBrandUpdateQuery(id, update)
	if err != nil {
		log.Err(err).Str("func", "*brandRepository.UpdateBrand").Msg("error building update query")
		return models.Brand{}, err
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	var updated models.Brand
	if err := scanBrand(row, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Brand{}, ErrBrandNotFound
		}

		log.Err(err).Str("func", "*brandRepository.UpdateBrand").Msg("error: scanning error")
		return models.Brand{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

func (r *brandRepository) DeleteBrand(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteBrand, id)
	if err != nil {
		log.Err(err).Str("func", "*brandRepository.DeleteBrand").Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrBrandNotFound
	}

	return nil
}

func scanBrand(row rowScanner, brand *models.Brand) error {
	return row.Scan(
		&brand.ID,
		&brand.BrandNameEN,
		&brand.BrandNameZH,
		&brand.LogoURL,
		&brand.OfficialWebsite,
		&brand.CreatedAt,
		&brand.UpdatedAt,
	)
}
