package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/photogear/camera-catalog/internal/logger"
	"github.com/photogear/camera-catalog/models"
)

// lensRepository is the PostgreSQL-backed implementation of [LensRepository].
//
// Writes referencing a nonexistent brand surface a foreign_key_violation,
// which is mapped to [ErrBrandNotFound].
type lensRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewLensRepository(db *DB, logger *logger.Logger) LensRepository {
	logger.Debug().Msg("creating lens repository")
	return &lensRepository{
		db:     db,
		logger: logger,
	}
}

func (r *lensRepository) CreateLens(ctx context.Context, lens models.LensCreate) (models.Lens, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createLens,
		lens.BrandID, lens.Model, lens.Mount, lens.MinFocalLength, lens.MaxFocalLength,
		lens.MaxAperture, lens.MinAperture, lens.Price, lens.ReleaseDate, lens.ImageURL)

	var created models.Lens
	if err := scanLens(row, &created); err != nil {
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.Lens{}, ErrBrandNotFound
		}

		log.Err(err).Str("func", "*lensRepository.CreateLens").Msg("error: scanning error")
		return models.Lens{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

func (r *lensRepository) FindLensByID(ctx context.Context, id int64) (models.Lens, error) {
	log := logger.FromContext(ctx)

	var found models.Lens
	row := r.db.QueryRowContext(ctx, findLensByID, id)

	if err := scanLens(row, &found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Lens{}, ErrLensNotFound
		}

		log.Err(err).Str("func", "*lensRepository.FindLensByID").Msg("error: scanning error")
		return models.Lens{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

func (r *lensRepository) ListLenses(ctx context.Context) ([]models.Lens, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listLenses)
	if err != nil {
		log.Err(err).Str("func", "*lensRepository.ListLenses").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	lenses := make([]models.Lens, 0)
	for rows.Next() {
		var lens models.Lens
		if err := scanLens(rows, &lens); err != nil {
			log.Err(err).Str("func", "*lensRepository.ListLenses").Msg("error scanning rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		lenses = append(lenses, lens)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return lenses, nil
}

func (r *lensRepository) UpdateLens(ctx context.Context, id int64, update models.LensUpdate) (models.Lens, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildLensUpdateQuery(id, update)
	if err != nil {
		log.Err(err).Str("func", "*lensRepository.UpdateLens").Msg("error building update query")
		return models.Lens{}, err
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	var updated models.Lens
	if err := scanLens(row, &updated); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return models.Lens{}, ErrLensNotFound
		case postgresError(err) == pgerrcode.ForeignKeyViolation:
			return models.Lens{}, ErrBrandNotFound
		default:
			log.Err(err).Str("func", "*lensRepository.UpdateLens").Msg("error: scanning error")
			return models.Lens{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return updated, nil
}

func (r *lensRepository) DeleteLens(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteLens, id)
	if err != nil {
		log.Err(err).Str("func", "*lensRepository.DeleteLens").Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrLensNotFound
	}

	return nil
}

func scanLens(row rowScanner, lens *models.Lens) error {
	return row.Scan(
		&lens.ID,
		&lens.BrandID,
		&lens.Model,
		&lens.Mount,
		&lens.MinFocalLength,
		&lens.MaxFocalLength,
		&lens.MaxAperture,
		&lens.MinAperture,
		&lens.Price,
		&lens.ReleaseDate,
		&lens.ImageURL,
		&lens.CreatedAt,
		&lens.UpdatedAt,
	)
}
