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

// cameraRepository is the PostgreSQL-backed implementation of [CameraRepository].
//
// Writes referencing a nonexistent brand surface a foreign_key_violation,
// which is mapped to [ErrBrandNotFound] so callers can report the broken
// reference instead of a generic database failure.
type cameraRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewCameraRepository(db *DB, logger *logger.Logger) CameraRepository {
	logger.Debug().Msg("creating camera repository")
	return &cameraRepository{
		db:     db,
		logger: logger,
	}
}

func (r *cameraRepository) CreateCamera(ctx context.Context, camera models.CameraCreate) (models.Camera, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createCamera,
		camera.BrandID, camera.Model, camera.Format, camera.Weight, camera.Mount,
		camera.Price, camera.PixelResolution, camera.ReleaseDate, camera.ImageURL)

	var created models.Camera
	if err := scanCamera(row, &created); err != nil {
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.Camera{}, ErrBrandNotFound
		}

		log.Err(err).Str("func", "*cameraRepository.CreateCamera").Msg("error: scanning error")
		return models.Camera{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

func (r *cameraRepository) FindCameraByID(ctx context.Context, id int64) (models.Camera, error) {
	log := logger.FromContext(ctx)

	var found models.Camera
	row := r.db.QueryRowContext(ctx, findCameraByID, id)

	if err := scanCamera(row, &found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Camera{}, ErrCameraNotFound
		}

		log.Err(err).Str("func", "*cameraRepository.FindCameraByID").Msg("error: scanning error")
		return models.Camera{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

func (r *cameraRepository) ListCameras(ctx context.Context) ([]models.Camera, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listCameras)
	if err != nil {
		log.Err(err).Str("func", "*cameraRepository.ListCameras").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	cameras := make([]models.Camera, 0)
	for rows.Next() {
		var camera models.Camera
		if err := scanCamera(rows, &camera); err != nil {
			log.Err(err).Str("func", "*cameraRepository.ListCameras").Msg("error scanning rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		cameras = append(cameras, camera)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return cameras, nil
}

func (r *cameraRepository) UpdateCamera(ctx context.Context, id int64, update models.CameraUpdate) (models.Camera, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCameraUpdateQuery(id, update)
	if err != nil {
		log.Err(err).Str("func", "*cameraRepository.UpdateCamera").Msg("error building update query")
		return models.Camera{}, err
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	var updated models.Camera
	if err := scanCamera(row, &updated); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return models.Camera{}, ErrCameraNotFound
		case postgresError(err) == pgerrcode.ForeignKeyViolation:
			return models.Camera{}, ErrBrandNotFound
		default:
			log.Err(err).Str("func", "*cameraRepository.UpdateCamera").Msg("error: scanning error")
			return models.Camera{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return updated, nil
}

func (r *cameraRepository) DeleteCamera(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteCamera, id)
	if err != nil {
		log.Err(err).Str("func", "*cameraRepository.DeleteCamera").Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrCameraNotFound
	}

	return nil
}

func scanCamera(row rowScanner, camera *models.Camera) error {
	return row.Scan(
		&camera.ID,
		&camera.BrandID,
		&camera.Model,
		&camera.Format,
		&camera.Weight,
		&camera.Mount,
		&camera.Price,
		&camera.PixelResolution,
		&camera.ReleaseDate,
		&camera.ImageURL,
		&camera.CreatedAt,
		&camera.UpdatedAt,
	)
}
