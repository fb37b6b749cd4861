package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/photogear/camera-catalog/models"
)

const (
	userColumns = `id, username, email, password_hash, role, avatar, created_at, updated_at`

	createUser = `INSERT INTO users (username, email, password_hash, role, avatar)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING ` + userColumns + `;`

	findUserByUsername = `SELECT ` + userColumns + `
    FROM users
    WHERE username = $1;`

	findUserByID = `SELECT ` + userColumns + `
    FROM users
    WHERE id = $1;`

	listUsers = `SELECT ` + userColumns + `
    FROM users
    ORDER BY id;`

	deleteUser = `DELETE FROM users WHERE id = $1;`

	brandColumns = `id, brand_name_en, brand_name_zh, logo_url, official_website, created_at, updated_at`

	createBrand = `INSERT INTO brands (brand_name_en, brand_name_zh, logo_url, official_website)
    VALUES ($1, $2, $3, $4)
    RETURNING ` + brandColumns + `;`

	findBrandByID = `SELECT ` + brandColumns + `
    FROM brands
    WHERE id = $1;`

	listBrands = `SELECT ` + brandColumns + `
    FROM brands
    ORDER BY id;`

	deleteBrand = `DELETE FROM brands WHERE id = $1;`

	cameraColumns = `id, brand_id, model, format, weight, mount, price, pixel_resolution, release_date, image_url, created_at, updated_at`

	createCamera = `INSERT INTO cameras (brand_id, model, format, weight, mount, price, pixel_resolution, release_date, image_url)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    RETURNING ` + cameraColumns + `;`

	findCameraByID = `SELECT ` + cameraColumns + `
    FROM cameras
    WHERE id = $1;`

	listCameras = `SELECT ` + cameraColumns + `
    FROM cameras
    ORDER BY id;`

	deleteCamera = `DELETE FROM cameras WHERE id = $1;`

	lensColumns = `id, brand_id, model, mount, min_focal_length, max_focal_length, max_aperture, min_aperture, price, release_date, image_url, created_at, updated_at`

	createLens = `INSERT INTO lenses (brand_id, model, mount, min_focal_length, max_focal_length, max_aperture, min_aperture, price, release_date, image_url)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    RETURNING ` + lensColumns + `;`

	findLensByID = `SELECT ` + lensColumns + `
    FROM lenses
    WHERE id = $1;`

	listLenses = `SELECT ` + lensColumns + `
    FROM lenses
    ORDER BY id;`

	deleteLens = `DELETE FROM lenses WHERE id = $1;`
)

// psql is the squirrel statement builder configured for PostgreSQL
// positional placeholders ($1, $2, ...).
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildUserUpdateQuery dynamically builds an UPDATE statement touching only
// the fields present in update. The Password field holds the bcrypt digest
// at this point and maps to the password_hash column.
func buildUserUpdateQuery(id int64, update models.UserUpdate) (string, []any, error) {
	builder := psql.Update("users").Set("updated_at", sq.Expr("NOW()"))

	changed := false
	if update.Username != nil {
		builder = builder.Set("username", *update.Username)
		changed = true
	}
	if update.Email != nil {
		builder = builder.Set("email", *update.Email)
		changed = true
	}
	if update.Password != nil {
		builder = builder.Set("password_hash", *update.Password)
		changed = true
	}
	if update.Role != nil {
		builder = builder.Set("role", *update.Role)
		changed = true
	}
	if update.Avatar != nil {
		builder = builder.Set("avatar", *update.Avatar)
		changed = true
	}

	if !changed {
		return "", nil, ErrBuildingSQLQuery
	}

	return builder.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + userColumns).
		ToSql()
}

// buildBrandUpdateQuery dynamically builds a partial UPDATE for a brand.
func buildBrandUpdateQuery(id int64, update models.BrandUpdate) (string, []any, error) {
	builder := psql.Update("brands").Set("updated_at", sq.Expr("NOW()"))

	changed := false
	if update.BrandNameEN != nil {
		builder = builder.Set("brand_name_en", *update.BrandNameEN)
		changed = true
	}
	if update.BrandNameZH != nil {
		builder = builder.Set("brand_name_zh", *update.BrandNameZH)
		changed = true
	}
	if update.LogoURL != nil {
		builder = builder.Set("logo_url", *update.LogoURL)
		changed = true
	}
	if update.OfficialWebsite != nil {
		builder = builder.Set("official_website", *update.OfficialWebsite)
		changed = true
	}

	if !changed {
		return "", nil, ErrBuildingSQLQuery
	}

	return builder.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + brandColumns).
		ToSql()
}

// buildCameraUpdateQuery dynamically builds a partial UPDATE for a camera.
func buildCameraUpdateQuery(id int64, update models.CameraUpdate) (string, []any, error) {
	builder := psql.Update("cameras").Set("updated_at", sq.Expr("NOW()"))

	changed := false
	if update.BrandID != nil {
		builder = builder.Set("brand_id", *update.BrandID)
		changed = true
	}
	if update.Model != nil {
		builder = builder.Set("model", *update.Model)
		changed = true
	}
	if update.Format != nil {
		builder = builder.Set("format", *update.Format)
		changed = true
	}
	if update.Weight != nil {
		builder = builder.Set("weight", *update.Weight)
		changed = true
	}
	if update.Mount != nil {
		builder = builder.Set("mount", *update.Mount)
		changed = true
	}
	if update.Price != nil {
		builder = builder.Set("price", *update.Price)
		changed = true
	}
	if update.PixelResolution != nil {
		builder = builder.Set("pixel_resolution", *update.PixelResolution)
		changed = true
	}
	if update.ReleaseDate != nil {
		builder = builder.Set("release_date", *update.ReleaseDate)
		changed = true
	}
	if update.ImageURL != nil {
		builder = builder.Set("image_url", *update.ImageURL)
		changed = true
	}

	if !changed {
		return "", nil, ErrBuildingSQLQuery
	}

	return builder.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + cameraColumns).
		ToSql()
}

// buildLensUpdateQuery dynamically builds a partial UPDATE for a lens.
func buildLensUpdateQuery(id int64, update models.LensUpdate) (string, []any, error) {
	builder := psql.Update("lenses").Set("updated_at", sq.Expr("NOW()"))

	changed := false
	if update.BrandID != nil {
		builder = builder.Set("brand_id", *update.BrandID)
		changed = true
	}
	if update.Model != nil {
		builder = builder.Set("model", *update.Model)
		changed = true
	}
	if update.Mount != nil {
		builder = builder.Set("mount", *update.Mount)
		changed = true
	}
	if update.MinFocalLength != nil {
		builder = builder.Set("min_focal_length", *update.MinFocalLength)
		changed = true
	}
	if update.MaxFocalLength != nil {
		builder = builder.Set("max_focal_length", *update.MaxFocalLength)
		changed = true
	}
	if update.MaxAperture != nil {
		builder = builder.Set("max_aperture", *update.MaxAperture)
		changed = true
	}
	if update.MinAperture != nil {
		builder = builder.Set("min_aperture", *update.MinAperture)
		changed = true
	}
	if update.Price != nil {
		builder = builder.Set("price", *update.Price)
		changed = true
	}
	if update.ReleaseDate != nil {
		builder = builder.Set("release_date", *update.ReleaseDate)
		changed = true
	}
	if update.ImageURL != nil {
		builder = builder.Set("image_url", *update.ImageURL)
		changed = true
	}

	if !changed {
		return "", nil, ErrBuildingSQLQuery
	}

	return builder.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + lensColumns).
		ToSql()
}
