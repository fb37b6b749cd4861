package models

import "time"

// Camera represents a camera body in the catalog.
// Every camera belongs to exactly one brand via BrandID.
type Camera struct {
	ID      int64  `json:"id"`
	BrandID int64  `json:"brand_id"`
	Model   string `json:"model"`

	Format          *string    `json:"format,omitempty"`
	Weight          *float64   `json:"weight,omitempty"`
	Mount           *string    `json:"mount,omitempty"`
	Price           *float64   `json:"price,omitempty"`
	PixelResolution *string    `json:"pixel_resolution,omitempty"`
	ReleaseDate     *time.Time `json:"release_date,omitempty"`
	ImageURL        *string    `json:"image_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Camera model.
func (c Camera) TableName() string {
	return "cameras"
}

// CameraCreate carries the fields accepted when creating a camera.
type CameraCreate struct {
	BrandID         int64      `json:"brand_id"`
	Model           string     `json:"model"`
	Format          *string    `json:"format,omitempty"`
	Weight          *float64   `json:"weight,omitempty"`
	Mount           *string    `json:"mount,omitempty"`
	Price           *float64   `json:"price,omitempty"`
	PixelResolution *string    `json:"pixel_resolution,omitempty"`
	ReleaseDate     *time.Time `json:"release_date,omitempty"`
	ImageURL        *string    `json:"image_url,omitempty"`
}

// CameraUpdate represents a partial update of a camera record.
// Only non-nil fields are applied.
type CameraUpdate struct {
	BrandID         *int64     `json:"brand_id,omitempty"`
	Model           *string    `json:"model,omitempty"`
	Format          *string    `json:"format,omitempty"`
	Weight          *float64   `json:"weight,omitempty"`
	Mount           *string    `json:"mount,omitempty"`
	Price           *float64   `json:"price,omitempty"`
	PixelResolution *string    `json:"pixel_resolution,omitempty"`
	ReleaseDate     *time.Time `json:"release_date,omitempty"`
	ImageURL        *string    `json:"image_url,omitempty"`
}
