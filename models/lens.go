package models

import "time"

// Lens represents a lens in the catalog.
// Every lens belongs to exactly one brand via BrandID.
type Lens struct {
	ID      int64  `json:"id"`
	BrandID int64  `json:"brand_id"`
	Model   string `json:"model"`

	Mount          *string    `json:"mount,omitempty"`
	MinFocalLength *float64   `json:"min_focal_length,omitempty"`
	MaxFocalLength *float64   `json:"max_focal_length,omitempty"`
	MaxAperture    *float64   `json:"max_aperture,omitempty"`
	MinAperture    *float64   `json:"min_aperture,omitempty"`
	Price          *float64   `json:"price,omitempty"`
	ReleaseDate    *time.Time `json:"release_date,omitempty"`
	ImageURL       *string    `json:"image_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Lens model.
func (l Lens) TableName() string {
	return "lenses"
}

// LensCreate carries the fields accepted when creating a lens.
type LensCreate struct {
	BrandID        int64      `json:"brand_id"`
	Model          string     `json:"model"`
	Mount          *string    `json:"mount,omitempty"`
	MinFocalLength *float64   `json:"min_focal_length,omitempty"`
	MaxFocalLength *float64   `json:"max_focal_length,omitempty"`
	MaxAperture    *float64   `json:"max_aperture,omitempty"`
	MinAperture    *float64   `json:"min_aperture,omitempty"`
	Price          *float64   `json:"price,omitempty"`
	ReleaseDate    *time.Time `json:"release_date,omitempty"`
	ImageURL       *string    `json:"image_url,omitempty"`
}

// LensUpdate represents a partial update of a lens record.
// Only non-nil fields are applied.
type LensUpdate struct {
	BrandID        *int64     `json:"brand_id,omitempty"`
	Model          *string    `json:"model,omitempty"`
	Mount          *string    `json:"mount,omitempty"`
	MinFocalLength *float64   `json:"min_focal_length,omitempty"`
	MaxFocalLength *float64   `json:"max_focal_length,omitempty"`
	MaxAperture    *float64   `json:"max_aperture,omitempty"`
	MinAperture    *float64   `json:"min_aperture,omitempty"`
	Price          *float64   `json:"price,omitempty"`
	ReleaseDate    *time.Time `json:"release_date,omitempty"`
	ImageURL       *string    `json:"image_url,omitempty"`
}
