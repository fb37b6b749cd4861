package models

import "time"

// Brand represents a camera or lens manufacturer in the catalog.
type Brand struct {
	ID int64 `json:"id"`

	// BrandNameEN is the manufacturer's English name.
	BrandNameEN string `json:"brand_name_en"`

	// BrandNameZH is the manufacturer's Chinese name.
	BrandNameZH string `json:"brand_name_zh"`

	LogoURL         *string `json:"logo_url,omitempty"`
	OfficialWebsite *string `json:"official_website,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Brand model.
func (b Brand) TableName() string {
	return "brands"
}

// BrandCreate carries the fields accepted when creating a brand.
type BrandCreate struct {
	BrandNameEN     string  `json:"brand_name_en"`
	BrandNameZH     string  `json:"brand_name_zh"`
	LogoURL         *string `json:"logo_url,omitempty"`
	OfficialWebsite *string `json:"official_website,omitempty"`
}

// BrandUpdate represents a partial update of a brand record.
// Only non-nil fields are applied.
type BrandUpdate struct {
	BrandNameEN     *string `json:"brand_name_en,omitempty"`
	BrandNameZH     *string `json:"brand_name_zh,omitempty"`
	LogoURL         *string `json:"logo_url,omitempty"`
	OfficialWebsite *string `json:"official_website,omitempty"`
}
