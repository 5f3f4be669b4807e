package models

import "time"

// SiteSettings is a singleton-per-deployment record; readers take the most
// recent row.
type SiteSettings struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	SiteName        string    `gorm:"not null" json:"site_name"`
	SiteTitle       *string   `json:"site_title"`
	SiteDescription *string   `json:"site_description"`
	LogoURL         *string   `json:"logo_url"`
	CompanyName     *string   `json:"company_name"`
	Address         *string   `json:"address"`
	City            *string   `json:"city"`
	PostalCode      *string   `json:"postal_code"`
	Country         *string   `json:"country"`
	Phone           *string   `json:"phone"`
	Email           *string   `json:"email"`
	FraisLivraison  *float64  `json:"frais_livraison"`
	FacebookURL     *string   `json:"facebook_url"`
	InstagramURL    *string   `json:"instagram_url"`
	TiktokURL       *string   `json:"tiktok_url"`
	GoogleMapsEmbed *string   `json:"google_maps_embed"`
	Latitude        *float64  `json:"latitude"`
	Longitude       *float64  `json:"longitude"`
	Historique      *string   `gorm:"type:text" json:"historique"`
	OpeningHours    *string   `json:"opening_hours"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (SiteSettings) TableName() string {
	return "site_settings"
}
