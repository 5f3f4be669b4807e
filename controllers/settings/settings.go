package settingscontroller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yosergargouri/boutique-api/models"
)

// GetSiteSettings returns the most recent settings row, or data:null when the
// table is empty.
func GetSiteSettings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var settings models.SiteSettings
		err := db.Order("created_at DESC").First(&settings).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusOK, gin.H{"data": nil})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch site settings"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": settings})
	}
}

type SiteSettingsInput struct {
	ID              *uint    `json:"id"`
	SiteName        string   `json:"site_name" binding:"required"`
	SiteTitle       *string  `json:"site_title"`
	SiteDescription *string  `json:"site_description"`
	LogoURL         *string  `json:"logo_url"`
	CompanyName     *string  `json:"company_name"`
	Address         *string  `json:"address"`
	City            *string  `json:"city"`
	PostalCode      *string  `json:"postal_code"`
	Country         *string  `json:"country"`
	Phone           *string  `json:"phone"`
	Email           *string  `json:"email"`
	FraisLivraison  *float64 `json:"frais_livraison"`
	FacebookURL     *string  `json:"facebook_url"`
	InstagramURL    *string  `json:"instagram_url"`
	TiktokURL       *string  `json:"tiktok_url"`
	GoogleMapsEmbed *string  `json:"google_maps_embed"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
	Historique      *string  `json:"historique"`
	OpeningHours    *string  `json:"opening_hours"`
}

func (in *SiteSettingsInput) apply(settings *models.SiteSettings) {
	settings.SiteName = strings.TrimSpace(in.SiteName)
	settings.SiteTitle = in.SiteTitle
	settings.SiteDescription = in.SiteDescription
	settings.LogoURL = in.LogoURL
	settings.CompanyName = in.CompanyName
	settings.Address = in.Address
	settings.City = in.City
	settings.PostalCode = in.PostalCode
	settings.Country = in.Country
	settings.Phone = in.Phone
	settings.Email = in.Email
	settings.FraisLivraison = in.FraisLivraison
	settings.FacebookURL = in.FacebookURL
	settings.InstagramURL = in.InstagramURL
	settings.TiktokURL = in.TiktokURL
	settings.GoogleMapsEmbed = in.GoogleMapsEmbed
	settings.Latitude = in.Latitude
	settings.Longitude = in.Longitude
	settings.Historique = in.Historique
	settings.OpeningHours = in.OpeningHours
}

// UpsertSiteSettings updates the row named by id when present, otherwise
// inserts a new row. The storefront always reads the latest row, so an insert
// effectively replaces the previous configuration.
func UpsertSiteSettings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SiteSettingsInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if strings.TrimSpace(input.SiteName) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "site_name is required"})
			return
		}

		if input.ID != nil {
			var settings models.SiteSettings
			if err := db.First(&settings, *input.ID).Error; err == nil {
				input.apply(&settings)
				if err := db.Save(&settings).Error; err != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update site settings"})
					return
				}
				c.JSON(http.StatusOK, gin.H{"data": settings})
				return
			}
		}

		var settings models.SiteSettings
		input.apply(&settings)
		if err := db.Create(&settings).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save site settings"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"data": settings})
	}
}
