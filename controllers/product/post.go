package productcontroller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yosergargouri/boutique-api/models"
)

type ProduitInput struct {
	Nom             string   `json:"nom" binding:"required"`
	Description     *string  `json:"description"`
	CategoryID      uint     `json:"category_id" binding:"required"`
	Prix            *float64 `json:"prix" binding:"required"`
	Stock           *int     `json:"stock"`
	ImagePrincipale *string  `json:"image_principale"`
	ImageSecondaire *string  `json:"image_secondaire"`
	EstNouveau      bool     `json:"est_nouveau"`
	Dimensions      *string  `json:"dimensions"`
	Matiere         *string  `json:"matiere"`
	Couleur         *string  `json:"couleur"`
	Poids           *float64 `json:"poids"`
	Origine         *string  `json:"origine"`
}

// CreateProduct inserts a new catalog product. Images are URLs returned by
// the upload endpoint, not inline files.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProduitInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if strings.TrimSpace(input.Nom) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "nom is required"})
			return
		}
		if *input.Prix < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "prix must be non-negative"})
			return
		}

		var category models.Category
		if err := db.First(&category, input.CategoryID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not exist"})
			return
		}

		produit := models.Produit{
			Nom:             strings.TrimSpace(input.Nom),
			Description:     input.Description,
			CategoryID:      input.CategoryID,
			Prix:            *input.Prix,
			Stock:           input.Stock,
			ImagePrincipale: input.ImagePrincipale,
			ImageSecondaire: input.ImageSecondaire,
			EstNouveau:      input.EstNouveau,
			Dimensions:      input.Dimensions,
			Matiere:         input.Matiere,
			Couleur:         input.Couleur,
			Poids:           input.Poids,
			Origine:         input.Origine,
		}

		if err := db.Create(&produit).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product: " + err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"data": produit})
	}
}
