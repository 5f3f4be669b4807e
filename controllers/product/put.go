package productcontroller

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yosergargouri/boutique-api/models"
)

// UpdateProduct updates an existing product by ID. Accepts the same body as
// CreateProduct.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var produit models.Produit
		if err := db.First(&produit, uint(id)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}

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

		if input.CategoryID != produit.CategoryID {
			var category models.Category
			if err := db.First(&category, input.CategoryID).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not exist"})
				return
			}
		}

		produit.Nom = strings.TrimSpace(input.Nom)
		produit.Description = input.Description
		produit.CategoryID = input.CategoryID
		produit.Prix = *input.Prix
		produit.Stock = input.Stock
		produit.ImagePrincipale = input.ImagePrincipale
		produit.ImageSecondaire = input.ImageSecondaire
		produit.EstNouveau = input.EstNouveau
		produit.Dimensions = input.Dimensions
		produit.Matiere = input.Matiere
		produit.Couleur = input.Couleur
		produit.Poids = input.Poids
		produit.Origine = input.Origine

		if err := db.Save(&produit).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product: " + err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": produit})
	}
}
