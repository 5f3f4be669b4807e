package reclamationcontroller

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yosergargouri/boutique-api/models"
)

type ReclamationInput struct {
	Nom         string `json:"nom"`
	ClientEmail string `json:"client_email"`
	Sujet       string `json:"sujet"`
	Message     string `json:"message"`
}

func lengthBetween(field, value string, min, max int) error {
	n := len([]rune(value))
	if n < min || n > max {
		return fmt.Errorf("%s doit contenir entre %d et %d caractères.", field, min, max)
	}
	return nil
}

func (in *ReclamationInput) validate() error {
	in.Nom = strings.TrimSpace(in.Nom)
	in.ClientEmail = strings.TrimSpace(in.ClientEmail)
	in.Sujet = strings.TrimSpace(in.Sujet)
	in.Message = strings.TrimSpace(in.Message)

	if err := lengthBetween("Le nom", in.Nom, 2, 100); err != nil {
		return err
	}
	if in.ClientEmail == "" || len(in.ClientEmail) > 255 || !strings.Contains(in.ClientEmail, "@") {
		return errors.New("Adresse e-mail invalide.")
	}
	if err := lengthBetween("Le sujet", in.Sujet, 2, 200); err != nil {
		return err
	}
	if err := lengthBetween("Le message", in.Message, 5, 5000); err != nil {
		return err
	}
	return nil
}

// CreateReclamation is the public complaint endpoint. Rate limiting is
// applied at the route level.
func CreateReclamation(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ReclamationInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Requête invalide."})
			return
		}
		if err := input.validate(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		reclamation := models.Reclamation{
			Nom:         input.Nom,
			ClientEmail: input.ClientEmail,
			Sujet:       input.Sujet,
			Message:     input.Message,
		}
		if err := db.Create(&reclamation).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Échec de l'enregistrement de la réclamation."})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"success": true, "id": reclamation.ID})
	}
}

func ListReclamations(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var reclamations []models.Reclamation
		if err := db.Order("date_creation DESC").Find(&reclamations).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reclamations"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": reclamations})
	}
}

func MarkReclamationRead(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Model(&models.Reclamation{}).
			Where("id = ?", c.Param("id")).
			Updates(map[string]interface{}{"is_read": true})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update reclamation"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Reclamation not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// CountUnreadReclamations treats NULL is_read as unread; rows created before
// the flag existed still show up in the badge.
func CountUnreadReclamations(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var count int64
		err := db.Model(&models.Reclamation{}).
			Where("is_read IS NULL OR is_read = ?", false).
			Count(&count).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count reclamations"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"count": count})
	}
}

func DeleteReclamation(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Delete(&models.Reclamation{}, "id = ?", c.Param("id"))
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete reclamation"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Reclamation not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
