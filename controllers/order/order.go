package orderControllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/yosergargouri/boutique-api/kv"
	"github.com/yosergargouri/boutique-api/models"
)

// -------- Request Structs --------

type CheckoutRequest struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	StreetAddress string `json:"streetAddress"`
	City          string `json:"city"`
	ZipCode       string `json:"zipCode"`
	Country       string `json:"country"`
	CartToken     string `json:"cart_token"`
}

type UpdateStatutRequest struct {
	Statut string `json:"statut" binding:"required"`
}

type UpdateStatutPaiementRequest struct {
	StatutPaiement string `json:"statut_paiement" binding:"required"`
}

// -------- Helpers --------

func mapStatutCommande(statut string) (models.StatutCommande, error) {
	switch models.StatutCommande(strings.ToLower(statut)) {
	case models.StatutCommandeEnAttente,
		models.StatutCommandePayee,
		models.StatutCommandeEnPreparation,
		models.StatutCommandeExpediee,
		models.StatutCommandeLivree,
		models.StatutCommandeAnnulee,
		models.StatutCommandeRemboursee:
		return models.StatutCommande(strings.ToLower(statut)), nil
	default:
		return "", errors.New("statut de commande invalide")
	}
}

func mapStatutPaiement(statut string) (models.StatutPaiement, error) {
	switch models.StatutPaiement(strings.ToLower(statut)) {
	case models.StatutPaiementEnAttente,
		models.StatutPaiementPaye,
		models.StatutPaiementEchoue,
		models.StatutPaiementRembourse,
		models.StatutPaiementPartiel:
		return models.StatutPaiement(strings.ToLower(statut)), nil
	default:
		return "", errors.New("statut de paiement invalide")
	}
}

// shippingFee reads frais_livraison from the latest site settings row at
// submission time. Missing settings mean free shipping, not an error.
func shippingFee(db *gorm.DB) decimal.Decimal {
	var settings models.SiteSettings
	err := db.Order("created_at DESC").First(&settings).Error
	if err != nil {
		return decimal.Zero
	}
	return NormalizeFee(settings.FraisLivraison)
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// BuildSnapshot freezes the cart into the persisted item shape, carrying both
// the original price string and its parsed value.
func BuildSnapshot(cart models.Cart) []models.SnapshotItem {
	snapshot := make([]models.SnapshotItem, 0, len(cart))
	for _, item := range cart {
		quantity := item.Quantity
		if quantity < 1 {
			quantity = 1
		}
		snapshot = append(snapshot, models.SnapshotItem{
			ID:          item.ID.String(),
			Name:        item.Name,
			Category:    item.Category,
			Price:       item.Price,
			PriceNumber: ParsePrice(item.Price),
			Quantity:    quantity,
			Image:       item.Image,
		})
	}
	return snapshot
}

// -------- Handlers --------

// POST /commandes
// Validates shopper input, loads the cart, computes totals and performs a
// single atomic insert. The cart is only cleared once the insert succeeded.
func PlaceCommande(db *gorm.DB, store kv.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		firstName := strings.TrimSpace(req.FirstName)
		lastName := strings.TrimSpace(req.LastName)
		email := strings.TrimSpace(req.Email)
		phone := strings.TrimSpace(req.Phone)
		address := strings.TrimSpace(req.StreetAddress)

		if firstName == "" || lastName == "" || email == "" || phone == "" || address == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Veuillez remplir tous les champs obligatoires."})
			return
		}

		if req.CartToken == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Votre panier est vide."})
			return
		}
		raw, err := store.Get(c.Request.Context(), "cart:"+req.CartToken)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Échec du chargement du panier."})
			return
		}
		cart, err := models.DecodeCart(raw)
		if err != nil || len(cart) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Votre panier est vide."})
			return
		}

		snapshot := BuildSnapshot(cart)
		frais := shippingFee(db)
		sousTotal, total := ComputeTotals(snapshot, frais)

		itemsJSON, err := json.Marshal(snapshot)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Échec de la préparation de la commande."})
			return
		}

		commande := models.Commande{
			NumeroCommande: BuildNumeroCommande(),
			ClientName:     strings.TrimSpace(firstName + " " + lastName),
			ClientEmail:    email,
			ClientPhone:    phone,
			ClientAddress:  address,
			ClientCity:     optional(req.City),
			ClientZipcode:  optional(req.ZipCode),
			ClientCountry:  optional(req.Country),
			SousTotal:      sousTotal,
			FraisLivraison: frais,
			TotalCommande:  total,
			Items:          models.JSONB(itemsJSON),
			// statut_commande / statut_paiement: database defaults
		}

		if err := db.Create(&commande).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Échec de l'enregistrement de la commande : " + err.Error()})
			return
		}

		// The order is in; a failed cart erase only means a stale key.
		_ = store.Remove(c.Request.Context(), "cart:"+req.CartToken)

		BroadcastCommande(commande)

		c.JSON(http.StatusOK, gin.H{
			"success":         true,
			"id":              commande.ID,
			"numero_commande": commande.NumeroCommande,
		})
	}
}

// GET /admin/commandes
func ListCommandes(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Commande{}).Order("created_at DESC")

		if statut := c.Query("statut"); statut != "" {
			mapped, err := mapStatutCommande(statut)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			query = query.Where("statut_commande = ?", mapped)
		}
		if limitStr := c.Query("limit"); limitStr != "" {
			limit, err := strconv.Atoi(limitStr)
			if err != nil || limit < 1 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "limit invalide"})
				return
			}
			query = query.Limit(limit)
		}

		var commandes []models.Commande
		if err := query.Find(&commandes).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": commandes})
	}
}

// GET /admin/commandes/:id
func GetCommande(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var commande models.Commande
		if err := db.First(&commande, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Commande non trouvée."})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": commande})
	}
}

// PUT /admin/commandes/:id/statut
func UpdateStatutCommande(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateStatutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		statut, err := mapStatutCommande(req.Statut)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		result := db.Model(&models.Commande{}).Where("id = ?", c.Param("id")).
			Updates(map[string]interface{}{"statut_commande": statut, "updated_at": time.Now()})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Échec de la mise à jour du statut : " + result.Error.Error()})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Commande non trouvée."})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// PUT /admin/commandes/:id/statut-paiement
func UpdateStatutPaiement(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateStatutPaiementRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		statut, err := mapStatutPaiement(req.StatutPaiement)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		result := db.Model(&models.Commande{}).Where("id = ?", c.Param("id")).
			Updates(map[string]interface{}{"statut_paiement": statut, "updated_at": time.Now()})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Échec de la mise à jour du paiement : " + result.Error.Error()})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Commande non trouvée."})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// DELETE /admin/commandes/:id
func DeleteCommande(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Delete(&models.Commande{}, "id = ?", c.Param("id"))
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Échec de la suppression de la commande : " + result.Error.Error()})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Commande non trouvée."})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// GET /admin/stats
func GetStats(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var totalCommandes int64
		if err := db.Model(&models.Commande{}).Count(&totalCommandes).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		var commandes []models.Commande
		if err := db.Select("total_commande", "created_at").Find(&commandes).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		revenue := decimal.Zero
		recent := 0
		cutoff := time.Now().Add(-24 * time.Hour)
		for _, commande := range commandes {
			revenue = revenue.Add(commande.TotalCommande)
			if commande.CreatedAt.After(cutoff) {
				recent++
			}
		}

		var unread int64
		if err := db.Model(&models.Reclamation{}).
			Where("is_read IS NULL OR is_read = ?", false).
			Count(&unread).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"total_commandes":       totalCommandes,
			"chiffre_affaires":      revenue,
			"commandes_24h":         recent,
			"reclamations_non_lues": unread,
		})
	}
}
