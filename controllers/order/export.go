package orderControllers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/yosergargouri/boutique-api/models"
)

var exportHeaders = []string{
	"Date", "Numéro", "Client", "Email", "Téléphone", "Adresse", "Ville",
	"Code postal", "Pays", "Articles", "Sous-total", "Frais livraison",
	"Total", "Statut", "Paiement",
}

func derefOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}

// flattenItems renders the reconstructed lines as "Vase (x2); Bol (x1)".
func flattenItems(commande models.Commande, imageIndex map[string]string) string {
	items := ReconstructItems([]byte(commande.Items), imageIndex)
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, fmt.Sprintf("%s (x%d)", item.Name, item.Quantity))
	}
	return strings.Join(parts, "; ")
}

func exportRow(commande models.Commande, imageIndex map[string]string) []string {
	return []string{
		commande.CreatedAt.Format("2006-01-02 15:04:05"),
		commande.NumeroCommande,
		commande.ClientName,
		commande.ClientEmail,
		commande.ClientPhone,
		commande.ClientAddress,
		derefOr(commande.ClientCity, ""),
		derefOr(commande.ClientZipcode, ""),
		derefOr(commande.ClientCountry, ""),
		flattenItems(commande, imageIndex),
		commande.SousTotal.StringFixed(2),
		commande.FraisLivraison.StringFixed(2),
		commande.TotalCommande.StringFixed(2),
		string(commande.StatutCommande),
		string(commande.StatutPaiement),
	}
}

// GET /admin/commandes/export?format=csv|xlsx
func ExportCommandes(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		format := strings.ToLower(c.DefaultQuery("format", "csv"))
		if format != "csv" && format != "xlsx" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "format doit être csv ou xlsx"})
			return
		}

		var commandes []models.Commande
		if err := db.Order("created_at DESC").Find(&commandes).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		imageIndex := BuildImageIndex(db)

		if format == "csv" {
			c.Header("Content-Disposition", "attachment; filename=commandes.csv")
			c.Header("Content-Type", "text/csv; charset=utf-8")

			w := csv.NewWriter(c.Writer)
			if err := w.Write(exportHeaders); err != nil {
				return
			}
			for _, commande := range commandes {
				if err := w.Write(exportRow(commande, imageIndex)); err != nil {
					return
				}
			}
			w.Flush()
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Commandes")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headerRow := sheet.AddRow()
		for _, h := range exportHeaders {
			headerRow.AddCell().SetValue(h)
		}
		for _, commande := range commandes {
			row := sheet.AddRow()
			for _, cell := range exportRow(commande, imageIndex) {
				row.AddCell().SetValue(cell)
			}
		}

		c.Header("Content-Disposition", "attachment; filename=commandes.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
