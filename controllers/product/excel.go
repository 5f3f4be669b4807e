package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/yosergargouri/boutique-api/models"
)

// Column layout shared by import and export:
// ID | Nom | Description | CategoryID | Prix | Stock | ImagePrincipale |
// ImageSecondaire | EstNouveau | Dimensions | Matiere | Couleur | Poids | Origine

func ImportProductsFromExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is required"})
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open Excel file"})
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse Excel file"})
			return
		}
		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is empty or missing header row"})
			return
		}

		sheet := xlFile.Sheets[0]
		createdCount, updatedCount, skippedCount := 0, 0, 0

		for i := 1; i < sheet.MaxRow; i++ {
			row := sheet.Rows[i]

			get := func(index int) string {
				if index < len(row.Cells) {
					return strings.TrimSpace(row.Cells[index].String())
				}
				return ""
			}

			idStr := get(0)
			nom := get(1)
			prix, errPrix := strconv.ParseFloat(get(4), 64)
			categoryID, errCat := strconv.ParseUint(get(3), 10, 64)
			if nom == "" || errPrix != nil || errCat != nil {
				skippedCount++
				continue
			}

			produit := models.Produit{
				Nom:        nom,
				CategoryID: uint(categoryID),
				Prix:       prix,
				EstNouveau: strings.EqualFold(get(8), "true"),
			}
			if desc := get(2); desc != "" {
				produit.Description = &desc
			}
			if stockStr := get(5); stockStr != "" {
				if stock, err := strconv.Atoi(stockStr); err == nil {
					produit.Stock = &stock
				}
			}
			if img := get(6); img != "" {
				produit.ImagePrincipale = &img
			}
			if img := get(7); img != "" {
				produit.ImageSecondaire = &img
			}
			if dim := get(9); dim != "" {
				produit.Dimensions = &dim
			}
			if mat := get(10); mat != "" {
				produit.Matiere = &mat
			}
			if coul := get(11); coul != "" {
				produit.Couleur = &coul
			}
			if poidsStr := get(12); poidsStr != "" {
				if poids, err := strconv.ParseFloat(poidsStr, 64); err == nil {
					produit.Poids = &poids
				}
			}
			if orig := get(13); orig != "" {
				produit.Origine = &orig
			}

			// Rows with an existing ID update in place, everything else inserts.
			if idStr != "" {
				if id, err := strconv.ParseUint(idStr, 10, 64); err == nil {
					var existing models.Produit
					if db.First(&existing, uint(id)).Error == nil {
						produit.ID = existing.ID
						produit.CreatedAt = existing.CreatedAt
						if err := db.Save(&produit).Error; err != nil {
							skippedCount++
							continue
						}
						updatedCount++
						continue
					}
				}
			}

			if err := db.Create(&produit).Error; err != nil {
				skippedCount++
				continue
			}
			createdCount++
		}

		c.JSON(http.StatusOK, gin.H{
			"created": createdCount,
			"updated": updatedCount,
			"skipped": skippedCount,
		})
	}
}

func ExportProductsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var produits []models.Produit
		if err := db.Order("id ASC").Find(&produits).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Produits")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"ID", "Nom", "Description", "CategoryID", "Prix", "Stock",
			"ImagePrincipale", "ImageSecondaire", "EstNouveau",
			"Dimensions", "Matiere", "Couleur", "Poids", "Origine",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		deref := func(s *string) string {
			if s == nil {
				return ""
			}
			return *s
		}

		for _, p := range produits {
			row := sheet.AddRow()
			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Nom)
			row.AddCell().SetValue(deref(p.Description))
			row.AddCell().SetValue(p.CategoryID)
			row.AddCell().SetValue(p.Prix)
			if p.Stock != nil {
				row.AddCell().SetValue(*p.Stock)
			} else {
				row.AddCell().SetValue("")
			}
			row.AddCell().SetValue(deref(p.ImagePrincipale))
			row.AddCell().SetValue(deref(p.ImageSecondaire))
			row.AddCell().SetValue(strconv.FormatBool(p.EstNouveau))
			row.AddCell().SetValue(deref(p.Dimensions))
			row.AddCell().SetValue(deref(p.Matiere))
			row.AddCell().SetValue(deref(p.Couleur))
			if p.Poids != nil {
				row.AddCell().SetValue(*p.Poids)
			} else {
				row.AddCell().SetValue("")
			}
			row.AddCell().SetValue(deref(p.Origine))
		}

		c.Header("Content-Disposition", "attachment; filename=produits.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
