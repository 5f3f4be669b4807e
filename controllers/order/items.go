package orderControllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yosergargouri/boutique-api/models"
)

// The items column has been written by several generations of the checkout
// code: a plain array, an object wrapping an "items" array, an object keyed
// by arbitrary indexes, and a double-encoded JSON string. Everything below
// recovers a displayable list from any of those without ever failing.

// ParseItemsPayload recovers the list of item records from a raw payload.
// Worst case is an empty list, never an error.
func ParseItemsPayload(raw []byte) []map[string]interface{} {
	if len(raw) == 0 {
		return nil
	}

	var value interface{}
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil
	}

	// Double-encoded rows store the whole payload as a JSON string.
	if s, ok := value.(string); ok {
		var nested interface{}
		if err := json.Unmarshal([]byte(s), &nested); err != nil {
			return nil
		}
		value = nested
	}

	switch v := value.(type) {
	case []interface{}:
		return toRecords(v)
	case map[string]interface{}:
		if items, ok := v["items"].([]interface{}); ok {
			return toRecords(items)
		}
		// Legacy shape: items keyed by arbitrary index. Keys are sorted
		// numerically where possible so the recovered order is stable.
		values := make([]interface{}, 0, len(v))
		keys := make([]string, 0, len(v))
		for k := range v {
			if _, ok := v[k].(map[string]interface{}); !ok {
				return nil
			}
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool {
			ni, errI := strconv.Atoi(keys[i])
			nj, errJ := strconv.Atoi(keys[j])
			if errI == nil && errJ == nil {
				return ni < nj
			}
			if errI == nil {
				return true
			}
			if errJ == nil {
				return false
			}
			return keys[i] < keys[j]
		})
		for _, k := range keys {
			values = append(values, v[k])
		}
		return toRecords(values)
	default:
		return nil
	}
}

func toRecords(list []interface{}) []map[string]interface{} {
	records := make([]map[string]interface{}, 0, len(list))
	for _, entry := range list {
		if record, ok := entry.(map[string]interface{}); ok {
			records = append(records, record)
		}
	}
	return records
}

// nameKeys in priority order; the first non-empty match wins.
var nameKeys = []string{"name", "nom", "title", "product_name", "produit_name", "produit"}

// ResolveItemName finds a display name across the schema variants. idx is
// zero-based; the placeholder is 1-indexed.
func ResolveItemName(item map[string]interface{}, idx int) string {
	for _, key := range nameKeys {
		if s, ok := item[key].(string); ok && strings.TrimSpace(s) != "" {
			return s
		}
	}
	for _, nested := range []struct{ outer, inner string }{
		{"product", "name"},
		{"produit", "nom"},
	} {
		if obj, ok := item[nested.outer].(map[string]interface{}); ok {
			if s, ok := obj[nested.inner].(string); ok && strings.TrimSpace(s) != "" {
				return s
			}
		}
	}
	return fmt.Sprintf("Article %d", idx+1)
}

// ResolveItemQuantity reads quantity (or the French quantite) with 1 as the
// default.
func ResolveItemQuantity(item map[string]interface{}) int {
	for _, key := range []string{"quantity", "quantite"} {
		switch v := item[key].(type) {
		case float64:
			if v >= 1 {
				return int(v)
			}
		case string:
			if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n >= 1 {
				return n
			}
		}
	}
	return 1
}

func numericField(item map[string]interface{}, keys ...string) *float64 {
	for _, key := range keys {
		switch v := item[key].(type) {
		case float64:
			out := v
			return &out
		case string:
			if strings.TrimSpace(v) == "" {
				continue
			}
			out := ParsePrice(v)
			return &out
		}
	}
	return nil
}

// ResolveUnitPrice follows prix_unitaire → price → prix.
func ResolveUnitPrice(item map[string]interface{}) *float64 {
	return numericField(item, "prix_unitaire", "price", "prix")
}

// ResolveLineTotal follows sous_total → line_total; nil when neither exists.
func ResolveLineTotal(item map[string]interface{}) *float64 {
	return numericField(item, "sous_total", "line_total")
}

// ReconstructedItem is the admin-facing view of one historical order line.
type ReconstructedItem struct {
	Name      string   `json:"name"`
	Quantity  int      `json:"quantity"`
	UnitPrice *float64 `json:"prix_unitaire"`
	LineTotal *float64 `json:"sous_total"`
	Image     string   `json:"image"`
}

// BuildImageIndex maps lowercased, trimmed product names to their main image.
// This is a best-effort join: renamed or deleted products simply resolve to
// no image.
func BuildImageIndex(db *gorm.DB) map[string]string {
	index := make(map[string]string)
	var produits []models.Produit
	if err := db.Select("nom", "image_principale").Find(&produits).Error; err != nil {
		return index
	}
	for _, p := range produits {
		key := strings.ToLower(strings.TrimSpace(p.Nom))
		if key == "" || p.ImagePrincipale == nil || *p.ImagePrincipale == "" {
			continue
		}
		index[key] = *p.ImagePrincipale
	}
	return index
}

// ReconstructItems resolves every record of the payload into a display line,
// enriched with a live catalog image where the name still matches.
func ReconstructItems(raw []byte, imageIndex map[string]string) []ReconstructedItem {
	records := ParseItemsPayload(raw)
	items := make([]ReconstructedItem, 0, len(records))
	for idx, record := range records {
		name := ResolveItemName(record, idx)
		item := ReconstructedItem{
			Name:      name,
			Quantity:  ResolveItemQuantity(record),
			UnitPrice: ResolveUnitPrice(record),
			LineTotal: ResolveLineTotal(record),
			Image:     imageIndex[strings.ToLower(strings.TrimSpace(name))],
		}
		// No stored total: derive it from the unit price.
		if item.LineTotal == nil && item.UnitPrice != nil {
			derived := float64(item.Quantity) * *item.UnitPrice
			item.LineTotal = &derived
		}
		items = append(items, item)
	}
	return items
}

// GET /admin/commandes/:id/items
func GetCommandeItems(db *gorm.DB) gin.HandlerFunc {
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

		items := ReconstructItems([]byte(commande.Items), BuildImageIndex(db))
		c.JSON(http.StatusOK, gin.H{"data": items})
	}
}
