package orderControllers

import (
	"encoding/csv"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yosergargouri/boutique-api/models"
)

func TestExportCommandesCSV(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupTestDB(t)

	city := "Sfax"
	require.NoError(t, db.Create(&models.Commande{
		NumeroCommande: "CMD-20250601-120000-4821",
		ClientName:     "Yoser Gargouri",
		ClientEmail:    "yoser@example.com",
		ClientPhone:    "+216 20 000 000",
		ClientAddress:  "12 rue des Oliviers",
		ClientCity:     &city,
		SousTotal:      decimal.NewFromInt(120),
		FraisLivraison: decimal.NewFromInt(10),
		TotalCommande:  decimal.NewFromInt(130),
		// mixed-generation item keys on purpose
		Items: models.JSONB(`[{"nom":"Vase","quantite":2},{"name":"Tapis","quantity":1}]`),
	}).Error)

	r := gin.New()
	r.GET("/export", ExportCommandes(db))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/export?format=csv", nil))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Disposition"), "commandes.csv")

	records, err := csv.NewReader(strings.NewReader(w.Body.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, exportHeaders, records[0])

	row := records[1]
	assert.Equal(t, "CMD-20250601-120000-4821", row[1])
	assert.Equal(t, "Vase (x2); Tapis (x1)", row[9])
	assert.Equal(t, "120.00", row[10])
	assert.Equal(t, "10.00", row[11])
	assert.Equal(t, "130.00", row[12])
	assert.Equal(t, "en_attente", row[13])
}

func TestExportCommandesRejectsUnknownFormat(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupTestDB(t)

	r := gin.New()
	r.GET("/export", ExportCommandes(db))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/export?format=pdf", nil))
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "csv ou xlsx")
}
