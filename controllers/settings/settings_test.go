package settingscontroller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yosergargouri/boutique-api/models"
)

func setupSettingsTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.SiteSettings{}))

	r := gin.New()
	r.GET("/site-settings", GetSiteSettings(db))
	r.POST("/admin/site-settings", UpsertSiteSettings(db))
	return r, db
}

func postSettings(r *gin.Engine, body interface{}) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/site-settings", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestGetSiteSettingsEmptyTable(t *testing.T) {
	r, _ := setupSettingsTest(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/site-settings", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data":null}`, w.Body.String())
}

func TestUpsertSiteSettingsCreateThenGetLatest(t *testing.T) {
	r, db := setupSettingsTest(t)

	w := postSettings(r, gin.H{"site_name": "Boutique", "frais_livraison": 10})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// an older row must lose to the newest one
	old := models.SiteSettings{SiteName: "Ancienne"}
	require.NoError(t, db.Create(&old).Error)
	require.NoError(t, db.Model(&old).Update("created_at", time.Now().Add(-time.Hour)).Error)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/site-settings", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data models.SiteSettings `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Boutique", resp.Data.SiteName)
	require.NotNil(t, resp.Data.FraisLivraison)
	assert.Equal(t, 10.0, *resp.Data.FraisLivraison)
}

func TestUpsertSiteSettingsUpdateByID(t *testing.T) {
	r, db := setupSettingsTest(t)

	require.Equal(t, http.StatusCreated, postSettings(r, gin.H{"site_name": "Boutique"}).Code)
	var created models.SiteSettings
	require.NoError(t, db.First(&created).Error)

	w := postSettings(r, gin.H{"id": created.ID, "site_name": "Boutique Artisanale"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var count int64
	require.NoError(t, db.Model(&models.SiteSettings{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	var reloaded models.SiteSettings
	require.NoError(t, db.First(&reloaded, created.ID).Error)
	assert.Equal(t, "Boutique Artisanale", reloaded.SiteName)
}

func TestUpsertSiteSettingsRequiresSiteName(t *testing.T) {
	r, _ := setupSettingsTest(t)

	w := postSettings(r, gin.H{"site_name": "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postSettings(r, gin.H{"frais_livraison": 5})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
