package productcontroller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yosergargouri/boutique-api/models"
)

func setupProductTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Category{}, &models.Produit{}))

	r := gin.New()
	r.GET("/produits", GetProducts(db))
	r.GET("/produits/:id", GetProductByID(db))
	r.POST("/admin/produits", CreateProduct(db))
	r.PUT("/admin/produits/:id", UpdateProduct(db))
	r.DELETE("/admin/produits/:id", DeleteProduct(db))
	r.POST("/admin/categories", CreateCategory(db))
	r.DELETE("/admin/categories/:id", DeleteCategory(db))
	return r, db
}

func seedCategory(t *testing.T, db *gorm.DB, nom string) models.Category {
	t.Helper()
	category := models.Category{Nom: nom}
	require.NoError(t, db.Create(&category).Error)
	return category
}

func jsonReq(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var raw []byte
	if body != nil {
		raw, _ = json.Marshal(body)
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestCreateProduct(t *testing.T) {
	r, db := setupProductTest(t)
	category := seedCategory(t, db, "Déco")

	w := jsonReq(r, http.MethodPost, "/admin/produits", gin.H{
		"nom":         "  Vase en argile  ",
		"category_id": category.ID,
		"prix":        45.5,
		"est_nouveau": true,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var produit models.Produit
	require.NoError(t, db.First(&produit).Error)
	assert.Equal(t, "Vase en argile", produit.Nom)
	assert.Equal(t, 45.5, produit.Prix)
	assert.True(t, produit.EstNouveau)
}

func TestCreateProductRejectsUnknownCategory(t *testing.T) {
	r, _ := setupProductTest(t)

	w := jsonReq(r, http.MethodPost, "/admin/produits", gin.H{
		"nom":         "Vase",
		"category_id": 999,
		"prix":        45.5,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetProductsFilters(t *testing.T) {
	r, db := setupProductTest(t)
	deco := seedCategory(t, db, "Déco")
	tapis := seedCategory(t, db, "Tapis")

	require.NoError(t, db.Create(&models.Produit{Nom: "Vase bleu", CategoryID: deco.ID, Prix: 45, EstNouveau: true}).Error)
	require.NoError(t, db.Create(&models.Produit{Nom: "Vase rouge", CategoryID: deco.ID, Prix: 80}).Error)
	require.NoError(t, db.Create(&models.Produit{Nom: "Kilim", CategoryID: tapis.ID, Prix: 250}).Error)

	list := func(query string) []models.Produit {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/produits"+query, nil))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var resp struct {
			Data []models.Produit `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		return resp.Data
	}

	assert.Len(t, list(""), 3)
	assert.Len(t, list("?category_id="+fmt.Sprint(deco.ID)), 2)
	assert.Len(t, list("?est_nouveau=true"), 1)
	assert.Len(t, list("?min_price=50&max_price=100"), 1)

	byName := list("?search=vase")
	assert.Len(t, byName, 2)

	sorted := list("?sort_by=prix&order=desc")
	require.Len(t, sorted, 3)
	assert.Equal(t, "Kilim", sorted[0].Nom)
}

func TestGetProductByID(t *testing.T) {
	r, db := setupProductTest(t)
	deco := seedCategory(t, db, "Déco")
	produit := models.Produit{Nom: "Vase", CategoryID: deco.ID, Prix: 45}
	require.NoError(t, db.Create(&produit).Error)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, fmt.Sprintf("/produits/%d", produit.ID), nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/produits/99999", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteCategoryWithProductsRefused(t *testing.T) {
	r, db := setupProductTest(t)
	deco := seedCategory(t, db, "Déco")
	require.NoError(t, db.Create(&models.Produit{Nom: "Vase", CategoryID: deco.ID, Prix: 45}).Error)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/admin/categories/%d", deco.ID), nil))
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Category still has products")

	require.NoError(t, db.Delete(&models.Produit{}, "category_id = ?", deco.ID).Error)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/admin/categories/%d", deco.ID), nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
