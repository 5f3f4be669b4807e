package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/yosergargouri/boutique-api/controllers/order"
	productcontroller "github.com/yosergargouri/boutique-api/controllers/product"
	reclamationcontroller "github.com/yosergargouri/boutique-api/controllers/reclamation"
	settingscontroller "github.com/yosergargouri/boutique-api/controllers/settings"
	"github.com/yosergargouri/boutique-api/middleware"
)

func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	admin := r.Group("/admin")
	admin.Use(middleware.ValidateAPIKey)
	{
		produits := admin.Group("/produits")
		{
			produits.POST("/", productcontroller.CreateProduct(db))
			produits.PUT("/:id", productcontroller.UpdateProduct(db))
			produits.DELETE("/:id", productcontroller.DeleteProduct(db))
			produits.POST("/upload", productcontroller.UploadProductImage())
			produits.POST("/import", productcontroller.ImportProductsFromExcel(db))
			produits.GET("/export", productcontroller.ExportProductsToExcel(db))
		}

		categories := admin.Group("/categories")
		{
			categories.POST("/", productcontroller.CreateCategory(db))
			categories.PUT("/:id", productcontroller.UpdateCategory(db))
			categories.DELETE("/:id", productcontroller.DeleteCategory(db))
		}

		commandes := admin.Group("/commandes")
		{
			commandes.GET("/", orderControllers.ListCommandes(db))
			commandes.GET("/stats", orderControllers.GetStats(db))
			commandes.GET("/export", orderControllers.ExportCommandes(db))
			commandes.GET("/ws", orderControllers.CommandeFeedHandler)
			commandes.GET("/:id", orderControllers.GetCommande(db))
			commandes.GET("/:id/items", orderControllers.GetCommandeItems(db))
			commandes.PUT("/:id/statut", orderControllers.UpdateStatutCommande(db))
			commandes.PUT("/:id/statut-paiement", orderControllers.UpdateStatutPaiement(db))
			commandes.DELETE("/:id", orderControllers.DeleteCommande(db))
		}

		reclamations := admin.Group("/reclamations")
		{
			reclamations.GET("/", reclamationcontroller.ListReclamations(db))
			reclamations.GET("/unread-count", reclamationcontroller.CountUnreadReclamations(db))
			reclamations.PATCH("/:id/read", reclamationcontroller.MarkReclamationRead(db))
			reclamations.DELETE("/:id", reclamationcontroller.DeleteReclamation(db))
		}

		admin.POST("/site-settings", settingscontroller.UpsertSiteSettings(db))
	}
}
