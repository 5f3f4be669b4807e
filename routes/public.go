package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/yosergargouri/boutique-api/controllers/cart"
	contactcontroller "github.com/yosergargouri/boutique-api/controllers/contact"
	mapscontroller "github.com/yosergargouri/boutique-api/controllers/maps"
	orderControllers "github.com/yosergargouri/boutique-api/controllers/order"
	productcontroller "github.com/yosergargouri/boutique-api/controllers/product"
	reclamationcontroller "github.com/yosergargouri/boutique-api/controllers/reclamation"
	settingscontroller "github.com/yosergargouri/boutique-api/controllers/settings"
	"github.com/yosergargouri/boutique-api/kv"
	"github.com/yosergargouri/boutique-api/mailer"
	"github.com/yosergargouri/boutique-api/middleware"
)

func SetupPublicRoutes(r *gin.Engine, db *gorm.DB, store kv.Store, sender mailer.Sender) {
	// Public writes share one fixed window of 5 requests per hour per IP.
	limiter := middleware.NewRateLimiter(5, time.Hour)

	produits := r.Group("/produits")
	{
		produits.GET("/", productcontroller.GetProducts(db))
		produits.GET("/:id", productcontroller.GetProductByID(db))
	}

	r.GET("/categories", productcontroller.GetAllCategories(db))

	cart := r.Group("/panier")
	{
		cart.GET("/", cartControllers.GetCart(store))
		cart.POST("/items", cartControllers.AddItem(store))
		cart.PUT("/items/:index", cartControllers.UpdateQuantity(store))
		cart.DELETE("/items/:index", cartControllers.RemoveItem(store))
		cart.DELETE("/", cartControllers.ClearCart(store))
	}

	r.POST("/commandes", orderControllers.PlaceCommande(db, store))

	r.POST("/contact", limiter.Limit("contact"), contactcontroller.SubmitContact(db, sender))
	r.POST("/reclamations", limiter.Limit("reclamation"), reclamationcontroller.CreateReclamation(db))

	r.GET("/site-settings", settingscontroller.GetSiteSettings(db))
	r.POST("/maps/resolve", mapscontroller.ResolveMapsURL())
}
