package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yosergargouri/boutique-api/kv"
	"github.com/yosergargouri/boutique-api/mailer"
)

// SetupRoutes is the single entry-point that wires up the public storefront
// routes and the API-key-protected admin routes.
func SetupRoutes(r *gin.Engine, db *gorm.DB, store kv.Store, sender mailer.Sender) {
	SetupPublicRoutes(r, db, store, sender)
	SetupAdminRoutes(r, db)
}
