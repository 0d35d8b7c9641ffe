package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cowebsLB/mounifull/cart"
	"github.com/cowebsLB/mounifull/catalog"
	"github.com/cowebsLB/mounifull/config"
)

// SetupRoutes is the single entry-point that wires up the storefront and
// admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, store *cart.Store, loader *catalog.Loader, cfg config.Config) {
	// Public storefront routes (no middleware)
	SetupStoreRoutes(r, db, store, loader, cfg)

	// Admin routes (API-Key-protected)
	SetupAdminRoutes(r, db, cfg)
}
