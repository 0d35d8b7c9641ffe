package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cowebsLB/mounifull/config"
	adminController "github.com/cowebsLB/mounifull/controllers/admin"
	orderControllers "github.com/cowebsLB/mounifull/controllers/order"
	"github.com/cowebsLB/mounifull/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires API-Key
// middleware.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		adminGroup.GET("/dashboard", adminController.DashboardStats(db))

		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.GET("", adminController.GetProducts(db))
			productAdmin.POST("", adminController.CreateProduct(db, cfg))
			productAdmin.PUT("/:id", adminController.UpdateProduct(db, cfg))
			productAdmin.DELETE("/:id", adminController.DeleteProduct(db))
			productAdmin.GET("/export-excel", adminController.ExportProductsToExcel(db))
		}

		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAllOrdersHandler(db))
			orderAdmin.PUT("/:id/status", orderControllers.UpdateOrderStatusHandler(db))
			orderAdmin.DELETE("/:id", orderControllers.DeleteOrderHandler(db))
		}
	}
}
