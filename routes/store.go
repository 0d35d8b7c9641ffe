package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cowebsLB/mounifull/auth"
	"github.com/cowebsLB/mounifull/cart"
	"github.com/cowebsLB/mounifull/catalog"
	"github.com/cowebsLB/mounifull/config"
	cartControllers "github.com/cowebsLB/mounifull/controllers/cart"
	orderControllers "github.com/cowebsLB/mounifull/controllers/order"
	productcontroller "github.com/cowebsLB/mounifull/controllers/product"
	"github.com/cowebsLB/mounifull/middleware"
)

// SetupStoreRoutes registers the public catalog endpoints and the
// session-scoped cart and checkout endpoints.
func SetupStoreRoutes(r *gin.Engine, db *gorm.DB, store *cart.Store, loader *catalog.Loader, cfg config.Config) {
	// Catalog browsing needs no session
	r.GET("/products", productcontroller.GetProducts(loader))
	r.GET("/products/:id", productcontroller.GetProductByID(loader))
	r.GET("/categories", productcontroller.GetCategories(loader))

	r.POST("/auth/session", auth.CreateSession(cfg))

	session := r.Group("/")
	session.Use(middleware.ValidateSession(cfg))
	{
		cartGroup := session.Group("/cart")
		{
			cartGroup.GET("", cartControllers.GetCart(store))                     // GET /cart
			cartGroup.GET("/badge", cartControllers.Badge(store))                 // GET /cart/badge
			cartGroup.POST("/items", cartControllers.AddItem(store, loader))      // POST /cart/items
			cartGroup.POST("/variants", cartControllers.AddVariant(store, loader))
			cartGroup.PUT("/items/:key", cartControllers.UpdateQuantity(store))   // PUT /cart/items/:key
			cartGroup.PATCH("/items/:key", cartControllers.AdjustQuantity(store)) // PATCH /cart/items/:key
			cartGroup.DELETE("/items/:key", cartControllers.DeleteItem(store))    // DELETE /cart/items/:key
			cartGroup.DELETE("", cartControllers.ClearCart(store))                // DELETE /cart
		}

		checkoutGroup := session.Group("/checkout")
		{
			checkoutGroup.POST("", orderControllers.PlaceOrderHandler(db, store, cfg)) // POST /checkout
			checkoutGroup.POST("/address", orderControllers.SaveAddressHandler(store))
			checkoutGroup.GET("/address", orderControllers.GetAddressHandler(store))
			checkoutGroup.POST("/save", orderControllers.SaveForLaterHandler(store))
			checkoutGroup.GET("/save", orderControllers.GetSavedOrderHandler(store))
		}

		session.GET("/ws/orders", orderControllers.OrderWebSocketHandler)
	}
}
