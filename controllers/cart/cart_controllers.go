package cartControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cowebsLB/mounifull/cart"
	"github.com/cowebsLB/mounifull/catalog"
	"github.com/cowebsLB/mounifull/models"
)

type addItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity"`
}

type quantityInput struct {
	Quantity int `json:"quantity"`
}

type adjustInput struct {
	Delta int `json:"delta" binding:"required"`
}

// GET /cart
func GetCart(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		items := store.Get(c.Request.Context(), sessionID(c))
		respondCart(c, items)
	}
}

// POST /cart/items
//
// Catalog-page add: lines merge by product id, so adding the same product
// twice increments the existing line instead of duplicating it.
func AddItem(store *cart.Store, loader *catalog.Loader) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input addItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		product, ok := findProduct(c, loader, input.ProductID)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			return
		}
		if !product.InStock {
			c.JSON(http.StatusConflict, gin.H{"error": "Product is out of stock"})
			return
		}

		items, err := store.AddProduct(c.Request.Context(), sessionID(c), product, input.Quantity)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
			return
		}
		respondCart(c, items)
	}
}

// POST /cart/variants
//
// Product-page add: lines are keyed by the id+weight+packaging composite,
// so two weights of the same product sit in the cart as separate lines.
func AddVariant(store *cart.Store, loader *catalog.Loader) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			ProductID uint   `json:"product_id" binding:"required"`
			Weight    string `json:"weight"`
			Packaging string `json:"packaging"`
			Quantity  int    `json:"quantity"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		product, ok := findProduct(c, loader, input.ProductID)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			return
		}
		if !product.InStock {
			c.JSON(http.StatusConflict, gin.H{"error": "Product is out of stock"})
			return
		}
		if input.Weight != "" {
			product.Weight = input.Weight
		}
		if input.Packaging != "" {
			product.Packaging = input.Packaging
		}

		items, err := store.AddVariant(c.Request.Context(), sessionID(c), product, input.Quantity)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
			return
		}
		respondCart(c, items)
	}
}

// PUT /cart/items/:key
func UpdateQuantity(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input quantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		items, err := store.SetQuantity(c.Request.Context(), sessionID(c), c.Param("key"), input.Quantity)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
			return
		}
		respondCart(c, items)
	}
}

// PATCH /cart/items/:key
func AdjustQuantity(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input adjustInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		items, err := store.Adjust(c.Request.Context(), sessionID(c), c.Param("key"), input.Delta)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
			return
		}
		respondCart(c, items)
	}
}

// DELETE /cart/items/:key
func DeleteItem(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := store.Remove(c.Request.Context(), sessionID(c), c.Param("key"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
			return
		}
		respondCart(c, items)
	}
}

// DELETE /cart
func ClearCart(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := store.Clear(c.Request.Context(), sessionID(c)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		respondCart(c, []models.CartItem{})
	}
}

// GET /cart/badge
func Badge(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		items := store.Get(c.Request.Context(), sessionID(c))
		c.JSON(http.StatusOK, gin.H{"badge_count": cart.BadgeCount(items)})
	}
}

func sessionID(c *gin.Context) string {
	return c.GetString("session_id")
}

func findProduct(c *gin.Context, loader *catalog.Loader, id uint) (models.Product, bool) {
	for _, p := range loader.FetchAll(c.Request.Context()) {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

func respondCart(c *gin.Context, items []models.CartItem) {
	c.JSON(http.StatusOK, gin.H{
		"items":       items,
		"badge_count": cart.BadgeCount(items),
	})
}
