package orderControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cowebsLB/mounifull/cart"
	"github.com/cowebsLB/mounifull/checkout"
	"github.com/cowebsLB/mounifull/models"
)

// POST /checkout/address
func SaveAddressHandler(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var addr models.Address
		if err := c.ShouldBindJSON(&addr); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		if err := store.SetAddress(c.Request.Context(), c.GetString("session_id"), addr); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save address"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"address": addr})
	}
}

// GET /checkout/address
func GetAddressHandler(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		addr := store.GetAddress(c.Request.Context(), c.GetString("session_id"))
		c.JSON(http.StatusOK, gin.H{"address": addr})
	}
}

// POST /checkout/save
//
// Snapshots the current cart with its grand total so the shopper can come
// back to it. The live cart is left untouched.
func SaveForLaterHandler(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetString("session_id")
		items := store.Get(c.Request.Context(), sessionID)
		if len(items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
			return
		}

		snapshot := cart.SavedOrder{
			Cart:      items,
			Timestamp: time.Now(),
			Total:     checkout.TotalWithShipping(checkout.Subtotal(items)),
		}
		if err := store.SaveOrder(c.Request.Context(), sessionID, snapshot); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save order"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"saved_order": snapshot})
	}
}

// GET /checkout/save
func GetSavedOrderHandler(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		snapshot, ok := store.GetSavedOrder(c.Request.Context(), c.GetString("session_id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "No saved order"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"saved_order": snapshot})
	}
}
