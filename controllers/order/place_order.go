package orderControllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/cowebsLB/mounifull/cart"
	"github.com/cowebsLB/mounifull/checkout"
	"github.com/cowebsLB/mounifull/config"
	"github.com/cowebsLB/mounifull/models"
)

// Generate unique order reference
func generateOrderRef() string {
	// Example: 20250908130500-<uuid4>
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// POST /checkout
//
// Checkout hands the order off to WhatsApp: the response carries the wa.me
// deep link and the caller opens it. The database row is written in the
// background because the handoff must not wait on (or fail with) postgres.
func PlaceOrderHandler(db *gorm.DB, store *cart.Store, cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetString("session_id")

		var form checkout.OrderForm
		if err := c.ShouldBindJSON(&form); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		items := store.Get(c.Request.Context(), sessionID)
		if len(items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
			return
		}

		if fieldErrors := checkout.ValidateForm(form); len(fieldErrors) > 0 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": fieldErrors})
			return
		}

		subtotal := checkout.Subtotal(items)
		fee := checkout.ShippingFee(subtotal)
		total := subtotal + fee

		order := models.Order{
			OrderRef:        generateOrderRef(),
			CustomerName:    form.FullName,
			CustomerPhone:   form.Phone,
			CustomerAddress: form.Address,
			Subtotal:        subtotal,
			ShippingFee:     fee,
			Total:           total,
			Status:          models.OrderStatusPending,
			OrderDate:       time.Now(),
		}
		for _, it := range items {
			order.Items = append(order.Items, models.OrderItem{
				ProductID: it.ProductID,
				Name:      it.Name,
				Price:     it.Price,
				Quantity:  it.Quantity,
			})
		}

		message := checkout.BuildOrderMessage(form, items, subtotal, fee, total)
		whatsappURL := checkout.OrderLink(cfg.WhatsAppNumber, message)

		// Persistence is best effort. A failed insert is logged, never
		// surfaced: the order already reached the shop over WhatsApp.
		go func(order models.Order) {
			if err := db.WithContext(context.Background()).Create(&order).Error; err != nil {
				log.Error().Err(err).Str("order_ref", order.OrderRef).Msg("failed to persist order")
				return
			}
			BroadcastNewOrder(order)
		}(order)

		if form.SaveAddress {
			addr := models.Address{
				"full_name":    form.FullName,
				"phone":        form.Phone,
				"address":      form.Address,
				"whatsapp":     form.WhatsApp,
				"email":        form.Email,
				"location_tag": form.LocationTag,
			}
			if err := store.SetAddress(c.Request.Context(), sessionID, addr); err != nil {
				log.Warn().Err(err).Str("session_id", sessionID).Msg("failed to save address")
			}
		}

		if err := store.Clear(c.Request.Context(), sessionID); err != nil {
			log.Warn().Err(err).Str("session_id", sessionID).Msg("failed to clear cart after checkout")
		}

		c.JSON(http.StatusOK, gin.H{
			"whatsapp_url": whatsappURL,
			"order_ref":    order.OrderRef,
			"subtotal":     subtotal,
			"shipping_fee": fee,
			"total":        total,
		})
	}
}
