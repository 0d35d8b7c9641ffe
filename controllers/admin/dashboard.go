package adminController

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cowebsLB/mounifull/models"
)

// GET /admin/dashboard
//
// One call feeds every tile on the dashboard: product count, active order
// count, revenue over completed orders, the latest orders and the
// out-of-stock list.
func DashboardStats(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var productCount int64
		if err := db.Model(&models.Product{}).Count(&productCount).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count products"})
			return
		}

		var activeOrders int64
		if err := db.Model(&models.Order{}).
			Where("status IN ?", []models.OrderStatus{models.OrderStatusPending, models.OrderStatusConfirmed}).
			Count(&activeOrders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count orders"})
			return
		}

		var totalRevenue float64
		if err := db.Model(&models.Order{}).
			Where("status = ?", models.OrderStatusCompleted).
			Select("COALESCE(SUM(total), 0)").Scan(&totalRevenue).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sum revenue"})
			return
		}

		now := time.Now()
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		var monthRevenue float64
		if err := db.Model(&models.Order{}).
			Where("status = ? AND completed_at >= ?", models.OrderStatusCompleted, monthStart).
			Select("COALESCE(SUM(total), 0)").Scan(&monthRevenue).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sum revenue"})
			return
		}

		var recentOrders []models.Order
		if err := db.Preload("Items").Order("created_at DESC").Limit(10).Find(&recentOrders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recent orders"})
			return
		}

		var outOfStock []models.Product
		if err := db.Where("in_stock = ?", false).Find(&outOfStock).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch out-of-stock products"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"product_count": productCount,
			"active_orders": activeOrders,
			"total_revenue": totalRevenue,
			"month_revenue": monthRevenue,
			"recent_orders": recentOrders,
			"out_of_stock":  outOfStock,
		})
	}
}
