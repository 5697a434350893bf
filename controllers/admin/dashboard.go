package adminControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sarelalush/Orel-site/models"
	"github.com/sarelalush/Orel-site/monitoring"
)

type statusCount struct {
	Status models.OrderStatus `json:"status"`
	Count  int64              `json:"count"`
}

type topProduct struct {
	ProductID   uint    `json:"product_id"`
	ProductName string  `json:"product_name"`
	UnitsSold   int64   `json:"units_sold"`
	Revenue     float64 `json:"revenue"`
}

// GET /admin/dashboard
//
// One aggregate snapshot for the console landing page. Revenue only counts
// paid orders; cancelled orders stay in the status breakdown but out of
// revenue.
func GetDashboard(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var totalOrders, totalUsers, totalProducts int64
		db.Model(&models.Order{}).Count(&totalOrders)
		db.Model(&models.User{}).Count(&totalUsers)
		db.Model(&models.Product{}).Count(&totalProducts)

		var byStatus []statusCount
		if err := db.Model(&models.Order{}).
			Select("status, count(*) as count").
			Group("status").
			Scan(&byStatus).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to aggregate orders"})
			return
		}

		monthStart := time.Now().AddDate(0, -1, 0)
		var monthlyRevenue float64
		db.Model(&models.Order{}).
			Where("payment_status = ? AND created_at >= ?", models.PaymentStatusPaid, monthStart).
			Select("COALESCE(SUM(total), 0)").
			Scan(&monthlyRevenue)

		var top []topProduct
		db.Model(&models.OrderItem{}).
			Select("product_id, product_name, SUM(quantity) as units_sold, SUM(line_total) as revenue").
			Group("product_id, product_name").
			Order("units_sold desc").
			Limit(5).
			Scan(&top)

		var lowStock []models.Product
		db.Where("stock <= ?", 5).
			Order("stock asc").
			Limit(10).
			Find(&lowStock)

		c.JSON(http.StatusOK, gin.H{
			"total_orders":     totalOrders,
			"total_users":      totalUsers,
			"total_products":   totalProducts,
			"orders_by_status": byStatus,
			"monthly_revenue":  monthlyRevenue,
			"top_products":     top,
			"low_stock":        lowStock,
		})
	}
}

// GET /admin/monitoring/logs
func GetLogs(log *monitoring.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, log.Entries())
	}
}

// GET /admin/monitoring/requests
func GetRequests(rec *monitoring.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"requests": rec.Timings(),
			"summary":  rec.Summary(),
		})
	}
}
