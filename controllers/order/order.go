package orderControllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sarelalush/Orel-site/config"
	"github.com/sarelalush/Orel-site/models"
	"github.com/sarelalush/Orel-site/pricing"
)

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch strings.ToLower(status) {
	case string(models.OrderStatusPending):
		return models.OrderStatusPending, nil
	case string(models.OrderStatusProcessing):
		return models.OrderStatusProcessing, nil
	case string(models.OrderStatusCompleted):
		return models.OrderStatusCompleted, nil
	case string(models.OrderStatusCancelled):
		return models.OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

// validTransition encodes the order lifecycle. Completed and cancelled are
// terminal.
func validTransition(from, to models.OrderStatus) bool {
	switch from {
	case models.OrderStatusPending:
		return to == models.OrderStatusProcessing || to == models.OrderStatusCancelled
	case models.OrderStatusProcessing:
		return to == models.OrderStatusCompleted || to == models.OrderStatusCancelled
	default:
		return false
	}
}

// GET /orders
func GetUserOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var orders []models.Order
		if err := db.Preload("Items").
			Where("user_id = ?", userID).
			Order("created_at desc").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /orders/:ref
func GetOrderByRef(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		ref := c.Param("ref")

		var order models.Order
		if err := db.Preload("Items").
			Where("ref = ? AND user_id = ?", ref, userID).
			First(&order).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// GET /admin/orders?status=
func GetAllOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Preload("Items").Preload("User").Order("created_at desc")

		if status := c.Query("status"); status != "" {
			mapped, err := mapOrderStatus(status)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			query = query.Where("status = ?", mapped)
		}

		var orders []models.Order
		if err := query.Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// PUT /admin/orders/:id/status
//
// Cancelling restocks every line and refunds redeemed points; completing
// credits earned points. Both happen in the same transaction as the status
// write so a crash cannot strand stock or points.
func UpdateOrderStatus(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		target, err := mapOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var order models.Order
		txErr := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Preload("Items").
				Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&order, "id = ?", id).Error; err != nil {
				return err
			}
			if !validTransition(order.Status, target) {
				return errInvalidTransition
			}

			switch target {
			case models.OrderStatusCancelled:
				if err := restockOrder(tx, &order); err != nil {
					return err
				}
				if err := refundPoints(tx, &order); err != nil {
					return err
				}
				if order.PaymentStatus == models.PaymentStatusPaid {
					order.PaymentStatus = models.PaymentStatusRefunded
				}
			case models.OrderStatusCompleted:
				if err := creditEarnedPoints(tx, &order, cfg.Loyalty.EarnRate); err != nil {
					return err
				}
			}

			order.Status = target
			return tx.Save(&order).Error
		})

		if txErr == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		if txErr == errInvalidTransition {
			c.JSON(http.StatusConflict, gin.H{
				"error": "Cannot move order from " + string(order.Status) + " to " + string(target),
			})
			return
		}
		if txErr != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

var errInvalidTransition = errors.New("invalid status transition")

func restockOrder(tx *gorm.DB, order *models.Order) error {
	for _, item := range order.Items {
		if err := tx.Model(&models.Product{}).
			Where("id = ?", item.ProductID).
			Update("stock", gorm.Expr("stock + ?", item.Quantity)).Error; err != nil {
			return err
		}
	}
	return nil
}

func refundPoints(tx *gorm.DB, order *models.Order) error {
	if order.PointsUsed == 0 {
		return nil
	}
	if err := tx.Model(&models.LoyaltyAccount{}).
		Where("user_id = ?", order.UserID).
		Update("balance", gorm.Expr("balance + ?", order.PointsUsed)).Error; err != nil {
		return err
	}
	return tx.Create(&models.LoyaltyTransaction{
		UserID:      order.UserID,
		Points:      order.PointsUsed,
		Kind:        models.LoyaltyTxRefund,
		OrderID:     &order.ID,
		Description: "Refund for cancelled order " + order.Ref,
	}).Error
}

func creditEarnedPoints(tx *gorm.DB, order *models.Order, earnRate float64) error {
	earned := pricing.EarnedPoints(order.Total, earnRate)
	if earned == 0 {
		return nil
	}
	var account models.LoyaltyAccount
	if err := tx.Where("user_id = ?", order.UserID).
		FirstOrCreate(&account, models.LoyaltyAccount{UserID: order.UserID}).Error; err != nil {
		return err
	}
	if err := tx.Model(&account).
		Update("balance", gorm.Expr("balance + ?", earned)).Error; err != nil {
		return err
	}
	return tx.Create(&models.LoyaltyTransaction{
		UserID:      order.UserID,
		Points:      earned,
		Kind:        models.LoyaltyTxEarn,
		OrderID:     &order.ID,
		Description: "Earned on order " + order.Ref,
	}).Error
}
