package paymentControllers

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sarelalush/Orel-site/config"
	"github.com/sarelalush/Orel-site/models"
)

type IntentInput struct {
	OrderRef string `json:"order_ref" binding:"required"`
}

// clientSecret derives a stable opaque token from the order ref, so repeated
// intent calls for the same order hand back the same secret.
func clientSecret(ref, mode string) string {
	sum := sha256.Sum256([]byte(mode + ":" + ref))
	return "pi_" + hex.EncodeToString(sum[:16])
}

// POST /payments/intent
func CreatePaymentIntent(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var input IntentInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var order models.Order
		if err := db.Where("ref = ? AND user_id = ?", input.OrderRef, userID).
			First(&order).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		if order.PaymentStatus == models.PaymentStatusPaid {
			c.JSON(http.StatusConflict, gin.H{"error": "Order is already paid"})
			return
		}
		if order.Status == models.OrderStatusCancelled {
			c.JSON(http.StatusConflict, gin.H{"error": "Order is cancelled"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"client_secret":   clientSecret(order.Ref, cfg.Payment.Mode),
			"publishable_key": cfg.Payment.PublishableKey,
			"amount":          order.Total,
			"currency":        "ils",
		})
	}
}

type ConfirmInput struct {
	OrderRef     string `json:"order_ref" binding:"required"`
	ClientSecret string `json:"client_secret" binding:"required"`
}

// POST /payments/confirm
//
// Marks the order paid and moves it to processing. In test mode any matching
// secret settles immediately; there is no external gateway round-trip.
func ConfirmPayment(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var input ConfirmInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var order models.Order
		if err := db.Where("ref = ? AND user_id = ?", input.OrderRef, userID).
			First(&order).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		if input.ClientSecret != clientSecret(order.Ref, cfg.Payment.Mode) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Client secret does not match order"})
			return
		}
		if order.PaymentStatus == models.PaymentStatusPaid {
			c.JSON(http.StatusOK, order)
			return
		}
		if order.Status == models.OrderStatusCancelled {
			c.JSON(http.StatusConflict, gin.H{"error": "Order is cancelled"})
			return
		}

		order.PaymentStatus = models.PaymentStatusPaid
		if order.Status == models.OrderStatusPending {
			order.Status = models.OrderStatusProcessing
		}
		if err := db.Save(&order).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to confirm payment"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}
