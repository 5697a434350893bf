package loyaltyControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sarelalush/Orel-site/config"
	"github.com/sarelalush/Orel-site/models"
	"github.com/sarelalush/Orel-site/pricing"
)

// GET /loyalty/account
func GetAccount(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var account models.LoyaltyAccount
		if err := db.Where("user_id = ?", userID).
			FirstOrCreate(&account, models.LoyaltyAccount{UserID: userID}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch loyalty account"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"balance": account.Balance,
			"user_id": account.UserID,
		})
	}
}

// GET /loyalty/transactions
func GetTransactions(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var transactions []models.LoyaltyTransaction
		if err := db.Where("user_id = ?", userID).
			Order("created_at desc").Limit(100).
			Find(&transactions).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch transactions"})
			return
		}
		c.JSON(http.StatusOK, transactions)
	}
}

type PreviewInput struct {
	Points   int     `json:"points" binding:"required,gt=0"`
	Subtotal float64 `json:"subtotal" binding:"required,gt=0"`
}

// POST /loyalty/preview
//
// Quotes what a redemption would be worth without moving any points. The
// requested amount is capped at both the account balance and the point value
// of the subtotal, so the discount can never exceed the order.
func PreviewRedemption(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var input PreviewInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var account models.LoyaltyAccount
		if err := db.Where("user_id = ?", userID).
			FirstOrCreate(&account, models.LoyaltyAccount{UserID: userID}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch loyalty account"})
			return
		}

		points := input.Points
		if points > account.Balance {
			points = account.Balance
		}
		points = pricing.CapPoints(points, input.Subtotal, cfg.Loyalty.PointValue)

		c.JSON(http.StatusOK, gin.H{
			"points_requested": input.Points,
			"points_usable":    points,
			"discount":         pricing.LoyaltyDiscount(points, cfg.Loyalty.PointValue),
			"balance":          account.Balance,
		})
	}
}

// GET /admin/loyalty/:user_id
func GetUserAccount(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("user_id")

		var account models.LoyaltyAccount
		if err := db.Where("user_id = ?", userID).First(&account).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Loyalty account not found"})
			return
		}

		var transactions []models.LoyaltyTransaction
		db.Where("user_id = ?", userID).Order("created_at desc").Limit(100).Find(&transactions)

		c.JSON(http.StatusOK, gin.H{
			"account":      account,
			"transactions": transactions,
		})
	}
}

type AdjustInput struct {
	Points int    `json:"points" binding:"required"`
	Reason string `json:"reason" binding:"required"`
}

// POST /admin/loyalty/:user_id/adjust
func AdjustPoints(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("user_id")

		var input AdjustInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			var account models.LoyaltyAccount
			if err := tx.Where("user_id = ?", userID).
				FirstOrCreate(&account, models.LoyaltyAccount{UserID: userID}).Error; err != nil {
				return err
			}
			if account.Balance+input.Points < 0 {
				return gorm.ErrInvalidValue
			}
			account.Balance += input.Points
			if err := tx.Save(&account).Error; err != nil {
				return err
			}
			return tx.Create(&models.LoyaltyTransaction{
				UserID:      userID,
				Points:      input.Points,
				Kind:        models.LoyaltyTxAdjust,
				Description: input.Reason,
			}).Error
		})
		if err == gorm.ErrInvalidValue {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Adjustment would make balance negative"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to adjust points"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Points adjusted"})
	}
}
