package compareControllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sarelalush/Orel-site/config"
	"github.com/sarelalush/Orel-site/models"
)

type CompareInput struct {
	ProductID uint `json:"product_id" binding:"required"`
}

// GET /user/compare
func GetCompareList(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var items []models.CompareItem
		if err := db.Preload("Product.Category").
			Where("user_id = ?", userID).
			Order("created_at asc").
			Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch compare list"})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// POST /user/compare
//
// The tray is capped; an insert past the cap is rejected with a message, the
// existing entries are never evicted.
func AddToCompare(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var input CompareInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var product models.Product
		if err := db.First(&product, input.ProductID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			return
		}

		var existing models.CompareItem
		err := db.Where("user_id = ? AND product_id = ?", userID, input.ProductID).
			First(&existing).Error
		if err == nil {
			c.JSON(http.StatusOK, existing)
			return
		}
		if err != gorm.ErrRecordNotFound {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch compare list"})
			return
		}

		var count int64
		if err := db.Model(&models.CompareItem{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch compare list"})
			return
		}
		if count >= int64(cfg.Compare.MaxItems) {
			c.JSON(http.StatusConflict, gin.H{
				"error": fmt.Sprintf("You can compare up to %d products", cfg.Compare.MaxItems),
			})
			return
		}

		item := models.CompareItem{UserID: userID, ProductID: input.ProductID}
		if err := db.Create(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to compare list"})
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

// DELETE /user/compare/:product_id
func RemoveFromCompare(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		productID := c.Param("product_id")

		result := db.Where("user_id = ? AND product_id = ?", userID, productID).
			Delete(&models.CompareItem{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove from compare list"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Compare item not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Removed from compare list"})
	}
}

// DELETE /user/compare
func ClearCompare(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		if err := db.Where("user_id = ?", userID).Delete(&models.CompareItem{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear compare list"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Compare list cleared"})
	}
}
