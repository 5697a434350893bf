package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sarelalush/Orel-site/cache"
	"github.com/sarelalush/Orel-site/models"
	"github.com/sarelalush/Orel-site/storage"
)

// DeleteProduct soft-deletes the row and removes its image object.
func DeleteProduct(db *gorm.DB, store storage.Uploader, ch *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var product models.Product
		if err := db.First(&product, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		if err := db.Delete(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}

		if product.ImageURL != "" {
			_ = store.Delete(c.Request.Context(), product.ImageURL)
		}

		ch.InvalidatePattern("^catalog:")
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted", "id": product.ID})
	}
}
