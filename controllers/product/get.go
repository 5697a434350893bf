package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sarelalush/Orel-site/catalog"
	"github.com/sarelalush/Orel-site/models"
)

// GET /catalog/products/:id
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var product models.Product
		if err := db.Preload("Category.Parent.Parent").First(&product, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		var summary struct {
			Avg   float64
			Count int64
		}
		db.Model(&models.Review{}).
			Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
			Where("product_id = ?", product.ID).
			Scan(&summary)

		c.JSON(http.StatusOK, gin.H{
			"product":        product,
			"breadcrumbs":    catalog.ProductBreadcrumbs(&product),
			"average_rating": summary.Avg,
			"review_count":   summary.Count,
		})
	}
}

// GET /catalog/products/:id/related
//
// Products sharing the same leaf category, excluding the product itself.
func GetRelatedProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var product models.Product
		if err := db.First(&product, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		var related []models.Product
		if product.CategoryID != nil {
			if err := db.Where("category_id = ? AND id <> ?", *product.CategoryID, product.ID).
				Limit(8).
				Find(&related).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch related products"})
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{"products": related})
	}
}
