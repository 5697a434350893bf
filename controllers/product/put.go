package productcontroller

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sarelalush/Orel-site/cache"
	"github.com/sarelalush/Orel-site/models"
	"github.com/sarelalush/Orel-site/storage"
)

// UpdateProduct applies the multipart fields that were sent, leaving the rest
// untouched. A new image replaces the old one; the old object is deleted
// best-effort after the row write succeeds.
func UpdateProduct(db *gorm.DB, store storage.Uploader, ch *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var product models.Product
		if err := db.First(&product, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		if v := c.PostForm("name"); v != "" {
			product.Name = v
		}
		if v := c.PostForm("slug"); v != "" {
			if !slugPattern.MatchString(v) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "slug must be lowercase letters, digits and dashes"})
				return
			}
			product.Slug = v
		}
		if v := c.PostForm("description"); v != "" {
			product.Description = v
		}
		if v := c.PostForm("price"); v != "" {
			price, err := strconv.ParseFloat(v, 64)
			if err != nil || price < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
				return
			}
			product.Price = price
		}
		if v := c.PostForm("sale_price"); v != "" {
			if v == "none" {
				product.SalePrice = nil
			} else {
				sp, err := strconv.ParseFloat(v, 64)
				if err != nil || sp < 0 {
					c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sale_price"})
					return
				}
				product.SalePrice = &sp
			}
		}
		if v := c.PostForm("stock"); v != "" {
			stock, err := strconv.Atoi(v)
			if err != nil || stock < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stock"})
				return
			}
			product.Stock = stock
		}
		if v := c.PostForm("category_id"); v != "" {
			cid, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_id"})
				return
			}
			var category models.Category
			if err := db.First(&category, uint(cid)).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not exist"})
				return
			}
			cu := uint(cid)
			product.CategoryID = &cu
		}
		if v := c.PostForm("is_new"); v != "" {
			product.IsNew = v == "true"
		}
		if v := c.PostForm("has_sizes"); v != "" {
			product.HasSizes = v == "true"
		}
		if v := c.PostForm("has_colors"); v != "" {
			product.HasColors = v == "true"
		}
		if v := c.PostForm("quantity_discount_min"); v != "" {
			min, err := strconv.Atoi(v)
			if err != nil || min < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quantity_discount_min"})
				return
			}
			product.QuantityDiscountMin = min
		}
		if v := c.PostForm("quantity_discount_percent"); v != "" {
			pct, err := strconv.ParseFloat(v, 64)
			if err != nil || pct < 0 || pct > 100 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quantity_discount_percent"})
				return
			}
			product.QuantityDiscountPercent = pct
		}
		if v := c.PostForm("available_sizes"); v != "" {
			var sizes []string
			if err := json.Unmarshal([]byte(v), &sizes); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid available_sizes"})
				return
			}
			product.Sizes = models.JSONStrings(sizes)
		}
		if v := c.PostForm("available_colors"); v != "" {
			var colors []models.ColorOption
			if err := json.Unmarshal([]byte(v), &colors); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid available_colors"})
				return
			}
			product.Colors = models.JSONColors(colors)
		}

		oldImage := product.ImageURL
		if file, err := c.FormFile("image"); err == nil {
			url, uploadErr := store.Upload(c.Request.Context(), "products", file)
			if uploadErr != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
				return
			}
			product.ImageURL = url
		}

		if err := db.Save(&product).Error; err != nil {
			if product.ImageURL != oldImage {
				_ = store.Delete(c.Request.Context(), product.ImageURL)
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}
		if oldImage != "" && product.ImageURL != oldImage {
			_ = store.Delete(c.Request.Context(), oldImage)
		}

		ch.InvalidatePattern("^catalog:")
		c.JSON(http.StatusOK, product)
	}
}
