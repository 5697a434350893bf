package productcontroller

import (
	"encoding/json"
	"net/http"
	"regexp"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sarelalush/Orel-site/cache"
	"github.com/sarelalush/Orel-site/models"
	"github.com/sarelalush/Orel-site/storage"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// CreateProduct creates a product from a multipart form with an optional
// image upload. The binary goes to object storage first; if the row insert
// then fails the uploaded object is removed best-effort.
func CreateProduct(db *gorm.DB, store storage.Uploader, ch *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.PostForm("name")
		slug := c.PostForm("slug")
		priceStr := c.PostForm("price")
		if name == "" || slug == "" || priceStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name, slug and price are required"})
			return
		}
		if !slugPattern.MatchString(slug) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "slug must be lowercase letters, digits and dashes"})
			return
		}

		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil || price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
			return
		}

		product := models.Product{
			Name:        name,
			Slug:        slug,
			Description: c.PostForm("description"),
			Price:       price,
			IsNew:       c.PostForm("is_new") == "true",
			HasSizes:    c.PostForm("has_sizes") == "true",
			HasColors:   c.PostForm("has_colors") == "true",
		}

		if v := c.PostForm("sale_price"); v != "" {
			sp, err := strconv.ParseFloat(v, 64)
			if err != nil || sp < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sale_price"})
				return
			}
			product.SalePrice = &sp
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
			id := uint(cid)
			product.CategoryID = &id
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

		if file, err := c.FormFile("image"); err == nil {
			url, uploadErr := store.Upload(c.Request.Context(), "products", file)
			if uploadErr != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
				return
			}
			product.ImageURL = url
		}

		if err := db.Create(&product).Error; err != nil {
			if product.ImageURL != "" {
				_ = store.Delete(c.Request.Context(), product.ImageURL)
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		ch.InvalidatePattern("^catalog:")
		c.JSON(http.StatusCreated, product)
	}
}
