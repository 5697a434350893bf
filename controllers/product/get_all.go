package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sarelalush/Orel-site/cache"
	"github.com/sarelalush/Orel-site/catalog"
	"github.com/sarelalush/Orel-site/models"
)

const productListCacheKey = "catalog:products:all"

// loadCatalog fetches all products with their full category parent chain,
// behind a short TTL cache. Filtering happens in memory because the tri-level
// slug match walks the preloaded chain, not SQL.
func loadCatalog(db *gorm.DB, ch *cache.Cache) ([]models.Product, error) {
	if cached, ok := ch.Get(productListCacheKey); ok {
		if products, ok := cached.([]models.Product); ok {
			return products, nil
		}
	}

	var products []models.Product
	err := db.Preload("Category.Parent.Parent").Find(&products).Error
	if err != nil {
		return nil, err
	}
	attachRatings(db, products)
	ch.Set(productListCacheKey, products, 0)
	return products, nil
}

func attachRatings(db *gorm.DB, products []models.Product) {
	var rows []struct {
		ProductID uint
		Avg       float64
		Count     int
	}
	if err := db.Model(&models.Review{}).
		Select("product_id, COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Group("product_id").
		Scan(&rows).Error; err != nil {
		return
	}
	byProduct := make(map[uint]int, len(rows))
	for i, r := range rows {
		byProduct[r.ProductID] = i
	}
	for i := range products {
		if j, ok := byProduct[products[i].ID]; ok {
			products[i].RatingAvg = rows[j].Avg
			products[i].RatingCount = rows[j].Count
		}
	}
}

// GET /catalog/products?category=&type=&subtype=&search=&sort=
func GetProducts(db *gorm.DB, ch *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := loadCatalog(db, ch)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		q := catalog.Query{
			Category: normalizeSlug(c.Query("category")),
			Type:     normalizeSlug(c.Query("type")),
			Subtype:  normalizeSlug(c.Query("subtype")),
			Search:   c.Query("search"),
			Sort:     c.Query("sort"),
		}

		c.JSON(http.StatusOK, gin.H{
			"products": catalog.FilterAndSort(products, q),
		})
	}
}

// The storefront serializes missing params as the literal string "undefined";
// treat it as absent.
func normalizeSlug(v string) string {
	if v == "undefined" {
		return ""
	}
	return v
}
