package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	couponControllers "github.com/sarelalush/Orel-site/controllers/coupon"
	productcontroller "github.com/sarelalush/Orel-site/controllers/product"
	reviewControllers "github.com/sarelalush/Orel-site/controllers/review"
)

// SetupCatalogRoutes registers the public storefront reads under "/catalog".
// No auth: guests browse the same surface as signed-in users.
func SetupCatalogRoutes(r *gin.Engine, db *gorm.DB, deps Deps) {
	catalogGroup := r.Group("/catalog")
	{
		catalogGroup.GET("/products", productcontroller.GetProducts(db, deps.Cache))
		catalogGroup.GET("/products/:id", productcontroller.GetProductByID(db))
		catalogGroup.GET("/products/:id/related", productcontroller.GetRelatedProducts(db))
		catalogGroup.GET("/products/:id/reviews", reviewControllers.GetProductReviews(db))

		catalogGroup.GET("/categories", productcontroller.GetAllCategories(db, deps.Cache))
		catalogGroup.GET("/categories/tree", productcontroller.GetCategoryTree(db, deps.Cache))
		catalogGroup.GET("/breadcrumbs", productcontroller.GetBreadcrumbs(db))

		catalogGroup.POST("/coupons/validate", couponControllers.ValidateCoupon(db))
	}
}
