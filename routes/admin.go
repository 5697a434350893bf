package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	adminControllers "github.com/sarelalush/Orel-site/controllers/admin"
	cartControllers "github.com/sarelalush/Orel-site/controllers/cart"
	couponControllers "github.com/sarelalush/Orel-site/controllers/coupon"
	loyaltyControllers "github.com/sarelalush/Orel-site/controllers/loyalty"
	orderControllers "github.com/sarelalush/Orel-site/controllers/order"
	productcontroller "github.com/sarelalush/Orel-site/controllers/product"
	userControllers "github.com/sarelalush/Orel-site/controllers/user"
	"github.com/sarelalush/Orel-site/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires API-key
// middleware. The order feed websocket lives here too so the console can
// watch orders land live.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, deps Deps) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey(deps.Config))
	{
		adminGroup.GET("/dashboard", adminControllers.GetDashboard(db))

		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.GET("", productcontroller.GetProducts(db, deps.Cache))
			productAdmin.POST("", productcontroller.CreateProduct(db, deps.Storage, deps.Cache))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(db, deps.Storage, deps.Cache))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(db, deps.Storage, deps.Cache))
			productAdmin.POST("/import-excel", productcontroller.ImportProductsFromExcel(db, deps.Cache))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(db))
		}

		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.GET("", productcontroller.GetAllCategories(db, deps.Cache))
			categoryAdmin.POST("", productcontroller.CreateCategory(db, deps.Storage, deps.Cache))
			categoryAdmin.PUT("/:id", productcontroller.UpdateCategory(db, deps.Storage, deps.Cache))
			categoryAdmin.DELETE("/:id", productcontroller.DeleteCategory(db, deps.Storage, deps.Cache))
		}

		couponAdmin := adminGroup.Group("/coupons")
		{
			couponAdmin.GET("", couponControllers.GetAllCoupons(db))
			couponAdmin.POST("", couponControllers.CreateCoupon(db))
			couponAdmin.PUT("/:id", couponControllers.UpdateCoupon(db))
			couponAdmin.DELETE("/:id", couponControllers.DeleteCoupon(db))
		}

		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAllOrders(db))
			orderAdmin.PUT("/:id/status", orderControllers.UpdateOrderStatus(db, deps.Config))
		}

		userAdmin := adminGroup.Group("/users")
		{
			userAdmin.GET("", userControllers.GetAllUsers(db))
			userAdmin.PUT("/:id/role", userControllers.UpdateUserRole(db))
		}

		loyaltyAdmin := adminGroup.Group("/loyalty")
		{
			loyaltyAdmin.GET("/:user_id", loyaltyControllers.GetUserAccount(db))
			loyaltyAdmin.POST("/:user_id/adjust", loyaltyControllers.AdjustPoints(db))
		}

		adminGroup.GET("/user-cart/:user_id", cartControllers.GetAdminUserCart(db))

		monitoringAdmin := adminGroup.Group("/monitoring")
		{
			monitoringAdmin.GET("/logs", adminControllers.GetLogs(deps.Logger))
			monitoringAdmin.GET("/requests", adminControllers.GetRequests(deps.Recorder))
		}
	}
}
