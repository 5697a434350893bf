package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/sarelalush/Orel-site/controllers/cart"
	compareControllers "github.com/sarelalush/Orel-site/controllers/compare"
	loyaltyControllers "github.com/sarelalush/Orel-site/controllers/loyalty"
	orderControllers "github.com/sarelalush/Orel-site/controllers/order"
	paymentControllers "github.com/sarelalush/Orel-site/controllers/payment"
	reviewControllers "github.com/sarelalush/Orel-site/controllers/review"
	userControllers "github.com/sarelalush/Orel-site/controllers/user"
	wishlistControllers "github.com/sarelalush/Orel-site/controllers/wishlist"
	"github.com/sarelalush/Orel-site/middleware"
)

// SetupUserRoutes registers all "/user/*" endpoints. Everything here needs a
// JWT; everything below the compare group additionally rejects guest tokens.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB, deps Deps) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken(deps.Config))

	// Compare works for guests too: the tray is keyed by whatever id the
	// token carries.
	compareGroup := userGroup.Group("/compare")
	{
		compareGroup.GET("/", compareControllers.GetCompareList(db))
		compareGroup.POST("/", compareControllers.AddToCompare(db, deps.Config))
		compareGroup.DELETE("/:product_id", compareControllers.RemoveFromCompare(db))
		compareGroup.DELETE("/", compareControllers.ClearCompare(db))
	}

	userGroup.Use(middleware.RequireUser())
	{
		userGroup.GET("/", userControllers.GetUser(db))
		userGroup.PUT("/", userControllers.UpdateUser(db))

		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetUserCart(db))
			cartGroup.POST("/", cartControllers.AddCartItem(db))
			cartGroup.PUT("/:item_id", cartControllers.UpdateCartItemQuantity(db))
			cartGroup.DELETE("/:item_id", cartControllers.DeleteCartItem(db))
			cartGroup.DELETE("/", cartControllers.ClearUserCart(db))
		}

		wishlistGroup := userGroup.Group("/wishlist")
		{
			wishlistGroup.GET("/", wishlistControllers.GetWishlist(db))
			wishlistGroup.POST("/", wishlistControllers.AddToWishlist(db))
			wishlistGroup.DELETE("/:product_id", wishlistControllers.RemoveFromWishlist(db))
		}

		reviewGroup := userGroup.Group("/reviews")
		{
			reviewGroup.POST("/", reviewControllers.SubmitReview(db))
			reviewGroup.DELETE("/:id", reviewControllers.DeleteReview(db))
			reviewGroup.POST("/:id/helpful", reviewControllers.MarkReviewHelpful(db))
		}

		loyaltyGroup := userGroup.Group("/loyalty")
		{
			loyaltyGroup.GET("/account", loyaltyControllers.GetAccount(db))
			loyaltyGroup.GET("/transactions", loyaltyControllers.GetTransactions(db))
			loyaltyGroup.POST("/preview", loyaltyControllers.PreviewRedemption(db, deps.Config))
		}

		orderGroup := userGroup.Group("/orders")
		{
			orderGroup.POST("/", orderControllers.PlaceOrder(db, deps.Config, deps.Hub, deps.Mailer))
			orderGroup.GET("/", orderControllers.GetUserOrders(db))
			orderGroup.GET("/:ref", orderControllers.GetOrderByRef(db))
		}

		paymentGroup := userGroup.Group("/payments")
		{
			paymentGroup.POST("/intent", paymentControllers.CreatePaymentIntent(db, deps.Config))
			paymentGroup.POST("/confirm", paymentControllers.ConfirmPayment(db, deps.Config))
		}
	}
}
