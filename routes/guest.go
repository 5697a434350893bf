package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/sarelalush/Orel-site/controllers/cart"
	wishlistControllers "github.com/sarelalush/Orel-site/controllers/wishlist"
)

// SetupGuestRoutes registers anonymous cart and wishlist state, keyed by the
// ?guest_id= issued at /auth/guest. Rows here get merged into the user's own
// state when the guest signs in.
func SetupGuestRoutes(r *gin.Engine, db *gorm.DB) {
	guestGroup := r.Group("/guest")
	{
		cartGroup := guestGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetGuestCart(db))
			cartGroup.POST("/", cartControllers.AddGuestCartItem(db))
			cartGroup.DELETE("/:item_id", cartControllers.DeleteGuestCartItem(db))
		}

		wishlistGroup := guestGroup.Group("/wishlist")
		{
			wishlistGroup.GET("/", wishlistControllers.GetGuestWishlist(db))
			wishlistGroup.POST("/", wishlistControllers.AddToGuestWishlist(db))
			wishlistGroup.DELETE("/:product_id", wishlistControllers.RemoveFromGuestWishlist(db))
		}
	}
}
