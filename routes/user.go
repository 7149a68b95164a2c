package routes

import (
	cartControllers "github.com/Henilshingala/JiyashCreation/controllers/cart"
	orderControllers "github.com/Henilshingala/JiyashCreation/controllers/order"
	reviewControllers "github.com/Henilshingala/JiyashCreation/controllers/review"
	userControllers "github.com/Henilshingala/JiyashCreation/controllers/user"
	wishlistControllers "github.com/Henilshingala/JiyashCreation/controllers/wishlist"
	"github.com/Henilshingala/JiyashCreation/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.RequireAuth)
	{
		// ──────────────── Profile ────────────────
		userGroup.GET("/", userControllers.GetProfile(db))
		userGroup.PUT("/", userControllers.UpdateProfile(db))

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetCart(db))
			cartGroup.POST("/", cartControllers.AddToCart(db))
			cartGroup.PUT("/:item_id", cartControllers.UpdateCartItem(db))
			cartGroup.DELETE("/:item_id", cartControllers.RemoveCartItem(db))
			cartGroup.DELETE("/", cartControllers.ClearCart(db))
		}

		// ──────────────── Wishlist ────────────────
		wishlistGroup := userGroup.Group("/wishlist")
		{
			wishlistGroup.GET("/", wishlistControllers.GetWishlist(db))
			wishlistGroup.POST("/", wishlistControllers.AddToWishlist(db))
			wishlistGroup.POST("/status", wishlistControllers.WishlistStatus(db))
			wishlistGroup.DELETE("/:material/:product_id", wishlistControllers.RemoveFromWishlist(db))
		}

		// ──────────────── Reviews ────────────────
		userGroup.POST("/reviews", reviewControllers.CreateReview(db))
		userGroup.DELETE("/reviews/:id", reviewControllers.DeleteReview(db))

		// ──────────────── Orders ────────────────
		orderGroup := userGroup.Group("/orders")
		{
			orderGroup.POST("/", orderControllers.PlaceOrder(db))
			orderGroup.GET("/", orderControllers.GetUserOrders(db))
			orderGroup.GET("/:id", orderControllers.GetOrder(db))
		}
	}
}
