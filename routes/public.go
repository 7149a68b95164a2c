package routes

import (
	adminController "github.com/Henilshingala/JiyashCreation/controllers/admin"
	productcontroller "github.com/Henilshingala/JiyashCreation/controllers/product"
	reviewControllers "github.com/Henilshingala/JiyashCreation/controllers/review"
	userControllers "github.com/Henilshingala/JiyashCreation/controllers/user"
	"github.com/Henilshingala/JiyashCreation/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupPublicRoutes registers the auth endpoints and the storefront browse
// endpoints. Browse routes take an optional JWT so a logged-in viewer gets
// country-adjusted prices while anonymous visitors see home pricing.
func SetupPublicRoutes(r *gin.Engine, db *gorm.DB) {
	// ──────────────── Auth ────────────────
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/signup", userControllers.Signup(db))
		authGroup.POST("/login", userControllers.Login(db))
		authGroup.POST("/forgot-password", userControllers.ForgotPassword(db))
		authGroup.POST("/verify-otp", userControllers.VerifyResetOTP(db))
		authGroup.POST("/reset-password", userControllers.ResetPassword(db))
	}

	// ──────────────── Storefront ────────────────
	shop := r.Group("/")
	shop.Use(middleware.OptionalAuth)
	{
		shop.GET("/materials", productcontroller.GetHeaderMaterials(db))
		shop.GET("/categories/:material", productcontroller.GetCategories(db))
		shop.GET("/categories/:material/:id/products", productcontroller.GetCategoryProducts(db))
		shop.GET("/subcategories/:material/:id/products", productcontroller.GetSubCategoryProducts(db))

		shop.GET("/products", productcontroller.GetProducts(db))
		shop.GET("/products/:material/:id", productcontroller.GetProduct(db))
		shop.GET("/products/:material/:id/reviews", reviewControllers.GetProductReviews(db))

		shop.GET("/home/new-arrivals", productcontroller.NewArrivals(db))
		shop.GET("/home/most-wishlisted", productcontroller.MostWishlisted(db))
		shop.GET("/home/sliders", adminController.GetActiveSliders(db))
	}
}
