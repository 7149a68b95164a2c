package routes

import (
	adminController "github.com/Henilshingala/JiyashCreation/controllers/admin"
	orderControllers "github.com/Henilshingala/JiyashCreation/controllers/order"
	productcontroller "github.com/Henilshingala/JiyashCreation/controllers/product"
	"github.com/Henilshingala/JiyashCreation/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires API-Key middleware.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		// ─────────── Material Switches ───────────
		adminGroup.GET("/materials", adminController.GetMaterialSwitches(db))
		adminGroup.PUT("/materials/:material", adminController.SetMaterialActive(db))

		// ─────────── Category Management ───────────
		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.POST("/:material", productcontroller.CreateCategory(db))
			categoryAdmin.PUT("/:material/:id/active", productcontroller.SetCategoryActive(db))
			categoryAdmin.DELETE("/:material/:id", productcontroller.DeleteCategory(db))
		}
		subCategoryAdmin := adminGroup.Group("/subcategories")
		{
			subCategoryAdmin.POST("/:material", productcontroller.CreateSubCategory(db))
			subCategoryAdmin.PUT("/:material/:id/active", productcontroller.SetSubCategoryActive(db))
		}

		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.GET("/:material", productcontroller.GetAllProducts(db))
			productAdmin.GET("/:material/:id", productcontroller.GetAdminProduct(db))
			productAdmin.POST("/:material", productcontroller.CreateProduct(db))
			productAdmin.PUT("/:material/:id", productcontroller.UpdateProduct(db))
			productAdmin.PUT("/:material/:id/active", productcontroller.SetProductActive(db))
			productAdmin.DELETE("/:material/:id", productcontroller.DeleteProduct(db))
		}

		// ─────────── Orders ───────────
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAllOrders(db))
			orderAdmin.PUT("/:id/status", orderControllers.UpdateOrderStatus(db))
			orderAdmin.PUT("/:id/payment", orderControllers.UpdatePaymentStatus(db))
		}

		// ─────────── Carousel Sliders ───────────
		sliderAdmin := adminGroup.Group("/sliders")
		{
			sliderAdmin.GET("", adminController.GetAllSliders(db))
			sliderAdmin.POST("", adminController.CreateSlider(db))
			sliderAdmin.PUT("/:id", adminController.UpdateSlider(db))
			sliderAdmin.DELETE("/:id", adminController.DeleteSlider(db))
		}

		// ─────────── Country Pricing ───────────
		adminGroup.GET("/multipliers", adminController.GetMultipliers(db))
		adminGroup.PUT("/multipliers", adminController.SetMultiplier(db))
	}
}
