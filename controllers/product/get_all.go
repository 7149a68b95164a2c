package productcontroller

import (
	"net/http"

	"github.com/Henilshingala/JiyashCreation/catalog"
	"github.com/Henilshingala/JiyashCreation/middleware"
	"github.com/Henilshingala/JiyashCreation/models"
	"github.com/Henilshingala/JiyashCreation/pricing"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetProducts is the shop-all listing: cross-material search with price
// range and sorting.
// URL: GET /products?q=&min_price=&max_price=&sort=
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		filters := catalog.Filters{Query: c.Query("q")}

		if v := c.Query("min_price"); v != "" {
			min, err := decimal.NewFromString(v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_price"})
				return
			}
			filters.MinPrice = &min
		}
		if v := c.Query("max_price"); v != "" {
			max, err := decimal.NewFromString(v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
				return
			}
			filters.MaxPrice = &max
		}

		products, err := catalog.SearchAvailable(db, filters)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		// Pricing first, sort second, so price sorts follow the
		// multiplier the user will actually see.
		user := middleware.CurrentUser(c, db)
		pricing.PriceForUser(db, user, products)
		catalog.SortProducts(products, catalog.Sort(c.DefaultQuery("sort", string(catalog.SortNewest))))

		c.JSON(http.StatusOK, gin.H{
			"products":       products,
			"total_products": len(products),
		})
	}
}

// NewArrivals returns the three most recent available products across all
// active materials.
// URL: GET /home/new-arrivals
func NewArrivals(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := catalog.SearchAvailable(db, catalog.Filters{})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		catalog.SortProducts(products, catalog.SortNewest)
		if len(products) > 3 {
			products = products[:3]
		}
		user := middleware.CurrentUser(c, db)
		pricing.PriceForUser(db, user, products)

		c.JSON(http.StatusOK, gin.H{"products": products})
	}
}

// MostWishlisted returns the top three available products by wishlist count.
// URL: GET /home/most-wishlisted
func MostWishlisted(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := catalog.SearchAvailable(db, catalog.Filters{})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		type counted struct {
			product models.CatalogProduct
			count   int64
		}
		var ranked []counted
		for _, p := range products {
			ref := p.Ref()
			var n int64
			db.Model(&models.WishlistItem{}).
				Where("material = ? AND product_id = ?", ref.Material, ref.ProductID).
				Count(&n)
			if n > 0 {
				ranked = append(ranked, counted{product: p, count: n})
			}
		}
		for i := 0; i < len(ranked); i++ {
			for j := i + 1; j < len(ranked); j++ {
				if ranked[j].count > ranked[i].count {
					ranked[i], ranked[j] = ranked[j], ranked[i]
				}
			}
		}
		if len(ranked) > 3 {
			ranked = ranked[:3]
		}

		top := make([]models.CatalogProduct, len(ranked))
		counts := make([]int64, len(ranked))
		for i, r := range ranked {
			top[i] = r.product
			counts[i] = r.count
		}
		user := middleware.CurrentUser(c, db)
		pricing.PriceForUser(db, user, top)

		c.JSON(http.StatusOK, gin.H{"products": top, "wishlist_counts": counts})
	}
}

// GetAllProducts is the unfiltered admin listing for one material.
// URL: GET /admin/products/:material
func GetAllProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		material, ok := models.ParseMaterial(c.Param("material"))
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product type"})
			return
		}
		products, err := catalog.AllProducts(db, material)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": products, "total_products": len(products)})
	}
}
