package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/Henilshingala/JiyashCreation/catalog"
	"github.com/Henilshingala/JiyashCreation/middleware"
	"github.com/Henilshingala/JiyashCreation/models"
	"github.com/Henilshingala/JiyashCreation/pricing"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetProduct returns a single customer-visible product with its related
// products, priced for the requesting user.
// URL: GET /products/:material/:id
func GetProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		material, ok := models.ParseMaterial(c.Param("material"))
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product type"})
			return
		}
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		product, err := catalog.AvailableProduct(db, material, uint(id))
		if err != nil {
			if err == catalog.ErrNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}

		related, err := catalog.RelatedProducts(db, product, 4)
		if err != nil {
			related = nil
		}

		user := middleware.CurrentUser(c, db)
		pricing.PriceForUser(db, user, append([]models.CatalogProduct{product}, related...))

		c.JSON(http.StatusOK, gin.H{
			"product":          product,
			"product_type":     material,
			"related_products": related,
		})
	}
}

// GetAdminProduct bypasses the active-scope filter for the admin side.
// URL: GET /admin/products/:material/:id
func GetAdminProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		material, ok := models.ParseMaterial(c.Param("material"))
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product type"})
			return
		}
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		product, err := catalog.ResolveRef(db, models.ProductRef{Material: material, ProductID: uint(id)})
		if err != nil {
			if err == catalog.ErrNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
