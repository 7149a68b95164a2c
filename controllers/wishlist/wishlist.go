package wishlistControllers

import (
	"net/http"
	"time"

	"github.com/Henilshingala/JiyashCreation/catalog"
	"github.com/Henilshingala/JiyashCreation/middleware"
	"github.com/Henilshingala/JiyashCreation/models"
	"github.com/Henilshingala/JiyashCreation/pricing"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type WishlistInput struct {
	ProductID   uint   `json:"product_id" binding:"required"`
	ProductType string `json:"product_type"`
}

type StatusInput struct {
	ProductIDs []uint `json:"product_ids" binding:"required"`
}

func resolve(db *gorm.DB, input WishlistInput) (models.CatalogProduct, error) {
	if input.ProductType != "" {
		material, ok := models.ParseMaterial(input.ProductType)
		if !ok {
			return nil, catalog.ErrUnknownMaterial
		}
		return catalog.ResolveRef(db, models.ProductRef{Material: material, ProductID: input.ProductID})
	}
	return catalog.ResolveByID(db, input.ProductID)
}

// POST /user/wishlist
// Adding an item already on the wishlist is a no-op returning the existing
// row; the schema itself stays permissive.
func AddToWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")

		var input WishlistInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product, err := resolve(db, input)
		if err != nil {
			if err == catalog.ErrNotFound || err == catalog.ErrUnknownMaterial {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve product"})
			return
		}
		ref := product.Ref()

		var item models.WishlistItem
		err = db.Where("user_id = ? AND material = ? AND product_id = ?",
			userID, ref.Material, ref.ProductID).First(&item).Error
		created := false
		switch {
		case err == gorm.ErrRecordNotFound:
			item = models.WishlistItem{UserID: userID, Product: ref, AddedAt: time.Now()}
			if err := db.Create(&item).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to wishlist"})
				return
			}
			created = true
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch wishlist"})
			return
		}

		status := http.StatusOK
		if created {
			status = http.StatusCreated
		}
		c.JSON(status, gin.H{
			"success":      true,
			"created":      created,
			"in_wishlist":  true,
			"item":         item,
			"product_id":   ref.ProductID,
			"product_type": ref.Material,
		})
	}
}

// DELETE /user/wishlist/:material/:product_id
func RemoveFromWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")
		material, ok := models.ParseMaterial(c.Param("material"))
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product type"})
			return
		}
		productID := c.Param("product_id")

		result := db.Where("user_id = ? AND material = ? AND product_id = ?",
			userID, material, productID).Delete(&models.WishlistItem{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove from wishlist"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success":     true,
			"in_wishlist": false,
			"removed":     result.RowsAffected > 0,
		})
	}
}

// GET /user/wishlist
func GetWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")
		user := middleware.CurrentUser(c, db)

		var items []models.WishlistItem
		if err := db.Where("user_id = ?", userID).Order("added_at DESC").Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch wishlist"})
			return
		}

		type wishlistLine struct {
			ID      uint                  `json:"id"`
			Product models.CatalogProduct `json:"product"`
			AddedAt time.Time             `json:"added_at"`
		}

		var (
			lines    []wishlistLine
			products []models.CatalogProduct
		)
		for _, item := range items {
			product := catalog.Dereference(db, item.Product)
			if product == nil {
				continue
			}
			products = append(products, product)
			lines = append(lines, wishlistLine{ID: item.ID, Product: product, AddedAt: item.AddedAt})
		}
		pricing.PriceForUser(db, user, products)

		c.JSON(http.StatusOK, gin.H{"success": true, "items": lines, "count": len(lines)})
	}
}

// POST /user/wishlist/status
// Batch membership check for product cards; ids are resolved the same way
// the add path resolves them.
func WishlistStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")

		var input StatusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		status := make(map[uint]bool, len(input.ProductIDs))
		for _, id := range input.ProductIDs {
			status[id] = false
			product, err := catalog.ResolveByID(db, id)
			if err != nil {
				continue
			}
			ref := product.Ref()
			var n int64
			db.Model(&models.WishlistItem{}).
				Where("user_id = ? AND material = ? AND product_id = ?", userID, ref.Material, ref.ProductID).
				Count(&n)
			status[id] = n > 0
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "status": status})
	}
}
