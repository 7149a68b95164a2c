package cartControllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Henilshingala/JiyashCreation/catalog"
	"github.com/Henilshingala/JiyashCreation/middleware"
	"github.com/Henilshingala/JiyashCreation/models"
	"github.com/Henilshingala/JiyashCreation/pricing"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AddToCartInput struct {
	ProductID   uint   `json:"product_id" binding:"required"`
	ProductType string `json:"product_type"`
	Quantity    int    `json:"quantity" binding:"omitempty,min=1"`
}

type UpdateCartInput struct {
	Quantity int `json:"quantity"`
}

// CartCount sums quantities across a user's cart rows.
func CartCount(db *gorm.DB, userID uint) int64 {
	var total int64
	db.Model(&models.CartItem{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&total)
	return total
}

// resolveTarget maps the submitted id (optionally type-qualified) to a
// customer-visible product.
func resolveTarget(db *gorm.DB, input AddToCartInput) (models.CatalogProduct, error) {
	if input.ProductType != "" {
		material, ok := models.ParseMaterial(input.ProductType)
		if !ok {
			return nil, catalog.ErrUnknownMaterial
		}
		return catalog.AvailableProduct(db, material, input.ProductID)
	}
	product, err := catalog.ResolveByID(db, input.ProductID)
	if err != nil {
		return nil, err
	}
	if !catalog.IsAvailable(db, product) {
		return nil, catalog.ErrNotFound
	}
	return product, nil
}

// POST /user/cart
func AddToCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")

		var input AddToCartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.Quantity == 0 {
			input.Quantity = 1
		}

		product, err := resolveTarget(db, input)
		if err != nil {
			switch err {
			case catalog.ErrNotFound:
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			case catalog.ErrUnknownMaterial:
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product type"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve product"})
			}
			return
		}
		ref := product.Ref()

		var item models.CartItem
		err = db.Where("user_id = ? AND material = ? AND product_id = ?",
			userID, ref.Material, ref.ProductID).First(&item).Error
		created := false
		switch {
		case err == gorm.ErrRecordNotFound:
			item = models.CartItem{
				UserID:   userID,
				Product:  ref,
				Quantity: input.Quantity,
				AddedAt:  time.Now(),
			}
			if err := db.Create(&item).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
				return
			}
			created = true
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart item"})
			return
		default:
			// Repeated add increments in the database, not read-modify-write,
			// so concurrent adds cannot lose updates.
			if err := db.Model(&item).
				UpdateColumn("quantity", gorm.Expr("quantity + ?", input.Quantity)).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
				return
			}
			item.Quantity += input.Quantity
		}

		status := http.StatusOK
		if created {
			status = http.StatusCreated
		}
		c.JSON(status, gin.H{
			"success":    true,
			"created":    created,
			"item":       item,
			"product":    product,
			"cart_count": CartCount(db, userID),
		})
	}
}

// GET /user/cart
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")
		user := middleware.CurrentUser(c, db)

		var items []models.CartItem
		if err := db.Where("user_id = ?", userID).Order("added_at DESC").Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		type cartLine struct {
			ID       int64                 `json:"id"`
			Product  models.CatalogProduct `json:"product"`
			Quantity int                   `json:"quantity"`
		}

		var (
			lines    []cartLine
			products []models.CatalogProduct
			rows     []models.CartItem
		)
		for _, item := range items {
			product := catalog.Dereference(db, item.Product)
			if product == nil {
				// Dangling ref: the target was deleted, skip silently.
				continue
			}
			products = append(products, product)
			rows = append(rows, item)
			lines = append(lines, cartLine{ID: int64(item.ID), Product: product, Quantity: item.Quantity})
		}

		pricing.PriceForUser(db, user, products)

		discountLines := make([]pricing.Line, len(rows))
		for i, product := range products {
			discountLines[i] = pricing.Line{
				Material:  product.Ref().Material,
				UnitPrice: product.Display().DisplaySellingPrice,
				Quantity:  rows[i].Quantity,
			}
		}
		summary := pricing.Summarize(discountLines)

		c.JSON(http.StatusOK, gin.H{
			"success":    true,
			"items":      lines,
			"summary":    summary,
			"cart_count": CartCount(db, userID),
		})
	}
}

// PUT /user/cart/:item_id
func UpdateCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")
		itemID, err := strconv.Atoi(c.Param("item_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id"})
			return
		}

		var input UpdateCartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var item models.CartItem
		if err := db.Where("id = ? AND user_id = ?", itemID, userID).First(&item).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart item"})
			return
		}

		// A non-positive quantity means removal, not an error.
		if input.Quantity <= 0 {
			if err := db.Delete(&item).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove cart item"})
				return
			}
			c.JSON(http.StatusOK, gin.H{
				"success":    true,
				"removed":    true,
				"cart_count": CartCount(db, userID),
			})
			return
		}

		if err := db.Model(&item).Update("quantity", input.Quantity).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}
		item.Quantity = input.Quantity
		c.JSON(http.StatusOK, gin.H{
			"success":    true,
			"item":       item,
			"cart_count": CartCount(db, userID),
		})
	}
}

// DELETE /user/cart/:item_id
func RemoveCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")
		itemID := c.Param("item_id")

		result := db.Where("id = ? AND user_id = ?", itemID, userID).Delete(&models.CartItem{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success":    true,
			"cart_count": CartCount(db, userID),
		})
	}
}

// DELETE /user/cart
func ClearCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")
		if err := db.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Cart cleared"})
	}
}
