package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/Henilshingala/JiyashCreation/catalog"
	"github.com/Henilshingala/JiyashCreation/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProductUpdateInput struct {
	Name          *string `json:"name"`
	Description   *string `json:"description"`
	Image1        *string `json:"image1"`
	Image2        *string `json:"image2"`
	Image3        *string `json:"image3"`
	Video         *string `json:"video"`
	OriginalPrice *string `json:"original_price"`
	SellingPrice  *string `json:"selling_price"`
	Weight        *string `json:"weight"`
	Detail        *string `json:"detail"`
	StockQuantity *int    `json:"stock_quantity"`
}

type ActiveInput struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

func (in ProductUpdateInput) changes(material models.MaterialType) map[string]any {
	updates := map[string]any{}
	set := func(col string, v *string) {
		if v != nil {
			updates[col] = *v
		}
	}
	set("name", in.Name)
	set("description", in.Description)
	set("image1", in.Image1)
	set("image2", in.Image2)
	set("image3", in.Image3)
	set("video", in.Video)
	set("original_price", in.OriginalPrice)
	set("selling_price", in.SellingPrice)
	set("weight", in.Weight)
	if in.StockQuantity != nil {
		updates["stock_quantity"] = *in.StockQuantity
	}
	if in.Detail != nil {
		switch material {
		case models.MaterialGold:
			updates["carat_metal_purity"] = *in.Detail
		case models.MaterialSilver:
			updates["purity"] = *in.Detail
		case models.MaterialImitation:
			updates["material_details"] = *in.Detail
		}
	}
	return updates
}

// UpdateProduct patches the supplied fields of one product.
// URL: PUT /admin/products/:material/:id
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		material, ok := models.ParseMaterial(c.Param("material"))
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product type"})
			return
		}
		id := c.Param("id")

		var input ProductUpdateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		updates := input.changes(material)
		if len(updates) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
			return
		}

		var result *gorm.DB
		switch material {
		case models.MaterialGold:
			result = db.Model(&models.GoldProduct{}).Where("id = ?", id).Updates(updates)
		case models.MaterialSilver:
			result = db.Model(&models.SilverProduct{}).Where("id = ?", id).Updates(updates)
		case models.MaterialImitation:
			result = db.Model(&models.ImitationProduct{}).Where("id = ?", id).Updates(updates)
		}
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product updated"})
	}
}

// SetProductActive flips one product's flag without touching the hierarchy.
// URL: PUT /admin/products/:material/:id/active
func SetProductActive(db *gorm.DB) gin.HandlerFunc {
	return setActive(db, catalog.SetProductActive)
}

// SetCategoryActive flips one category's flag; its own subtree follows at
// query time through the availability predicate.
// URL: PUT /admin/categories/:material/:id/active
func SetCategoryActive(db *gorm.DB) gin.HandlerFunc {
	return setActive(db, catalog.SetCategoryActive)
}

// SetSubCategoryActive flips one subcategory's flag.
// URL: PUT /admin/subcategories/:material/:id/active
func SetSubCategoryActive(db *gorm.DB) gin.HandlerFunc {
	return setActive(db, catalog.SetSubCategoryActive)
}

func setActive(db *gorm.DB, flip func(*gorm.DB, models.MaterialType, uint, bool) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		material, ok := models.ParseMaterial(c.Param("material"))
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid material type"})
			return
		}
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
			return
		}
		var input ActiveInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if err := flip(db, material, uint(id), *input.IsActive); err != nil {
			if err == catalog.ErrNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "is_active": *input.IsActive})
	}
}
