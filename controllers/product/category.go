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

// GetHeaderMaterials lists the active top-level material switches for
// navigation.
// URL: GET /materials
func GetHeaderMaterials(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		active, err := catalog.ActiveMaterials(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch materials"})
			return
		}
		var materials []models.MaterialType
		for _, m := range models.Materials() {
			if active[m] {
				materials = append(materials, m)
			}
		}
		c.JSON(http.StatusOK, gin.H{"materials": materials})
	}
}

// GetCategories lists one material's active categories with their active
// subcategories nested.
// URL: GET /categories/:material
func GetCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		material, ok := models.ParseMaterial(c.Param("material"))
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category type"})
			return
		}
		categories, err := catalog.ActiveCategories(db, material)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"categories": categories})
	}
}

// GetCategoryProducts lists visible products under one category, priced for
// the requesting user.
// URL: GET /categories/:material/:id/products
func GetCategoryProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		material, ok := models.ParseMaterial(c.Param("material"))
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category type"})
			return
		}
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
			return
		}
		products, err := catalog.AvailableByCategory(db, material, uint(id))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		user := middleware.CurrentUser(c, db)
		pricing.PriceForUser(db, user, products)
		c.JSON(http.StatusOK, gin.H{"products": products, "total_products": len(products)})
	}
}

// GetSubCategoryProducts lists visible products under one subcategory.
// URL: GET /subcategories/:material/:id/products
func GetSubCategoryProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		material, ok := models.ParseMaterial(c.Param("material"))
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category type"})
			return
		}
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid subcategory ID"})
			return
		}
		products, err := catalog.AvailableBySubCategory(db, material, uint(id))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		user := middleware.CurrentUser(c, db)
		pricing.PriceForUser(db, user, products)
		c.JSON(http.StatusOK, gin.H{"products": products, "total_products": len(products)})
	}
}

type CategoryInput struct {
	Name  string `json:"name" binding:"required"`
	Image string `json:"image"`
}

type SubCategoryInput struct {
	CategoryID uint   `json:"category_id" binding:"required"`
	Name       string `json:"name" binding:"required"`
	Image      string `json:"image"`
}

// CreateCategory creates a category in one material's hierarchy.
// URL: POST /admin/categories/:material
func CreateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		material, ok := models.ParseMaterial(c.Param("material"))
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category type"})
			return
		}
		var input CategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var created any
		var err error
		switch material {
		case models.MaterialGold:
			row := models.GoldCategory{Name: input.Name, Image: input.Image, IsActive: true}
			err = db.Create(&row).Error
			created = row
		case models.MaterialSilver:
			row := models.SilverCategory{Name: input.Name, Image: input.Image, IsActive: true}
			err = db.Create(&row).Error
			created = row
		case models.MaterialImitation:
			row := models.ImitationCategory{Name: input.Name, Image: input.Image, IsActive: true}
			err = db.Create(&row).Error
			created = row
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

// CreateSubCategory creates a subcategory under a parent of the same
// material; a cross-material parent is rejected.
// URL: POST /admin/subcategories/:material
func CreateSubCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		material, ok := models.ParseMaterial(c.Param("material"))
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category type"})
			return
		}
		var input SubCategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var created any
		switch material {
		case models.MaterialGold:
			var parent models.GoldCategory
			if err := db.First(&parent, input.CategoryID).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Parent category not found"})
				return
			}
			row := models.GoldSubCategory{CategoryID: parent.ID, Name: input.Name, Image: input.Image, IsActive: true}
			if err := db.Create(&row).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create subcategory"})
				return
			}
			created = row
		case models.MaterialSilver:
			var parent models.SilverCategory
			if err := db.First(&parent, input.CategoryID).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Parent category not found"})
				return
			}
			row := models.SilverSubCategory{CategoryID: parent.ID, Name: input.Name, Image: input.Image, IsActive: true}
			if err := db.Create(&row).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create subcategory"})
				return
			}
			created = row
		case models.MaterialImitation:
			var parent models.ImitationCategory
			if err := db.First(&parent, input.CategoryID).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Parent category not found"})
				return
			}
			row := models.ImitationSubCategory{CategoryID: parent.ID, Name: input.Name, Image: input.Image, IsActive: true}
			if err := db.Create(&row).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create subcategory"})
				return
			}
			created = row
		}
		c.JSON(http.StatusCreated, created)
	}
}

// DeleteCategory removes a category; subcategories and products follow via
// the cascade constraints.
// URL: DELETE /admin/categories/:material/:id
func DeleteCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		material, ok := models.ParseMaterial(c.Param("material"))
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category type"})
			return
		}
		id := c.Param("id")

		var result *gorm.DB
		switch material {
		case models.MaterialGold:
			result = db.Delete(&models.GoldCategory{}, id)
		case models.MaterialSilver:
			result = db.Delete(&models.SilverCategory{}, id)
		case models.MaterialImitation:
			result = db.Delete(&models.ImitationCategory{}, id)
		}
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
	}
}
