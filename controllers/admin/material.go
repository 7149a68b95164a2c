package adminController

import (
	"net/http"

	"github.com/Henilshingala/JiyashCreation/catalog"
	"github.com/Henilshingala/JiyashCreation/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MaterialToggleInput struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

// GET /admin/materials
func GetMaterialSwitches(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		active, err := catalog.ActiveMaterials(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch material switches"})
			return
		}
		c.JSON(http.StatusOK, active)
	}
}

// PUT /admin/materials/:material
// Flips the top-level switch and cascades the flag down through the
// material's categories, subcategories and products in one transaction.
func SetMaterialActive(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		material, ok := models.ParseMaterial(c.Param("material"))
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown material type"})
			return
		}
		var input MaterialToggleInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if err := catalog.SetMaterialActive(db, material, *input.IsActive); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update material"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "material": material, "is_active": *input.IsActive})
	}
}
