package productcontroller

import (
	"net/http"

	"github.com/Henilshingala/JiyashCreation/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DeleteProduct removes a product row. Cart, wishlist, order and review
// refs pointing at it go dangling and disappear from listings.
// URL: DELETE /admin/products/:material/:id
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		material, ok := models.ParseMaterial(c.Param("material"))
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product type"})
			return
		}
		id := c.Param("id")

		var result *gorm.DB
		switch material {
		case models.MaterialGold:
			result = db.Delete(&models.GoldProduct{}, id)
		case models.MaterialSilver:
			result = db.Delete(&models.SilverProduct{}, id)
		case models.MaterialImitation:
			result = db.Delete(&models.ImitationProduct{}, id)
		}
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
	}
}
