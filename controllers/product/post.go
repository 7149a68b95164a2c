package productcontroller

import (
	"net/http"

	"github.com/Henilshingala/JiyashCreation/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductInput covers all three materials; Detail lands in the material's
// own attribute (carat purity for gold, purity for silver, material details
// for imitation).
type ProductInput struct {
	Name          string          `json:"name" binding:"required"`
	Description   string          `json:"description"`
	Image1        string          `json:"image1"`
	Image2        string          `json:"image2"`
	Image3        string          `json:"image3"`
	Video         string          `json:"video"`
	CategoryID    uint            `json:"category_id" binding:"required"`
	SubCategoryID uint            `json:"subcategory_id" binding:"required"`
	OriginalPrice decimal.Decimal `json:"original_price"`
	SellingPrice  decimal.Decimal `json:"selling_price" binding:"required"`
	Weight        decimal.Decimal `json:"weight"`
	Detail        string          `json:"detail"`
	StockQuantity int             `json:"stock_quantity"`
}

// CreateProduct creates a product in one material's table. The category and
// subcategory must belong to the same material and to each other.
// URL: POST /admin/products/:material
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		material, ok := models.ParseMaterial(c.Param("material"))
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product type"})
			return
		}
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		switch material {
		case models.MaterialGold:
			var sub models.GoldSubCategory
			if err := db.First(&sub, input.SubCategoryID).Error; err != nil || sub.CategoryID != input.CategoryID {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Subcategory does not belong to category"})
				return
			}
			row := models.GoldProduct{
				Name: input.Name, Description: input.Description,
				Image1: input.Image1, Image2: input.Image2, Image3: input.Image3, Video: input.Video,
				CategoryID: input.CategoryID, SubCategoryID: input.SubCategoryID,
				OriginalPrice: input.OriginalPrice, SellingPrice: input.SellingPrice,
				Weight: input.Weight, StockQuantity: input.StockQuantity, IsActive: true,
			}
			if input.Detail != "" {
				row.CaratMetalPurity = input.Detail
			}
			if err := db.Create(&row).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
				return
			}
			c.JSON(http.StatusCreated, row)
		case models.MaterialSilver:
			var sub models.SilverSubCategory
			if err := db.First(&sub, input.SubCategoryID).Error; err != nil || sub.CategoryID != input.CategoryID {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Subcategory does not belong to category"})
				return
			}
			row := models.SilverProduct{
				Name: input.Name, Description: input.Description,
				Image1: input.Image1, Image2: input.Image2, Image3: input.Image3, Video: input.Video,
				CategoryID: input.CategoryID, SubCategoryID: input.SubCategoryID,
				OriginalPrice: input.OriginalPrice, SellingPrice: input.SellingPrice,
				Weight: input.Weight, StockQuantity: input.StockQuantity, IsActive: true,
			}
			if input.Detail != "" {
				row.Purity = input.Detail
			}
			if err := db.Create(&row).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
				return
			}
			c.JSON(http.StatusCreated, row)
		case models.MaterialImitation:
			var sub models.ImitationSubCategory
			if err := db.First(&sub, input.SubCategoryID).Error; err != nil || sub.CategoryID != input.CategoryID {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Subcategory does not belong to category"})
				return
			}
			row := models.ImitationProduct{
				Name: input.Name, Description: input.Description,
				Image1: input.Image1, Image2: input.Image2, Image3: input.Image3, Video: input.Video,
				CategoryID: input.CategoryID, SubCategoryID: input.SubCategoryID,
				OriginalPrice: input.OriginalPrice, SellingPrice: input.SellingPrice,
				Weight: input.Weight, StockQuantity: input.StockQuantity, IsActive: true,
			}
			if input.Detail != "" {
				row.MaterialDetails = input.Detail
			}
			if err := db.Create(&row).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
				return
			}
			c.JSON(http.StatusCreated, row)
		}
	}
}
