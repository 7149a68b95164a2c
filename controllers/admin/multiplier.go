package adminController

import (
	"net/http"

	"github.com/Henilshingala/JiyashCreation/models"
	"github.com/Henilshingala/JiyashCreation/pricing"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type MultiplierInput struct {
	Bucket     string          `json:"bucket" binding:"required"`
	Multiplier decimal.Decimal `json:"multiplier" binding:"required"`
}

// GET /admin/multipliers
func GetMultipliers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var rows []models.CountryMultiplier
		if err := db.Order("bucket ASC").Find(&rows).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch multipliers"})
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}

// PUT /admin/multipliers
func SetMultiplier(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input MultiplierInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		bucket := models.CountryBucket(input.Bucket)
		if bucket != models.BucketHome && bucket != models.BucketOthers {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Bucket must be 'India' or 'Others'"})
			return
		}
		if !input.Multiplier.IsPositive() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Multiplier must be positive"})
			return
		}
		if err := pricing.SetMultiplier(db, bucket, input.Multiplier); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set multiplier"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "bucket": bucket, "multiplier": input.Multiplier})
	}
}
