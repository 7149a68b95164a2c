package adminController

import (
	"net/http"

	"github.com/Henilshingala/JiyashCreation/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SliderInput struct {
	Image      string `json:"image" binding:"required"`
	Title      string `json:"title"`
	Subtitle   string `json:"subtitle"`
	ButtonName string `json:"button_name"`
	ButtonLink string `json:"button_link"`
	Position   int    `json:"position"`
	IsActive   *bool  `json:"is_active"`
}

// GET /sliders (public, active only)
func GetActiveSliders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sliders []models.CarouselSlider
		if err := db.Where("is_active = ?", true).Order("position ASC").Find(&sliders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sliders"})
			return
		}
		c.JSON(http.StatusOK, sliders)
	}
}

// GET /admin/sliders
func GetAllSliders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sliders []models.CarouselSlider
		if err := db.Order("position ASC").Find(&sliders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sliders"})
			return
		}
		c.JSON(http.StatusOK, sliders)
	}
}

// POST /admin/sliders
func CreateSlider(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SliderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		slider := models.CarouselSlider{
			Image:      input.Image,
			Title:      input.Title,
			Subtitle:   input.Subtitle,
			ButtonName: input.ButtonName,
			ButtonLink: input.ButtonLink,
			Position:   input.Position,
			IsActive:   true,
		}
		if input.IsActive != nil {
			slider.IsActive = *input.IsActive
		}
		if err := db.Create(&slider).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create slider"})
			return
		}
		c.JSON(http.StatusCreated, slider)
	}
}

// PUT /admin/sliders/:id
func UpdateSlider(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var slider models.CarouselSlider
		if err := db.First(&slider, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Slider not found"})
			return
		}
		var input SliderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		slider.Image = input.Image
		slider.Title = input.Title
		slider.Subtitle = input.Subtitle
		slider.ButtonName = input.ButtonName
		slider.ButtonLink = input.ButtonLink
		slider.Position = input.Position
		if input.IsActive != nil {
			slider.IsActive = *input.IsActive
		}
		if err := db.Save(&slider).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update slider"})
			return
		}
		c.JSON(http.StatusOK, slider)
	}
}

// DELETE /admin/sliders/:id
func DeleteSlider(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		res := db.Delete(&models.CarouselSlider{}, c.Param("id"))
		if res.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete slider"})
			return
		}
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Slider not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
