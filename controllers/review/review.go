package reviewControllers

import (
	"net/http"
	"strconv"

	"github.com/Henilshingala/JiyashCreation/catalog"
	"github.com/Henilshingala/JiyashCreation/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ReviewInput struct {
	ProductID   uint   `json:"product_id" binding:"required"`
	ProductType string `json:"product_type"`
	Heading     string `json:"heading" binding:"required"`
	Description string `json:"description"`
	Image       string `json:"image"`
	StarRating  int    `json:"star_rating" binding:"required,min=1,max=5"`
}

// POST /user/reviews
func CreateReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")

		var input ReviewInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var (
			product models.CatalogProduct
			err     error
		)
		if input.ProductType != "" {
			material, ok := models.ParseMaterial(input.ProductType)
			if !ok {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product type"})
				return
			}
			product, err = catalog.ResolveRef(db, models.ProductRef{Material: material, ProductID: input.ProductID})
		} else {
			product, err = catalog.ResolveByID(db, input.ProductID)
		}
		if err != nil {
			if err == catalog.ErrNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve product"})
			return
		}

		review := models.Review{
			UserID:      userID,
			Product:     product.Ref(),
			Heading:     input.Heading,
			Description: input.Description,
			Image:       input.Image,
			StarRating:  input.StarRating,
		}
		if err := db.Create(&review).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create review"})
			return
		}
		c.JSON(http.StatusCreated, review)
	}
}

// GET /products/:material/:id/reviews
func GetProductReviews(db *gorm.DB) gin.HandlerFunc {
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

		var reviews []models.Review
		if err := db.Where("material = ? AND product_id = ?", material, id).
			Order("created_at DESC").Find(&reviews).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
			return
		}

		type reviewView struct {
			models.Review
			ReviewerName string `json:"reviewer_name"`
		}
		views := make([]reviewView, 0, len(reviews))
		var total int
		for _, r := range reviews {
			view := reviewView{Review: r}
			var user models.User
			if err := db.First(&user, r.UserID).Error; err == nil {
				view.ReviewerName = user.FirstName + " " + user.LastName
			}
			total += r.StarRating
			views = append(views, view)
		}
		average := 0.0
		if len(reviews) > 0 {
			average = float64(total) / float64(len(reviews))
		}
		c.JSON(http.StatusOK, gin.H{
			"reviews":        views,
			"review_count":   len(views),
			"average_rating": average,
		})
	}
}

// DELETE /user/reviews/:id — a user may remove only their own review.
func DeleteReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")
		result := db.Where("id = ? AND user_id = ?", c.Param("id"), userID).Delete(&models.Review{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete review"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
