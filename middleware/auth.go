package middleware

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/Henilshingala/JiyashCreation/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

func parseToken(c *gin.Context) (uint, error) {
	tokenString := c.GetHeader("Authorization")
	if tokenString == "" {
		return 0, errors.New("authorization header is missing")
	}
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return 0, errors.New("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("invalid token claims")
	}
	id, ok := claims["user_id"].(float64)
	if !ok {
		return 0, errors.New("invalid token claims")
	}
	return uint(id), nil
}

// RequireAuth rejects requests without a valid token and stores the user id
// in the context.
func RequireAuth(c *gin.Context) {
	userID, err := parseToken(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		c.Abort()
		return
	}
	c.Set("user_id", userID)
	c.Next()
}

// OptionalAuth stores the user id when a valid token is present and lets the
// request through either way. Public catalog pages use it so pricing can
// follow the viewer's country.
func OptionalAuth(c *gin.Context) {
	if userID, err := parseToken(c); err == nil {
		c.Set("user_id", userID)
	}
	c.Next()
}

// CurrentUser loads the authenticated user's row, or nil for anonymous
// requests. A nil user falls into the home pricing bucket.
func CurrentUser(c *gin.Context, db *gorm.DB) *models.User {
	v, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	userID, ok := v.(uint)
	if !ok {
		return nil
	}
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return nil
	}
	return &user
}
