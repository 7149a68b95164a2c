package wishlistControllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Henilshingala/JiyashCreation/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.WishlistItem{},
		&models.CountryMultiplier{},
		&models.GoldCategory{}, &models.GoldSubCategory{}, &models.GoldProduct{},
		&models.SilverCategory{}, &models.SilverSubCategory{}, &models.SilverProduct{},
		&models.ImitationCategory{}, &models.ImitationSubCategory{}, &models.ImitationProduct{},
	))
	return db
}

func testRouter(db *gorm.DB, userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	})
	r.GET("/wishlist", GetWishlist(db))
	r.POST("/wishlist", AddToWishlist(db))
	r.POST("/wishlist/status", WishlistStatus(db))
	r.DELETE("/wishlist/:material/:product_id", RemoveFromWishlist(db))
	return r
}

func seedSilver(t *testing.T, db *gorm.DB, name string) uint {
	t.Helper()
	cat := models.SilverCategory{Name: "Chains " + name, IsActive: true}
	require.NoError(t, db.Create(&cat).Error)
	sub := models.SilverSubCategory{CategoryID: cat.ID, Name: "Curb " + name, IsActive: true}
	require.NoError(t, db.Create(&sub).Error)
	p := models.SilverProduct{
		Name:          name,
		CategoryID:    cat.ID,
		SubCategoryID: sub.ID,
		OriginalPrice: decimal.NewFromInt(2000),
		SellingPrice:  decimal.NewFromInt(1800),
		IsActive:      true,
	}
	require.NoError(t, db.Create(&p).Error)
	return p.ID
}

func postJSON(r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAddToWishlistIsIdempotent(t *testing.T) {
	db := testDB(t)
	r := testRouter(db, 3)
	id := seedSilver(t, db, "Snake Chain")

	w := postJSON(r, "/wishlist", gin.H{"product_id": id, "product_type": "silver"})
	assert.Equal(t, http.StatusCreated, w.Code)

	// Second add returns the existing row, no duplicate.
	w = postJSON(r, "/wishlist", gin.H{"product_id": id, "product_type": "silver"})
	assert.Equal(t, http.StatusOK, w.Code)

	var n int64
	require.NoError(t, db.Model(&models.WishlistItem{}).Where("user_id = ?", 3).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

func TestWishlistStatusBatch(t *testing.T) {
	db := testDB(t)
	r := testRouter(db, 3)
	inID := seedSilver(t, db, "Box Chain")
	outID := seedSilver(t, db, "Rolo Chain")

	require.Equal(t, http.StatusCreated,
		postJSON(r, "/wishlist", gin.H{"product_id": inID, "product_type": "silver"}).Code)

	w := postJSON(r, "/wishlist/status", gin.H{"product_ids": []uint{inID, outID, 999}})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Status map[uint]bool `json:"status"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Status[inID])
	assert.False(t, resp.Status[outID])
	assert.False(t, resp.Status[999])
}

func TestRemoveFromWishlist(t *testing.T) {
	db := testDB(t)
	r := testRouter(db, 3)
	id := seedSilver(t, db, "Cable Chain")

	require.Equal(t, http.StatusCreated,
		postJSON(r, "/wishlist", gin.H{"product_id": id, "product_type": "silver"}).Code)

	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/wishlist/silver/%d", id), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var n int64
	require.NoError(t, db.Model(&models.WishlistItem{}).Where("user_id = ?", 3).Count(&n).Error)
	assert.EqualValues(t, 0, n)
}

func TestGetWishlistSkipsDanglingRefs(t *testing.T) {
	db := testDB(t)
	r := testRouter(db, 3)
	keptID := seedSilver(t, db, "Kept Chain")
	goneID := seedSilver(t, db, "Gone Chain")

	require.Equal(t, http.StatusCreated,
		postJSON(r, "/wishlist", gin.H{"product_id": keptID, "product_type": "silver"}).Code)
	require.Equal(t, http.StatusCreated,
		postJSON(r, "/wishlist", gin.H{"product_id": goneID, "product_type": "silver"}).Code)

	require.NoError(t, db.Delete(&models.SilverProduct{}, goneID).Error)

	req := httptest.NewRequest(http.MethodGet, "/wishlist", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)
}
