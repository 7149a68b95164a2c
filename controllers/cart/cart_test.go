package cartControllers

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
		&models.CartItem{},
		&models.CountryMultiplier{},
		&models.GoldCategory{}, &models.GoldSubCategory{}, &models.GoldProduct{},
		&models.SilverCategory{}, &models.SilverSubCategory{}, &models.SilverProduct{},
		&models.ImitationCategory{}, &models.ImitationSubCategory{}, &models.ImitationProduct{},
		&models.TopCategory{},
	))
	return db
}

// testRouter mounts the cart endpoints with a stub auth layer that pins the
// requesting user.
func testRouter(db *gorm.DB, userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	})
	r.GET("/cart", GetCart(db))
	r.POST("/cart", AddToCart(db))
	r.PUT("/cart/:item_id", UpdateCartItem(db))
	r.DELETE("/cart/:item_id", RemoveCartItem(db))
	r.DELETE("/cart", ClearCart(db))
	return r
}

func seedImitation(t *testing.T, db *gorm.DB, name string, price int64) uint {
	t.Helper()
	cat := models.ImitationCategory{Name: "Sets " + name, IsActive: true}
	require.NoError(t, db.Create(&cat).Error)
	sub := models.ImitationSubCategory{CategoryID: cat.ID, Name: "Bridal " + name, IsActive: true}
	require.NoError(t, db.Create(&sub).Error)
	p := models.ImitationProduct{
		Name:          name,
		CategoryID:    cat.ID,
		SubCategoryID: sub.ID,
		OriginalPrice: decimal.NewFromInt(price),
		SellingPrice:  decimal.NewFromInt(price),
		StockQuantity: 10,
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

func TestAddToCartCreatesThenIncrements(t *testing.T) {
	db := testDB(t)
	r := testRouter(db, 7)
	id := seedImitation(t, db, "Kundan Set", 3000)

	w := postJSON(r, "/cart", gin.H{"product_id": id, "product_type": "imitation"})
	assert.Equal(t, http.StatusCreated, w.Code)

	// Same product again merges into the existing row.
	w = postJSON(r, "/cart", gin.H{"product_id": id, "product_type": "imitation", "quantity": 2})
	assert.Equal(t, http.StatusOK, w.Code)

	var items []models.CartItem
	require.NoError(t, db.Where("user_id = ?", 7).Find(&items).Error)
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
}

func TestAddToCartUntypedIDResolves(t *testing.T) {
	db := testDB(t)
	r := testRouter(db, 7)
	id := seedImitation(t, db, "Meenakari Set", 2500)

	w := postJSON(r, "/cart", gin.H{"product_id": id})
	assert.Equal(t, http.StatusCreated, w.Code)

	var item models.CartItem
	require.NoError(t, db.Where("user_id = ?", 7).First(&item).Error)
	assert.Equal(t, models.MaterialImitation, item.Product.Material)
}

func TestAddToCartHiddenProduct(t *testing.T) {
	db := testDB(t)
	r := testRouter(db, 7)
	id := seedImitation(t, db, "Hidden Set", 2000)
	require.NoError(t, db.Model(&models.ImitationProduct{}).
		Where("id = ?", id).Update("is_active", false).Error)

	w := postJSON(r, "/cart", gin.H{"product_id": id, "product_type": "imitation"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = postJSON(r, "/cart", gin.H{"product_id": uint(999), "product_type": "imitation"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = postJSON(r, "/cart", gin.H{"product_id": id, "product_type": "plastic"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetCartSummaryAndDanglingRefs(t *testing.T) {
	db := testDB(t)
	r := testRouter(db, 7)
	keptID := seedImitation(t, db, "Kept Set", 6000)
	goneID := seedImitation(t, db, "Gone Set", 1000)

	require.Equal(t, http.StatusCreated, postJSON(r, "/cart", gin.H{"product_id": keptID, "product_type": "imitation"}).Code)
	require.Equal(t, http.StatusCreated, postJSON(r, "/cart", gin.H{"product_id": goneID, "product_type": "imitation"}).Code)

	// Delete one target; its cart row must be skipped, not fail the page.
	require.NoError(t, db.Delete(&models.ImitationProduct{}, goneID).Error)

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Items   []json.RawMessage `json:"items"`
		Summary struct {
			ImitationSubtotal  decimal.Decimal `json:"imitation_subtotal"`
			DiscountPercentage int64           `json:"discount_percentage"`
			DiscountAmount     decimal.Decimal `json:"discount_amount"`
			FinalTotal         decimal.Decimal `json:"final_total"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Items, 1)
	assert.True(t, resp.Summary.ImitationSubtotal.Equal(decimal.NewFromInt(6000)))
	assert.EqualValues(t, 5, resp.Summary.DiscountPercentage)
	assert.True(t, resp.Summary.DiscountAmount.Equal(decimal.NewFromInt(300)))
	assert.True(t, resp.Summary.FinalTotal.Equal(decimal.NewFromInt(5700)))
}

func TestUpdateCartItemZeroQuantityRemoves(t *testing.T) {
	db := testDB(t)
	r := testRouter(db, 7)
	id := seedImitation(t, db, "Polki Set", 1500)

	require.Equal(t, http.StatusCreated, postJSON(r, "/cart", gin.H{"product_id": id, "product_type": "imitation"}).Code)
	var item models.CartItem
	require.NoError(t, db.Where("user_id = ?", 7).First(&item).Error)

	payload, _ := json.Marshal(gin.H{"quantity": 0})
	req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/cart/%d", item.ID), bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var n int64
	require.NoError(t, db.Model(&models.CartItem{}).Where("user_id = ?", 7).Count(&n).Error)
	assert.EqualValues(t, 0, n)
}

func TestRemoveCartItemScopedToUser(t *testing.T) {
	db := testDB(t)
	id := seedImitation(t, db, "Jadau Set", 2200)

	owner := testRouter(db, 7)
	require.Equal(t, http.StatusCreated, postJSON(owner, "/cart", gin.H{"product_id": id, "product_type": "imitation"}).Code)
	var item models.CartItem
	require.NoError(t, db.Where("user_id = ?", 7).First(&item).Error)

	// Another user cannot delete it.
	other := testRouter(db, 8)
	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/cart/%d", item.ID), nil)
	w := httptest.NewRecorder()
	other.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	req = httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/cart/%d", item.ID), nil)
	w = httptest.NewRecorder()
	owner.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
