package catalog

import (
	"testing"

	"github.com/Henilshingala/JiyashCreation/models"
	"github.com/shopspring/decimal"
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
	// One connection so every query sees the same in-memory database.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.TopCategory{},
		&models.GoldCategory{}, &models.GoldSubCategory{}, &models.GoldProduct{},
		&models.SilverCategory{}, &models.SilverSubCategory{}, &models.SilverProduct{},
		&models.ImitationCategory{}, &models.ImitationSubCategory{}, &models.ImitationProduct{},
	))
	return db
}

// seedGold creates an active gold category/subcategory pair plus one product
// and returns the product ID.
func seedGold(t *testing.T, db *gorm.DB, name string, price int64) uint {
	t.Helper()
	cat := models.GoldCategory{Name: "Gold Rings " + name, IsActive: true}
	require.NoError(t, db.Create(&cat).Error)
	sub := models.GoldSubCategory{CategoryID: cat.ID, Name: "Bands " + name, IsActive: true}
	require.NoError(t, db.Create(&sub).Error)
	p := models.GoldProduct{
		Name:          name,
		CategoryID:    cat.ID,
		SubCategoryID: sub.ID,
		OriginalPrice: decimal.NewFromInt(price),
		SellingPrice:  decimal.NewFromInt(price),
		StockQuantity: 5,
		IsActive:      true,
	}
	require.NoError(t, db.Create(&p).Error)
	return p.ID
}

func seedSilver(t *testing.T, db *gorm.DB, name string, price int64) uint {
	t.Helper()
	cat := models.SilverCategory{Name: "Silver Chains " + name, IsActive: true}
	require.NoError(t, db.Create(&cat).Error)
	sub := models.SilverSubCategory{CategoryID: cat.ID, Name: "Curb " + name, IsActive: true}
	require.NoError(t, db.Create(&sub).Error)
	p := models.SilverProduct{
		Name:          name,
		CategoryID:    cat.ID,
		SubCategoryID: sub.ID,
		OriginalPrice: decimal.NewFromInt(price),
		SellingPrice:  decimal.NewFromInt(price),
		StockQuantity: 5,
		IsActive:      true,
	}
	require.NoError(t, db.Create(&p).Error)
	return p.ID
}

func seedImitation(t *testing.T, db *gorm.DB, name string, price int64) uint {
	t.Helper()
	cat := models.ImitationCategory{Name: "Imitation Sets " + name, IsActive: true}
	require.NoError(t, db.Create(&cat).Error)
	sub := models.ImitationSubCategory{CategoryID: cat.ID, Name: "Bridal " + name, IsActive: true}
	require.NoError(t, db.Create(&sub).Error)
	p := models.ImitationProduct{
		Name:          name,
		CategoryID:    cat.ID,
		SubCategoryID: sub.ID,
		OriginalPrice: decimal.NewFromInt(price),
		SellingPrice:  decimal.NewFromInt(price),
		StockQuantity: 5,
		IsActive:      true,
	}
	require.NoError(t, db.Create(&p).Error)
	return p.ID
}
