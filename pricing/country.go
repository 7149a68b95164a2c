// Package pricing converts stored base prices into the per-user display
// prices and computes the cart discount tiers applied on top of them.
package pricing

import (
	"os"
	"strings"

	"github.com/Henilshingala/JiyashCreation/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// homeToken is the substring that places a user's country in the home
// bucket. Overridable so the home market isn't baked into the binary.
func homeToken() string {
	if v := os.Getenv("HOME_COUNTRY"); v != "" {
		return strings.ToLower(v)
	}
	return "india"
}

// EnsureDefaults seeds the two multiplier rows at 1.0. Safe to call on
// every startup.
func EnsureDefaults(db *gorm.DB) error {
	for _, bucket := range []models.CountryBucket{models.BucketHome, models.BucketOthers} {
		var row models.CountryMultiplier
		err := db.Where("bucket = ?", bucket).First(&row).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}
		row = models.CountryMultiplier{Bucket: bucket, Multiplier: decimal.NewFromInt(1)}
		if err := db.Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

// SetMultiplier edits one bucket's factor in place.
func SetMultiplier(db *gorm.DB, bucket models.CountryBucket, multiplier decimal.Decimal) error {
	res := db.Model(&models.CountryMultiplier{}).
		Where("bucket = ?", bucket).
		Update("multiplier", multiplier)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// MultiplierFor picks the factor for a user. A country containing the home
// token gets the home bucket; any other country gets the others bucket; a
// nil user or empty country falls back to home. Missing rows mean 1.0 —
// this never fails.
func MultiplierFor(db *gorm.DB, user *models.User) decimal.Decimal {
	bucket := models.BucketHome
	if user != nil {
		if country := strings.ToLower(strings.TrimSpace(user.Address.Country)); country != "" {
			if !strings.Contains(country, homeToken()) {
				bucket = models.BucketOthers
			}
		}
	}
	var row models.CountryMultiplier
	if err := db.Where("bucket = ?", bucket).First(&row).Error; err != nil {
		return decimal.NewFromInt(1)
	}
	return row.Multiplier
}

// ApplyPricing writes the display prices onto each product. Runs before any
// price sorting or pagination so ordering reflects what the user sees.
func ApplyPricing(products []models.CatalogProduct, multiplier decimal.Decimal) {
	hundred := decimal.NewFromInt(100)
	for _, p := range products {
		original, selling := p.Prices()
		d := p.Display()
		d.DisplayOriginalPrice = original.Mul(multiplier)
		d.DisplaySellingPrice = selling.Mul(multiplier)
		d.DisplayDiscountPercentage = 0
		if d.DisplayOriginalPrice.GreaterThan(d.DisplaySellingPrice) && d.DisplaySellingPrice.IsPositive() {
			d.DisplayDiscountPercentage = d.DisplayOriginalPrice.
				Sub(d.DisplaySellingPrice).
				Div(d.DisplayOriginalPrice).
				Mul(hundred).
				IntPart()
		}
	}
}

// PriceForUser is the common path: look up the user's multiplier, then
// apply it.
func PriceForUser(db *gorm.DB, user *models.User, products []models.CatalogProduct) decimal.Decimal {
	multiplier := MultiplierFor(db, user)
	ApplyPricing(products, multiplier)
	return multiplier
}
