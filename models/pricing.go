package models

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CountryBucket is the coarse country partition used for pricing: the home
// market and everyone else.
type CountryBucket string

const (
	BucketHome   CountryBucket = "India"
	BucketOthers CountryBucket = "Others"
)

// CountryMultiplier holds the per-bucket price factor. Exactly two rows
// exist once seeded; they are edited in place and never deleted.
type CountryMultiplier struct {
	ID         uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Bucket     CountryBucket   `gorm:"size:32;uniqueIndex;not null" json:"bucket"`
	Multiplier decimal.Decimal `gorm:"type:decimal(5,2);default:1.0" json:"multiplier"`
}

var ErrMultiplierCap = errors.New("country multipliers are capped at two rows")

func (cm *CountryMultiplier) BeforeCreate(tx *gorm.DB) error {
	var n int64
	if err := tx.Model(&CountryMultiplier{}).Count(&n).Error; err != nil {
		return err
	}
	if n >= 2 {
		return ErrMultiplierCap
	}
	return nil
}

func (cm *CountryMultiplier) BeforeDelete(tx *gorm.DB) error {
	return errors.New("country multipliers cannot be deleted")
}
