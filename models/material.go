package models

import (
	"strings"
	"time"
)

// MaterialType partitions the whole catalog into three independent hierarchies.
type MaterialType string

const (
	MaterialGold      MaterialType = "gold"
	MaterialSilver    MaterialType = "silver"
	MaterialImitation MaterialType = "imitation"
)

// Materials returns every material type in resolver probe order.
func Materials() []MaterialType {
	return []MaterialType{MaterialGold, MaterialSilver, MaterialImitation}
}

// ParseMaterial maps a URL/form value to a MaterialType.
func ParseMaterial(s string) (MaterialType, bool) {
	switch MaterialType(strings.ToLower(strings.TrimSpace(s))) {
	case MaterialGold:
		return MaterialGold, true
	case MaterialSilver:
		return MaterialSilver, true
	case MaterialImitation:
		return MaterialImitation, true
	}
	return "", false
}

// TopCategory is the master switch for one material hierarchy. Flipping
// IsActive cascades to every category, subcategory and product of that
// material (see catalog.SetMaterialActive).
type TopCategory struct {
	ID        uint         `gorm:"primaryKey;autoIncrement" json:"id"`
	Material  MaterialType `gorm:"size:16;uniqueIndex;not null" json:"material"`
	IsActive  bool         `gorm:"default:true" json:"is_active"`
	UpdatedAt time.Time    `json:"updated_at"`
}
