package models

// The three hierarchies are deliberately kept as disjoint tables: each
// material carries its own attribute set on products, and the admin side
// manages them independently. The shared shape lives in the CatalogProduct
// interface, not in a common table.

type GoldCategory struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string `gorm:"unique;not null" json:"name"`
	Image    string `json:"image"`
	IsActive bool   `gorm:"default:true" json:"is_active"`
}

type GoldSubCategory struct {
	ID         uint         `gorm:"primaryKey;autoIncrement" json:"id"`
	CategoryID uint         `gorm:"index;not null" json:"category_id"`
	Category   GoldCategory `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"-"`
	Name       string       `gorm:"not null" json:"name"`
	Image      string       `json:"image"`
	IsActive   bool         `gorm:"default:true" json:"is_active"`
}

type SilverCategory struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string `gorm:"unique;not null" json:"name"`
	Image    string `json:"image"`
	IsActive bool   `gorm:"default:true" json:"is_active"`
}

type SilverSubCategory struct {
	ID         uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CategoryID uint           `gorm:"index;not null" json:"category_id"`
	Category   SilverCategory `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"-"`
	Name       string         `gorm:"not null" json:"name"`
	Image      string         `json:"image"`
	IsActive   bool           `gorm:"default:true" json:"is_active"`
}

type ImitationCategory struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string `gorm:"unique;not null" json:"name"`
	Image    string `json:"image"`
	IsActive bool   `gorm:"default:true" json:"is_active"`
}

type ImitationSubCategory struct {
	ID         uint              `gorm:"primaryKey;autoIncrement" json:"id"`
	CategoryID uint              `gorm:"index;not null" json:"category_id"`
	Category   ImitationCategory `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"-"`
	Name       string            `gorm:"not null" json:"name"`
	Image      string            `json:"image"`
	IsActive   bool              `gorm:"default:true" json:"is_active"`
}
