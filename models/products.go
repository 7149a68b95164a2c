package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DisplayPricing carries the country-adjusted prices shown to a specific
// user. The fields are computed per request and never persisted.
type DisplayPricing struct {
	DisplayOriginalPrice      decimal.Decimal `gorm:"-" json:"display_original_price"`
	DisplaySellingPrice       decimal.Decimal `gorm:"-" json:"display_selling_price"`
	DisplayDiscountPercentage int64           `gorm:"-" json:"display_discount_percentage"`
}

// CatalogProduct is the common surface of the three product tables. Cart,
// wishlist, order and review code works against this interface and a
// ProductRef instead of a shared table.
type CatalogProduct interface {
	Material() MaterialType
	Ref() ProductRef
	ProductName() string
	Prices() (original, selling decimal.Decimal)
	Stock() int
	Active() bool
	PrimaryImage() string
	Display() *DisplayPricing
}

type GoldProduct struct {
	ID               uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name             string          `gorm:"not null" json:"name"`
	Description      string          `json:"description"`
	Image1           string          `json:"image1"`
	Image2           string          `json:"image2"`
	Image3           string          `json:"image3"`
	Video            string          `json:"video"`
	CategoryID       uint            `gorm:"index;not null" json:"category_id"`
	Category         GoldCategory    `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"-"`
	SubCategoryID    uint            `gorm:"index;not null" json:"subcategory_id"`
	SubCategory      GoldSubCategory `gorm:"foreignKey:SubCategoryID;constraint:OnDelete:CASCADE" json:"-"`
	OriginalPrice    decimal.Decimal `gorm:"type:decimal(12,2)" json:"original_price"`
	SellingPrice     decimal.Decimal `gorm:"type:decimal(12,2)" json:"selling_price"`
	Weight           decimal.Decimal `gorm:"type:decimal(10,2)" json:"weight"`
	CaratMetalPurity string          `gorm:"default:'24k'" json:"carat_metal_purity"`
	StockQuantity    int             `gorm:"default:0" json:"stock_quantity"`
	IsActive         bool            `gorm:"default:true" json:"is_active"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`

	DisplayPricing
}

type SilverProduct struct {
	ID            uint              `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string            `gorm:"not null" json:"name"`
	Description   string            `json:"description"`
	Image1        string            `json:"image1"`
	Image2        string            `json:"image2"`
	Image3        string            `json:"image3"`
	Video         string            `json:"video"`
	CategoryID    uint              `gorm:"index;not null" json:"category_id"`
	Category      SilverCategory    `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"-"`
	SubCategoryID uint              `gorm:"index;not null" json:"subcategory_id"`
	SubCategory   SilverSubCategory `gorm:"foreignKey:SubCategoryID;constraint:OnDelete:CASCADE" json:"-"`
	OriginalPrice decimal.Decimal   `gorm:"type:decimal(12,2)" json:"original_price"`
	SellingPrice  decimal.Decimal   `gorm:"type:decimal(12,2)" json:"selling_price"`
	Weight        decimal.Decimal   `gorm:"type:decimal(10,2)" json:"weight"`
	Purity        string            `gorm:"default:'Sterling 92.5'" json:"purity"`
	StockQuantity int               `gorm:"default:0" json:"stock_quantity"`
	IsActive      bool              `gorm:"default:true" json:"is_active"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`

	DisplayPricing
}

type ImitationProduct struct {
	ID              uint                 `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string               `gorm:"not null" json:"name"`
	Description     string               `json:"description"`
	Image1          string               `json:"image1"`
	Image2          string               `json:"image2"`
	Image3          string               `json:"image3"`
	Video           string               `json:"video"`
	CategoryID      uint                 `gorm:"index;not null" json:"category_id"`
	Category        ImitationCategory    `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"-"`
	SubCategoryID   uint                 `gorm:"index;not null" json:"subcategory_id"`
	SubCategory     ImitationSubCategory `gorm:"foreignKey:SubCategoryID;constraint:OnDelete:CASCADE" json:"-"`
	OriginalPrice   decimal.Decimal      `gorm:"type:decimal(12,2)" json:"original_price"`
	SellingPrice    decimal.Decimal      `gorm:"type:decimal(12,2)" json:"selling_price"`
	Weight          decimal.Decimal      `gorm:"type:decimal(10,2)" json:"weight"`
	MaterialDetails string               `gorm:"default:'Brass'" json:"material_details"`
	StockQuantity   int                  `gorm:"default:0" json:"stock_quantity"`
	IsActive        bool                 `gorm:"default:true" json:"is_active"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`

	DisplayPricing
}

func (p *GoldProduct) Material() MaterialType { return MaterialGold }
func (p *GoldProduct) Ref() ProductRef        { return ProductRef{Material: MaterialGold, ProductID: p.ID} }
func (p *GoldProduct) ProductName() string    { return p.Name }
func (p *GoldProduct) Prices() (decimal.Decimal, decimal.Decimal) {
	return p.OriginalPrice, p.SellingPrice
}
func (p *GoldProduct) Stock() int               { return p.StockQuantity }
func (p *GoldProduct) Active() bool             { return p.IsActive }
func (p *GoldProduct) PrimaryImage() string     { return p.Image1 }
func (p *GoldProduct) Display() *DisplayPricing { return &p.DisplayPricing }

func (p *SilverProduct) Material() MaterialType { return MaterialSilver }
func (p *SilverProduct) Ref() ProductRef {
	return ProductRef{Material: MaterialSilver, ProductID: p.ID}
}
func (p *SilverProduct) ProductName() string { return p.Name }
func (p *SilverProduct) Prices() (decimal.Decimal, decimal.Decimal) {
	return p.OriginalPrice, p.SellingPrice
}
func (p *SilverProduct) Stock() int               { return p.StockQuantity }
func (p *SilverProduct) Active() bool             { return p.IsActive }
func (p *SilverProduct) PrimaryImage() string     { return p.Image1 }
func (p *SilverProduct) Display() *DisplayPricing { return &p.DisplayPricing }

func (p *ImitationProduct) Material() MaterialType { return MaterialImitation }
func (p *ImitationProduct) Ref() ProductRef {
	return ProductRef{Material: MaterialImitation, ProductID: p.ID}
}
func (p *ImitationProduct) ProductName() string { return p.Name }
func (p *ImitationProduct) Prices() (decimal.Decimal, decimal.Decimal) {
	return p.OriginalPrice, p.SellingPrice
}
func (p *ImitationProduct) Stock() int               { return p.StockQuantity }
func (p *ImitationProduct) Active() bool             { return p.IsActive }
func (p *ImitationProduct) PrimaryImage() string     { return p.Image1 }
func (p *ImitationProduct) Display() *DisplayPricing { return &p.DisplayPricing }
