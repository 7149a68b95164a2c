package models

// ProductRef is a tagged pointer to one row of one of the three product
// tables. It is embedded in cart, wishlist, order and review rows; a ref
// whose target was deleted is treated as absent by every reader, never as
// an error.
type ProductRef struct {
	Material  MaterialType `gorm:"size:16;not null" json:"material"`
	ProductID uint         `gorm:"not null" json:"product_id"`
}
