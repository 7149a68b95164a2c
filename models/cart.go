package models

import "time"

type CartItem struct {
	ID       uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID   uint       `gorm:"index;not null" json:"user_id"`
	Product  ProductRef `gorm:"embedded" json:"product"`
	Quantity int        `gorm:"not null;default:1" json:"quantity"`
	AddedAt  time.Time  `json:"added_at"`
}
