package models

import "time"

// WishlistItem rows are intended to be unique per (user, product ref).
// The schema stays permissive; the add path is get-or-create, so a repeated
// add returns the existing row instead of inserting a duplicate.
type WishlistItem struct {
	ID      uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID  uint       `gorm:"index;not null" json:"user_id"`
	Product ProductRef `gorm:"embedded" json:"product"`
	AddedAt time.Time  `json:"added_at"`
}
