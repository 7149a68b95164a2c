package models

import "time"

type Review struct {
	ID          uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      uint       `gorm:"index;not null" json:"user_id"`
	Product     ProductRef `gorm:"embedded" json:"product"`
	Heading     string     `gorm:"not null" json:"heading"`
	Description string     `json:"description"`
	Image       string     `json:"image"`
	StarRating  int        `gorm:"not null;default:5" json:"star_rating"`
	CreatedAt   time.Time  `json:"created_at"`
}
