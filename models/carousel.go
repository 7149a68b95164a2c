package models

import "time"

// CarouselSlider is a home-page banner managed by the admin side.
type CarouselSlider struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Image      string    `json:"image"`
	Title      string    `json:"title"`
	Subtitle   string    `json:"subtitle"`
	ButtonName string    `json:"button_name"`
	ButtonLink string    `json:"button_link"`
	IsActive   bool      `gorm:"default:true" json:"is_active"`
	Position   int       `gorm:"default:0" json:"position"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
