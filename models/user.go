package models

import "time"

type User struct {
	ID           uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName    string  `gorm:"not null" json:"first_name"`
	LastName     string  `json:"last_name"`
	Email        string  `gorm:"unique;not null" json:"email"`
	Phone        string  `json:"phone"`
	PasswordHash string  `gorm:"not null" json:"-"`
	Gender       string  `json:"gender"`
	BirthDate    *time.Time `json:"birth_date,omitempty"`
	Address      Address `gorm:"embedded" json:"address"`
	CreatedAt    time.Time `json:"created_at"`
}

// Address is embedded in User. Country drives the pricing engine's bucket
// choice; the rest is shipping detail.
type Address struct {
	Country      string `json:"country"`
	State        string `json:"state"`
	City         string `json:"city"`
	StreetNumber string `json:"street_number"`
	StreetName   string `json:"street_name"`
	Pincode      string `json:"pincode"`
}
