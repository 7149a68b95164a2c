package models

import "time"

// PasswordResetOTP is a single-use six digit code with a ten minute expiry.
// Delivery (email) happens outside this service.
type PasswordResetOTP struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Email     string    `gorm:"index;not null" json:"email"`
	OTP       string    `gorm:"size:6;not null" json:"-"`
	IsUsed    bool      `gorm:"default:false" json:"is_used"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (o *PasswordResetOTP) IsExpired() bool {
	return time.Now().After(o.ExpiresAt)
}

func (o *PasswordResetOTP) IsValid() bool {
	return !o.IsUsed && !o.IsExpired()
}
