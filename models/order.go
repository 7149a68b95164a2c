package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string
type PaymentStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"

	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

type Order struct {
	ID             uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Reference      string          `gorm:"uniqueIndex;not null" json:"reference"`
	UserID         uint            `gorm:"index;not null" json:"user_id"`
	Items          []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Subtotal       decimal.Decimal `gorm:"type:decimal(12,2)" json:"subtotal"`
	DiscountAmount decimal.Decimal `gorm:"type:decimal(12,2)" json:"discount_amount"`
	TotalAmount    decimal.Decimal `gorm:"type:decimal(12,2)" json:"total_amount"`
	Status         OrderStatus     `gorm:"type:varchar(20);default:'pending'" json:"status"`
	PaymentStatus  PaymentStatus   `gorm:"type:varchar(20);default:'pending'" json:"payment_status"`
	OrderedAt      time.Time       `json:"ordered_at"`
}

// OrderItem snapshots name and unit price at purchase time; the ref still
// points at the live product row for rendering, and may go dangling later.
type OrderItem struct {
	ID        uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   uint            `gorm:"index" json:"order_id"`
	Product   ProductRef      `gorm:"embedded" json:"product"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(12,2)" json:"unit_price"`
	Quantity  int             `gorm:"not null;default:1" json:"quantity"`
}

type Payment struct {
	ID      uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID uint            `gorm:"index;not null" json:"order_id"`
	Method  string          `gorm:"type:varchar(20);default:'UPI'" json:"method"`
	Amount  decimal.Decimal `gorm:"type:decimal(12,2)" json:"amount"`
	Status  PaymentStatus   `gorm:"type:varchar(20);default:'pending'" json:"status"`
	PaidAt  *time.Time      `json:"paid_at,omitempty"`
}
