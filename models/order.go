package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"   // set by checkout
	OrderStatusShipped   OrderStatus = "Shipped"   // out for delivery
	OrderStatusDelivered OrderStatus = "Delivered" // customer received the items
)

type Order struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	OrderRef    string          `gorm:"uniqueIndex;not null" json:"order_ref"`
	UserID      uint            `gorm:"index;not null" json:"user_id"`
	Status      OrderStatus     `gorm:"type:VARCHAR(20);default:'Pending'" json:"status"`
	TotalAmount decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"total_amount"`
	Items       []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt   time.Time       `json:"created_at"`
}

// OrderItem freezes the unit price at checkout time; it is never
// recomputed when the product price changes later.
type OrderItem struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	OrderID   uint            `gorm:"index" json:"order_id"`
	ProductID uint            `json:"product_id"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"unit_price"`
}
