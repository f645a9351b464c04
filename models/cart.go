package models

import "time"

const (
	CartStatusOpen   = "Open"
	CartStatusClosed = "Closed"
)

type Cart struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	UserID       uint       `gorm:"uniqueIndex" json:"user_id"` // one cart per user
	Status       string     `gorm:"type:VARCHAR(10);default:'Open'" json:"status"`
	Items        []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt    time.Time  `json:"created_at"`
	CheckedOutAt *time.Time `json:"checked_out_at,omitempty"`
}

// CartItem is unique per (CartID, ProductID); adds merge into the
// existing row rather than duplicating it.
type CartItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CartID    uint      `gorm:"index:idx_cart_product,unique" json:"cart_id"`
	ProductID uint      `gorm:"index:idx_cart_product,unique" json:"product_id"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	AddedAt   time.Time `json:"added_at"`
}
