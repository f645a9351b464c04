package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product keeps an explicit IsDeleted flag instead of gorm's DeletedAt:
// deleted products must stay queryable for restore and for admin views.
type Product struct {
	ID            uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string          `gorm:"not null" json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	StockQuantity int             `gorm:"not null;default:0" json:"stock_quantity"`
	ImageURL      string          `json:"image_url"`
	CategoryID    uint            `gorm:"index" json:"category_id"`
	IsDeleted     bool            `gorm:"not null;default:false" json:"is_deleted"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
