package orderControllers

import (
	"errors"
	"fmt"
	"time"

	"github.com/OsamaAsender/quantamstore-api/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrEmptyCart = errors.New("cart is empty")

// ProductUnavailableError names the line that blocked checkout.
type ProductUnavailableError struct {
	ProductName string
}

func (e *ProductUnavailableError) Error() string {
	return fmt.Sprintf("product '%s' is unavailable or out of stock", e.ProductName)
}

type CheckoutResult struct {
	OrderID  uint               `json:"orderId"`
	OrderRef string             `json:"orderRef"`
	Status   models.OrderStatus `json:"status"`
	Total    decimal.Decimal    `json:"total"`
}

// Checkout converts the user's cart into an order: validate every line
// against live stock, snapshot unit prices, decrement stock, clear the
// cart. The whole thing runs in one transaction. The decrement itself is
// a guarded UPDATE conditioned on sufficient stock, so two carts racing
// on the same product serialize on the row and the loser's update
// matches zero rows; stock can never go negative.
func Checkout(db *gorm.DB, userID uint) (*CheckoutResult, error) {
	var result *CheckoutResult
	err := db.Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		if err := tx.Where("user_id = ?", userID).First(&cart).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEmptyCart
			}
			return err
		}

		var items []models.CartItem
		if err := tx.Where("cart_id = ?", cart.ID).Order("id ASC").Find(&items).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return ErrEmptyCart
		}

		// Validate every line before touching anything; first failure wins.
		products := make([]models.Product, len(items))
		for i, item := range items {
			var product models.Product
			if err := tx.First(&product, "id = ?", item.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return &ProductUnavailableError{ProductName: fmt.Sprintf("#%d", item.ProductID)}
				}
				return err
			}
			if product.IsDeleted || product.StockQuantity < item.Quantity {
				return &ProductUnavailableError{ProductName: product.Name}
			}
			products[i] = product
		}

		// Snapshot prices and compute the total in exact decimal math.
		total := decimal.Zero
		orderItems := make([]models.OrderItem, len(items))
		for i, item := range items {
			unitPrice := products[i].Price
			orderItems[i] = models.OrderItem{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				UnitPrice: unitPrice,
			}
			total = total.Add(unitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
		}

		// Guarded decrement: check and subtract in one atomic statement.
		// A concurrent checkout that emptied the stock since the read
		// above makes this match zero rows, aborting the transaction.
		for i, item := range items {
			res := tx.Model(&models.Product{}).
				Where("id = ? AND is_deleted = ? AND stock_quantity >= ?",
					item.ProductID, false, item.Quantity).
				UpdateColumn("stock_quantity", gorm.Expr("stock_quantity - ?", item.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return &ProductUnavailableError{ProductName: products[i].Name}
			}
		}

		now := time.Now()
		order := models.Order{
			OrderRef:    generateOrderRef(),
			UserID:      userID,
			Status:      models.OrderStatusPending,
			TotalAmount: total,
			Items:       orderItems,
			CreatedAt:   now,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		if err := tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}

		cart.Status = models.CartStatusClosed
		cart.CheckedOutAt = &now
		if err := tx.Save(&cart).Error; err != nil {
			return err
		}

		result = &CheckoutResult{
			OrderID:  order.ID,
			OrderRef: order.OrderRef,
			Status:   order.Status,
			Total:    order.TotalAmount,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}
