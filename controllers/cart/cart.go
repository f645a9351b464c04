package cartControllers

import (
	"errors"
	"time"

	"github.com/OsamaAsender/quantamstore-api/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrCartNotFound       = errors.New("cart not found")
	ErrItemNotFound       = errors.New("cart item not found")
	ErrProductUnavailable = errors.New("product unavailable")
	ErrInvalidQuantity    = errors.New("invalid quantity")
)

// ProductView is the live product snapshot joined into the cart view.
type ProductView struct {
	ID       uint            `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	ImageURL string          `json:"image_url"`
}

type CartItemView struct {
	ID       uint        `json:"id"`
	Quantity int         `json:"quantity"`
	Product  ProductView `json:"product"`
}

type CartView struct {
	ID     uint           `json:"id"`
	Status string         `json:"status"`
	Items  []CartItemView `json:"items"`
}

// GetCart returns the user's cart joined to live product data. Items
// whose product has been soft-deleted since they were added are hidden
// from the view; the rows themselves are kept (the staleness policy is
// filter-on-read, never auto-remove).
func GetCart(db *gorm.DB, userID uint) (*CartView, error) {
	cart, err := loadCart(db, userID)
	if err != nil {
		return nil, err
	}
	return buildCartView(db, cart)
}

// AddItem puts a product into the user's cart, creating the cart lazily
// on first use. Adding a product already in the cart merges quantities
// into the existing line. Stock is only required to be non-zero here;
// the full sufficiency check belongs to update and checkout.
func AddItem(db *gorm.DB, userID, productID uint, quantity int) (*CartView, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	var view *CartView
	err := db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, "id = ?", productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductUnavailable
			}
			return err
		}
		if product.IsDeleted || product.StockQuantity <= 0 {
			return ErrProductUnavailable
		}

		cart, err := findOrCreateCart(tx, userID)
		if err != nil {
			return err
		}

		var item models.CartItem
		err = tx.Where("cart_id = ? AND product_id = ?", cart.ID, productID).First(&item).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			item = models.CartItem{
				CartID:    cart.ID,
				ProductID: productID,
				Quantity:  quantity,
				AddedAt:   time.Now(),
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			item.Quantity += quantity
			item.AddedAt = time.Now()
			if err := tx.Save(&item).Error; err != nil {
				return err
			}
		}

		view, err = buildCartView(tx, cart)
		return err
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// UpdateItem replaces a line's quantity. The new quantity must fit the
// product's live stock; an item whose product was soft-deleted is
// treated as gone.
func UpdateItem(db *gorm.DB, userID, itemID uint, quantity int) (*CartView, error) {
	var view *CartView
	err := db.Transaction(func(tx *gorm.DB) error {
		cart, item, err := findOwnedItem(tx, userID, itemID)
		if err != nil {
			return err
		}

		var product models.Product
		if err := tx.First(&product, "id = ?", item.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrItemNotFound
			}
			return err
		}
		if product.IsDeleted {
			return ErrItemNotFound
		}

		if quantity <= 0 || quantity > product.StockQuantity {
			return ErrInvalidQuantity
		}

		item.Quantity = quantity
		item.AddedAt = time.Now()
		if err := tx.Save(item).Error; err != nil {
			return err
		}

		view, err = buildCartView(tx, cart)
		return err
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// RemoveItem deletes a line from the cart. The cart row itself stays,
// even when it ends up empty.
func RemoveItem(db *gorm.DB, userID, itemID uint) (*CartView, error) {
	var view *CartView
	err := db.Transaction(func(tx *gorm.DB) error {
		cart, item, err := findOwnedItem(tx, userID, itemID)
		if err != nil {
			return err
		}

		if err := tx.Delete(item).Error; err != nil {
			return err
		}

		view, err = buildCartView(tx, cart)
		return err
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// loadCart fetches the user's cart or reports ErrCartNotFound.
func loadCart(db *gorm.DB, userID uint) (*models.Cart, error) {
	var cart models.Cart
	if err := db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartNotFound
		}
		return nil, err
	}
	return &cart, nil
}

// findOrCreateCart returns the user's cart, creating it on first use.
// A cart closed by a previous checkout is reopened.
func findOrCreateCart(tx *gorm.DB, userID uint) (*models.Cart, error) {
	var cart models.Cart
	err := tx.Where("user_id = ?", userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cart = models.Cart{UserID: userID, Status: models.CartStatusOpen}
		if err := tx.Create(&cart).Error; err != nil {
			return nil, err
		}
		return &cart, nil
	}
	if err != nil {
		return nil, err
	}

	if cart.Status == models.CartStatusClosed {
		cart.Status = models.CartStatusOpen
		if err := tx.Save(&cart).Error; err != nil {
			return nil, err
		}
	}
	return &cart, nil
}

// findOwnedItem resolves an item id against the user's cart so one user
// cannot touch another user's lines.
func findOwnedItem(tx *gorm.DB, userID, itemID uint) (*models.Cart, *models.CartItem, error) {
	cart, err := loadCart(tx, userID)
	if err != nil {
		return nil, nil, err
	}

	var item models.CartItem
	if err := tx.Where("id = ? AND cart_id = ?", itemID, cart.ID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrItemNotFound
		}
		return nil, nil, err
	}
	return cart, &item, nil
}

// buildCartView joins cart lines to their products in insertion order,
// dropping lines whose product is soft-deleted.
func buildCartView(db *gorm.DB, cart *models.Cart) (*CartView, error) {
	var items []models.CartItem
	if err := db.Where("cart_id = ?", cart.ID).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}

	view := &CartView{ID: cart.ID, Status: cart.Status, Items: []CartItemView{}}
	for _, item := range items {
		var product models.Product
		if err := db.First(&product, "id = ?", item.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, err
		}
		if product.IsDeleted {
			continue
		}
		view.Items = append(view.Items, CartItemView{
			ID:       item.ID,
			Quantity: item.Quantity,
			Product: ProductView{
				ID:       product.ID,
				Name:     product.Name,
				Price:    product.Price,
				ImageURL: product.ImageURL,
			},
		})
	}
	return view, nil
}
