package cartControllers

import (
	"fmt"
	"testing"

	"github.com/OsamaAsender/quantamstore-api/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	))
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price string, stock int) models.Product {
	t.Helper()
	product := models.Product{
		Name:          name,
		Price:         decimal.RequireFromString(price),
		StockQuantity: stock,
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func TestAddItemCreatesCartLazily(t *testing.T) {
	db := setupDB(t)
	product := seedProduct(t, db, "Keyboard", "49.99", 10)

	var before int64
	db.Model(&models.Cart{}).Count(&before)
	require.Zero(t, before)

	view, err := AddItem(db, 1, product.ID, 2)
	require.NoError(t, err)

	var cart models.Cart
	require.NoError(t, db.Where("user_id = ?", 1).First(&cart).Error)
	assert.Equal(t, models.CartStatusOpen, cart.Status)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 2, view.Items[0].Quantity)
	assert.Equal(t, "Keyboard", view.Items[0].Product.Name)
}

func TestAddItemMergesExistingLine(t *testing.T) {
	db := setupDB(t)
	product := seedProduct(t, db, "Mouse", "19.99", 10)

	_, err := AddItem(db, 1, product.ID, 2)
	require.NoError(t, err)
	view, err := AddItem(db, 1, product.ID, 3)
	require.NoError(t, err)

	require.Len(t, view.Items, 1)
	assert.Equal(t, 5, view.Items[0].Quantity)

	var rows int64
	db.Model(&models.CartItem{}).Count(&rows)
	assert.EqualValues(t, 1, rows)
}

func TestAddItemRejectsUnavailableProduct(t *testing.T) {
	db := setupDB(t)

	deleted := seedProduct(t, db, "Ghost", "9.99", 5)
	require.NoError(t, db.Model(&deleted).UpdateColumn("is_deleted", true).Error)
	_, err := AddItem(db, 1, deleted.ID, 1)
	assert.ErrorIs(t, err, ErrProductUnavailable)

	outOfStock := seedProduct(t, db, "Empty", "9.99", 0)
	_, err = AddItem(db, 1, outOfStock.ID, 1)
	assert.ErrorIs(t, err, ErrProductUnavailable)

	_, err = AddItem(db, 1, 9999, 1)
	assert.ErrorIs(t, err, ErrProductUnavailable)
}

func TestAddItemHasNoStockCeiling(t *testing.T) {
	db := setupDB(t)
	product := seedProduct(t, db, "Cable", "4.99", 3)

	// Adding beyond live stock is allowed; the ceiling is enforced at
	// quantity update and at checkout.
	view, err := AddItem(db, 1, product.ID, 10)
	require.NoError(t, err)
	assert.Equal(t, 10, view.Items[0].Quantity)
}

func TestUpdateItemValidation(t *testing.T) {
	db := setupDB(t)
	product := seedProduct(t, db, "Monitor", "199.00", 4)

	_, err := UpdateItem(db, 1, 1, 2)
	assert.ErrorIs(t, err, ErrCartNotFound)

	view, err := AddItem(db, 1, product.ID, 1)
	require.NoError(t, err)
	itemID := view.Items[0].ID

	_, err = UpdateItem(db, 1, 9999, 2)
	assert.ErrorIs(t, err, ErrItemNotFound)

	// Another user cannot touch this item.
	otherProduct := seedProduct(t, db, "Stand", "29.00", 4)
	_, err = AddItem(db, 2, otherProduct.ID, 1)
	require.NoError(t, err)
	_, err = UpdateItem(db, 2, itemID, 2)
	assert.ErrorIs(t, err, ErrItemNotFound)

	_, err = UpdateItem(db, 1, itemID, 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
	_, err = UpdateItem(db, 1, itemID, 5)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	updated, err := UpdateItem(db, 1, itemID, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, updated.Items[0].Quantity) // replaced, not added
}

func TestUpdateItemDeletedProductIsGone(t *testing.T) {
	db := setupDB(t)
	product := seedProduct(t, db, "Lamp", "15.00", 5)

	view, err := AddItem(db, 1, product.ID, 1)
	require.NoError(t, err)

	require.NoError(t, db.Model(&product).UpdateColumn("is_deleted", true).Error)

	_, err = UpdateItem(db, 1, view.Items[0].ID, 2)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestRemoveItemKeepsCartRow(t *testing.T) {
	db := setupDB(t)
	product := seedProduct(t, db, "Desk", "120.00", 2)

	view, err := AddItem(db, 1, product.ID, 1)
	require.NoError(t, err)

	after, err := RemoveItem(db, 1, view.Items[0].ID)
	require.NoError(t, err)
	assert.Empty(t, after.Items)

	var cart models.Cart
	assert.NoError(t, db.Where("user_id = ?", 1).First(&cart).Error)

	_, err = RemoveItem(db, 1, view.Items[0].ID)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestGetCartFiltersDeletedProducts(t *testing.T) {
	db := setupDB(t)
	kept := seedProduct(t, db, "Chair", "89.00", 5)
	doomed := seedProduct(t, db, "Rug", "35.00", 5)

	_, err := AddItem(db, 1, kept.ID, 1)
	require.NoError(t, err)
	_, err = AddItem(db, 1, doomed.ID, 2)
	require.NoError(t, err)

	require.NoError(t, db.Model(&doomed).UpdateColumn("is_deleted", true).Error)

	view, err := GetCart(db, 1)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, "Chair", view.Items[0].Product.Name)

	// The stale row is hidden, not removed.
	var rows int64
	db.Model(&models.CartItem{}).Count(&rows)
	assert.EqualValues(t, 2, rows)
}

func TestGetCartNotFound(t *testing.T) {
	db := setupDB(t)
	_, err := GetCart(db, 42)
	assert.ErrorIs(t, err, ErrCartNotFound)
}
