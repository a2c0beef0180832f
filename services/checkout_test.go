package services

import (
	"errors"
	"testing"

	"github.com/santimarro/figuras-api/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCheckoutCreatesOrderAndDecrementsStock(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db, "Figura Goku", "15.00", 10)
	seedCartItem(t, db, 1, product, 2)

	order, err := Checkout(db, 1, "Av. Siempre Viva 742", "555-0101")
	require.NoError(t, err)
	require.NotEmpty(t, order.Number)
	require.Equal(t, models.OrderStatusPending, order.Status)
	require.True(t, order.Total.Equal(decimal.RequireFromString("30.00")), "total = %s", order.Total)

	var got models.Product
	require.NoError(t, db.First(&got, product.ID).Error)
	require.Equal(t, 8, got.Stock)

	var items []models.OrderItem
	require.NoError(t, db.Where("order_id = ?", order.ID).Find(&items).Error)
	require.Len(t, items, 1)
	require.Equal(t, int(product.ID), items[0].ProductID)
	require.Equal(t, "Figura Goku", items[0].Name)
	require.Equal(t, 2, items[0].Quantity)
	require.True(t, items[0].Price.Equal(decimal.RequireFromString("15.00")))

	require.Zero(t, countRows(t, db, &models.CartItem{}))
}

func TestCheckoutTotalIsExact(t *testing.T) {
	db := newTestDB(t)
	// Prices chosen so float accumulation would drift.
	first := seedProduct(t, db, "Figura A", "0.10", 100)
	second := seedProduct(t, db, "Figura B", "0.20", 100)
	seedCartItem(t, db, 1, first, 3)
	seedCartItem(t, db, 1, second, 3)

	order, err := Checkout(db, 1, "Calle 1", "555-0102")
	require.NoError(t, err)
	require.True(t, order.Total.Equal(decimal.RequireFromString("0.90")), "total = %s", order.Total)
}

func TestCheckoutInsufficientStock(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db, "Figura Vegeta", "20.00", 5)
	seedCartItem(t, db, 1, product, 10)

	_, err := Checkout(db, 1, "Calle 2", "555-0103")

	var stockErr *InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	require.Equal(t, "Figura Vegeta", stockErr.ProductName)

	require.Zero(t, countRows(t, db, &models.Order{}))
	require.Zero(t, countRows(t, db, &models.OrderItem{}))

	var got models.Product
	require.NoError(t, db.First(&got, product.ID).Error)
	require.Equal(t, 5, got.Stock)
	require.Equal(t, int64(1), countRows(t, db, &models.CartItem{}))
}

func TestCheckoutEmptyCart(t *testing.T) {
	db := newTestDB(t)

	_, err := Checkout(db, 1, "Calle 3", "555-0104")
	require.ErrorIs(t, err, ErrEmptyCart)
	require.Zero(t, countRows(t, db, &models.Order{}))
}

func TestCheckoutMissingShippingFields(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db, "Figura Piccolo", "12.50", 4)
	seedCartItem(t, db, 1, product, 1)

	_, err := Checkout(db, 1, "", "555-0105")
	require.ErrorIs(t, err, ErrMissingShipping)

	_, err = Checkout(db, 1, "Calle 4", "")
	require.ErrorIs(t, err, ErrMissingShipping)

	require.Zero(t, countRows(t, db, &models.Order{}))
	require.Equal(t, int64(1), countRows(t, db, &models.CartItem{}))
}

func TestCheckoutIsAtomic(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db, "Figura Gohan", "18.00", 6)
	seedCartItem(t, db, 1, product, 2)

	beforeStockDecrement = func(*gorm.DB) error { return errors.New("injected failure") }
	defer func() { beforeStockDecrement = nil }()

	_, err := Checkout(db, 1, "Calle 5", "555-0106")
	require.Error(t, err)

	// Nothing from the transaction may survive the rollback.
	require.Zero(t, countRows(t, db, &models.Order{}))
	require.Zero(t, countRows(t, db, &models.OrderItem{}))

	var got models.Product
	require.NoError(t, db.First(&got, product.ID).Error)
	require.Equal(t, 6, got.Stock)
	require.Equal(t, int64(1), countRows(t, db, &models.CartItem{}))
}
