package services

import (
	"testing"

	"github.com/santimarro/figuras-api/models"
	"github.com/stretchr/testify/require"
)

func TestAddToCartUpserts(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db, "Figura Cell", "30.00", 5)

	count, err := AddToCart(db, 1, int(product.ID))
	require.NoError(t, err)
	require.Equal(t, 1, count)

	count, err = AddToCart(db, 1, int(product.ID))
	require.NoError(t, err)
	require.Equal(t, 2, count)

	// One line with quantity 2, not two lines.
	var items []models.CartItem
	require.NoError(t, db.Find(&items).Error)
	require.Len(t, items, 1)
	require.Equal(t, 2, items[0].Quantity)
}

func TestAddToCartUnknownProduct(t *testing.T) {
	db := newTestDB(t)

	_, err := AddToCart(db, 1, 9999)
	require.Error(t, err)
	require.Zero(t, countRows(t, db, &models.Cart{}))
}

func TestUpdateCartItemQuantity(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db, "Figura Freezer", "28.00", 9)
	item := seedCartItem(t, db, 1, product, 1)

	require.NoError(t, UpdateCartItem(db, 1, int(item.ID), 5))

	var got models.CartItem
	require.NoError(t, db.First(&got, item.ID).Error)
	require.Equal(t, 5, got.Quantity)
}

func TestUpdateCartItemZeroRemovesLine(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db, "Figura Buu", "16.00", 9)
	item := seedCartItem(t, db, 1, product, 3)

	require.NoError(t, UpdateCartItem(db, 1, int(item.ID), 0))
	require.Zero(t, countRows(t, db, &models.CartItem{}))
}

func TestRemoveCartItem(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db, "Figura Yamcha", "8.00", 9)
	item := seedCartItem(t, db, 1, product, 1)

	require.NoError(t, RemoveCartItem(db, 1, int(item.ID)))
	require.Zero(t, countRows(t, db, &models.CartItem{}))
}

func TestCartMutationsRequireOwnership(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db, "Figura Ten", "9.00", 9)
	item := seedCartItem(t, db, 1, product, 2)

	// User 2 must not see or touch user 1's line.
	err := UpdateCartItem(db, 2, int(item.ID), 7)
	require.ErrorIs(t, err, ErrCartItemNotFound)

	err = RemoveCartItem(db, 2, int(item.ID))
	require.ErrorIs(t, err, ErrCartItemNotFound)

	var got models.CartItem
	require.NoError(t, db.First(&got, item.ID).Error)
	require.Equal(t, 2, got.Quantity)
}

func TestGetCartCreatesLazily(t *testing.T) {
	db := newTestDB(t)

	cart, err := GetCart(db, 42)
	require.NoError(t, err)
	require.Equal(t, 42, cart.UserID)
	require.Empty(t, cart.Items)

	// A second call reuses the same cart.
	again, err := GetCart(db, 42)
	require.NoError(t, err)
	require.Equal(t, cart.ID, again.ID)
	require.Equal(t, int64(1), countRows(t, db, &models.Cart{}))
}
