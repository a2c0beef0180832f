package services

import (
	"fmt"
	"testing"

	"github.com/santimarro/figuras-api/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory database migrated with the full
// schema. Named per test so parallel tests never share state.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.ProductImage{},
		&models.Review{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	))

	return db
}

func seedProduct(t *testing.T, db *gorm.DB, name, price string, stock int) models.Product {
	t.Helper()

	product := models.Product{
		Name:     name,
		Price:    decimal.RequireFromString(price),
		Stock:    stock,
		Category: models.CategoryFigure,
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func seedCartItem(t *testing.T, db *gorm.DB, userID int, product models.Product, quantity int) models.CartItem {
	t.Helper()

	cart, err := getOrCreateCart(db, userID)
	require.NoError(t, err)

	item := models.CartItem{CartID: int(cart.ID), ProductID: int(product.ID), Quantity: quantity}
	require.NoError(t, db.Create(&item).Error)
	return item
}

func countRows(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()

	var count int64
	require.NoError(t, db.Model(model).Count(&count).Error)
	return count
}
