package services

import (
	"github.com/google/uuid"
	"github.com/santimarro/figuras-api/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// beforeStockDecrement is a seam used by tests to inject a failure inside
// the checkout transaction, between order item creation and the stock
// update. Nil in production.
var beforeStockDecrement func(tx *gorm.DB) error

// Checkout turns the user's cart into an order.
//
// Validation failures (empty cart, missing address or phone) and stock
// shortfalls abort before any state changes. The order, its items, the
// stock decrement and the cart clearing commit as one transaction; if any
// step fails nothing is persisted. Product rows are locked for the duration
// of the transaction so two concurrent checkouts cannot both pass the stock
// check and oversell.
func Checkout(db *gorm.DB, userID int, shippingAddress, phone string) (*models.Order, error) {
	if shippingAddress == "" || phone == "" {
		return nil, ErrMissingShipping
	}

	cart, err := getOrCreateCart(db, userID)
	if err != nil {
		return nil, err
	}

	var order models.Order
	err = db.Transaction(func(tx *gorm.DB) error {
		var items []models.CartItem
		if err := tx.Where("cart_id = ?", cart.ID).Find(&items).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return ErrEmptyCart
		}

		total := decimal.Zero
		products := make(map[int]models.Product, len(items))
		for _, item := range items {
			var product models.Product
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&product, item.ProductID).Error; err != nil {
				return err
			}
			if product.Stock < item.Quantity {
				return &InsufficientStockError{ProductID: product.ID, ProductName: product.Name}
			}
			total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
			products[item.ProductID] = product
		}

		order = models.Order{
			Number:          uuid.NewString(),
			UserID:          userID,
			Total:           total,
			Status:          models.OrderStatusPending,
			ShippingAddress: shippingAddress,
			Phone:           phone,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for _, item := range items {
			product := products[item.ProductID]
			orderItem := models.OrderItem{
				OrderID:   int(order.ID),
				ProductID: item.ProductID,
				Name:      product.Name,
				Price:     product.Price,
				Quantity:  item.Quantity,
			}
			if err := tx.Create(&orderItem).Error; err != nil {
				return err
			}
		}

		if beforeStockDecrement != nil {
			if err := beforeStockDecrement(tx); err != nil {
				return err
			}
		}

		for _, item := range items {
			product := products[item.ProductID]
			// The stock check above makes a negative result unreachable
			// outside of a lost race; clamp at zero regardless.
			newStock := product.Stock - item.Quantity
			if newStock < 0 {
				newStock = 0
			}
			if err := tx.Model(&models.Product{}).
				Where("id = ?", product.ID).
				Update("stock", newStock).Error; err != nil {
				return err
			}
		}

		return tx.Where("cart_id = ?", cart.ID).
			Unscoped().
			Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}
