package services

import (
	"errors"

	"github.com/santimarro/figuras-api/models"
	"gorm.io/gorm"
)

// getOrCreateCart returns the user's cart, creating it on first use.
func getOrCreateCart(db *gorm.DB, userID int) (models.Cart, error) {
	var cart models.Cart
	err := db.Where("user_id = ?", userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cart = models.Cart{UserID: userID}
		err = db.Create(&cart).Error
	}
	return cart, err
}

// GetCart returns the user's cart with product details preloaded.
func GetCart(db *gorm.DB, userID int) (models.Cart, error) {
	cart, err := getOrCreateCart(db, userID)
	if err != nil {
		return cart, err
	}
	err = db.Preload("Items.Product").First(&cart, cart.ID).Error
	return cart, err
}

// AddToCart upserts the (cart, product) line: an existing line gets its
// quantity bumped by one, otherwise a line with quantity 1 is created.
// Returns the total item count of the cart after the change.
func AddToCart(db *gorm.DB, userID, productID int) (int, error) {
	var product models.Product
	if err := db.First(&product, productID).Error; err != nil {
		return 0, err
	}

	cart, err := getOrCreateCart(db, userID)
	if err != nil {
		return 0, err
	}

	var item models.CartItem
	err = db.Where("cart_id = ? AND product_id = ?", cart.ID, product.ID).First(&item).Error
	switch {
	case err == nil:
		item.Quantity++
		if err := db.Save(&item).Error; err != nil {
			return 0, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		item = models.CartItem{CartID: int(cart.ID), ProductID: int(product.ID), Quantity: 1}
		if err := db.Create(&item).Error; err != nil {
			return 0, err
		}
	default:
		return 0, err
	}

	return cartItemCount(db, cart.ID)
}

// UpdateCartItem sets the line quantity; zero or a negative value removes
// the line, matching the storefront's quantity stepper behaviour.
func UpdateCartItem(db *gorm.DB, userID, itemID, quantity int) error {
	item, err := findOwnedItem(db, userID, itemID)
	if err != nil {
		return err
	}
	if quantity <= 0 {
		return db.Unscoped().Delete(&item).Error
	}
	item.Quantity = quantity
	return db.Save(&item).Error
}

// RemoveCartItem deletes the line once ownership is proven.
func RemoveCartItem(db *gorm.DB, userID, itemID int) error {
	item, err := findOwnedItem(db, userID, itemID)
	if err != nil {
		return err
	}
	return db.Unscoped().Delete(&item).Error
}

// findOwnedItem loads a cart item only if it belongs to the given user's
// cart. Items of other users come back as ErrCartItemNotFound so the
// response does not reveal whether the item exists.
func findOwnedItem(db *gorm.DB, userID, itemID int) (models.CartItem, error) {
	var item models.CartItem
	err := db.Joins("JOIN carts ON carts.id = cart_items.cart_id").
		Where("cart_items.id = ? AND carts.user_id = ?", itemID, userID).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return item, ErrCartItemNotFound
	}
	return item, err
}

func cartItemCount(db *gorm.DB, cartID uint) (int, error) {
	var total int64
	err := db.Model(&models.CartItem{}).
		Where("cart_id = ?", cartID).
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&total).Error
	return int(total), err
}
