package services

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyCart        = errors.New("cart is empty")
	ErrMissingShipping  = errors.New("shipping address and phone are required")
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrInvalidRating    = errors.New("rating must be between 1 and 5")
)

// InsufficientStockError reports which product could not cover the
// requested quantity. The cart it came from is left untouched.
type InsufficientStockError struct {
	ProductID   uint
	ProductName string
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("not enough stock for %s", e.ProductName)
}
