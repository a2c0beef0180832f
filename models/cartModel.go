package models

import "gorm.io/gorm"

// Cart is created lazily, one per user, and emptied on successful checkout.
type Cart struct {
	gorm.Model
	UserID int        `json:"userId" gorm:"uniqueIndex"`
	Items  []CartItem `json:"items" gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
}

type CartItem struct {
	gorm.Model
	CartID    int     `json:"cartId" gorm:"uniqueIndex:idx_cart_items_cart_product"`
	ProductID int     `json:"productId" gorm:"uniqueIndex:idx_cart_items_cart_product"`
	Quantity  int     `json:"quantity"`
	Product   Product `json:"product"`
}
