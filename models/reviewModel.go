package models

import "gorm.io/gorm"

// Review is unique per (product, user); a second review by the same user
// replaces the first.
type Review struct {
	gorm.Model
	ProductID int    `json:"productId" gorm:"uniqueIndex:idx_reviews_product_user"`
	UserID    int    `json:"userId" gorm:"uniqueIndex:idx_reviews_product_user"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}
