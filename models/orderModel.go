package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// ValidOrderStatus reports whether status is one of the known order states.
func ValidOrderStatus(status string) bool {
	switch status {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Order is created once at checkout; only its status changes afterwards.
type Order struct {
	gorm.Model
	Number          string          `json:"number" gorm:"size:36;uniqueIndex"`
	UserID          int             `json:"userId"`
	Total           decimal.Decimal `json:"total" gorm:"type:decimal(10,2)"`
	Status          string          `json:"status"`
	ShippingAddress string          `json:"shippingAddress"`
	Phone           string          `json:"phone"`
	OrderItems      []OrderItem     `json:"orderItems" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// OrderItem snapshots the product name and price at time of purchase. The
// referenced product cannot be deleted while order items point at it.
type OrderItem struct {
	gorm.Model
	OrderID   int             `json:"orderId"`
	ProductID int             `json:"productId"`
	Product   Product         `json:"-" gorm:"constraint:OnDelete:RESTRICT"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price" gorm:"type:decimal(10,2)"`
	Quantity  int             `json:"quantity"`
}
