package entity

import (
	"gorm.io/gorm"
)

// BusinessSettings is a singleton row replaced wholesale on admin edits and
// read periodically by the rules provider.
type BusinessSettings struct {
	gorm.Model
	GSTPercentage       float64 `json:"gstPercentage"`
	ApplyGST            bool    `json:"applyGST"`
	DeliveryCharge      int64   `json:"deliveryCharge"`      // paise
	FreeDeliveryAbove   int64   `json:"freeDeliveryAbove"`   // paise subtotal threshold
	DeliveryOnAllOrders bool    `json:"deliveryOnAllOrders"` // true = threshold ignored
	MinOrderValue       int64   `json:"minOrderValue"`       // paise
	IsOpen              bool    `json:"isOpen"`
	ClosedReason        string  `json:"closedReason"`
}
