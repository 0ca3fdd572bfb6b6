package entity

import (
	"gorm.io/gorm"
)

type OrderItemAddOn struct {
	gorm.Model
	OrderItemID uint      `json:"orderItemId"`
	OrderItem   OrderItem `json:"-"`

	AddOnID uint   `json:"addOnId"`
	Name    string `json:"name"`
	Price   int64  `json:"price"` // snapshot at order time
}
