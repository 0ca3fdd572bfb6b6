package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	CatalogItemID uint   `json:"catalogItemId"`
	Name          string `json:"name"`
	Size          string `json:"size,omitempty"`
	FoodType      string `json:"foodType,omitempty"`
	Qty           int    `json:"qty"`
	UnitPrice     int64  `json:"unitPrice"` // per-unit incl. customizations and add-ons
	LineTotal     int64  `json:"lineTotal"`

	// legacy customizations, serialized as JSON {category: {name, price}}
	Customizations string `json:"customizations,omitempty"`

	AddOns []OrderItemAddOn `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"addOns"`
}
