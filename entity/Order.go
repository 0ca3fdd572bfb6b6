package entity

import (
	"gorm.io/gorm"
)

const (
	PaymentOnline = "online"
	PaymentCOD    = "cashOnDelivery"

	OrderPlaced = "Placed"
)

// Order snapshots everything the cart computed at submission time; nothing is
// re-derived from catalog rows afterwards.
type Order struct {
	gorm.Model
	OrderNumber    string `gorm:"size:20;uniqueIndex;not null" json:"orderNumber"`
	IdempotencyKey string `gorm:"size:100;uniqueIndex" json:"-"`

	UserID  uint   `json:"userId"`                 // 0 for guest orders
	GuestID string `gorm:"size:64;index" json:"-"` // empty for account orders

	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	AddressText   string `json:"address"`
	PaymentMethod string `json:"paymentMethod"` // online | cashOnDelivery
	Status        string `json:"status"`

	Subtotal    int64  `json:"subtotal"`
	DeliveryFee int64  `json:"deliveryFee"`
	Tax         int64  `json:"tax"`
	Discount    int64  `json:"discount"`
	Total       int64  `json:"total"`
	OfferCode   string `json:"offerCode,omitempty"`

	Items []OrderItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}
