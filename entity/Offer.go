package entity

import (
	"time"

	"gorm.io/gorm"
)

const (
	DiscountPercentage = "percentage"
	DiscountFixed      = "fixed"
)

// Offer is the discount metadata looked up by code. The applied amount is
// never stored here; it is computed against the live subtotal.
type Offer struct {
	gorm.Model
	Code  string `gorm:"size:50;uniqueIndex;not null" json:"code"`
	Title string `json:"title"`

	DiscountType  string `json:"discountType"`  // percentage | fixed
	DiscountValue int64  `json:"discountValue"` // percent when percentage, paise when fixed
	MinOrder      int64  `json:"minOrder"`      // paise
	MaxDiscount   int64  `json:"maxDiscount"`   // paise cap for percentage offers; 0 = no cap

	IsActive bool       `json:"isActive"`
	StartAt  *time.Time `json:"startAt,omitempty"`
	EndAt    *time.Time `json:"endAt,omitempty"`
}
