package entity

import (
	"gorm.io/gorm"
)

// CatalogItem is reference data fetched by the client; the cart only keeps
// price snapshots taken from it, never a live pointer.
type CatalogItem struct {
	gorm.Model
	Name        string `json:"name"`
	Description string `json:"description"`
	BasePrice   int64  `json:"basePrice"` // paise; used when no size variation matches
	Image       string `json:"image"`
	FoodType    string `json:"foodType"` // veg | non-veg
	IsAvailable bool   `json:"isAvailable"`

	Variations  []SizeVariation `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"sizeVariations"`
	AddOnGroups []AddOnGroup    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"addOnGroups"`
}
