package entity

import (
	"gorm.io/gorm"
)

type AddOn struct {
	gorm.Model
	GroupID uint       `json:"groupId"`
	Group   AddOnGroup `json:"-"`

	Name        string `json:"name"`
	Price       int64  `json:"price"` // base price; per-size rows override when present
	IsAvailable bool   `json:"isAvailable"`
	IsDefault   bool   `json:"isDefault"`

	SizePrices []AddOnSizePrice `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"sizePrices"`
}

// PriceTable flattens the per-size rows into the lookup shape the cart keeps
// on its selected-add-on snapshots. Nil when the add-on has no per-size rows.
func (a *AddOn) PriceTable() map[string]int64 {
	if len(a.SizePrices) == 0 {
		return nil
	}
	t := make(map[string]int64, len(a.SizePrices))
	for _, sp := range a.SizePrices {
		t[sp.Size] = sp.Price
	}
	return t
}
