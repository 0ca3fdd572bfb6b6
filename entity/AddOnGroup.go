package entity

import (
	"gorm.io/gorm"
)

// AddOnGroup invariant: 1 <= MinSelect <= MaxSelect. A valid selection has
// length <= MaxSelect always, and length >= MinSelect when IsRequired.
type AddOnGroup struct {
	gorm.Model
	CatalogItemID uint        `json:"catalogItemId"`
	CatalogItem   CatalogItem `json:"-"`

	Name       string `json:"name"`
	MinSelect  int    `json:"minSelect"`
	MaxSelect  int    `json:"maxSelect"`
	IsRequired bool   `json:"isRequired"`
	SortOrder  int    `json:"sortOrder"`

	AddOns []AddOn `gorm:"foreignKey:GroupID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"addOns"`
}
