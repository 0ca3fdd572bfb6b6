package entity

import (
	"gorm.io/gorm"
)

type SizeVariation struct {
	gorm.Model
	CatalogItemID uint        `json:"catalogItemId"`
	CatalogItem   CatalogItem `json:"-"`

	Size        string `json:"size"` // Small | Medium | Large
	Price       int64  `json:"price"`
	IsAvailable bool   `json:"isAvailable"`
	SortOrder   int    `json:"sortOrder"`
}
