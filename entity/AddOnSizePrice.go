package entity

import (
	"gorm.io/gorm"
)

type AddOnSizePrice struct {
	gorm.Model
	AddOnID uint  `json:"addOnId"`
	AddOn   AddOn `json:"-"`

	Size  string `json:"size"`
	Price int64  `json:"price"`
}
