package entity

import (
	"gorm.io/gorm"
)

// CartSnapshot is the write-behind mirror of an in-memory cart, keyed by the
// owner key ("user:<id>" or "guest:<id>"). It is written after successful
// mutations and read only when a cart is first loaded, never mid-operation.
type CartSnapshot struct {
	gorm.Model
	OwnerKey string `gorm:"size:80;uniqueIndex;not null" json:"ownerKey"`
	Version  int    `json:"version"`
	Payload  string `json:"payload"` // JSON: lines + applied offer
}
