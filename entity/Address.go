package entity

import (
	"gorm.io/gorm"
)

// Address belongs to either an account (UserID) or a guest (GuestID); exactly
// one of the two is set.
type Address struct {
	gorm.Model
	UserID  uint   `json:"userId"`
	GuestID string `gorm:"size:64;index" json:"-"`

	Label     string `json:"label"` // Home, Work, ...
	Line1     string `json:"line1"`
	Line2     string `json:"line2"`
	City      string `json:"city"`
	Pincode   string `json:"pincode"`
	Phone     string `json:"phone"`
	IsDefault bool   `json:"isDefault"`
}

func (a *Address) Text() string {
	s := a.Line1
	if a.Line2 != "" {
		s += ", " + a.Line2
	}
	if a.City != "" {
		s += ", " + a.City
	}
	if a.Pincode != "" {
		s += " " + a.Pincode
	}
	return s
}
