package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `gorm:"uniqueIndex;not null" json:"email"`
	Password  string `json:"-"`
	Phone     string `json:"phone"`
	Role      string `json:"role"` // customer | admin

	Addresses []Address `json:"-"`
	Orders    []Order   `json:"-"`
}
