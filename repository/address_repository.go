package repository

import (
	"github.com/Naitik2408/pizza-sub001/entity"
	"gorm.io/gorm"
)

type AddressRepository struct{ DB *gorm.DB }

func NewAddressRepository(db *gorm.DB) *AddressRepository { return &AddressRepository{DB: db} }

func (r *AddressRepository) scope(userID uint, guestID string) *gorm.DB {
	if userID != 0 {
		return r.DB.Where("user_id = ?", userID)
	}
	return r.DB.Where("guest_id = ?", guestID)
}

func (r *AddressRepository) List(userID uint, guestID string) ([]entity.Address, error) {
	var out []entity.Address
	err := r.scope(userID, guestID).Order("is_default DESC, id DESC").Find(&out).Error
	return out, err
}

func (r *AddressRepository) Get(id, userID uint, guestID string) (*entity.Address, error) {
	var a entity.Address
	if err := r.scope(userID, guestID).First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AddressRepository) Create(a *entity.Address) error {
	return r.DB.Create(a).Error
}

func (r *AddressRepository) Update(a *entity.Address) error {
	return r.DB.Save(a).Error
}

func (r *AddressRepository) Delete(id, userID uint, guestID string) error {
	return r.scope(userID, guestID).Delete(&entity.Address{}, id).Error
}

// ClearDefault unsets the default flag before another address takes it.
func (r *AddressRepository) ClearDefault(userID uint, guestID string) error {
	q := r.DB.Model(&entity.Address{})
	if userID != 0 {
		q = q.Where("user_id = ?", userID)
	} else {
		q = q.Where("guest_id = ?", guestID)
	}
	return q.Update("is_default", false).Error
}
