package repository

import (
	"errors"

	"github.com/Naitik2408/pizza-sub001/entity"
	"gorm.io/gorm"
)

// CartRepository persists write-behind cart snapshots keyed by owner key.
type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

func (r *CartRepository) Load(ownerKey string) (*entity.CartSnapshot, error) {
	var row entity.CartSnapshot
	if err := r.DB.Where("owner_key = ?", ownerKey).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *CartRepository) Save(ownerKey string, version int, payload string) error {
	var row entity.CartSnapshot
	err := r.DB.Where("owner_key = ?", ownerKey).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.DB.Create(&entity.CartSnapshot{OwnerKey: ownerKey, Version: version, Payload: payload}).Error
	}
	if err != nil {
		return err
	}
	row.Version = version
	row.Payload = payload
	return r.DB.Save(&row).Error
}

func (r *CartRepository) Delete(ownerKey string) error {
	return r.DB.Unscoped().Where("owner_key = ?", ownerKey).Delete(&entity.CartSnapshot{}).Error
}
