package repository

import (
	"github.com/Naitik2408/pizza-sub001/entity"
	"gorm.io/gorm"
)

type OfferRepository struct{ DB *gorm.DB }

func NewOfferRepository(db *gorm.DB) *OfferRepository { return &OfferRepository{DB: db} }

func (r *OfferRepository) FindByCode(code string) (*entity.Offer, error) {
	var off entity.Offer
	if err := r.DB.Where("code = ?", code).First(&off).Error; err != nil {
		return nil, err
	}
	return &off, nil
}

func (r *OfferRepository) ListActive() ([]entity.Offer, error) {
	var out []entity.Offer
	err := r.DB.Where("is_active = ?", true).Order("id DESC").Find(&out).Error
	return out, err
}
