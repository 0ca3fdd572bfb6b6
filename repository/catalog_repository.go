package repository

import (
	"github.com/Naitik2408/pizza-sub001/entity"
	"gorm.io/gorm"
)

type CatalogRepository struct{ DB *gorm.DB }

func NewCatalogRepository(db *gorm.DB) *CatalogRepository { return &CatalogRepository{DB: db} }

func (r *CatalogRepository) ListItems() ([]entity.CatalogItem, error) {
	var items []entity.CatalogItem
	err := r.DB.
		Preload("Variations", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order") }).
		Where("is_available = ?", true).
		Order("id").
		Find(&items).Error
	return items, err
}

// GetItem loads the full customization tree: variations, groups, add-ons and
// their per-size price rows.
func (r *CatalogRepository) GetItem(id uint) (*entity.CatalogItem, error) {
	var item entity.CatalogItem
	err := r.DB.
		Preload("Variations", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order") }).
		Preload("AddOnGroups", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order") }).
		Preload("AddOnGroups.AddOns").
		Preload("AddOnGroups.AddOns.SizePrices").
		First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}
