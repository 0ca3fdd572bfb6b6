package repository

import (
	"github.com/Naitik2408/pizza-sub001/entity"
	"gorm.io/gorm"
)

type SettingsRepository struct{ DB *gorm.DB }

func NewSettingsRepository(db *gorm.DB) *SettingsRepository { return &SettingsRepository{DB: db} }

// Get returns the singleton settings row.
func (r *SettingsRepository) Get() (*entity.BusinessSettings, error) {
	var s entity.BusinessSettings
	if err := r.DB.Order("id").First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// Save replaces the singleton row wholesale.
func (r *SettingsRepository) Save(in *entity.BusinessSettings) error {
	var cur entity.BusinessSettings
	err := r.DB.Order("id").First(&cur).Error
	if err == gorm.ErrRecordNotFound {
		return r.DB.Create(in).Error
	}
	if err != nil {
		return err
	}
	in.ID = cur.ID
	return r.DB.Save(in).Error
}
