package configs

import (
	"github.com/Naitik2408/pizza-sub001/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {
	db.AutoMigrate(
		&entity.User{},
		&entity.CatalogItem{}, &entity.SizeVariation{},
		&entity.AddOnGroup{}, &entity.AddOn{}, &entity.AddOnSizePrice{},
		&entity.BusinessSettings{}, &entity.Offer{},
		&entity.Address{},
		&entity.Order{}, &entity.OrderItem{}, &entity.OrderItemAddOn{},
		&entity.CartSnapshot{},
	)
}
