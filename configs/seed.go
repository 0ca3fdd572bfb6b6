package configs

import (
	"log"

	"github.com/Naitik2408/pizza-sub001/entity"
)

// SeedSettings creates the singleton business-settings row on first boot.
func SeedSettings() error {
	db := DB()
	var count int64
	db.Model(&entity.BusinessSettings{}).Count(&count)
	if count > 0 {
		return nil
	}
	log.Println("seeding default business settings")
	return db.Create(&entity.BusinessSettings{
		GSTPercentage:       5,
		ApplyGST:            true,
		DeliveryCharge:      4000,  // ₹40
		FreeDeliveryAbove:   50000, // ₹500
		DeliveryOnAllOrders: false,
		MinOrderValue:       10000, // ₹100
		IsOpen:              true,
	}).Error
}

// SeedCatalog loads a starter menu with sizes and add-on groups.
func SeedCatalog() error {
	db := DB()
	var count int64
	db.Model(&entity.CatalogItem{}).Count(&count)
	if count > 0 {
		return nil
	}
	log.Println("seeding catalog")

	margherita := entity.CatalogItem{
		Name:        "Margherita",
		Description: "Classic tomato and mozzarella",
		BasePrice:   19900,
		FoodType:    "veg",
		IsAvailable: true,
		Variations: []entity.SizeVariation{
			{Size: "Small", Price: 19900, IsAvailable: true, SortOrder: 1},
			{Size: "Medium", Price: 29900, IsAvailable: true, SortOrder: 2},
			{Size: "Large", Price: 39900, IsAvailable: true, SortOrder: 3},
		},
		AddOnGroups: []entity.AddOnGroup{
			{
				Name: "Crust", MinSelect: 1, MaxSelect: 1, IsRequired: true, SortOrder: 1,
				AddOns: []entity.AddOn{
					{Name: "Hand Tossed", Price: 0, IsAvailable: true, IsDefault: true},
					{Name: "Cheese Burst", Price: 9900, IsAvailable: true, SizePrices: []entity.AddOnSizePrice{
						{Size: "Small", Price: 7900},
						{Size: "Medium", Price: 9900},
						{Size: "Large", Price: 12900},
					}},
				},
			},
			{
				Name: "Toppings", MinSelect: 1, MaxSelect: 3, IsRequired: false, SortOrder: 2,
				AddOns: []entity.AddOn{
					{Name: "Olives", Price: 4000, IsAvailable: true},
					{Name: "Jalapenos", Price: 4000, IsAvailable: true},
					{Name: "Paneer", Price: 6000, IsAvailable: true},
					{Name: "Mushroom", Price: 5000, IsAvailable: true},
				},
			},
		},
	}
	garlicBread := entity.CatalogItem{
		Name:        "Garlic Bread",
		Description: "With herb butter",
		BasePrice:   9900,
		FoodType:    "veg",
		IsAvailable: true,
	}

	if err := db.Create(&margherita).Error; err != nil {
		return err
	}
	return db.Create(&garlicBread).Error
}

// SeedOffers loads starter promo codes.
func SeedOffers() error {
	db := DB()
	var count int64
	db.Model(&entity.Offer{}).Count(&count)
	if count > 0 {
		return nil
	}
	log.Println("seeding offers")
	offers := []entity.Offer{
		{Code: "SAVE50", Title: "Flat ₹50 off", DiscountType: entity.DiscountFixed,
			DiscountValue: 5000, MinOrder: 30000, IsActive: true},
		{Code: "TENOFF", Title: "10% off up to ₹100", DiscountType: entity.DiscountPercentage,
			DiscountValue: 10, MinOrder: 20000, MaxDiscount: 10000, IsActive: true},
	}
	return db.Create(&offers).Error
}
