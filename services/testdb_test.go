package services

import (
	"fmt"
	"testing"

	"github.com/Naitik2408/pizza-sub001/entity"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a per-test shared in-memory sqlite database so gorm's
// connection pool sees one schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.CatalogItem{},
		&entity.SizeVariation{},
		&entity.AddOnGroup{},
		&entity.AddOn{},
		&entity.AddOnSizePrice{},
		&entity.Offer{},
		&entity.BusinessSettings{},
		&entity.Address{},
		&entity.CartSnapshot{},
		&entity.Order{},
		&entity.OrderItem{},
		&entity.OrderItemAddOn{},
	))
	return db
}

func seedTestSettings(t *testing.T, db *gorm.DB) {
	t.Helper()
	require.NoError(t, db.Create(&entity.BusinessSettings{
		GSTPercentage:     5,
		ApplyGST:          true,
		DeliveryCharge:    4000,
		FreeDeliveryAbove: 50000,
		MinOrderValue:     10000,
		IsOpen:            true,
	}).Error)
}

// seedTestPizza has size variations, a required single-select crust group and
// an optional toppings group.
func seedTestPizza(t *testing.T, db *gorm.DB) *entity.CatalogItem {
	t.Helper()
	item := &entity.CatalogItem{
		Name: "Margherita", BasePrice: 19900, FoodType: "veg", IsAvailable: true,
		Variations: []entity.SizeVariation{
			{Size: "Small", Price: 19900},
			{Size: "Medium", Price: 29900},
			{Size: "Large", Price: 39900},
		},
		AddOnGroups: []entity.AddOnGroup{
			{
				Name: "Crust", MinSelect: 1, MaxSelect: 1, IsRequired: true, SortOrder: 1,
				AddOns: []entity.AddOn{
					{Name: "Hand Tossed", Price: 0, IsAvailable: true, IsDefault: true},
					{Name: "Cheese Burst", Price: 7900, IsAvailable: true,
						SizePrices: []entity.AddOnSizePrice{
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
					{Name: "Paneer", Price: 6000, IsAvailable: true},
				},
			},
		},
	}
	require.NoError(t, db.Create(item).Error)
	return item
}

// seedTestSide is a plain item with no variations or add-on groups.
func seedTestSide(t *testing.T, db *gorm.DB) *entity.CatalogItem {
	t.Helper()
	item := &entity.CatalogItem{Name: "Garlic Bread", BasePrice: 9900, FoodType: "veg", IsAvailable: true}
	require.NoError(t, db.Create(item).Error)
	return item
}

func seedTestOffers(t *testing.T, db *gorm.DB) {
	t.Helper()
	require.NoError(t, db.Create(&entity.Offer{
		Code: "SAVE50", Title: "Flat ₹50 off",
		DiscountType: entity.DiscountFixed, DiscountValue: 5000,
		MinOrder: 30000, IsActive: true,
	}).Error)
	require.NoError(t, db.Create(&entity.Offer{
		Code: "TENOFF", Title: "10% off",
		DiscountType: entity.DiscountPercentage, DiscountValue: 10,
		MinOrder: 20000, MaxDiscount: 10000, IsActive: true,
	}).Error)
}

type nopNotifier struct{}

func (nopNotifier) Notify(OrderSummary) error { return nil }
