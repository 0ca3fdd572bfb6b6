package services

import (
	"testing"

	"github.com/Naitik2408/pizza-sub001/entity"
	"github.com/Naitik2408/pizza-sub001/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type cartFixture struct {
	db    *gorm.DB
	svc   *CartService
	pizza *entity.CatalogItem
	side  *entity.CatalogItem
}

func newCartFixture(t *testing.T) *cartFixture {
	t.Helper()
	db := newTestDB(t)
	seedTestSettings(t, db)
	seedTestOffers(t, db)
	f := &cartFixture{
		db:    db,
		pizza: seedTestPizza(t, db),
		side:  seedTestSide(t, db),
	}
	f.svc = newCartServiceOn(db)
	return f
}

func newCartServiceOn(db *gorm.DB) *CartService {
	rules := NewBusinessRulesService(repository.NewSettingsRepository(db))
	discounts := NewDiscountService(repository.NewOfferRepository(db))
	return NewCartService(repository.NewCatalogRepository(db), repository.NewCartRepository(db), rules, discounts)
}

func (f *cartFixture) crust(i int) uint    { return f.pizza.AddOnGroups[0].AddOns[i].ID }
func (f *cartFixture) toppings(i int) uint { return f.pizza.AddOnGroups[1].AddOns[i].ID }

const testOwner = "guest:g1"

func TestCartServiceAddResolvesPrices(t *testing.T) {
	f := newCartFixture(t)

	totals, err := f.svc.Add(testOwner, &AddToCartIn{
		ItemID:   f.pizza.ID,
		Qty:      1,
		Size:     "Medium",
		AddOnIDs: []uint{f.crust(1), f.toppings(0)}, // Cheese Burst + Olives
	})
	require.NoError(t, err)

	// 29900 base + 9900 medium cheese burst + 4000 olives
	assert.Equal(t, int64(43800), totals.Subtotal)

	view := f.svc.Get(testOwner)
	require.Len(t, view.Lines, 1)
	line := view.Lines[0]
	assert.Equal(t, int64(29900), line.UnitPrice)
	require.Len(t, line.AddOns, 2)
	assert.Equal(t, int64(9900), line.AddOns[0].Price)
	assert.NotNil(t, line.AddOns[0].PriceBySize, "per-size table travels with the snapshot")
}

func TestCartServiceAddRejectsMissingRequiredGroup(t *testing.T) {
	f := newCartFixture(t)

	_, err := f.svc.Add(testOwner, &AddToCartIn{
		ItemID: f.pizza.ID, Qty: 1, Size: "Small",
		AddOnIDs: []uint{f.toppings(0)}, // no crust picked
	})
	var rv *RuleViolation
	require.ErrorAs(t, err, &rv)
	assert.Equal(t, "Crust", rv.GroupName)
	assert.Empty(t, f.svc.Get(testOwner).Lines, "rejected add leaves the cart untouched")
}

func TestCartServiceAddRejectsUnknownAddOn(t *testing.T) {
	f := newCartFixture(t)
	_, err := f.svc.Add(testOwner, &AddToCartIn{
		ItemID: f.pizza.ID, Qty: 1, AddOnIDs: []uint{9999},
	})
	assert.ErrorIs(t, err, ErrBadAddOn)
}

func TestCartServiceAddUnknownOrUnavailableItem(t *testing.T) {
	f := newCartFixture(t)

	_, err := f.svc.Add(testOwner, &AddToCartIn{ItemID: 9999, Qty: 1})
	assert.ErrorIs(t, err, ErrItemNotFound)

	off := &entity.CatalogItem{Name: "Seasonal Special", BasePrice: 25000, IsAvailable: false}
	require.NoError(t, f.db.Create(off).Error)
	_, err = f.svc.Add(testOwner, &AddToCartIn{ItemID: off.ID, Qty: 1})
	assert.ErrorIs(t, err, ErrItemUnavailable)
}

func TestCartServiceSnapshotRoundTrip(t *testing.T) {
	f := newCartFixture(t)

	_, err := f.svc.Add(testOwner, &AddToCartIn{
		ItemID: f.pizza.ID, Qty: 2, Size: "Small", AddOnIDs: []uint{f.crust(0)},
	})
	require.NoError(t, err)
	_, err = f.svc.ApplyOffer(testOwner, "SAVE50")
	require.NoError(t, err)
	before := f.svc.Get(testOwner)

	// a fresh service instance sees only the persisted snapshot
	reloaded := newCartServiceOn(f.db)
	after := reloaded.Get(testOwner)

	assert.Equal(t, before.Lines, after.Lines)
	require.NotNil(t, after.Offer)
	assert.Equal(t, "SAVE50", after.Offer.Code)
	assert.Equal(t, before.Totals, after.Totals)
}

func TestCartServiceDiscardsUnknownSnapshotVersion(t *testing.T) {
	f := newCartFixture(t)
	snaps := repository.NewCartRepository(f.db)
	require.NoError(t, snaps.Save(testOwner, 99, `{"lines":[{"lineId":1,"qty":1}]}`))

	view := f.svc.Get(testOwner)
	assert.Empty(t, view.Lines, "unknown snapshot shape starts empty")
}

func TestCartServiceClearDropsSnapshot(t *testing.T) {
	f := newCartFixture(t)
	_, err := f.svc.Add(testOwner, &AddToCartIn{ItemID: f.side.ID, Qty: 1})
	require.NoError(t, err)

	f.svc.Clear(testOwner)

	reloaded := newCartServiceOn(f.db)
	assert.Empty(t, reloaded.Get(testOwner).Lines)
}

func TestCartServiceChangeSizeReresolves(t *testing.T) {
	f := newCartFixture(t)
	_, err := f.svc.Add(testOwner, &AddToCartIn{
		ItemID: f.pizza.ID, Qty: 1, Size: "Small",
		AddOnIDs: []uint{f.crust(1), f.toppings(0)},
	})
	require.NoError(t, err)

	lineID := f.svc.Get(testOwner).Lines[0].LineID
	totals, err := f.svc.ChangeSize(testOwner, lineID, "Large")
	require.NoError(t, err)

	// 39900 base + 12900 large cheese burst + 4000 olives
	assert.Equal(t, int64(56800), totals.Subtotal)

	_, err = f.svc.ChangeSize(testOwner, 9999, "Small")
	assert.ErrorIs(t, err, ErrLineNotFound)
}

func TestCartServiceApplyAndRemoveOffer(t *testing.T) {
	f := newCartFixture(t)
	_, err := f.svc.Add(testOwner, &AddToCartIn{ItemID: f.side.ID, Qty: 4}) // 39600
	require.NoError(t, err)

	totals, err := f.svc.ApplyOffer(testOwner, "save50")
	require.NoError(t, err)
	assert.Equal(t, int64(5000), totals.Discount)

	totals = f.svc.RemoveOffer(testOwner)
	assert.Equal(t, int64(0), totals.Discount)
	assert.Nil(t, f.svc.Get(testOwner).Offer)
}

func TestCartServiceOwnersAreIsolated(t *testing.T) {
	f := newCartFixture(t)
	_, err := f.svc.Add("guest:a", &AddToCartIn{ItemID: f.side.ID, Qty: 1})
	require.NoError(t, err)
	_, err = f.svc.Add("user:7", &AddToCartIn{ItemID: f.side.ID, Qty: 2})
	require.NoError(t, err)

	assert.Equal(t, int64(9900), f.svc.Get("guest:a").Totals.Subtotal)
	assert.Equal(t, int64(19800), f.svc.Get("user:7").Totals.Subtotal)
}
