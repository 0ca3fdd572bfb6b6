package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/Naitik2408/pizza-sub001/entity"
	"github.com/Naitik2408/pizza-sub001/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeGateway records charges and can fail or block on demand.
type fakeGateway struct {
	mu      sync.Mutex
	charges []int64
	fail    error
	entered chan struct{}
	release chan struct{}
}

func (g *fakeGateway) Charge(_ context.Context, _ string, amount int64) error {
	g.mu.Lock()
	g.charges = append(g.charges, amount)
	g.mu.Unlock()
	if g.entered != nil {
		g.entered <- struct{}{}
	}
	if g.release != nil {
		<-g.release
	}
	return g.fail
}

func (g *fakeGateway) charged() []int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]int64, len(g.charges))
	copy(out, g.charges)
	return out
}

type checkoutFixture struct {
	db      *gorm.DB
	gateway *fakeGateway
	rules   *BusinessRulesService
	carts   *CartService
	addrs   *AddressService
	co      *CheckoutService
	pizza   *entity.CatalogItem
	side    *entity.CatalogItem
}

func newCheckoutFixture(t *testing.T) *checkoutFixture {
	t.Helper()
	db := newTestDB(t)
	seedTestSettings(t, db)
	seedTestOffers(t, db)

	f := &checkoutFixture{
		db:      db,
		gateway: &fakeGateway{},
		pizza:   seedTestPizza(t, db),
		side:    seedTestSide(t, db),
	}
	f.rules = NewBusinessRulesService(repository.NewSettingsRepository(db))
	discounts := NewDiscountService(repository.NewOfferRepository(db))
	f.carts = NewCartService(repository.NewCatalogRepository(db), repository.NewCartRepository(db), f.rules, discounts)
	orders := NewOrderService(db, repository.NewOrderRepository(db), nopNotifier{})
	f.addrs = NewAddressService(repository.NewAddressRepository(db))
	f.co = NewCheckoutService(f.carts, f.rules, orders, f.addrs, f.gateway)
	return f
}

func (f *checkoutFixture) addPizzas(t *testing.T, owner string, qty int) {
	t.Helper()
	_, err := f.carts.Add(owner, &AddToCartIn{
		ItemID: f.pizza.ID, Qty: qty, Size: "Small",
		AddOnIDs: []uint{f.pizza.AddOnGroups[0].AddOns[0].ID}, // Hand Tossed, ₹0
	})
	require.NoError(t, err)
}

// toPayment drives a guest session to the payment state with an address
// selected.
func (f *checkoutFixture) toPayment(t *testing.T, owner, guestID string) *entity.Address {
	t.Helper()
	require.NoError(t, f.co.ProceedToAddress(owner))
	addr, err := f.addrs.Create(0, guestID, &AddressIn{Line1: "12 MG Road", City: "Pune", Pincode: "411001"})
	require.NoError(t, err)
	require.NoError(t, f.co.SelectAddress(owner, 0, guestID, addr.ID))
	require.NoError(t, f.co.ProceedToPayment(owner))
	return addr
}

func TestCheckoutGuestHappyPath(t *testing.T) {
	f := newCheckoutFixture(t)
	owner, guestID := "guest:g1", "g1"
	f.addPizzas(t, owner, 2) // 39800

	f.toPayment(t, owner, guestID)

	// guest cannot pay without contact info; the transition defers, not fails
	_, err := f.co.Pay(context.Background(), owner, 0, guestID, entity.PaymentOnline, "", "")
	assert.ErrorIs(t, err, ErrContactRequired)
	assert.Equal(t, StatePayment, f.co.Session(owner).State)

	assert.ErrorIs(t, f.co.SetGuestContact(owner, "Asha", "12345"), ErrInvalidPhone)
	require.NoError(t, f.co.SetGuestContact(owner, "Asha", "9876543210"))

	order, err := f.co.Pay(context.Background(), owner, 0, guestID, entity.PaymentOnline, "", "")
	require.NoError(t, err)

	// 39800 + 4000 delivery + 1990 GST
	assert.Equal(t, int64(45790), order.Total)
	assert.Equal(t, "Asha", order.CustomerName)
	assert.Equal(t, "9876543210", order.CustomerPhone)
	assert.Equal(t, guestID, order.GuestID)
	assert.Contains(t, order.AddressText, "12 MG Road")
	assert.Equal(t, entity.OrderPlaced, order.Status)
	assert.Equal(t, []int64{45790}, f.gateway.charged())

	sess := f.co.Session(owner)
	assert.Equal(t, StateConfirmation, sess.State)
	assert.Equal(t, order.OrderNumber, sess.OrderNumber)

	require.NoError(t, f.co.Complete(owner))
	assert.Empty(t, f.carts.Get(owner).Lines)
	assert.Equal(t, StateCart, f.co.Session(owner).State)
}

func TestCheckoutCashOnDeliverySkipsGateway(t *testing.T) {
	f := newCheckoutFixture(t)
	owner, guestID := "guest:g2", "g2"
	f.addPizzas(t, owner, 2)
	f.toPayment(t, owner, guestID)
	require.NoError(t, f.co.SetGuestContact(owner, "Ravi", "9000000001"))

	order, err := f.co.Pay(context.Background(), owner, 0, guestID, entity.PaymentCOD, "", "")
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentCOD, order.PaymentMethod)
	assert.Empty(t, f.gateway.charged())
}

func TestProceedToAddressRefusals(t *testing.T) {
	f := newCheckoutFixture(t)
	owner := "guest:g3"

	assert.ErrorIs(t, f.co.ProceedToAddress(owner), ErrEmptyCart)

	// below the shop's minimum order value
	_, err := f.carts.Add(owner, &AddToCartIn{ItemID: f.side.ID, Qty: 1}) // 9900 < 10000
	require.NoError(t, err)
	var minErr *MinOrderNotMetError
	require.ErrorAs(t, f.co.ProceedToAddress(owner), &minErr)
	assert.Equal(t, int64(100), minErr.Shortfall)

	// business closed
	require.NoError(t, f.rules.Save(&entity.BusinessSettings{
		GSTPercentage: 5, ApplyGST: true, DeliveryCharge: 4000,
		FreeDeliveryAbove: 50000, MinOrderValue: 10000,
		IsOpen: false, ClosedReason: "kitchen maintenance",
	}))
	_, err = f.carts.Add(owner, &AddToCartIn{ItemID: f.side.ID, Qty: 1})
	require.NoError(t, err)
	var closed *ClosedError
	require.ErrorAs(t, f.co.ProceedToAddress(owner), &closed)
	assert.Equal(t, "kitchen maintenance", closed.Reason)
	assert.Equal(t, StateCart, f.co.Session(owner).State)

	// reopen and the same cart goes through
	require.NoError(t, f.rules.Save(&entity.BusinessSettings{
		GSTPercentage: 5, ApplyGST: true, DeliveryCharge: 4000,
		FreeDeliveryAbove: 50000, MinOrderValue: 10000, IsOpen: true,
	}))
	require.NoError(t, f.co.ProceedToAddress(owner))
	assert.ErrorIs(t, f.co.ProceedToAddress(owner), ErrBadTransition)
}

func TestProceedToPaymentNeedsAddress(t *testing.T) {
	f := newCheckoutFixture(t)
	owner := "guest:g4"
	f.addPizzas(t, owner, 2)
	require.NoError(t, f.co.ProceedToAddress(owner))

	assert.ErrorIs(t, f.co.ProceedToPayment(owner), ErrNoAddress)
}

func TestSelectAddressIsOwnerScoped(t *testing.T) {
	f := newCheckoutFixture(t)
	owner := "guest:g5"
	f.addPizzas(t, owner, 2)
	require.NoError(t, f.co.ProceedToAddress(owner))

	other, err := f.addrs.Create(0, "someone-else", &AddressIn{Line1: "1 Oak St", City: "Pune"})
	require.NoError(t, err)
	assert.ErrorIs(t, f.co.SelectAddress(owner, 0, "g5", other.ID), ErrAddressNotFound)
}

func TestBackWalksTowardCart(t *testing.T) {
	f := newCheckoutFixture(t)
	owner, guestID := "guest:g6", "g6"
	f.addPizzas(t, owner, 2)
	f.toPayment(t, owner, guestID)

	require.NoError(t, f.co.Back(owner)) // payment -> address
	assert.Equal(t, StateAddress, f.co.Session(owner).State)
	require.NoError(t, f.co.Back(owner)) // address -> cart
	assert.Equal(t, StateCart, f.co.Session(owner).State)
	assert.ErrorIs(t, f.co.Back(owner), ErrBadTransition)
}

func TestPayRejectsUnknownMethodAndWrongState(t *testing.T) {
	f := newCheckoutFixture(t)
	owner := "guest:g7"
	f.addPizzas(t, owner, 2)

	_, err := f.co.Pay(context.Background(), owner, 0, "g7", "cheque", "", "")
	assert.ErrorIs(t, err, ErrBadMethod)

	_, err = f.co.Pay(context.Background(), owner, 0, "g7", entity.PaymentOnline, "", "")
	assert.ErrorIs(t, err, ErrBadTransition)
}

func TestPaySecondAttemptIsRejectedWhileFirstRuns(t *testing.T) {
	f := newCheckoutFixture(t)
	owner, guestID := "guest:g8", "g8"
	f.addPizzas(t, owner, 2)
	f.toPayment(t, owner, guestID)
	require.NoError(t, f.co.SetGuestContact(owner, "Asha", "9876543210"))

	f.gateway.entered = make(chan struct{}, 1)
	f.gateway.release = make(chan struct{})

	done := make(chan error, 1)
	go func() {
		_, err := f.co.Pay(context.Background(), owner, 0, guestID, entity.PaymentOnline, "", "")
		done <- err
	}()
	<-f.gateway.entered

	_, err := f.co.Pay(context.Background(), owner, 0, guestID, entity.PaymentOnline, "", "")
	assert.ErrorIs(t, err, ErrPaymentInFlight)

	close(f.gateway.release)
	require.NoError(t, <-done)
	assert.Len(t, f.gateway.charged(), 1, "only the first attempt reached the gateway")
	assert.Equal(t, StateConfirmation, f.co.Session(owner).State)
}

func TestPayFailureStaysInPaymentForRetry(t *testing.T) {
	f := newCheckoutFixture(t)
	owner, guestID := "guest:g9", "g9"
	f.addPizzas(t, owner, 2)
	f.toPayment(t, owner, guestID)
	require.NoError(t, f.co.SetGuestContact(owner, "Asha", "9876543210"))

	f.gateway.fail = errors.New("card declined")
	_, err := f.co.Pay(context.Background(), owner, 0, guestID, entity.PaymentOnline, "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "card declined")
	assert.Equal(t, StatePayment, f.co.Session(owner).State)

	f.gateway.fail = nil
	order, err := f.co.Pay(context.Background(), owner, 0, guestID, entity.PaymentOnline, "", "")
	require.NoError(t, err)
	assert.NotZero(t, order.ID)
	assert.Equal(t, StateConfirmation, f.co.Session(owner).State)
}

func TestPayLateResultIsDiscardedWithWarning(t *testing.T) {
	f := newCheckoutFixture(t)
	owner, guestID := "guest:g10", "g10"
	f.addPizzas(t, owner, 2)
	f.toPayment(t, owner, guestID)
	require.NoError(t, f.co.SetGuestContact(owner, "Asha", "9876543210"))

	f.gateway.entered = make(chan struct{}, 1)
	f.gateway.release = make(chan struct{})

	type result struct {
		order *entity.Order
		err   error
	}
	done := make(chan result, 1)
	go func() {
		o, err := f.co.Pay(context.Background(), owner, 0, guestID, entity.PaymentOnline, "", "")
		done <- result{o, err}
	}()
	<-f.gateway.entered

	// user navigates away while the gateway is still working
	require.NoError(t, f.co.Back(owner))
	close(f.gateway.release)

	res := <-done
	require.NoError(t, res.err)
	assert.NotZero(t, res.order.ID, "the order itself was created")

	sess := f.co.Session(owner)
	assert.Equal(t, StateAddress, sess.State, "late result does not yank the session forward")
	assert.Zero(t, sess.OrderID)

	w := f.co.LastWarning(owner)
	assert.Contains(t, w, res.order.OrderNumber)
	assert.Empty(t, f.co.LastWarning(owner), "warning pops once")
}

func TestPayOnEmptiedCart(t *testing.T) {
	f := newCheckoutFixture(t)
	owner, guestID := "guest:g11", "g11"
	f.addPizzas(t, owner, 2)
	f.toPayment(t, owner, guestID)
	require.NoError(t, f.co.SetGuestContact(owner, "Asha", "9876543210"))

	f.carts.Clear(owner)
	_, err := f.co.Pay(context.Background(), owner, 0, guestID, entity.PaymentOnline, "", "")
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestCompleteOnlyFromConfirmation(t *testing.T) {
	f := newCheckoutFixture(t)
	owner := "guest:g12"
	f.addPizzas(t, owner, 2)
	assert.ErrorIs(t, f.co.Complete(owner), ErrBadTransition)
}

func TestCompleteClearsCartAndDiscount(t *testing.T) {
	f := newCheckoutFixture(t)
	owner, guestID := "guest:g13", "g13"
	f.addPizzas(t, owner, 2)
	_, err := f.carts.ApplyOffer(owner, "SAVE50")
	require.NoError(t, err)

	f.toPayment(t, owner, guestID)
	require.NoError(t, f.co.SetGuestContact(owner, "Asha", "9876543210"))
	order, err := f.co.Pay(context.Background(), owner, 0, guestID, entity.PaymentCOD, "", "")
	require.NoError(t, err)
	assert.Equal(t, int64(5000), order.Discount)
	assert.Equal(t, "SAVE50", order.OfferCode)

	require.NoError(t, f.co.Complete(owner))
	view := f.carts.Get(owner)
	assert.Empty(t, view.Lines)
	assert.Nil(t, view.Offer)
}

func TestCancelAbandonsSessionKeepsCart(t *testing.T) {
	f := newCheckoutFixture(t)
	owner, guestID := "guest:g14", "g14"
	f.addPizzas(t, owner, 2)
	f.toPayment(t, owner, guestID)

	f.co.Cancel(owner)
	assert.Equal(t, StateCart, f.co.Session(owner).State)
	assert.Len(t, f.carts.Get(owner).Lines, 1)
}

func TestAuthenticatedPayUsesAccountIdentity(t *testing.T) {
	f := newCheckoutFixture(t)
	owner := "user:42"
	f.addPizzas(t, owner, 2)

	require.NoError(t, f.co.ProceedToAddress(owner))
	addr, err := f.addrs.Create(42, "", &AddressIn{Line1: "7 Lake View", City: "Mumbai"})
	require.NoError(t, err)
	require.NoError(t, f.co.SelectAddress(owner, 42, "", addr.ID))
	require.NoError(t, f.co.ProceedToPayment(owner))

	// no guest contact step for account holders
	order, err := f.co.Pay(context.Background(), owner, 42, "", entity.PaymentCOD, "Meera", "9812345678")
	require.NoError(t, err)
	assert.Equal(t, uint(42), order.UserID)
	assert.Equal(t, "Meera", order.CustomerName)
}
