package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/Naitik2408/pizza-sub001/entity"
	"github.com/google/uuid"
)

type CheckoutState string

const (
	StateCart         CheckoutState = "cart"
	StateAddress      CheckoutState = "address"
	StatePayment      CheckoutState = "payment"
	StateConfirmation CheckoutState = "confirmation"
)

var (
	ErrEmptyCart       = errors.New("cart is empty")
	ErrBadTransition   = errors.New("transition not allowed from current state")
	ErrNoAddress       = errors.New("no delivery address selected")
	ErrContactRequired = errors.New("guest contact info required before payment")
	ErrInvalidPhone    = errors.New("phone must be 10 digits")
	ErrPaymentInFlight = errors.New("a payment attempt is already in progress")
	ErrBadMethod       = errors.New("unknown payment method")
)

// ClosedError blocks checkout while the business is closed.
type ClosedError struct{ Reason string }

func (e *ClosedError) Error() string {
	if e.Reason != "" {
		return "business is closed: " + e.Reason
	}
	return "business is closed"
}

var phoneRe = regexp.MustCompile(`^[0-9]{10}$`)

// PaymentGateway is the black-box capture capability. Cash on delivery never
// reaches it.
type PaymentGateway interface {
	Charge(ctx context.Context, ref string, amount int64) error
}

type GuestContact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type CheckoutSession struct {
	State       CheckoutState `json:"state"`
	AddressID   uint          `json:"addressId,omitempty"`
	AddressText string        `json:"addressText,omitempty"`
	Guest       *GuestContact `json:"guest,omitempty"`
	OrderID     uint          `json:"orderId,omitempty"`
	OrderNumber string        `json:"orderNumber,omitempty"`

	paying  bool
	attempt string
	warning string
}

// CheckoutService drives the linear, back-navigable flow
// cart -> address -> payment -> confirmation. Each forward transition is
// gated on the cart, the business rules and the collaborator outcomes; the
// backward transitions are always allowed.
type CheckoutService struct {
	mu       sync.Mutex
	sessions map[string]*CheckoutSession

	Carts     *CartService
	Rules     *BusinessRulesService
	Orders    *OrderService
	Addresses *AddressService
	Gateway   PaymentGateway
}

func NewCheckoutService(
	carts *CartService,
	rules *BusinessRulesService,
	orders *OrderService,
	addresses *AddressService,
	gateway PaymentGateway,
) *CheckoutService {
	return &CheckoutService{
		sessions:  make(map[string]*CheckoutSession),
		Carts:     carts,
		Rules:     rules,
		Orders:    orders,
		Addresses: addresses,
		Gateway:   gateway,
	}
}

// Session returns a copy of the current session, creating it at the cart
// state on first touch.
func (s *CheckoutService) Session(ownerKey string) CheckoutSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.session(ownerKey)
}

// ProceedToAddress gates cart -> address: non-empty cart, business open,
// minimum order value met. Refusals report the specific reason, including
// the shortfall amount.
func (s *CheckoutService) ProceedToAddress(ownerKey string) error {
	view := s.Carts.Get(ownerKey)
	rules := s.Rules.Current()

	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.session(ownerKey)
	if sess.State != StateCart {
		return ErrBadTransition
	}
	if len(view.Lines) == 0 {
		return ErrEmptyCart
	}
	if !rules.IsOpen {
		return &ClosedError{Reason: rules.ClosedReason}
	}
	if view.Totals.Subtotal < rules.MinOrderValue {
		return &MinOrderNotMetError{
			Required:  rules.MinOrderValue,
			Shortfall: rules.MinOrderValue - view.Totals.Subtotal,
		}
	}
	sess.State = StateAddress
	return nil
}

// Back walks one step toward the cart. Leaving the payment state while an
// attempt is outstanding is allowed; its late result will be discarded.
func (s *CheckoutService) Back(ownerKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.session(ownerKey)
	switch sess.State {
	case StateAddress:
		sess.State = StateCart
	case StatePayment:
		sess.State = StateAddress
	default:
		return ErrBadTransition
	}
	return nil
}

func (s *CheckoutService) SelectAddress(ownerKey string, userID uint, guestID string, addressID uint) error {
	addr, err := s.Addresses.Get(addressID, userID, guestID)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.session(ownerKey)
	if sess.State != StateAddress && sess.State != StateCart {
		return ErrBadTransition
	}
	sess.AddressID = addr.ID
	sess.AddressText = addr.Text()
	return nil
}

// ProceedToPayment gates address -> payment on a selected address.
func (s *CheckoutService) ProceedToPayment(ownerKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.session(ownerKey)
	if sess.State != StateAddress {
		return ErrBadTransition
	}
	if sess.AddressID == 0 {
		return ErrNoAddress
	}
	sess.State = StatePayment
	return nil
}

// SetGuestContact stores session-scoped contact info for unauthenticated
// checkouts. The phone number is validated locally.
func (s *CheckoutService) SetGuestContact(ownerKey, name, phone string) error {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	if !phoneRe.MatchString(phone) {
		return ErrInvalidPhone
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.session(ownerKey)
	sess.Guest = &GuestContact{Name: name, Phone: phone}
	return nil
}

// Pay runs one payment attempt. Guards, in order: must be in payment state;
// a guest session must have contact info (the transition is deferred with
// ErrContactRequired, not failed); a second call while an attempt is
// outstanding is a no-op. The external capture and order submission run with
// the lock released; afterwards the machine re-checks it is still in payment
// state for this attempt — a late result is discarded with a non-blocking
// warning, and the idempotency key guarantees no double-created order.
func (s *CheckoutService) Pay(ctx context.Context, ownerKey string, userID uint, guestID, method, customerName, customerPhone string) (*entity.Order, error) {
	if method != entity.PaymentOnline && method != entity.PaymentCOD {
		return nil, ErrBadMethod
	}

	view := s.Carts.Get(ownerKey)

	s.mu.Lock()
	sess := s.session(ownerKey)
	if sess.State != StatePayment {
		s.mu.Unlock()
		return nil, ErrBadTransition
	}
	if len(view.Lines) == 0 {
		s.mu.Unlock()
		return nil, ErrEmptyCart
	}
	if userID == 0 {
		if sess.Guest == nil {
			s.mu.Unlock()
			return nil, ErrContactRequired
		}
		customerName = sess.Guest.Name
		customerPhone = sess.Guest.Phone
	}
	if sess.paying {
		s.mu.Unlock()
		return nil, ErrPaymentInFlight
	}
	attempt := uuid.NewString()
	sess.paying = true
	sess.attempt = attempt
	addressText := sess.AddressText
	s.mu.Unlock()

	settle := func(fn func(*CheckoutSession)) {
		s.mu.Lock()
		defer s.mu.Unlock()
		cur := s.session(ownerKey)
		if cur.attempt == attempt {
			cur.paying = false
		}
		fn(cur)
	}

	if method == entity.PaymentOnline {
		if err := s.Gateway.Charge(ctx, attempt, view.Totals.Total); err != nil {
			// stay in payment so the user can retry
			settle(func(*CheckoutSession) {})
			return nil, fmt.Errorf("payment failed: %w", err)
		}
	}

	offerCode := ""
	if view.Offer != nil {
		offerCode = view.Offer.Code
	}
	order, err := s.Orders.Submit(&SubmitOrderIn{
		IdempotencyKey: attempt,
		UserID:         userID,
		GuestID:        guestID,
		CustomerName:   customerName,
		CustomerPhone:  customerPhone,
		AddressText:    addressText,
		PaymentMethod:  method,
		Lines:          view.Lines,
		Totals:         view.Totals,
		OfferCode:      offerCode,
	})
	if err != nil {
		settle(func(*CheckoutSession) {})
		return nil, err
	}

	var late bool
	settle(func(cur *CheckoutSession) {
		if cur.State != StatePayment || cur.attempt != attempt {
			late = true
			cur.warning = fmt.Sprintf("payment for order %s completed after leaving checkout", order.OrderNumber)
			return
		}
		cur.State = StateConfirmation
		cur.OrderID = order.ID
		cur.OrderNumber = order.OrderNumber
	})
	if late {
		return order, nil
	}
	return order, nil
}

// Complete finishes confirmation -> cart: the cart and its discount are
// cleared together and the session resets to its initial state.
func (s *CheckoutService) Complete(ownerKey string) error {
	s.mu.Lock()
	sess := s.session(ownerKey)
	if sess.State != StateConfirmation {
		s.mu.Unlock()
		return ErrBadTransition
	}
	delete(s.sessions, ownerKey)
	s.mu.Unlock()

	s.Carts.Clear(ownerKey)
	return nil
}

// Cancel abandons the session from any state without touching the cart.
func (s *CheckoutService) Cancel(ownerKey string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, ownerKey)
}

// LastWarning pops the non-blocking warning recorded by a discarded late
// payment result, if any.
func (s *CheckoutService) LastWarning(ownerKey string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.session(ownerKey)
	w := sess.warning
	sess.warning = ""
	return w
}

// caller holds s.mu
func (s *CheckoutService) session(ownerKey string) *CheckoutSession {
	if sess, ok := s.sessions[ownerKey]; ok {
		return sess
	}
	sess := &CheckoutSession{State: StateCart}
	s.sessions[ownerKey] = sess
	return sess
}
