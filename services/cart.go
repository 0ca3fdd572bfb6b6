package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/Naitik2408/pizza-sub001/entity"
)

var ErrLineNotFound = errors.New("cart line not found")

type CustomizationChoice struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// SelectedAddOn is a price snapshot taken at selection time. PriceBySize is
// kept so the snapshot can be re-resolved when the line's size changes.
type SelectedAddOn struct {
	AddOnID     uint             `json:"addOnId"`
	GroupID     uint             `json:"groupId"`
	Name        string           `json:"name"`
	Price       int64            `json:"price"`
	PriceBySize map[string]int64 `json:"priceBySize,omitempty"`
}

type CartLine struct {
	LineID        uint   `json:"lineId"`
	CatalogItemID uint   `json:"catalogItemId"`
	Name          string `json:"name"`
	Image         string `json:"image,omitempty"`
	FoodType      string `json:"foodType,omitempty"`
	Size          string `json:"size,omitempty"`
	UnitPrice     int64  `json:"unitPrice"` // size-adjusted base, excl. extras
	Qty           int    `json:"qty"`

	Customizations map[string]CustomizationChoice `json:"customizations,omitempty"`
	AddOns         []SelectedAddOn                `json:"addOns,omitempty"`
}

// PerUnit is the effective per-unit price: base plus customizations plus
// add-ons.
func (l *CartLine) PerUnit() int64 {
	p := l.UnitPrice
	for _, c := range l.Customizations {
		p += c.Price
	}
	for _, a := range l.AddOns {
		p += a.Price
	}
	return p
}

func (l *CartLine) LineTotal() int64 {
	return l.PerUnit() * int64(l.Qty)
}

// mergeKey is a canonical representation of line identity: item, size, sorted
// customization entries and the order-independent (id, price) add-on set.
// Two lines with equal keys are the same line and merge by quantity.
func (l *CartLine) mergeKey() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d|%s|", l.CatalogItemID, l.Size)

	cats := make([]string, 0, len(l.Customizations))
	for cat := range l.Customizations {
		cats = append(cats, cat)
	}
	sort.Strings(cats)
	for _, cat := range cats {
		ch := l.Customizations[cat]
		fmt.Fprintf(&b, "c:%s=%s:%d|", cat, ch.Name, ch.Price)
	}

	adds := make([]string, 0, len(l.AddOns))
	for _, a := range l.AddOns {
		adds = append(adds, fmt.Sprintf("a:%d:%d", a.AddOnID, a.Price))
	}
	sort.Strings(adds)
	for _, a := range adds {
		b.WriteString(a)
		b.WriteString("|")
	}
	return b.String()
}

// AppliedOffer lives inside the cart once a code validates. Amount is always
// re-derived from the live subtotal, never trusted across mutations.
type AppliedOffer struct {
	Code          string `json:"code"`
	Title         string `json:"title,omitempty"`
	DiscountType  string `json:"discountType"`
	DiscountValue int64  `json:"discountValue"`
	MinOrder      int64  `json:"minOrder"`
	MaxDiscount   int64  `json:"maxDiscount"`
	Amount        int64  `json:"amount"`
}

// BusinessRules is the value object the cart derives fees and tax from,
// replaced wholesale on refresh.
type BusinessRules struct {
	GSTPercentage       float64 `json:"gstPercentage"`
	ApplyGST            bool    `json:"applyGST"`
	DeliveryCharge      int64   `json:"deliveryCharge"`
	FreeDeliveryAbove   int64   `json:"freeDeliveryAbove"`
	DeliveryOnAllOrders bool    `json:"deliveryOnAllOrders"`
	MinOrderValue       int64   `json:"minOrderValue"`
	IsOpen              bool    `json:"isOpen"`
	ClosedReason        string  `json:"closedReason,omitempty"`
}

func RulesFromSettings(s *entity.BusinessSettings) BusinessRules {
	return BusinessRules{
		GSTPercentage:       s.GSTPercentage,
		ApplyGST:            s.ApplyGST,
		DeliveryCharge:      s.DeliveryCharge,
		FreeDeliveryAbove:   s.FreeDeliveryAbove,
		DeliveryOnAllOrders: s.DeliveryOnAllOrders,
		MinOrderValue:       s.MinOrderValue,
		IsOpen:              s.IsOpen,
		ClosedReason:        s.ClosedReason,
	}
}

type Totals struct {
	Subtotal    int64 `json:"subtotal"`
	DeliveryFee int64 `json:"deliveryFee"`
	Tax         int64 `json:"tax"`
	Discount    int64 `json:"discount"`
	Total       int64 `json:"total"`
}

// Cart owns the line collection and all derived totals. Every mutator funnels
// into recompute(), which re-derives subtotal, offer validity, fee, tax and
// total together; partial recomputation is impossible by construction.
type Cart struct {
	nextLine uint
	lines    []CartLine
	offer    *AppliedOffer
	rules    BusinessRules
	totals   Totals
}

func NewCart(rules BusinessRules) *Cart {
	return &Cart{nextLine: 1, rules: rules}
}

// AddItem merges into an existing identical line or appends a new one.
func (c *Cart) AddItem(line CartLine) Totals {
	if line.Qty <= 0 {
		line.Qty = 1
	}
	key := line.mergeKey()
	merged := false
	for i := range c.lines {
		if c.lines[i].mergeKey() == key {
			c.lines[i].Qty += line.Qty
			merged = true
			break
		}
	}
	if !merged {
		line.LineID = c.nextLine
		c.nextLine++
		c.lines = append(c.lines, line)
	}
	c.recompute()
	return c.totals
}

func (c *Cart) UpdateQty(lineID uint, qty int) (Totals, error) {
	i := c.indexOf(lineID)
	if i < 0 {
		return c.totals, ErrLineNotFound
	}
	if qty <= 0 {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
	} else {
		c.lines[i].Qty = qty
	}
	c.recompute()
	return c.totals, nil
}

func (c *Cart) RemoveLine(lineID uint) (Totals, error) {
	i := c.indexOf(lineID)
	if i < 0 {
		return c.totals, ErrLineNotFound
	}
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
	c.recompute()
	return c.totals, nil
}

func (c *Cart) Clear() Totals {
	c.lines = nil
	c.offer = nil
	c.recompute()
	return c.totals
}

// ApplyOffer commits offer metadata against the live subtotal. The amount is
// computed here, not taken from the lookup, so a stale lookup result is
// re-checked and re-clamped at commit time.
func (c *Cart) ApplyOffer(off AppliedOffer) (Totals, error) {
	sub := c.subtotal()
	if sub < off.MinOrder {
		return c.totals, &MinOrderNotMetError{Required: off.MinOrder, Shortfall: off.MinOrder - sub}
	}
	off.Amount = offerAmount(off.DiscountType, off.DiscountValue, off.MaxDiscount, sub)
	c.offer = &off
	c.recompute()
	return c.totals, nil
}

func (c *Cart) RemoveOffer() Totals {
	c.offer = nil
	c.recompute()
	return c.totals
}

// SetRules swaps the business rules and re-derives fee, tax and total. Offer
// validity is keyed to subtotal only, so it is not re-gated here.
func (c *Cart) SetRules(rules BusinessRules) Totals {
	c.rules = rules
	c.recompute()
	return c.totals
}

// UpdateLineSize changes a line's size, takes the new size-adjusted unit
// price and re-resolves only the add-ons that declare per-size pricing.
func (c *Cart) UpdateLineSize(lineID uint, size string, unitPrice int64) (Totals, error) {
	i := c.indexOf(lineID)
	if i < 0 {
		return c.totals, ErrLineNotFound
	}
	c.lines[i].Size = size
	c.lines[i].UnitPrice = unitPrice
	c.lines[i].AddOns = ReresolveAddOns(c.lines[i].AddOns, size)
	c.recompute()
	return c.totals, nil
}

// ---- selectors (copies only) ----

func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Totals() Totals { return c.totals }

func (c *Cart) Offer() *AppliedOffer {
	if c.offer == nil {
		return nil
	}
	cp := *c.offer
	return &cp
}

func (c *Cart) Rules() BusinessRules { return c.rules }

func (c *Cart) IsEmpty() bool { return len(c.lines) == 0 }

// ---- internals ----

// restore rehydrates a cart from a persisted snapshot, keeping line ids
// stable. The offer is re-validated by the recompute.
func (c *Cart) restore(lines []CartLine, offer *AppliedOffer) {
	c.lines = lines
	c.offer = offer
	c.nextLine = 1
	for i := range lines {
		if lines[i].LineID >= c.nextLine {
			c.nextLine = lines[i].LineID + 1
		}
	}
	c.recompute()
}

func (c *Cart) indexOf(lineID uint) int {
	for i := range c.lines {
		if c.lines[i].LineID == lineID {
			return i
		}
	}
	return -1
}

func (c *Cart) subtotal() int64 {
	var sub int64
	for i := range c.lines {
		sub += c.lines[i].LineTotal()
	}
	return sub
}

func (c *Cart) recompute() {
	sub := c.subtotal()

	// Offer validity is a function of the live subtotal. Dropping below the
	// offer's minimum, or the amount collapsing to zero while a minimum
	// exists, clears it outright so no zero-effect badge lingers.
	if c.offer != nil {
		if sub < c.offer.MinOrder {
			c.offer = nil
		} else {
			amt := offerAmount(c.offer.DiscountType, c.offer.DiscountValue, c.offer.MaxDiscount, sub)
			if amt == 0 && c.offer.MinOrder > 0 {
				c.offer = nil
			} else {
				c.offer.Amount = amt
			}
		}
	}

	var fee int64
	if len(c.lines) > 0 {
		fee = c.rules.DeliveryCharge
		if !c.rules.DeliveryOnAllOrders && sub >= c.rules.FreeDeliveryAbove {
			fee = 0
		}
	}

	var tax int64
	if c.rules.ApplyGST {
		tax = percentOf(sub, c.rules.GSTPercentage)
	}

	var disc int64
	if c.offer != nil {
		disc = c.offer.Amount
	}

	total := sub + fee + tax - disc
	if total < 0 {
		total = 0
	}

	c.totals = Totals{Subtotal: sub, DeliveryFee: fee, Tax: tax, Discount: disc, Total: total}
}
