package services

import (
	"encoding/json"
	"errors"
	"log"
	"sync"

	"github.com/Naitik2408/pizza-sub001/entity"
	"github.com/Naitik2408/pizza-sub001/repository"
	"gorm.io/gorm"
)

var (
	ErrItemNotFound    = errors.New("item not found")
	ErrItemUnavailable = errors.New("item is not available")
	ErrBadAddOn        = errors.New("invalid add-on selection")
)

const snapshotVersion = 1

type cartSnapshotPayload struct {
	Lines []CartLine    `json:"lines"`
	Offer *AppliedOffer `json:"offer,omitempty"`
}

// CartService holds one Cart per owner key ("user:<id>" / "guest:<id>").
// All operations serialize on one mutex, which gives the same run-to-
// completion atomicity the original relied on from its event loop. After
// every successful mutation a JSON snapshot is written behind; the snapshot
// is read only when a cart first loads, never mid-operation.
type CartService struct {
	mu    sync.Mutex
	carts map[string]*Cart

	Catalog   *repository.CatalogRepository
	Snapshots *repository.CartRepository
	Rules     *BusinessRulesService
	Discounts *DiscountService
}

func NewCartService(
	catalog *repository.CatalogRepository,
	snapshots *repository.CartRepository,
	rules *BusinessRulesService,
	discounts *DiscountService,
) *CartService {
	return &CartService{
		carts:     make(map[string]*Cart),
		Catalog:   catalog,
		Snapshots: snapshots,
		Rules:     rules,
		Discounts: discounts,
	}
}

type AddToCartIn struct {
	ItemID   uint   `json:"itemId" binding:"required"`
	Qty      int    `json:"qty" binding:"min=0"`
	Size     string `json:"size"`
	AddOnIDs []uint `json:"addOnIds"`

	// legacy customization path: category -> chosen option with price
	Customizations map[string]CustomizationChoice `json:"customizations"`
}

type CartView struct {
	Lines  []CartLine    `json:"lines"`
	Offer  *AppliedOffer `json:"offer,omitempty"`
	Totals Totals        `json:"totals"`
}

func (s *CartService) Get(ownerKey string) CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cart(ownerKey)
	return CartView{Lines: c.Lines(), Offer: c.Offer(), Totals: c.Totals()}
}

// Add resolves prices and validates add-on constraints from the catalog, then
// merges the line into the cart.
func (s *CartService) Add(ownerKey string, in *AddToCartIn) (Totals, error) {
	item, err := s.Catalog.GetItem(in.ItemID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Totals{}, ErrItemNotFound
	}
	if err != nil {
		return Totals{}, err
	}
	if !item.IsAvailable {
		return Totals{}, ErrItemUnavailable
	}

	selected, byGroup, err := resolveSelections(item, in.AddOnIDs, in.Size)
	if err != nil {
		return Totals{}, err
	}
	if ok, errs := ValidateSelections(item.AddOnGroups, byGroup); !ok {
		for i := range item.AddOnGroups {
			g := &item.AddOnGroups[i]
			if msg, bad := errs[g.ID]; bad {
				return Totals{}, &RuleViolation{GroupID: g.ID, GroupName: g.Name, Message: msg}
			}
		}
	}

	unit, _ := ResolveItemPrice(item, in.Size)
	line := CartLine{
		CatalogItemID:  item.ID,
		Name:           item.Name,
		Image:          item.Image,
		FoodType:       item.FoodType,
		Size:           in.Size,
		UnitPrice:      unit,
		Qty:            in.Qty,
		Customizations: in.Customizations,
		AddOns:         selected,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cart(ownerKey)
	totals := c.AddItem(line)
	s.persist(ownerKey, c)
	return totals, nil
}

func (s *CartService) UpdateQty(ownerKey string, lineID uint, qty int) (Totals, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cart(ownerKey)
	totals, err := c.UpdateQty(lineID, qty)
	if err != nil {
		return totals, err
	}
	s.persist(ownerKey, c)
	return totals, nil
}

func (s *CartService) Remove(ownerKey string, lineID uint) (Totals, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cart(ownerKey)
	totals, err := c.RemoveLine(lineID)
	if err != nil {
		return totals, err
	}
	s.persist(ownerKey, c)
	return totals, nil
}

func (s *CartService) Clear(ownerKey string) Totals {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cart(ownerKey)
	totals := c.Clear()
	if err := s.Snapshots.Delete(ownerKey); err != nil {
		log.Printf("cart snapshot delete for %s failed: %v", ownerKey, err)
	}
	return totals
}

// ChangeSize re-resolves the line's unit price and its per-size add-ons.
func (s *CartService) ChangeSize(ownerKey string, lineID uint, size string) (Totals, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cart(ownerKey)

	var itemID uint
	for _, l := range c.Lines() {
		if l.LineID == lineID {
			itemID = l.CatalogItemID
			break
		}
	}
	if itemID == 0 {
		return c.Totals(), ErrLineNotFound
	}
	item, err := s.Catalog.GetItem(itemID)
	if err != nil {
		return c.Totals(), err
	}
	unit, _ := ResolveItemPrice(item, size)

	totals, err := c.UpdateLineSize(lineID, size, unit)
	if err != nil {
		return totals, err
	}
	s.persist(ownerKey, c)
	return totals, nil
}

// ApplyOffer looks the code up and commits it against the live subtotal. The
// cart re-checks the minimum and re-clamps at commit, so a lookup that raced
// with cart edits cannot apply a stale amount.
func (s *CartService) ApplyOffer(ownerKey, code string) (Totals, error) {
	s.mu.Lock()
	c := s.cart(ownerKey)
	sub := c.Totals().Subtotal
	s.mu.Unlock()

	off, err := s.Discounts.ValidateCode(code, sub)
	if err != nil {
		return Totals{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	c = s.cart(ownerKey)
	totals, err := c.ApplyOffer(*off)
	if err != nil {
		return totals, err
	}
	s.persist(ownerKey, c)
	return totals, nil
}

func (s *CartService) RemoveOffer(ownerKey string) Totals {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cart(ownerKey)
	totals := c.RemoveOffer()
	s.persist(ownerKey, c)
	return totals
}

// ---- internals (caller holds s.mu unless noted) ----

func (s *CartService) cart(ownerKey string) *Cart {
	if c, ok := s.carts[ownerKey]; ok {
		c.SetRules(s.Rules.Current())
		return c
	}
	c := NewCart(s.Rules.Current())
	if row, err := s.Snapshots.Load(ownerKey); err == nil {
		if row.Version == snapshotVersion {
			var p cartSnapshotPayload
			if err := json.Unmarshal([]byte(row.Payload), &p); err == nil {
				c.restore(p.Lines, p.Offer)
			}
		} else {
			// unknown snapshot shape: start empty rather than guess
			log.Printf("cart snapshot for %s has version %d, discarding", ownerKey, row.Version)
		}
	}
	s.carts[ownerKey] = c
	return c
}

func (s *CartService) persist(ownerKey string, c *Cart) {
	payload, err := json.Marshal(cartSnapshotPayload{Lines: c.Lines(), Offer: c.Offer()})
	if err != nil {
		log.Printf("cart snapshot encode for %s failed: %v", ownerKey, err)
		return
	}
	if err := s.Snapshots.Save(ownerKey, snapshotVersion, string(payload)); err != nil {
		log.Printf("cart snapshot save for %s failed: %v", ownerKey, err)
	}
}

// resolveSelections maps requested add-on ids onto the item's groups, taking
// price snapshots for the requested size.
func resolveSelections(item *entity.CatalogItem, addOnIDs []uint, size string) ([]SelectedAddOn, map[uint][]SelectedAddOn, error) {
	selected := make([]SelectedAddOn, 0, len(addOnIDs))
	byGroup := make(map[uint][]SelectedAddOn)
	for _, id := range addOnIDs {
		var found *entity.AddOn
		var groupID uint
		for gi := range item.AddOnGroups {
			g := &item.AddOnGroups[gi]
			for ai := range g.AddOns {
				if g.AddOns[ai].ID == id {
					found = &g.AddOns[ai]
					groupID = g.ID
					break
				}
			}
			if found != nil {
				break
			}
		}
		if found == nil || !found.IsAvailable {
			return nil, nil, ErrBadAddOn
		}
		price, _ := ResolveAddOnPrice(found, size)
		sel := SelectedAddOn{
			AddOnID:     found.ID,
			GroupID:     groupID,
			Name:        found.Name,
			Price:       price,
			PriceBySize: found.PriceTable(),
		}
		selected = append(selected, sel)
		byGroup[groupID] = append(byGroup[groupID], sel)
	}
	return selected, byGroup, nil
}
