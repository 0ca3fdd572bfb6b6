package services

import (
	"encoding/json"
	"errors"
	"log"
	"strings"

	"github.com/Naitik2408/pizza-sub001/entity"
	"github.com/Naitik2408/pizza-sub001/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrOrderNotFound = errors.New("order not found")

// OrderService turns a cart snapshot plus computed totals into a durable
// order in one transaction. Submission is idempotency-keyed: re-posting the
// same attempt returns the order already created for it.
type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	Notifier Notifier
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, n Notifier) *OrderService {
	if n == nil {
		n = LogNotifier{}
	}
	return &OrderService{DB: db, Repo: repo, Notifier: n}
}

type SubmitOrderIn struct {
	IdempotencyKey string
	UserID         uint
	GuestID        string
	CustomerName   string
	CustomerPhone  string
	AddressText    string
	PaymentMethod  string
	Lines          []CartLine
	Totals         Totals
	OfferCode      string
}

func (s *OrderService) Submit(in *SubmitOrderIn) (*entity.Order, error) {
	if existing, err := s.Repo.FindByIdempotencyKey(in.IdempotencyKey); err == nil {
		return existing, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	order := entity.Order{
		OrderNumber:    newOrderNumber(),
		IdempotencyKey: in.IdempotencyKey,
		UserID:         in.UserID,
		GuestID:        in.GuestID,
		CustomerName:   in.CustomerName,
		CustomerPhone:  in.CustomerPhone,
		AddressText:    in.AddressText,
		PaymentMethod:  in.PaymentMethod,
		Status:         entity.OrderPlaced,
		Subtotal:       in.Totals.Subtotal,
		DeliveryFee:    in.Totals.DeliveryFee,
		Tax:            in.Totals.Tax,
		Discount:       in.Totals.Discount,
		Total:          in.Totals.Total,
		OfferCode:      in.OfferCode,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}
		for _, l := range in.Lines {
			oi := entity.OrderItem{
				OrderID:       order.ID,
				CatalogItemID: l.CatalogItemID,
				Name:          l.Name,
				Size:          l.Size,
				FoodType:      l.FoodType,
				Qty:           l.Qty,
				UnitPrice:     l.PerUnit(),
				LineTotal:     l.LineTotal(),
			}
			if len(l.Customizations) > 0 {
				if raw, err := json.Marshal(l.Customizations); err == nil {
					oi.Customizations = string(raw)
				}
			}
			for _, a := range l.AddOns {
				oi.AddOns = append(oi.AddOns, entity.OrderItemAddOn{
					AddOnID: a.AddOnID, Name: a.Name, Price: a.Price,
				})
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// fire and forget; the alarm collaborator must never fail the order
	go func(o entity.Order) {
		if err := s.Notifier.Notify(OrderSummary{
			OrderID:      o.ID,
			OrderNumber:  o.OrderNumber,
			CustomerName: o.CustomerName,
			Amount:       o.Total,
		}); err != nil {
			log.Printf("order %s: notification failed: %v", o.OrderNumber, err)
		}
	}(order)

	return &order, nil
}

func (s *OrderService) ListForOwner(userID uint, guestID string, limit int) ([]repository.OrderSummary, error) {
	if userID != 0 {
		return s.Repo.ListForUser(userID, limit)
	}
	return s.Repo.ListForGuest(guestID, limit)
}

func (s *OrderService) DetailForOwner(userID uint, guestID string, orderID uint) (*entity.Order, error) {
	var (
		o   *entity.Order
		err error
	)
	if userID != 0 {
		o, err = s.Repo.GetForUser(userID, orderID)
	} else {
		o, err = s.Repo.GetForGuest(guestID, orderID)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	return o, err
}

func newOrderNumber() string {
	return "OD-" + strings.ToUpper(uuid.NewString()[:8])
}
