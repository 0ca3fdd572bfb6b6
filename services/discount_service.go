package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Naitik2408/pizza-sub001/entity"
	"github.com/Naitik2408/pizza-sub001/repository"
	"gorm.io/gorm"
)

var (
	ErrOfferNotFound = errors.New("offer not found")
	ErrOfferInactive = errors.New("offer is not active")
)

// MinOrderNotMetError carries the shortfall so the caller can tell the user
// exactly how much more to add.
type MinOrderNotMetError struct {
	Required  int64 `json:"required"`
	Shortfall int64 `json:"shortfall"`
}

func (e *MinOrderNotMetError) Error() string {
	return fmt.Sprintf("minimum order of ₹%.2f not met, add ₹%.2f more",
		float64(e.Required)/100, float64(e.Shortfall)/100)
}

// DiscountService validates an offer code against a subtotal. The lookup is
// remote (repository); the applied amount is computed locally and again at
// commit time inside the cart, so a result computed from a stale subtotal is
// re-checked before it takes effect.
type DiscountService struct {
	Repo *repository.OfferRepository
}

func NewDiscountService(repo *repository.OfferRepository) *DiscountService {
	return &DiscountService{Repo: repo}
}

// ValidateCode is idempotent: the same code against an unchanged subtotal
// yields the same amount.
func (s *DiscountService) ValidateCode(code string, subtotal int64) (*AppliedOffer, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	off, err := s.Repo.FindByCode(code)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOfferNotFound
	}
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if !off.IsActive ||
		(off.StartAt != nil && now.Before(*off.StartAt)) ||
		(off.EndAt != nil && now.After(*off.EndAt)) {
		return nil, ErrOfferInactive
	}

	if subtotal < off.MinOrder {
		return nil, &MinOrderNotMetError{Required: off.MinOrder, Shortfall: off.MinOrder - subtotal}
	}

	return &AppliedOffer{
		Code:          off.Code,
		Title:         off.Title,
		DiscountType:  off.DiscountType,
		DiscountValue: off.DiscountValue,
		MinOrder:      off.MinOrder,
		MaxDiscount:   off.MaxDiscount,
		Amount:        offerAmount(off.DiscountType, off.DiscountValue, off.MaxDiscount, subtotal),
	}, nil
}

// offerAmount computes the applied amount for a subtotal: percentage rounds
// half-up to a minor unit and honours the cap, fixed takes the value as-is.
// The result is clamped to [0, subtotal].
func offerAmount(discountType string, value, maxDiscount, subtotal int64) int64 {
	var amt int64
	switch discountType {
	case entity.DiscountPercentage:
		amt = (subtotal*value + 50) / 100
		if maxDiscount > 0 && amt > maxDiscount {
			amt = maxDiscount
		}
	case entity.DiscountFixed:
		amt = value
	}
	if amt < 0 {
		amt = 0
	}
	if amt > subtotal {
		amt = subtotal
	}
	return amt
}
