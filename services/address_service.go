package services

import (
	"errors"

	"github.com/Naitik2408/pizza-sub001/entity"
	"github.com/Naitik2408/pizza-sub001/repository"
	"gorm.io/gorm"
)

var ErrAddressNotFound = errors.New("address not found")

// AddressService scopes CRUD to either an account (userID) or a guest
// (guestID); guests get the same surface backed by local rows.
type AddressService struct {
	Repo *repository.AddressRepository
}

func NewAddressService(repo *repository.AddressRepository) *AddressService {
	return &AddressService{Repo: repo}
}

type AddressIn struct {
	Label     string `json:"label"`
	Line1     string `json:"line1" binding:"required"`
	Line2     string `json:"line2"`
	City      string `json:"city" binding:"required"`
	Pincode   string `json:"pincode"`
	Phone     string `json:"phone"`
	IsDefault bool   `json:"isDefault"`
}

func (s *AddressService) List(userID uint, guestID string) ([]entity.Address, error) {
	return s.Repo.List(userID, guestID)
}

func (s *AddressService) Get(id, userID uint, guestID string) (*entity.Address, error) {
	a, err := s.Repo.Get(id, userID, guestID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAddressNotFound
	}
	return a, err
}

func (s *AddressService) Create(userID uint, guestID string, in *AddressIn) (*entity.Address, error) {
	if in.IsDefault {
		if err := s.Repo.ClearDefault(userID, guestID); err != nil {
			return nil, err
		}
	}
	a := &entity.Address{
		UserID:    userID,
		GuestID:   guestID,
		Label:     in.Label,
		Line1:     in.Line1,
		Line2:     in.Line2,
		City:      in.City,
		Pincode:   in.Pincode,
		Phone:     in.Phone,
		IsDefault: in.IsDefault,
	}
	if err := s.Repo.Create(a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AddressService) Update(id, userID uint, guestID string, in *AddressIn) (*entity.Address, error) {
	a, err := s.Get(id, userID, guestID)
	if err != nil {
		return nil, err
	}
	if in.IsDefault && !a.IsDefault {
		if err := s.Repo.ClearDefault(userID, guestID); err != nil {
			return nil, err
		}
	}
	a.Label = in.Label
	a.Line1 = in.Line1
	a.Line2 = in.Line2
	a.City = in.City
	a.Pincode = in.Pincode
	a.Phone = in.Phone
	a.IsDefault = in.IsDefault
	if err := s.Repo.Update(a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AddressService) Delete(id, userID uint, guestID string) error {
	return s.Repo.Delete(id, userID, guestID)
}
