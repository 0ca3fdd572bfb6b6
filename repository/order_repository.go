package repository

import (
	"time"

	"github.com/Naitik2408/pizza-sub001/entity"
	"gorm.io/gorm"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

// FindByIdempotencyKey backs idempotent submission: re-posting the same
// attempt returns the already-created order.
func (r *OrderRepository) FindByIdempotencyKey(key string) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("idempotency_key = ?", key).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

type OrderSummary struct {
	ID          uint      `json:"id"`
	OrderNumber string    `json:"orderNumber"`
	Total       int64     `json:"total"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (r *OrderRepository) ListForUser(userID uint, limit int) ([]OrderSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []OrderSummary
	err := r.DB.Model(&entity.Order{}).
		Select("id, order_number, total, status, created_at").
		Where("user_id = ?", userID).
		Order("id DESC").Limit(limit).
		Scan(&out).Error
	return out, err
}

func (r *OrderRepository) ListForGuest(guestID string, limit int) ([]OrderSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []OrderSummary
	err := r.DB.Model(&entity.Order{}).
		Select("id, order_number, total, status, created_at").
		Where("guest_id = ?", guestID).
		Order("id DESC").Limit(limit).
		Scan(&out).Error
	return out, err
}

func (r *OrderRepository) GetForUser(userID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Where("id = ? AND user_id = ?", orderID, userID).
		Preload("Items").Preload("Items.AddOns").
		First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetForGuest(guestID string, orderID uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Where("id = ? AND guest_id = ?", orderID, guestID).
		Preload("Items").Preload("Items.AddOns").
		First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}
