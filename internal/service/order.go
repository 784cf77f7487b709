package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Skotchmaster/ecom-api/internal/models"
	"github.com/Skotchmaster/ecom-api/internal/repo"
)

// OrderService is deliberately decoupled from the cart: creating an
// order neither consults nor clears cart rows, and the total is
// caller-supplied.
type OrderService struct {
	Repo *repo.GormRepo
}

// CreateOrder always starts an order in "pending", whatever the caller
// sent along.
func (s *OrderService) CreateOrder(ctx context.Context, userID uint, totalAmount float64) (*models.Order, error) {
	if userID == 0 {
		return nil, fmt.Errorf("userId required: %w", ErrValidation)
	}

	order := models.Order{
		UserID:      userID,
		TotalAmount: totalAmount,
		Status:      models.OrderStatusPending,
	}
	return s.Repo.CreateOrder(ctx, &order)
}

func (s *OrderService) ListOrders(ctx context.Context, userID uint) ([]models.Order, error) {
	return s.Repo.ListOrders(ctx, userID)
}

func (s *OrderService) GetOrder(ctx context.Context, id uint) (*models.Order, error) {
	order, err := s.Repo.GetOrder(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("order %d: %w", id, ErrNotFound)
	}
	return order, err
}

func (s *OrderService) SetStatus(ctx context.Context, id uint, status string) (*models.Order, error) {
	if status == "" {
		return nil, fmt.Errorf("status required: %w", ErrValidation)
	}

	order, err := s.Repo.SetOrderStatus(ctx, id, status)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("order %d: %w", id, ErrNotFound)
	}
	return order, err
}

func (s *OrderService) DeleteOrder(ctx context.Context, id uint) (*models.Order, error) {
	order, err := s.Repo.DeleteOrder(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("order %d: %w", id, ErrNotFound)
	}
	return order, err
}
