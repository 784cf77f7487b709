package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Skotchmaster/ecom-api/internal/models"
	"github.com/Skotchmaster/ecom-api/internal/repo"
	"github.com/Skotchmaster/ecom-api/internal/transport"
)

type CartService struct {
	Repo *repo.GormRepo
}

func (s *CartService) AddOrIncrement(ctx context.Context, userID, productID, quantity uint) (*models.CartItem, error) {
	if userID == 0 || productID == 0 {
		return nil, fmt.Errorf("userId and productId required: %w", ErrValidation)
	}
	if quantity == 0 {
		return nil, fmt.Errorf("quantity must be more than zero: %w", ErrValidation)
	}

	item := models.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	}
	return s.Repo.AddOrIncrement(ctx, &item)
}

// GetCart returns an empty slice for an empty cart, never a not-found.
func (s *CartService) GetCart(ctx context.Context, userID uint) ([]transport.CartLine, error) {
	return s.Repo.GetCart(ctx, userID)
}

func (s *CartService) SetQuantity(ctx context.Context, userID, productID, quantity uint) (*models.CartItem, error) {
	if userID == 0 || productID == 0 {
		return nil, fmt.Errorf("userId and productId required: %w", ErrValidation)
	}
	if quantity == 0 {
		return nil, fmt.Errorf("quantity must be more than zero: %w", ErrValidation)
	}

	item, err := s.Repo.SetQuantity(ctx, userID, productID, quantity)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("item not found in cart: %w", ErrNotFound)
	}
	return item, err
}

func (s *CartService) Remove(ctx context.Context, userID, productID uint) (*models.CartItem, error) {
	item, err := s.Repo.RemoveFromCart(ctx, userID, productID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("item not found in cart: %w", ErrNotFound)
	}
	return item, err
}
