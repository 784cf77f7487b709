package repo

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Skotchmaster/ecom-api/internal/models"
)

func TestAddOrIncrementMergesQuantities(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	first, err := r.AddOrIncrement(ctx, &models.CartItem{UserID: 1, ProductID: 101, Quantity: 2})
	require.NoError(t, err)
	require.Equal(t, uint(2), first.Quantity)

	second, err := r.AddOrIncrement(ctx, &models.CartItem{UserID: 1, ProductID: 101, Quantity: 3})
	require.NoError(t, err)
	require.Equal(t, uint(5), second.Quantity)
	require.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, r.DB.Model(&models.CartItem{}).
		Where("user_id = ? AND product_id = ?", 1, 101).Count(&count).Error)
	require.Equal(t, int64(1), count)
}

func TestAddOrIncrementKeepsPairsApart(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	_, err := r.AddOrIncrement(ctx, &models.CartItem{UserID: 1, ProductID: 101, Quantity: 2})
	require.NoError(t, err)
	_, err = r.AddOrIncrement(ctx, &models.CartItem{UserID: 2, ProductID: 101, Quantity: 4})
	require.NoError(t, err)
	_, err = r.AddOrIncrement(ctx, &models.CartItem{UserID: 1, ProductID: 102, Quantity: 1})
	require.NoError(t, err)

	var count int64
	require.NoError(t, r.DB.Model(&models.CartItem{}).Count(&count).Error)
	require.Equal(t, int64(3), count)
}

func TestGetCartJoinsProducts(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	prod, err := r.CreateProduct(ctx, &models.Product{
		Name:  strPtr("Laptop"),
		Price: f64Ptr(999.99),
		Stock: intPtr(100),
	})
	require.NoError(t, err)

	_, err = r.AddOrIncrement(ctx, &models.CartItem{UserID: 1, ProductID: prod.ID, Quantity: 2})
	require.NoError(t, err)

	lines, err := r.GetCart(ctx, 1)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	require.Equal(t, prod.ID, lines[0].ProductID)
	require.Equal(t, "Laptop", *lines[0].Name)
	require.Equal(t, 999.99, *lines[0].Price)
	require.Equal(t, uint(2), lines[0].Quantity)
	require.InDelta(t, 1999.98, *lines[0].TotalPrice, 0.0001)
}

func TestGetCartEmptyIsEmptySlice(t *testing.T) {
	r := newTestRepo(t)

	lines, err := r.GetCart(context.Background(), 42)
	require.NoError(t, err)
	require.NotNil(t, lines)
	require.Len(t, lines, 0)
}

func TestSetQuantityReplacesExisting(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	_, err := r.AddOrIncrement(ctx, &models.CartItem{UserID: 1, ProductID: 101, Quantity: 2})
	require.NoError(t, err)

	item, err := r.SetQuantity(ctx, 1, 101, 7)
	require.NoError(t, err)
	require.Equal(t, uint(7), item.Quantity)
}

func TestSetQuantityMissingPairCreatesNothing(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	_, err := r.SetQuantity(ctx, 1, 101, 7)
	require.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	var count int64
	require.NoError(t, r.DB.Model(&models.CartItem{}).Count(&count).Error)
	require.Equal(t, int64(0), count)
}

func TestRemoveFromCartReturnsRemovedRow(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	_, err := r.AddOrIncrement(ctx, &models.CartItem{UserID: 1, ProductID: 101, Quantity: 2})
	require.NoError(t, err)

	item, err := r.RemoveFromCart(ctx, 1, 101)
	require.NoError(t, err)
	require.Equal(t, uint(101), item.ProductID)
	require.Equal(t, uint(2), item.Quantity)

	_, err = r.RemoveFromCart(ctx, 1, 101)
	require.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}
