package repo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Skotchmaster/ecom-api/internal/models"
	"github.com/Skotchmaster/ecom-api/internal/transport"
)

// AddOrIncrement merges a cart addition through a single
// INSERT ... ON CONFLICT DO UPDATE statement, so concurrent adds for
// the same (user_id, product_id) sum in the database instead of racing
// a read-modify-write pair.
func (r *GormRepo) AddOrIncrement(ctx context.Context, item *models.CartItem) (*models.CartItem, error) {
	if err := r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"quantity": gorm.Expr("cart_items.quantity + excluded.quantity"),
			}),
		}).
		Create(item).Error; err != nil {
		return nil, err
	}

	var out models.CartItem
	if err := r.DB.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", item.UserID, item.ProductID).
		First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *GormRepo) GetCart(ctx context.Context, userID uint) ([]transport.CartLine, error) {
	lines := make([]transport.CartLine, 0)
	if err := r.DB.WithContext(ctx).
		Table("cart_items").
		Select("cart_items.id, cart_items.product_id, products.name, products.price, cart_items.quantity, products.price * cart_items.quantity AS total_price").
		Joins("JOIN products ON products.id = cart_items.product_id").
		Where("cart_items.user_id = ?", userID).
		Order("cart_items.id ASC").
		Scan(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}

// SetQuantity replaces the quantity of an existing pair. It never
// creates a row; a missing pair is ErrRecordNotFound.
func (r *GormRepo) SetQuantity(ctx context.Context, userID, productID, quantity uint) (*models.CartItem, error) {
	res := r.DB.WithContext(ctx).
		Model(&models.CartItem{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Update("quantity", quantity)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	var out models.CartItem
	if err := r.DB.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *GormRepo) RemoveFromCart(ctx context.Context, userID, productID uint) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.DB.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&item).Error; err != nil {
		return nil, err
	}

	if err := r.DB.WithContext(ctx).Delete(&models.CartItem{}, item.ID).Error; err != nil {
		return nil, err
	}
	return &item, nil
}
