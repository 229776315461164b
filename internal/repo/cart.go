package repo

import (
	"context"
	"errors"

	"github.com/Skotchmaster/jewelry_store/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func (r *GormRepo) FindCart(ctx context.Context, sessionID string) (*models.Cart, error) {
	var cart models.Cart
	err := r.DB.WithContext(ctx).Preload("Items").Where("session_id = ?", sessionID).First(&cart).Error
	if err != nil {
		return nil, err
	}
	if cart.Items == nil {
		cart.Items = []models.CartItem{}
	}
	return &cart, nil
}

// UpsertItem sets the quantity of (sessionID, productID) in one transaction,
// creating the cart and the line as needed. The quantity is overwritten, not
// added, when the line already exists. The update-then-insert pair runs under
// a single transaction so two concurrent adds cannot lose a write.
func (r *GormRepo) UpsertItem(ctx context.Context, sessionID, productID string, quantity uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		err := tx.Where("session_id = ?", sessionID).First(&cart).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			cart = models.Cart{SessionID: sessionID}
			if err := tx.Create(&cart).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		res := tx.Model(&models.CartItem{}).
			Where("cart_id = ? AND product_id = ?", cart.ID, productID).
			Update("quantity", quantity)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			return nil
		}

		item := models.CartItem{CartID: cart.ID, ProductID: productID, Quantity: quantity}
		return tx.Create(&item).Error
	})
}

// SetItemQuantity updates an existing line. gorm.ErrRecordNotFound is
// returned when the line is not in the cart.
func (r *GormRepo) SetItemQuantity(ctx context.Context, cartID uuid.UUID, productID string, quantity uint) error {
	res := r.DB.WithContext(ctx).Model(&models.CartItem{}).
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		Update("quantity", quantity)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// RemoveItem deletes the line if present. Deleting an absent line is fine.
func (r *GormRepo) RemoveItem(ctx context.Context, cartID uuid.UUID, productID string) error {
	return r.DB.WithContext(ctx).
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		Delete(&models.CartItem{}).Error
}

// DeleteCartBySession drops the whole cart record and its lines. Idempotent.
func (r *GormRepo) DeleteCartBySession(ctx context.Context, sessionID string) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		err := tx.Where("session_id = ?", sessionID).First(&cart).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&cart).Error
	})
}
