package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Skotchmaster/jewelry_store/internal/models"
	"github.com/Skotchmaster/jewelry_store/internal/mykafka"
	"github.com/Skotchmaster/jewelry_store/internal/repo"
	"github.com/Skotchmaster/jewelry_store/internal/transport"
	"github.com/Skotchmaster/jewelry_store/pkg/logging"
	"gorm.io/gorm"
)

type CartService struct {
	Repo     *repo.GormRepo
	Producer *mykafka.Producer
}

// AddToCart sets the quantity of productID in the session's cart, creating
// the cart on first use. A repeated add overwrites the quantity instead of
// adding to it. Quantity bounds are the transport layer's job; the product
// must exist and be in stock.
func (s *CartService) AddToCart(ctx context.Context, sessionID, productID string, quantity uint) (*models.Cart, error) {
	product, err := s.Repo.GetProduct(ctx, productID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("product not found: %w", ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	if !product.InStock {
		return nil, fmt.Errorf("product is currently out of stock: %w", ErrOutOfStock)
	}

	if err := s.Repo.UpsertItem(ctx, sessionID, productID, quantity); err != nil {
		return nil, err
	}

	cart, err := s.Repo.FindCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, sessionID, map[string]any{
		"type":      "item_added",
		"sessionId": sessionID,
		"productId": productID,
		"quantity":  quantity,
	})

	return cart, nil
}

// GetCart returns the session's cart with every line joined against the
// current catalog. A missing cart is an empty view, never an error, and a
// line whose product has since disappeared keeps a nil product join.
func (s *CartService) GetCart(ctx context.Context, sessionID string) (*transport.CartView, error) {
	cart, err := s.Repo.FindCart(ctx, sessionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &transport.CartView{Items: []transport.CartLineView{}}, nil
	}
	if err != nil {
		return nil, err
	}

	items := make([]transport.CartLineView, 0, len(cart.Items))
	for _, item := range cart.Items {
		line := transport.CartLineView{ProductID: item.ProductID, Quantity: item.Quantity}

		product, err := s.Repo.GetProduct(ctx, item.ProductID)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			// product removed after it was added, keep the line anyway
		case err != nil:
			return nil, err
		default:
			line.Product = product
		}
		items = append(items, line)
	}

	return &transport.CartView{Items: items, SessionID: cart.SessionID}, nil
}

func (s *CartService) UpdateItem(ctx context.Context, sessionID, productID string, quantity uint) (*models.Cart, error) {
	if err := models.ValidateQuantity(quantity); err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrValidation)
	}

	cart, err := s.Repo.FindCart(ctx, sessionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("cart not found: %w", ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	err = s.Repo.SetItemQuantity(ctx, cart.ID, productID, quantity)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}

	s.publish(ctx, sessionID, map[string]any{
		"type":      "item_updated",
		"sessionId": sessionID,
		"productId": productID,
		"quantity":  quantity,
	})

	return s.Repo.FindCart(ctx, sessionID)
}

// RemoveItem drops a line from an existing cart. Removing a product that is
// not in the cart succeeds and leaves the cart unchanged.
func (s *CartService) RemoveItem(ctx context.Context, sessionID, productID string) (*models.Cart, error) {
	cart, err := s.Repo.FindCart(ctx, sessionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("cart not found: %w", ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	if err := s.Repo.RemoveItem(ctx, cart.ID, productID); err != nil {
		return nil, err
	}

	s.publish(ctx, sessionID, map[string]any{
		"type":      "item_removed",
		"sessionId": sessionID,
		"productId": productID,
	})

	return s.Repo.FindCart(ctx, sessionID)
}

// ClearCart deletes the cart record wholesale. Clearing a session that has
// no cart is still a success.
func (s *CartService) ClearCart(ctx context.Context, sessionID string) error {
	if err := s.Repo.DeleteCartBySession(ctx, sessionID); err != nil {
		return err
	}

	s.publish(ctx, sessionID, map[string]any{
		"type":      "cart_cleared",
		"sessionId": sessionID,
	})
	return nil
}

func (s *CartService) publish(ctx context.Context, key string, event map[string]any) {
	if s.Producer == nil {
		return
	}
	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.Producer.PublishEvent(pubCtx, "cart_events", key, event); err != nil {
		logging.FromContext(ctx).Error("kafka publish error", "error", err)
	}
}
