package cartclient

import (
	"context"

	"github.com/Skotchmaster/jewelry_store/pkg/cartops"
)

// Item is one cart line with the product snapshot taken when it was added.
type Item struct {
	ProductID string
	Quantity  uint
	Product   *Product
}

// Mirror keeps an optimistic local replica of the server cart. Every
// mutation calls the server first and applies the same change locally only
// on success; it never re-fetches the authoritative cart afterwards, so
// FetchCart is the only reconciliation point.
//
// Not safe for concurrent use; it models a single UI loop.
type Mirror struct {
	client   *Client
	lines    []cartops.Line
	products map[string]*Product

	TotalItems uint
	TotalPrice float64
}

func NewMirror(client *Client) *Mirror {
	return &Mirror{
		client:   client,
		products: make(map[string]*Product),
	}
}

// AddToCart sets the product's quantity in the cart. Adding a product that
// is already present overwrites its quantity, exactly like the server.
func (m *Mirror) AddToCart(ctx context.Context, product Product, quantity uint) error {
	if err := m.client.addItem(ctx, product.ID, quantity); err != nil {
		return err
	}

	m.lines = cartops.SetItem(m.lines, product.ID, quantity)
	snapshot := product
	m.products[product.ID] = &snapshot
	m.recalculate()
	return nil
}

func (m *Mirror) UpdateQuantity(ctx context.Context, productID string, quantity uint) error {
	if err := m.client.updateItem(ctx, productID, quantity); err != nil {
		return err
	}

	m.lines, _ = cartops.UpdateQuantity(m.lines, productID, quantity)
	m.recalculate()
	return nil
}

func (m *Mirror) RemoveFromCart(ctx context.Context, productID string) error {
	if err := m.client.removeItem(ctx, productID); err != nil {
		return err
	}

	m.lines = cartops.Remove(m.lines, productID)
	delete(m.products, productID)
	m.recalculate()
	return nil
}

func (m *Mirror) ClearCart(ctx context.Context) error {
	if err := m.client.clearCart(ctx); err != nil {
		return err
	}

	m.lines = nil
	m.products = make(map[string]*Product)
	m.recalculate()
	return nil
}

// FetchCart replaces the local replica with the server's cart, the page-load
// equivalent of the UI restoring state for the session.
func (m *Mirror) FetchCart(ctx context.Context) error {
	payload, err := m.client.fetchCart(ctx)
	if err != nil {
		return err
	}

	m.lines = nil
	m.products = make(map[string]*Product)
	for _, line := range payload.Items {
		m.lines = append(m.lines, cartops.Line{ProductID: line.ProductID, Quantity: line.Quantity})
		if line.Product != nil {
			m.products[line.ProductID] = line.Product
		}
	}
	m.recalculate()
	return nil
}

func (m *Mirror) Items() []Item {
	items := make([]Item, 0, len(m.lines))
	for _, l := range m.lines {
		items = append(items, Item{
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			Product:   m.products[l.ProductID],
		})
	}
	return items
}

func (m *Mirror) recalculate() {
	m.TotalItems = cartops.TotalItems(m.lines)
	m.TotalPrice = cartops.TotalPrice(m.lines, func(productID string) float64 {
		if p := m.products[productID]; p != nil {
			return p.Price
		}
		return 0
	})
}
