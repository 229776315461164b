// Package cartclient is the shop's client SDK: a thin HTTP client over the
// cart and catalog API plus a local optimistic mirror of the cart state.
package cartclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

const sessionHeader = "x-session-id"

type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	InStock     bool    `json:"inStock"`
}

type CartLine struct {
	ProductID string   `json:"productId"`
	Quantity  uint     `json:"quantity"`
	Product   *Product `json:"product"`
}

type cartPayload struct {
	Items     []CartLine `json:"items"`
	SessionID string     `json:"sessionId"`
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// APIError is any non-2xx answer from the server, carrying the envelope
// message.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

type Client struct {
	baseURL   string
	sessionID string
	http      *http.Client
}

type Option func(*Client)

func WithSessionID(id string) Option {
	return func(c *Client) { c.sessionID = id }
}

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// New builds a client for baseURL (e.g. "http://localhost:8080/api"). A
// session identifier is generated when none is supplied, the way the web UI
// mints one per browser.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.sessionID == "" {
		c.sessionID = "session_" + uuid.NewString()
	}
	return c
}

func (c *Client) SessionID() string {
	return c.sessionID
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(sessionHeader, c.sessionID)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	if resp.StatusCode >= 400 || !env.Success {
		msg := env.Message
		if msg == "" {
			msg = resp.Status
		}
		return &APIError{Status: resp.StatusCode, Message: msg}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode data: %w", err)
		}
	}
	return nil
}

func (c *Client) Products(ctx context.Context, category string, inStock *bool) ([]Product, error) {
	q := url.Values{}
	if category != "" {
		q.Set("category", category)
	}
	if inStock != nil {
		q.Set("inStock", fmt.Sprintf("%t", *inStock))
	}

	path := "/products"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var products []Product
	if err := c.do(ctx, http.MethodGet, path, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) Product(ctx context.Context, id string) (*Product, error) {
	var product Product
	if err := c.do(ctx, http.MethodGet, "/products/"+url.PathEscape(id), nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) SeedCatalog(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/products/seed", nil, nil)
}

func (c *Client) fetchCart(ctx context.Context) (*cartPayload, error) {
	var payload cartPayload
	if err := c.do(ctx, http.MethodGet, "/cart", nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (c *Client) addItem(ctx context.Context, productID string, quantity uint) error {
	body := map[string]any{"productId": productID, "quantity": quantity}
	return c.do(ctx, http.MethodPost, "/cart", body, nil)
}

func (c *Client) updateItem(ctx context.Context, productID string, quantity uint) error {
	body := map[string]any{"quantity": quantity}
	return c.do(ctx, http.MethodPut, "/cart/"+url.PathEscape(productID), body, nil)
}

func (c *Client) removeItem(ctx context.Context, productID string) error {
	return c.do(ctx, http.MethodDelete, "/cart/"+url.PathEscape(productID), nil, nil)
}

func (c *Client) clearCart(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/cart", nil, nil)
}
