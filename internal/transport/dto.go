package transport

import (
	"strings"

	"github.com/Skotchmaster/jewelry_store/internal/models"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type AddItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  uint   `json:"quantity"`
}

// Validate enforces what the route-level validation layer used to: the
// service itself does not re-check bounds on add.
func (r *AddItemRequest) Validate() []FieldError {
	var errs []FieldError

	r.ProductID = strings.TrimSpace(r.ProductID)
	if r.ProductID == "" {
		errs = append(errs, FieldError{Field: "productId", Message: "Product ID is required"})
	}
	if r.Quantity == 0 {
		errs = append(errs, FieldError{Field: "quantity", Message: "Quantity is required"})
	} else if err := models.ValidateQuantity(r.Quantity); err != nil {
		errs = append(errs, FieldError{Field: "quantity", Message: "Quantity must be an integer between 1 and 99"})
	}
	return errs
}

type UpdateItemRequest struct {
	Quantity uint `json:"quantity"`
}

// CartLineView is a cart line joined with its current product record. The
// join is live: a product deleted after it was added shows up as nil.
type CartLineView struct {
	ProductID string          `json:"productId"`
	Quantity  uint            `json:"quantity"`
	Product   *models.Product `json:"product"`
}

type CartView struct {
	Items     []CartLineView `json:"items"`
	SessionID string         `json:"sessionId,omitempty"`
}
