package httpserver

import (
	"errors"
	"net/http"

	"github.com/Skotchmaster/jewelry_store/internal/service"
	"github.com/Skotchmaster/jewelry_store/internal/transport"
	"github.com/Skotchmaster/jewelry_store/pkg/logging"
	"github.com/labstack/echo/v4"
)

type CartHTTP struct {
	Svc *service.CartService
}

func (h *CartHTTP) GetCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.get")

	view, err := h.Svc.GetCart(ctx, SessionID(c))
	if err != nil {
		l.Error("get_cart_failed", "status", 500, "error", err)
		return err
	}

	return c.JSON(http.StatusOK, ok(view))
}

func (h *CartHTTP) AddToCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add")

	var req transport.AddItemRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("add_to_cart_failed", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, fail("Invalid request body"))
	}
	if fieldErrs := req.Validate(); len(fieldErrs) > 0 {
		l.Warn("add_to_cart_failed", "status", 400, "reason", "validation")
		return c.JSON(http.StatusBadRequest, Response{
			Success: false,
			Message: "Validation failed",
			Errors:  fieldErrs,
		})
	}

	cart, err := h.Svc.AddToCart(ctx, SessionID(c), req.ProductID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			l.Warn("add_to_cart_failed", "status", 404, "error", err)
			return c.JSON(http.StatusNotFound, fail("Product not found"))
		case errors.Is(err, service.ErrOutOfStock):
			l.Warn("add_to_cart_failed", "status", 400, "error", err)
			return c.JSON(http.StatusBadRequest, fail("Product is currently out of stock"))
		default:
			l.Error("add_to_cart_failed", "status", 500, "error", err)
			return err
		}
	}

	l.Info("item_added", "product_id", req.ProductID, "quantity", req.Quantity)
	return c.JSON(http.StatusOK, okMsg("Item added to cart successfully", cart))
}

func (h *CartHTTP) UpdateCartItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.update")

	var req transport.UpdateItemRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_cart_failed", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, fail("Invalid request body"))
	}

	cart, err := h.Svc.UpdateItem(ctx, SessionID(c), c.Param("productId"), req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			l.Warn("update_cart_failed", "status", 400, "error", err)
			return c.JSON(http.StatusBadRequest, fail("Quantity must be between 1 and 99"))
		case errors.Is(err, service.ErrItemNotFound):
			l.Warn("update_cart_failed", "status", 404, "error", err)
			return c.JSON(http.StatusNotFound, fail("Item not found in cart"))
		case errors.Is(err, service.ErrNotFound):
			l.Warn("update_cart_failed", "status", 404, "error", err)
			return c.JSON(http.StatusNotFound, fail("Cart not found"))
		default:
			l.Error("update_cart_failed", "status", 500, "error", err)
			return err
		}
	}

	return c.JSON(http.StatusOK, okMsg("Cart updated successfully", cart))
}

func (h *CartHTTP) RemoveFromCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.remove")

	cart, err := h.Svc.RemoveItem(ctx, SessionID(c), c.Param("productId"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("remove_from_cart_failed", "status", 404, "error", err)
			return c.JSON(http.StatusNotFound, fail("Cart not found"))
		}
		l.Error("remove_from_cart_failed", "status", 500, "error", err)
		return err
	}

	return c.JSON(http.StatusOK, okMsg("Item removed from cart", cart))
}

func (h *CartHTTP) ClearCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.clear")

	if err := h.Svc.ClearCart(ctx, SessionID(c)); err != nil {
		l.Error("clear_cart_failed", "status", 500, "error", err)
		return err
	}

	l.Info("cart_cleared")
	return c.JSON(http.StatusOK, Response{Success: true, Message: "Cart cleared successfully"})
}
