package httpserver

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Skotchmaster/jewelry_store/pkg/logging"
	"github.com/labstack/echo/v4"
)

type Deps struct {
	ProductHandler *ProductHTTP
	CartHandler    *CartHTTP
	Production     bool
}

func Register(e *echo.Echo, d *Deps) {
	e.HTTPErrorHandler = errorHandler(d.Production)

	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	api := e.Group("/api")

	products := api.Group("/products")
	products.GET("", d.ProductHandler.GetProducts)
	products.POST("/seed", d.ProductHandler.SeedProducts)
	if d.ProductHandler.Search != nil {
		products.GET("/search", d.ProductHandler.SearchProducts)
	}
	products.GET("/:id", d.ProductHandler.GetProduct)

	cart := api.Group("/cart")
	cart.GET("", d.CartHandler.GetCart)
	cart.POST("", d.CartHandler.AddToCart)
	cart.PUT("/:productId", d.CartHandler.UpdateCartItem)
	cart.DELETE("/:productId", d.CartHandler.RemoveFromCart)
	cart.DELETE("", d.CartHandler.ClearCart)
}

// errorHandler renders every uncaught error into the response envelope.
// Unmatched routes get the historical "Route not found" message; anything
// else becomes a generic 500 that only leaks detail outside production.
func errorHandler(production bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			msg := fmt.Sprint(he.Message)
			if he.Code == http.StatusNotFound || he.Code == http.StatusMethodNotAllowed {
				msg = "Route not found - " + c.Request().URL.Path
			}
			_ = c.JSON(he.Code, fail(msg))
			return
		}

		logging.FromContext(c.Request().Context()).Error("unhandled error", "error", err)

		resp := fail("Internal Server Error")
		if !production {
			resp.Stack = err.Error()
		}
		_ = c.JSON(http.StatusInternalServerError, resp)
	}
}
