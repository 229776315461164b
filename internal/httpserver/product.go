package httpserver

import (
	"errors"
	"net/http"

	"github.com/Skotchmaster/jewelry_store/internal/repo"
	"github.com/Skotchmaster/jewelry_store/internal/seed"
	"github.com/Skotchmaster/jewelry_store/internal/service"
	"github.com/Skotchmaster/jewelry_store/internal/service/search"
	"github.com/Skotchmaster/jewelry_store/internal/util"
	"github.com/Skotchmaster/jewelry_store/pkg/logging"
	"github.com/labstack/echo/v4"
)

type ProductHTTP struct {
	Svc    *service.CatalogService
	Search *search.Service
}

func (h *ProductHTTP) GetProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_products")

	filter := repo.ProductFilter{Category: c.QueryParam("category")}
	if v := c.QueryParam("inStock"); v != "" {
		inStock := v == "true"
		filter.InStock = &inStock
	}

	products, err := h.Svc.GetProducts(ctx, filter)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("get_products_failed", "status", 400, "error", err)
			return c.JSON(http.StatusBadRequest, fail("Unknown category"))
		}
		l.Error("get_products_failed", "status", 500, "error", err)
		return err
	}

	count := len(products)
	return c.JSON(http.StatusOK, Response{Success: true, Count: &count, Data: products})
}

func (h *ProductHTTP) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_product")

	product, err := h.Svc.GetProduct(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("get_product_failed", "status", 404, "error", err)
			return c.JSON(http.StatusNotFound, fail("Product not found"))
		}
		l.Error("get_product_failed", "status", 500, "error", err)
		return err
	}

	return c.JSON(http.StatusOK, ok(product))
}

func (h *ProductHTTP) SeedProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.seed")

	products, err := seed.Products()
	if err != nil {
		l.Error("seed_failed", "status", 500, "error", err)
		return err
	}

	count, err := h.Svc.Seed(ctx, products)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("seed_failed", "status", 400, "error", err)
			return c.JSON(http.StatusBadRequest, fail(err.Error()))
		}
		l.Error("seed_failed", "status", 500, "error", err)
		return err
	}

	l.Info("seed_success", "count", count)
	return c.JSON(http.StatusCreated, Response{
		Success: true,
		Message: "Database seeded successfully",
		Count:   &count,
		Data:    products,
	})
}

func (h *ProductHTTP) SearchProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.search")

	q := c.QueryParam("q")
	if q == "" {
		return c.JSON(http.StatusBadRequest, fail("Query parameter q is required"))
	}

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	from, limit := util.Calculate(page, size)

	results, err := h.Search.Search(ctx, q, from, limit)
	if err != nil {
		l.Error("search_failed", "status", 500, "error", err)
		return err
	}

	return c.JSON(http.StatusOK, ok(results))
}
