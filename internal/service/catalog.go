package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Skotchmaster/jewelry_store/internal/models"
	"github.com/Skotchmaster/jewelry_store/internal/mykafka"
	"github.com/Skotchmaster/jewelry_store/internal/repo"
	"github.com/Skotchmaster/jewelry_store/internal/service/search"
	"github.com/Skotchmaster/jewelry_store/pkg/logging"
	"gorm.io/gorm"
)

type CatalogService struct {
	Repo     *repo.GormRepo
	Producer *mykafka.Producer
	Search   *search.Service
}

func (s *CatalogService) GetProducts(ctx context.Context, filter repo.ProductFilter) ([]models.Product, error) {
	if filter.Category != "" && !models.ValidCategory(filter.Category) {
		return nil, fmt.Errorf("unknown category %q: %w", filter.Category, ErrValidation)
	}
	return s.Repo.ListProducts(ctx, filter)
}

func (s *CatalogService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	product, err := s.Repo.GetProduct(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("product not found: %w", ErrNotFound)
	}
	return product, err
}

// Seed replaces the whole catalog. Every record is validated up front so a
// single bad record fails the load before anything is deleted.
func (s *CatalogService) Seed(ctx context.Context, products []models.Product) (int, error) {
	for i := range products {
		if err := products[i].Validate(); err != nil {
			return 0, fmt.Errorf("product %q: %v: %w", products[i].ID, err, ErrValidation)
		}
	}

	count, err := s.Repo.ReplaceAll(ctx, products)
	if err != nil {
		return 0, err
	}

	s.publish(ctx, map[string]any{
		"type":  "catalog_seeded",
		"count": count,
	})

	if s.Search != nil {
		if err := s.Search.IndexProducts(ctx, products); err != nil {
			logging.FromContext(ctx).Error("es index error", "error", err)
		}
	}

	return count, nil
}

func (s *CatalogService) publish(ctx context.Context, event map[string]any) {
	if s.Producer == nil {
		return
	}
	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.Producer.PublishEvent(pubCtx, "product_events", fmt.Sprint(event["type"]), event); err != nil {
		logging.FromContext(ctx).Error("kafka publish error", "error", err)
	}
}
