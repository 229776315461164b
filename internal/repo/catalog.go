package repo

import (
	"context"

	"github.com/Skotchmaster/jewelry_store/internal/models"
	"gorm.io/gorm"
)

// ProductFilter narrows ListProducts. Nil fields mean "any".
type ProductFilter struct {
	Category string
	InStock  *bool
}

func (r *GormRepo) ListProducts(ctx context.Context, filter ProductFilter) ([]models.Product, error) {
	q := r.DB.WithContext(ctx).Model(&models.Product{})
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.InStock != nil {
		q = q.Where("in_stock = ?", *filter.InStock)
	}

	items := make([]models.Product, 0)
	if err := q.Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	product := models.Product{}
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// ReplaceAll wipes the catalog and loads the given set in one transaction.
// Either everything lands or nothing does.
func (r *GormRepo) ReplaceAll(ctx context.Context, products []models.Product) (int, error) {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Product{}).Error; err != nil {
			return err
		}
		if len(products) == 0 {
			return nil
		}
		return tx.Create(&products).Error
	})
	if err != nil {
		return 0, err
	}
	return len(products), nil
}
