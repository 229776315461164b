package service

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Skotchmaster/jewelry_store/internal/models"
	"github.com/Skotchmaster/jewelry_store/internal/repo"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Product{}, &models.Cart{}, &models.CartItem{}))
	return db
}

func newTestRepo(t *testing.T) *repo.GormRepo {
	t.Helper()
	return &repo.GormRepo{DB: newTestDB(t)}
}

func createProduct(t *testing.T, r *repo.GormRepo, id string, price float64, inStock bool) models.Product {
	t.Helper()

	p := models.Product{
		ID:          id,
		Name:        "test " + id,
		Description: "test description",
		Price:       price,
		Image:       "https://images.example.com/" + id + ".jpg",
		Category:    "Rings",
		InStock:     inStock,
		CreatedAt:   time.Now().UTC(),
	}
	require.NoError(t, r.DB.Create(&p).Error)
	return p
}
