package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MinQuantity = 1
	MaxQuantity = 99

	maxNameLen        = 200
	maxDescriptionLen = 1000
)

var Categories = []string{"Rings", "Necklaces", "Bracelets", "Earrings", "Pendants"}

type Product struct {
	ID          string    `gorm:"primaryKey"                               json:"id"`
	Name        string    `gorm:"size:200;not null"                        json:"name"`
	Description string    `gorm:"size:1000;not null"                       json:"description"`
	Price       float64   `gorm:"not null"                                 json:"price"`
	Image       string    `gorm:"not null"                                 json:"image"`
	Category    string    `gorm:"index:idx_category_in_stock;not null"     json:"category"`
	InStock     bool      `gorm:"index:idx_category_in_stock;not null"     json:"inStock"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Product) TableName() string {
	return "products"
}

// Validate replaces the schema-level checks the seed data used to rely on.
// Every product goes through it before reaching the store.
func (p *Product) Validate() error {
	var errs []error
	if p.ID == "" {
		errs = append(errs, errors.New("product id is required"))
	}
	if p.Name == "" {
		errs = append(errs, errors.New("product name is required"))
	}
	if len(p.Name) > maxNameLen {
		errs = append(errs, fmt.Errorf("product name cannot exceed %d characters", maxNameLen))
	}
	if p.Description == "" {
		errs = append(errs, errors.New("product description is required"))
	}
	if len(p.Description) > maxDescriptionLen {
		errs = append(errs, fmt.Errorf("description cannot exceed %d characters", maxDescriptionLen))
	}
	if p.Price < 0 {
		errs = append(errs, errors.New("price cannot be negative"))
	}
	if p.Image == "" {
		errs = append(errs, errors.New("product image URL is required"))
	}
	if !ValidCategory(p.Category) {
		errs = append(errs, fmt.Errorf("category %q is not one of %v", p.Category, Categories))
	}
	return errors.Join(errs...)
}

func ValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

func ValidateQuantity(q uint) error {
	if q < MinQuantity || q > MaxQuantity {
		return fmt.Errorf("quantity must be between %d and %d", MinQuantity, MaxQuantity)
	}
	return nil
}

type Cart struct {
	ID        uuid.UUID  `gorm:"primaryKey"           json:"-"`
	SessionID string     `gorm:"uniqueIndex;not null" json:"sessionId"`
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

func (c *Cart) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

func (Cart) TableName() string {
	return "carts"
}

type CartItem struct {
	ID        uuid.UUID `gorm:"primaryKey"                            json:"-"`
	CartID    uuid.UUID `gorm:"uniqueIndex:idx_cart_product;not null" json:"-"`
	ProductID string    `gorm:"uniqueIndex:idx_cart_product;not null" json:"productId"`
	Quantity  uint      `gorm:"check:quantity>0"                      json:"quantity"`
}

func (i *CartItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

func (CartItem) TableName() string {
	return "cart_items"
}
