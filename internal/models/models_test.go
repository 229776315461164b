package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProduct() Product {
	return Product{
		ID:          "ring-001",
		Name:        "Classic Solitaire Diamond Ring",
		Description: "A timeless solitaire ring.",
		Price:       45999,
		Image:       "https://images.example.com/products/ring-001.jpg",
		Category:    "Rings",
		InStock:     true,
	}
}

func TestProductValidate_OK(t *testing.T) {
	t.Parallel()

	p := validProduct()
	require.NoError(t, p.Validate())
}

func TestProductValidate_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Product)
	}{
		{name: "missing id", mutate: func(p *Product) { p.ID = "" }},
		{name: "missing name", mutate: func(p *Product) { p.Name = "" }},
		{name: "name too long", mutate: func(p *Product) { p.Name = strings.Repeat("x", 201) }},
		{name: "missing description", mutate: func(p *Product) { p.Description = "" }},
		{name: "description too long", mutate: func(p *Product) { p.Description = strings.Repeat("x", 1001) }},
		{name: "negative price", mutate: func(p *Product) { p.Price = -1 }},
		{name: "missing image", mutate: func(p *Product) { p.Image = "" }},
		{name: "unknown category", mutate: func(p *Product) { p.Category = "Watches" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := validProduct()
			tt.mutate(&p)
			assert.Error(t, p.Validate())
		})
	}
}

func TestValidateQuantity_Bounds(t *testing.T) {
	t.Parallel()

	assert.Error(t, ValidateQuantity(0))
	assert.NoError(t, ValidateQuantity(1))
	assert.NoError(t, ValidateQuantity(99))
	assert.Error(t, ValidateQuantity(100))
}

func TestValidCategory(t *testing.T) {
	t.Parallel()

	for _, c := range Categories {
		assert.True(t, ValidCategory(c))
	}
	assert.False(t, ValidCategory("Watches"))
	assert.False(t, ValidCategory("rings"))
}
