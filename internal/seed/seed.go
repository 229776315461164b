// Package seed carries the demo catalog the seed endpoint loads.
package seed

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/Skotchmaster/jewelry_store/internal/models"
)

//go:embed products.json
var productsJSON []byte

// seedProduct keeps the "in stock unless stated otherwise" default of the
// dataset: a record that omits inStock is treated as available.
type seedProduct struct {
	models.Product
	InStock *bool `json:"inStock"`
}

func Products() ([]models.Product, error) {
	var raw []seedProduct
	if err := json.Unmarshal(productsJSON, &raw); err != nil {
		return nil, fmt.Errorf("decode seed data: %w", err)
	}

	products := make([]models.Product, 0, len(raw))
	for _, sp := range raw {
		p := sp.Product
		p.InStock = true
		if sp.InStock != nil {
			p.InStock = *sp.InStock
		}
		products = append(products, p)
	}
	return products, nil
}
