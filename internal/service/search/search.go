// Package search indexes the catalog into Elasticsearch and answers
// full-text queries over it. The index is rebuilt on every seed.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Skotchmaster/jewelry_store/internal/models"
	"github.com/elastic/go-elasticsearch/v9"
)

type Service struct {
	ES    *elasticsearch.Client
	Index string
}

type Results struct {
	Total int64            `json:"total"`
	Items []models.Product `json:"items"`
}

func (s *Service) IndexProducts(ctx context.Context, products []models.Product) error {
	for _, p := range products {
		data, err := json.Marshal(p)
		if err != nil {
			return fmt.Errorf("marshal product %s: %w", p.ID, err)
		}

		res, err := s.ES.Index(
			s.Index,
			bytes.NewReader(data),
			s.ES.Index.WithContext(ctx),
			s.ES.Index.WithDocumentID(p.ID),
		)
		if err != nil {
			return fmt.Errorf("index product %s: %w", p.ID, err)
		}
		res.Body.Close()
		if res.IsError() {
			return fmt.Errorf("index product %s: %s", p.ID, res.Status())
		}
	}
	return nil
}

func (s *Service) Search(ctx context.Context, rawQ string, from, size int) (Results, error) {
	q := strings.TrimSpace(rawQ)
	if q == "" {
		return Results{Total: 0, Items: []models.Product{}}, nil
	}

	query := map[string]any{
		"from": from,
		"size": size,
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"name^2", "description", "category"},
			},
		},
	}

	var body bytes.Buffer
	if err := json.NewEncoder(&body).Encode(query); err != nil {
		return Results{}, fmt.Errorf("encode query: %w", err)
	}

	res, err := s.ES.Search(
		s.ES.Search.WithContext(ctx),
		s.ES.Search.WithIndex(s.Index),
		s.ES.Search.WithBody(&body),
	)
	if err != nil {
		return Results{}, fmt.Errorf("es search: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return Results{}, fmt.Errorf("es search: %s", res.Status())
	}

	var parsed struct {
		Hits struct {
			Total struct {
				Value int64 `json:"value"`
			} `json:"total"`
			Hits []struct {
				Source models.Product `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return Results{}, fmt.Errorf("decode es response: %w", err)
	}

	items := make([]models.Product, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		items = append(items, h.Source)
	}
	return Results{Total: parsed.Hits.Total.Value, Items: items}, nil
}
