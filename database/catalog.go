package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync/atomic"

	"scan-service/models"

	"github.com/apex/log"
)

// snapshot is one immutable view of the catalog. Lookups read whatever
// snapshot is current; Reload builds a complete replacement and swaps it in
// atomically, so readers never observe a partially-loaded catalog.
type snapshot struct {
	products map[string]models.LocalProduct
	alerts   map[string][]string
}

// CatalogService loads the local product catalog and the advisory alert
// list from MySQL into memory and serves read-only lookups.
type CatalogService struct {
	db   *sql.DB
	snap atomic.Pointer[snapshot]
}

// NewCatalogService creates a catalog service with an empty snapshot.
// Call Reload to populate it.
func NewCatalogService(db *sql.DB) *CatalogService {
	s := &CatalogService{db: db}
	s.snap.Store(&snapshot{
		products: map[string]models.LocalProduct{},
		alerts:   map[string][]string{},
	})
	return s
}

// Reload reads the full catalog and alert list and swaps the new snapshot
// in. On error the previous snapshot stays in place.
func (s *CatalogService) Reload(ctx context.Context) error {
	products, err := s.loadProducts(ctx)
	if err != nil {
		return fmt.Errorf("failed to load products: %w", err)
	}

	alerts, err := s.loadAlerts(ctx)
	if err != nil {
		return fmt.Errorf("failed to load alerts: %w", err)
	}

	s.snap.Store(&snapshot{products: products, alerts: alerts})
	log.Infof("Catalog reloaded: %d products, %d alert entries", len(products), len(alerts))
	return nil
}

// Product returns the catalog record for an id, if any.
func (s *CatalogService) Product(id string) (models.LocalProduct, bool) {
	p, ok := s.snap.Load().products[id]
	return p, ok
}

// Alerts returns the advisory alerts for an id in stored order. The result
// is never nil.
func (s *CatalogService) Alerts(id string) []string {
	alerts := s.snap.Load().alerts[id]
	if alerts == nil {
		return []string{}
	}
	return alerts
}

func (s *CatalogService) loadProducts(ctx context.Context) (map[string]models.LocalProduct, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, brand, image_url, is_beverage, serving_size, sugar, salt, sat_fat, protein, ingredients
		 FROM products`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := map[string]models.LocalProduct{}
	for rows.Next() {
		var p models.LocalProduct
		var brand, imageURL, ingredients sql.NullString
		if err := rows.Scan(&p.ID, &p.Name, &brand, &imageURL, &p.IsBeverage,
			&p.ServingSize, &p.Sugar, &p.Salt, &p.SatFat, &p.Protein, &ingredients); err != nil {
			return nil, err
		}
		p.Brand = brand.String
		p.ImageURL = imageURL.String
		if ingredients.Valid && ingredients.String != "" {
			if err := json.Unmarshal([]byte(ingredients.String), &p.Ingredients); err != nil {
				log.Warnf("Product %s has malformed ingredients JSON, skipping ingredients: %v", p.ID, err)
				p.Ingredients = nil
			}
		}
		products[p.ID] = p
	}
	return products, rows.Err()
}

func (s *CatalogService) loadAlerts(ctx context.Context) (map[string][]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT product_id, alert FROM product_alerts ORDER BY product_id, position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	alerts := map[string][]string{}
	for rows.Next() {
		var id, alert string
		if err := rows.Scan(&id, &alert); err != nil {
			return nil, err
		}
		alerts[id] = append(alerts[id], alert)
	}
	return alerts, rows.Err()
}
