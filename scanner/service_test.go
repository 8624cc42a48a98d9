package scanner

import (
	"context"
	"errors"
	"testing"

	"scan-service/models"
	"scan-service/openfoodfacts"
	"scan-service/scoring"

	"github.com/stretchr/testify/assert"
)

type fakeCatalog struct {
	products map[string]models.LocalProduct
	alerts   map[string][]string
}

func (f *fakeCatalog) Product(id string) (models.LocalProduct, bool) {
	p, ok := f.products[id]
	return p, ok
}

func (f *fakeCatalog) Alerts(id string) []string {
	if a, ok := f.alerts[id]; ok {
		return a
	}
	return []string{}
}

type fakeFetcher struct {
	payload map[string]any
	err     error
	calls   int
}

func (f *fakeFetcher) FetchProduct(ctx context.Context, barcode string) (map[string]any, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.payload, nil
}

func TestScanLocalHit(t *testing.T) {
	catalog := &fakeCatalog{
		products: map[string]models.LocalProduct{
			"local-1": {
				ID:          "local-1",
				Name:        "Protein Bar",
				IsBeverage:  false,
				ServingSize: 45,
				Sugar:       12,
				SatFat:      4,
				Protein:     20,
				Ingredients: []any{"oats"},
			},
		},
		alerts: map[string][]string{
			"local-1": {"Recall notice 2026-01"},
		},
	}
	fetcher := &fakeFetcher{}
	svc := NewService(catalog, fetcher)

	result, err := svc.Scan(context.Background(), "local-1")

	assert.NoError(t, err)
	assert.Equal(t, scoring.SourceLocal, result.Source)
	assert.Equal(t, "local_id", result.MatchedBy)
	assert.Equal(t, "local-1", result.ProductID)
	assert.Equal(t, "Protein Bar", result.Name)
	assert.Equal(t, []string{"Recall notice 2026-01"}, result.Alerts)
	assert.Equal(t, scoring.ConfidenceHigh, result.DataQuality.Confidence)
	assert.Equal(t, scoring.Version, result.ScoreVersion)
	assert.Zero(t, fetcher.calls, "local hits never query the remote provider")
}

func TestScanRemoteHit(t *testing.T) {
	catalog := &fakeCatalog{}
	fetcher := &fakeFetcher{
		payload: map[string]any{
			"status": float64(1),
			"product": map[string]any{
				"product_name":    "Fizzy Orange",
				"categories_tags": []any{"en:sodas"},
				"serving_size":    "250 ml",
				"nutriments": map[string]any{
					"sugars_100g":        9.0,
					"salt_100g":          0.0,
					"saturated-fat_100g": 0.0,
				},
				"ingredients_text": "water, sugar, orange extract",
			},
		},
	}
	svc := NewService(catalog, fetcher)

	result, err := svc.Scan(context.Background(), "1234567890")

	assert.NoError(t, err)
	assert.Equal(t, scoring.SourceRemote, result.Source)
	assert.Equal(t, "barcode_or_key", result.MatchedBy)
	assert.Equal(t, "1234567890", result.ProductID)
	assert.Equal(t, "Fizzy Orange", result.Name)
	assert.True(t, result.DataQuality.IsBeverage)
	assert.Equal(t, scoring.ConfidenceHigh, result.DataQuality.Confidence)
	assert.Len(t, result.Ingredients, 3)
	assert.Equal(t, []string{}, result.Alerts)

	// sugar 9 g/100ml, weight 6 -> 54; serving sugar 22.5 -> +10
	assert.Equal(t, 36, result.HealthScore)
}

func TestScanNotFound(t *testing.T) {
	svc := NewService(&fakeCatalog{}, &fakeFetcher{err: openfoodfacts.ErrNotFound})

	result, err := svc.Scan(context.Background(), "does-not-exist")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestScanRemoteFailureIsNotFound(t *testing.T) {
	svc := NewService(&fakeCatalog{}, &fakeFetcher{err: errors.New("upstream exploded")})

	result, err := svc.Scan(context.Background(), "123")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestScanEmptyID(t *testing.T) {
	fetcher := &fakeFetcher{}
	svc := NewService(&fakeCatalog{}, fetcher)

	_, err := svc.Scan(context.Background(), "   ")

	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.Zero(t, fetcher.calls)
}

func TestScanAlertsAttachedToRemoteResult(t *testing.T) {
	catalog := &fakeCatalog{
		alerts: map[string][]string{
			"999": {"Advisory A", "Advisory B"},
		},
	}
	fetcher := &fakeFetcher{
		payload: map[string]any{
			"status":  float64(1),
			"product": map[string]any{"product_name": "Crackers"},
		},
	}
	svc := NewService(catalog, fetcher)

	result, err := svc.Scan(context.Background(), "999")

	assert.NoError(t, err)
	assert.Equal(t, []string{"Advisory A", "Advisory B"}, result.Alerts)
}
