package scanner

import (
	"context"
	"errors"
	"strings"

	"scan-service/models"
	"scan-service/normalizer"
	"scan-service/openfoodfacts"
	"scan-service/scoring"

	"github.com/apex/log"
)

// ErrProductNotFound is the terminal "not found" outcome: the product is
// neither in the local catalog nor retrievable from the remote provider.
// This is a business outcome, not an exceptional control path.
var ErrProductNotFound = errors.New("product not found")

// Catalog provides read-only lookups into the local product catalog and
// the advisory alert list.
type Catalog interface {
	Product(id string) (models.LocalProduct, bool)
	Alerts(id string) []string
}

// ProductFetcher retrieves a raw remote payload for a barcode.
type ProductFetcher interface {
	FetchProduct(ctx context.Context, barcode string) (map[string]any, error)
}

// Service runs the scan pipeline: catalog lookup, remote fetch,
// normalization, scoring, WHO comparison, quality assessment, explanation.
type Service struct {
	catalog Catalog
	remote  ProductFetcher
}

func NewService(catalog Catalog, remote ProductFetcher) *Service {
	return &Service{catalog: catalog, remote: remote}
}

// Scan resolves a product id to a fully scored scan result. The local
// catalog is consulted first; on a miss the remote provider is queried.
func (s *Service) Scan(ctx context.Context, productID string) (*models.ScanResult, error) {
	id := strings.TrimSpace(productID)
	if id == "" {
		return nil, ErrProductNotFound
	}

	alerts := s.catalog.Alerts(id)

	if local, ok := s.catalog.Product(id); ok {
		np := normalizer.NormalizeLocal(local)
		return buildResult(scoring.SourceLocal, "local_id", id, np, alerts), nil
	}

	payload, err := s.remote.FetchProduct(ctx, id)
	if err != nil {
		if !errors.Is(err, openfoodfacts.ErrNotFound) {
			log.Errorf("Remote fetch failed for %s: %v", id, err)
		}
		return nil, ErrProductNotFound
	}

	np := normalizer.NormalizeRemote(payload, id)
	return buildResult(scoring.SourceRemote, "barcode_or_key", id, np, alerts), nil
}

func buildResult(source, matchedBy, id string, np models.NormalizedProduct, alerts []string) *models.ScanResult {
	score, breakdown := scoring.Score(np.Nutrition, np.Classification.IsBeverage)
	who := scoring.WHOImpact(np.Nutrition)
	quality := scoring.AssessQuality(source, np)
	why, tips := scoring.Explain(np.Nutrition, breakdown, who, quality)

	productID := np.Code
	if productID == "" {
		productID = id
	}
	if alerts == nil {
		alerts = []string{}
	}

	return &models.ScanResult{
		Source:    source,
		MatchedBy: matchedBy,
		ProductID: productID,

		Name:     np.Name,
		Brand:    np.Brand,
		ImageURL: np.ImageURL,

		Alerts:      alerts,
		Ingredients: np.Ingredients,

		Nutrition: np.Nutrition,

		HealthScore:    score,
		ScoreVersion:   scoring.Version,
		ScoreBreakdown: breakdown,

		WHOImpact:   who,
		DataQuality: quality,

		WhyThisScore: why,
		Tips:         tips,
	}
}
