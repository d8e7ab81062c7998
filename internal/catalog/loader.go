package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/steeltrade/storefront-backend/pkg/config"
	"github.com/steeltrade/storefront-backend/pkg/enums"
	pkgerrors "github.com/steeltrade/storefront-backend/pkg/errors"
	"github.com/steeltrade/storefront-backend/pkg/logger"
)

// Loader fetches the static products document once at startup.
type Loader struct {
	client *http.Client
	url    string
	logg   *logger.Logger
}

// NewLoader builds a loader for the configured catalog source.
func NewLoader(cfg config.CatalogConfig, logg *logger.Logger) *Loader {
	return &Loader{
		client: &http.Client{Timeout: cfg.FetchTimeout},
		url:    cfg.SourceURL,
		logg:   logg,
	}
}

// document mirrors the source file layout.
type document struct {
	Products []productRecord `json:"products"`
}

type productRecord struct {
	ID           int             `json:"id"`
	Name         string          `json:"name"`
	Code         string          `json:"code"`
	Price        int64           `json:"price"`
	Type         string          `json:"type"`
	Diameter     float64         `json:"diameter"`
	Thickness    float64         `json:"thickness"`
	GOST         string          `json:"gost"`
	Steel        string          `json:"steel"`
	Warehouse    string          `json:"warehouse"`
	Availability decimal.Decimal `json:"availability"`
}

// Load returns the catalog, falling back to the embedded fixture on any
// fetch or parse failure so the storefront never starts empty.
func (l *Loader) Load(ctx context.Context) []Product {
	products, err := l.Fetch(ctx)
	if err != nil {
		if l.logg != nil {
			ctx = l.logg.WithField(ctx, "source_url", l.url)
			l.logg.Warn(ctx, fmt.Sprintf("catalog load failed, using fallback: %v", err))
		}
		return FallbackProducts()
	}
	return products
}

// Fetch retrieves and validates the source document. Failures are reported
// as load errors; callers decide whether to fall back.
func (l *Loader) Fetch(ctx context.Context) ([]Product, error) {
	if l.url == "" {
		return nil, pkgerrors.New(pkgerrors.CodeLoad, "catalog source url not configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeLoad, err, "build catalog request")
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeLoad, err, "fetch catalog document")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, pkgerrors.New(pkgerrors.CodeLoad, fmt.Sprintf("catalog source returned status %d", resp.StatusCode))
	}

	var doc document
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeLoad, err, "parse catalog document")
	}

	return mapDocument(doc)
}

func mapDocument(doc document) ([]Product, error) {
	if len(doc.Products) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeLoad, "catalog document has no products")
	}

	seen := make(map[int]struct{}, len(doc.Products))
	products := make([]Product, 0, len(doc.Products))
	for _, rec := range doc.Products {
		if _, dup := seen[rec.ID]; dup {
			return nil, pkgerrors.New(pkgerrors.CodeLoad, fmt.Sprintf("duplicate product id %d", rec.ID))
		}
		seen[rec.ID] = struct{}{}

		product, err := mapRecord(rec)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, nil
}

func mapRecord(rec productRecord) (Product, error) {
	if rec.Price < 0 || rec.Diameter < 0 || rec.Thickness < 0 || rec.Availability.IsNegative() {
		return Product{}, pkgerrors.New(pkgerrors.CodeLoad, fmt.Sprintf("product %d has negative numeric field", rec.ID))
	}
	if rec.Name == "" || rec.Code == "" {
		return Product{}, pkgerrors.New(pkgerrors.CodeLoad, fmt.Sprintf("product %d missing name or code", rec.ID))
	}

	// Unknown enum codes are kept raw; the label tables fall back to the
	// raw value so future catalog revisions do not break the load.
	return Product{
		ID:           rec.ID,
		Name:         rec.Name,
		Code:         rec.Code,
		PriceCents:   rec.Price * 100,
		Type:         enums.ProductType(rec.Type),
		Diameter:     rec.Diameter,
		Thickness:    rec.Thickness,
		Standard:     enums.Standard(rec.GOST),
		Steel:        enums.SteelGrade(rec.Steel),
		Warehouse:    enums.Warehouse(rec.Warehouse),
		Availability: rec.Availability,
	}, nil
}
