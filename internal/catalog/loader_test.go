package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/steeltrade/storefront-backend/pkg/config"
	pkgerrors "github.com/steeltrade/storefront-backend/pkg/errors"
)

const sampleDocument = `{
  "products": [
    {
      "id": 10,
      "name": "Труба электросварная прямошовная",
      "code": "271.1121110-10",
      "price": 1200,
      "type": "welded",
      "diameter": 108,
      "thickness": 4,
      "gost": "gost1",
      "steel": "steel2",
      "warehouse": "moscow",
      "availability": 12.4
    }
  ]
}`

func newTestLoader(t *testing.T, url string) *Loader {
	t.Helper()
	return NewLoader(config.CatalogConfig{SourceURL: url, FetchTimeout: 2 * time.Second}, nil)
}

func TestFetchParsesDocument(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleDocument))
	}))
	defer srv.Close()

	products, err := newTestLoader(t, srv.URL).Fetch(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("expected 1 product, got %d", len(products))
	}
	p := products[0]
	if p.ID != 10 {
		t.Fatalf("unexpected id %d", p.ID)
	}
	if p.PriceCents != 120000 {
		t.Fatalf("price not converted to kopecks: %d", p.PriceCents)
	}
	if p.Availability.String() != "12.4" {
		t.Fatalf("unexpected availability %s", p.Availability)
	}
}

func TestFetchRejectsDuplicateIDs(t *testing.T) {
	doc := `{"products":[
	  {"id":1,"name":"a","code":"c1","price":100,"type":"seamless","diameter":50,"thickness":3,"gost":"gost1","steel":"steel1","warehouse":"moscow","availability":1},
	  {"id":1,"name":"b","code":"c2","price":100,"type":"seamless","diameter":50,"thickness":3,"gost":"gost1","steel":"steel1","warehouse":"moscow","availability":1}
	]}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(doc))
	}))
	defer srv.Close()

	_, err := newTestLoader(t, srv.URL).Fetch(context.Background())
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeLoad {
		t.Fatalf("expected load error, got %v", err)
	}
}

func TestFetchRejectsNegativeNumericFields(t *testing.T) {
	doc := `{"products":[
	  {"id":1,"name":"a","code":"c1","price":-5,"type":"seamless","diameter":50,"thickness":3,"gost":"gost1","steel":"steel1","warehouse":"moscow","availability":1}
	]}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(doc))
	}))
	defer srv.Close()

	if _, err := newTestLoader(t, srv.URL).Fetch(context.Background()); err == nil {
		t.Fatal("expected error for negative price")
	}
}

func TestLoadFallsBackOnUnreachableSource(t *testing.T) {
	// Closed server: connection refused.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	products := newTestLoader(t, url).Load(context.Background())
	assertFallback(t, products)
}

func TestLoadFallsBackOnMalformedDocument(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"products": not-json`))
	}))
	defer srv.Close()

	products := newTestLoader(t, srv.URL).Load(context.Background())
	assertFallback(t, products)
}

func TestLoadFallsBackOnEmptySourceURL(t *testing.T) {
	products := newTestLoader(t, "").Load(context.Background())
	assertFallback(t, products)
}

func assertFallback(t *testing.T, products []Product) {
	t.Helper()
	if len(products) != 4 {
		t.Fatalf("expected the 4-item fallback catalog, got %d items", len(products))
	}
	want := FallbackProducts()
	for i := range want {
		if products[i].ID != want[i].ID || products[i].Code != want[i].Code || products[i].PriceCents != want[i].PriceCents {
			t.Fatalf("fallback item %d mismatch: %+v", i, products[i])
		}
	}
}
