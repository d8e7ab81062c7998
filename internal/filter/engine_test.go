package filter

import (
	"testing"

	"github.com/steeltrade/storefront-backend/internal/catalog"
	"github.com/steeltrade/storefront-backend/pkg/enums"
)

func fixture() []catalog.Product {
	return catalog.FallbackProducts()
}

func TestEmptyCriteriaMatchesEverything(t *testing.T) {
	products := fixture()
	matched, empty := FilterAll(products, Criteria{})
	if empty {
		t.Fatal("unexpected empty result")
	}
	if len(matched) != len(products) {
		t.Fatalf("expected %d products, got %d", len(products), len(matched))
	}
}

func TestDimensionsCombineWithAND(t *testing.T) {
	products := fixture()

	// Diameter bucket 100 with warehouse moscow: nothing in the fixture has
	// a Moscow product in (50,100].
	criteria := Criteria{
		Warehouses:      []enums.Warehouse{enums.WarehouseMoscow},
		DiameterBuckets: []DiameterBucket{Diameter100},
	}
	matched, empty := FilterAll(products, criteria)
	if !empty || len(matched) != 0 {
		t.Fatalf("expected empty result, got %d", len(matched))
	}

	// Same bucket with the EKB warehouse matches the 80 mm profile pipe.
	criteria.Warehouses = []enums.Warehouse{enums.WarehouseEKB}
	matched, empty = FilterAll(products, criteria)
	if empty || len(matched) != 1 || matched[0].ID != 3 {
		t.Fatalf("unexpected result %+v", matched)
	}
}

func TestValuesWithinDimensionCombineWithOR(t *testing.T) {
	products := fixture()

	criteria := Criteria{
		Warehouses: []enums.Warehouse{enums.WarehouseMoscow, enums.WarehouseSPB},
	}
	matched, _ := FilterAll(products, criteria)
	if len(matched) != 2 {
		t.Fatalf("expected 2 products, got %d", len(matched))
	}
}

func TestDiameterBucketBoundaries(t *testing.T) {
	fifty := catalog.Product{ID: 100, Diameter: 50}
	hundred := catalog.Product{ID: 101, Diameter: 100}

	if !Matches(fifty, Criteria{DiameterBuckets: []DiameterBucket{Diameter50}}) {
		t.Fatal("diameter 50 must match bucket 50")
	}
	if Matches(fifty, Criteria{DiameterBuckets: []DiameterBucket{Diameter100}}) {
		t.Fatal("diameter 50 must not match bucket 100")
	}
	if !Matches(hundred, Criteria{DiameterBuckets: []DiameterBucket{Diameter100}}) {
		t.Fatal("diameter 100 must match bucket 100")
	}
	if Matches(hundred, Criteria{DiameterBuckets: []DiameterBucket{Diameter50}}) {
		t.Fatal("diameter 100 must not match bucket 50")
	}
}

func TestThicknessBucketRanges(t *testing.T) {
	cases := []struct {
		thickness float64
		bucket    ThicknessBucket
		want      bool
	}{
		{3, Thickness3, true},
		{3, Thickness5, false},
		{3.1, Thickness5, true},
		{5, Thickness5, true},
		{8, Thickness8, true},
		{12, Thickness12, true},
		{12.5, Thickness20, true},
		{40, Thickness20, true},
		{2, Thickness20, false},
	}
	for _, tc := range cases {
		p := catalog.Product{Thickness: tc.thickness}
		got := Matches(p, Criteria{ThicknessBuckets: []ThicknessBucket{tc.bucket}})
		if got != tc.want {
			t.Fatalf("thickness %.1f in bucket %d = %v, want %v", tc.thickness, tc.bucket, got, tc.want)
		}
	}
}

func TestParseBucketLabels(t *testing.T) {
	if _, err := ParseDiameterBucket(200); err != nil {
		t.Fatalf("parse diameter bucket: %v", err)
	}
	if _, err := ParseDiameterBucket(150); err == nil {
		t.Fatal("expected error for unknown diameter label")
	}
	if _, err := ParseThicknessBucket(12); err != nil {
		t.Fatalf("parse thickness bucket: %v", err)
	}
	if _, err := ParseThicknessBucket(4); err == nil {
		t.Fatal("expected error for unknown thickness label")
	}
}

func TestSearchMatchesNameOrCode(t *testing.T) {
	products := fixture()

	byName := Search(products, "нержавеющая")
	if len(byName) != 1 || byName[0].ID != 4 {
		t.Fatalf("unexpected name search result %+v", byName)
	}

	byCode := Search(products, "1121110-02")
	if len(byCode) != 1 || byCode[0].ID != 2 {
		t.Fatalf("unexpected code search result %+v", byCode)
	}

	caseInsensitive := Search(products, "ТРУБА")
	if len(caseInsensitive) != len(products) {
		t.Fatalf("case-insensitive search failed, got %d", len(caseInsensitive))
	}

	all := Search(products, "   ")
	if len(all) != len(products) {
		t.Fatalf("blank term should match everything, got %d", len(all))
	}

	none := Search(products, "швеллер")
	if len(none) != 0 {
		t.Fatalf("expected no matches, got %d", len(none))
	}
}
