package filter

import (
	"strings"

	"github.com/steeltrade/storefront-backend/internal/catalog"
	"github.com/steeltrade/storefront-backend/pkg/enums"
)

// Criteria is the set of active filter values. An empty slice on a dimension
// means no constraint there; dimensions combine with AND, values within one
// dimension with OR.
type Criteria struct {
	Warehouses       []enums.Warehouse
	Types            []enums.ProductType
	Standards        []enums.Standard
	Steels           []enums.SteelGrade
	DiameterBuckets  []DiameterBucket
	ThicknessBuckets []ThicknessBucket
}

// IsEmpty reports whether no dimension is constrained.
func (c Criteria) IsEmpty() bool {
	return len(c.Warehouses) == 0 &&
		len(c.Types) == 0 &&
		len(c.Standards) == 0 &&
		len(c.Steels) == 0 &&
		len(c.DiameterBuckets) == 0 &&
		len(c.ThicknessBuckets) == 0
}

// Matches evaluates the criteria against one product.
func Matches(p catalog.Product, c Criteria) bool {
	if !memberOf(p.Warehouse, c.Warehouses) {
		return false
	}
	if !memberOf(p.Type, c.Types) {
		return false
	}
	if !memberOf(p.Standard, c.Standards) {
		return false
	}
	if !memberOf(p.Steel, c.Steels) {
		return false
	}
	if !inAnyDiameterBucket(p.Diameter, c.DiameterBuckets) {
		return false
	}
	if !inAnyThicknessBucket(p.Thickness, c.ThicknessBuckets) {
		return false
	}
	return true
}

// FilterAll re-evaluates the whole catalog and reports whether nothing
// matched, which drives the "no results" indicator.
func FilterAll(products []catalog.Product, c Criteria) (matched []catalog.Product, empty bool) {
	matched = make([]catalog.Product, 0, len(products))
	for _, p := range products {
		if Matches(p, c) {
			matched = append(matched, p)
		}
	}
	return matched, len(matched) == 0
}

// Search applies a case-insensitive substring match against name or code.
// An empty term matches everything.
func Search(products []catalog.Product, term string) []catalog.Product {
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		out := make([]catalog.Product, len(products))
		copy(out, products)
		return out
	}

	matched := make([]catalog.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Code), needle) {
			matched = append(matched, p)
		}
	}
	return matched
}

func memberOf[T comparable](value T, selected []T) bool {
	if len(selected) == 0 {
		return true
	}
	for _, candidate := range selected {
		if candidate == value {
			return true
		}
	}
	return false
}

func inAnyDiameterBucket(value float64, buckets []DiameterBucket) bool {
	if len(buckets) == 0 {
		return true
	}
	for _, b := range buckets {
		if b.Contains(value) {
			return true
		}
	}
	return false
}

func inAnyThicknessBucket(value float64, buckets []ThicknessBucket) bool {
	if len(buckets) == 0 {
		return true
	}
	for _, b := range buckets {
		if b.Contains(value) {
			return true
		}
	}
	return false
}
