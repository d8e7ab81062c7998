package validators

import (
	"net/http"
	"strconv"

	"github.com/steeltrade/storefront-backend/internal/filter"
	"github.com/steeltrade/storefront-backend/pkg/enums"
	pkgerrors "github.com/steeltrade/storefront-backend/pkg/errors"
)

// ParseCriteria reads the repeated filter query parameters. Absent parameters
// leave their dimension unconstrained.
func ParseCriteria(r *http.Request) (filter.Criteria, error) {
	query := r.URL.Query()
	var criteria filter.Criteria

	for _, raw := range query["warehouse"] {
		w, err := enums.ParseWarehouse(raw)
		if err != nil {
			return filter.Criteria{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid warehouse filter")
		}
		criteria.Warehouses = append(criteria.Warehouses, w)
	}
	for _, raw := range query["type"] {
		pt, err := enums.ParseProductType(raw)
		if err != nil {
			return filter.Criteria{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid type filter")
		}
		criteria.Types = append(criteria.Types, pt)
	}
	for _, raw := range query["standard"] {
		std, err := enums.ParseStandard(raw)
		if err != nil {
			return filter.Criteria{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid standard filter")
		}
		criteria.Standards = append(criteria.Standards, std)
	}
	for _, raw := range query["steel"] {
		grade, err := enums.ParseSteelGrade(raw)
		if err != nil {
			return filter.Criteria{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid steel filter")
		}
		criteria.Steels = append(criteria.Steels, grade)
	}
	for _, raw := range query["diameter"] {
		label, err := strconv.Atoi(raw)
		if err != nil {
			return filter.Criteria{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid diameter filter")
		}
		bucket, err := filter.ParseDiameterBucket(label)
		if err != nil {
			return filter.Criteria{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid diameter filter")
		}
		criteria.DiameterBuckets = append(criteria.DiameterBuckets, bucket)
	}
	for _, raw := range query["thickness"] {
		label, err := strconv.Atoi(raw)
		if err != nil {
			return filter.Criteria{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid thickness filter")
		}
		bucket, err := filter.ParseThicknessBucket(label)
		if err != nil {
			return filter.Criteria{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid thickness filter")
		}
		criteria.ThicknessBuckets = append(criteria.ThicknessBuckets, bucket)
	}

	return criteria, nil
}

// PathInt parses a positive integer path segment.
func PathInt(raw, name string) (int, error) {
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid "+name)
	}
	return value, nil
}
