package catalog

import (
	"github.com/shopspring/decimal"
	"github.com/steeltrade/storefront-backend/pkg/enums"
)

// Product is one immutable catalog position. Prices are stored in kopecks;
// the source document carries whole rubles and is converted on load.
type Product struct {
	ID           int
	Name         string
	Code         string
	PriceCents   int64
	Type         enums.ProductType
	Diameter     float64
	Thickness    float64
	Standard     enums.Standard
	Steel        enums.SteelGrade
	Warehouse    enums.Warehouse
	Availability decimal.Decimal
}

// QuickState is the inline quantity/unit state shown directly on the catalog
// card. One exists per product for the lifetime of the session.
type QuickState struct {
	Quantity int
	Unit     enums.Unit
}
