package catalog

import (
	"github.com/shopspring/decimal"
	"github.com/steeltrade/storefront-backend/pkg/enums"
)

// FallbackProducts returns the embedded default catalog installed when the
// source document cannot be fetched or parsed. The records are a fixed
// fixture; tests assert against them.
func FallbackProducts() []Product {
	return []Product{
		{
			ID:           1,
			Name:         "Труба бесшовная холоднодеформированная",
			Code:         "271.1121110-01",
			PriceCents:   150000,
			Type:         enums.ProductTypeSeamless,
			Diameter:     159,
			Thickness:    5,
			Standard:     enums.StandardGOST8732,
			Steel:        enums.Steel20,
			Warehouse:    enums.WarehouseMoscow,
			Availability: decimal.NewFromFloat(15.5),
		},
		{
			ID:           2,
			Name:         "Труба бесшовная горячедеформированная",
			Code:         "271.1121110-02",
			PriceCents:   230000,
			Type:         enums.ProductTypeSeamless,
			Diameter:     219,
			Thickness:    8,
			Standard:     enums.StandardGOST8734,
			Steel:        enums.SteelSt3sp,
			Warehouse:    enums.WarehouseSPB,
			Availability: decimal.NewFromFloat(8.2),
		},
		{
			ID:           3,
			Name:         "Труба профильная квадратная",
			Code:         "271.1121110-03",
			PriceCents:   85000,
			Type:         enums.ProductTypeProfile,
			Diameter:     80,
			Thickness:    3,
			Standard:     enums.StandardGOST30245,
			Steel:        enums.Steel09G2S,
			Warehouse:    enums.WarehouseEKB,
			Availability: decimal.NewFromFloat(22.7),
		},
		{
			ID:           4,
			Name:         "Труба нержавеющая пищевая",
			Code:         "271.1121110-04",
			PriceCents:   420000,
			Type:         enums.ProductTypeStainless,
			Diameter:     50,
			Thickness:    2,
			Standard:     enums.StandardGOST9941,
			Steel:        enums.Steel12H18N,
			Warehouse:    enums.WarehouseNovosibirsk,
			Availability: decimal.NewFromFloat(3.8),
		},
	}
}
