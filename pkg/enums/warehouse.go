package enums

import "fmt"

// Warehouse identifies the shipping location of a catalog position.
type Warehouse string

const (
	WarehouseMoscow      Warehouse = "moscow"
	WarehouseSPB         Warehouse = "spb"
	WarehouseEKB         Warehouse = "ekb"
	WarehouseNovosibirsk Warehouse = "novosibirsk"
)

var validWarehouses = []Warehouse{
	WarehouseMoscow,
	WarehouseSPB,
	WarehouseEKB,
	WarehouseNovosibirsk,
}

var warehouseLabels = map[Warehouse]string{
	WarehouseMoscow:      "Москва",
	WarehouseSPB:         "Санкт-Петербург",
	WarehouseEKB:         "Екатеринбург",
	WarehouseNovosibirsk: "Новосибирск",
}

// String implements fmt.Stringer.
func (w Warehouse) String() string {
	return string(w)
}

// IsValid reports whether the value is a known Warehouse.
func (w Warehouse) IsValid() bool {
	for _, candidate := range validWarehouses {
		if candidate == w {
			return true
		}
	}
	return false
}

// ParseWarehouse converts raw input into a Warehouse.
func ParseWarehouse(value string) (Warehouse, error) {
	for _, candidate := range validWarehouses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid warehouse %q", value)
}

// Label returns the display name for the warehouse. Unknown codes fall back
// to the raw value so forward-compatible catalog documents still render.
func (w Warehouse) Label() string {
	if label, ok := warehouseLabels[w]; ok {
		return label
	}
	return string(w)
}
