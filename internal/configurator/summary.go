package configurator

import "fmt"

// Summary is the human-readable selection projection shown next to each
// option group. It is derived from Resolve on demand, never stored.
type Summary struct {
	Warehouse string
	Diameter  string
	Thickness string
	Steel     string
	Quantity  string
	Unit      string
}

// Summary projects the effective configuration into display labels.
func (d *Dialog) Summary() (Summary, error) {
	if !d.open {
		return Summary{}, errClosed()
	}
	resolved := d.Resolve()
	return Summary{
		Warehouse: resolved.Warehouse.Label(),
		Diameter:  formatMillimetres(resolved.Diameter),
		Thickness: formatMillimetres(resolved.Thickness),
		Steel:     resolved.Steel.Label(),
		Quantity:  fmt.Sprintf("%d %s", resolved.Quantity, resolved.Unit.Declension(resolved.Quantity)),
		Unit:      resolved.Unit.Label(),
	}, nil
}

func formatMillimetres(mm float64) string {
	if mm == float64(int64(mm)) {
		return fmt.Sprintf("%d мм", int64(mm))
	}
	return fmt.Sprintf("%g мм", mm)
}
