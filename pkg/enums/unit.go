package enums

import "fmt"

// Unit defines how a quantity is counted: by mass (tonnes) or length (metres).
type Unit string

const (
	UnitMass   Unit = "mass"
	UnitLength Unit = "length"
)

var validUnits = []Unit{UnitMass, UnitLength}

// String implements fmt.Stringer.
func (u Unit) String() string {
	return string(u)
}

// IsValid reports whether the value is a known Unit.
func (u Unit) IsValid() bool {
	for _, candidate := range validUnits {
		if candidate == u {
			return true
		}
	}
	return false
}

// ParseUnit converts raw input into a Unit.
func ParseUnit(value string) (Unit, error) {
	for _, candidate := range validUnits {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid unit %q", value)
}

// Label returns the display name shown on the unit toggle.
func (u Unit) Label() string {
	switch u {
	case UnitMass:
		return "Тонны"
	case UnitLength:
		return "Метры"
	}
	return string(u)
}

// Declension returns the unit word agreeing with the given quantity,
// following Russian plural rules for small counts.
func (u Unit) Declension(quantity int) string {
	switch u {
	case UnitMass:
		if quantity == 1 {
			return "тонна"
		}
		if quantity >= 2 && quantity <= 4 {
			return "тонны"
		}
		return "тонн"
	case UnitLength:
		if quantity == 1 {
			return "метр"
		}
		if quantity >= 2 && quantity <= 4 {
			return "метра"
		}
		return "метров"
	}
	return string(u)
}

// AvailabilityLabel names the unit for the stock line ("В наличии: ... тонн").
func (u Unit) AvailabilityLabel() string {
	switch u {
	case UnitMass:
		return "тонн"
	case UnitLength:
		return "метров"
	}
	return string(u)
}
