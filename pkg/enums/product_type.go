package enums

import "fmt"

// ProductType categorizes pipes for the catalog filter.
type ProductType string

const (
	ProductTypeSeamless  ProductType = "seamless"
	ProductTypeProfile   ProductType = "profile"
	ProductTypeStainless ProductType = "stainless"
	ProductTypeWelded    ProductType = "welded"
)

var validProductTypes = []ProductType{
	ProductTypeSeamless,
	ProductTypeProfile,
	ProductTypeStainless,
	ProductTypeWelded,
}

var productTypeLabels = map[ProductType]string{
	ProductTypeSeamless:  "Бесшовные",
	ProductTypeProfile:   "Профильные",
	ProductTypeStainless: "Нержавеющие",
	ProductTypeWelded:    "Электросварные",
}

// String implements fmt.Stringer.
func (p ProductType) String() string {
	return string(p)
}

// IsValid reports whether the value is a known ProductType.
func (p ProductType) IsValid() bool {
	for _, candidate := range validProductTypes {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParseProductType converts raw input into a ProductType.
func ParseProductType(value string) (ProductType, error) {
	for _, candidate := range validProductTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid product type %q", value)
}

// Label returns the display name, falling back to the raw code when unknown.
func (p ProductType) Label() string {
	if label, ok := productTypeLabels[p]; ok {
		return label
	}
	return string(p)
}
