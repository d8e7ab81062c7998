package enums

import "fmt"

// Standard identifies the GOST specification a pipe is produced to.
type Standard string

const (
	StandardGOST8732  Standard = "gost1"
	StandardGOST8734  Standard = "gost2"
	StandardGOST30245 Standard = "gost3"
	StandardGOST9941  Standard = "gost4"
)

var validStandards = []Standard{
	StandardGOST8732,
	StandardGOST8734,
	StandardGOST30245,
	StandardGOST9941,
}

var standardLabels = map[Standard]string{
	StandardGOST8732:  "ГОСТ 8732-78",
	StandardGOST8734:  "ГОСТ 8734-75",
	StandardGOST30245: "ГОСТ 30245-03",
	StandardGOST9941:  "ГОСТ 9941-81",
}

// String implements fmt.Stringer.
func (s Standard) String() string {
	return string(s)
}

// IsValid reports whether the value is a known Standard.
func (s Standard) IsValid() bool {
	for _, candidate := range validStandards {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseStandard converts raw input into a Standard.
func ParseStandard(value string) (Standard, error) {
	for _, candidate := range validStandards {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid standard %q", value)
}

// Label returns the display name, falling back to the raw code when unknown.
func (s Standard) Label() string {
	if label, ok := standardLabels[s]; ok {
		return label
	}
	return string(s)
}
