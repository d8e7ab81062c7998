package enums

import "fmt"

// SteelGrade identifies the material grade of a pipe.
type SteelGrade string

const (
	Steel09G2S  SteelGrade = "steel1"
	SteelSt3sp  SteelGrade = "steel2"
	Steel20     SteelGrade = "steel3"
	Steel12H18N SteelGrade = "steel4"
)

var validSteelGrades = []SteelGrade{
	Steel09G2S,
	SteelSt3sp,
	Steel20,
	Steel12H18N,
}

var steelGradeLabels = map[SteelGrade]string{
	Steel09G2S:  "09Г2С-15",
	SteelSt3sp:  "Ст3сп",
	Steel20:     "20",
	Steel12H18N: "12Х18Н10Т",
}

// String implements fmt.Stringer.
func (s SteelGrade) String() string {
	return string(s)
}

// IsValid reports whether the value is a known SteelGrade.
func (s SteelGrade) IsValid() bool {
	for _, candidate := range validSteelGrades {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseSteelGrade converts raw input into a SteelGrade.
func ParseSteelGrade(value string) (SteelGrade, error) {
	for _, candidate := range validSteelGrades {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid steel grade %q", value)
}

// Label returns the display name, falling back to the raw code when unknown.
func (s SteelGrade) Label() string {
	if label, ok := steelGradeLabels[s]; ok {
		return label
	}
	return string(s)
}
