package filter

import "fmt"

// DiameterBucket groups diameters (mm) into the fixed filter ranges. The
// bucket is named by its upper bound; ranges are inclusive on the upper
// boundary and the last bucket is open-ended.
type DiameterBucket int

const (
	Diameter50  DiameterBucket = 50  // <= 50
	Diameter100 DiameterBucket = 100 // (50, 100]
	Diameter200 DiameterBucket = 200 // (100, 200]
	Diameter300 DiameterBucket = 300 // (200, 300]
	Diameter400 DiameterBucket = 400 // > 300
)

var validDiameterBuckets = []DiameterBucket{
	Diameter50,
	Diameter100,
	Diameter200,
	Diameter300,
	Diameter400,
}

// ParseDiameterBucket converts a selectable bucket label into a bucket.
func ParseDiameterBucket(label int) (DiameterBucket, error) {
	for _, candidate := range validDiameterBuckets {
		if int(candidate) == label {
			return candidate, nil
		}
	}
	return 0, fmt.Errorf("invalid diameter bucket %d", label)
}

// Contains reports whether the raw diameter falls in the bucket's range.
func (b DiameterBucket) Contains(mm float64) bool {
	switch b {
	case Diameter50:
		return mm <= 50
	case Diameter100:
		return mm > 50 && mm <= 100
	case Diameter200:
		return mm > 100 && mm <= 200
	case Diameter300:
		return mm > 200 && mm <= 300
	case Diameter400:
		return mm > 300
	}
	return false
}

// ThicknessBucket groups wall thickness (mm) the same way.
type ThicknessBucket int

const (
	Thickness3  ThicknessBucket = 3  // <= 3
	Thickness5  ThicknessBucket = 5  // (3, 5]
	Thickness8  ThicknessBucket = 8  // (5, 8]
	Thickness12 ThicknessBucket = 12 // (8, 12]
	Thickness20 ThicknessBucket = 20 // > 12
)

var validThicknessBuckets = []ThicknessBucket{
	Thickness3,
	Thickness5,
	Thickness8,
	Thickness12,
	Thickness20,
}

// ParseThicknessBucket converts a selectable bucket label into a bucket.
func ParseThicknessBucket(label int) (ThicknessBucket, error) {
	for _, candidate := range validThicknessBuckets {
		if int(candidate) == label {
			return candidate, nil
		}
	}
	return 0, fmt.Errorf("invalid thickness bucket %d", label)
}

// Contains reports whether the raw thickness falls in the bucket's range.
func (b ThicknessBucket) Contains(mm float64) bool {
	switch b {
	case Thickness3:
		return mm <= 3
	case Thickness5:
		return mm > 3 && mm <= 5
	case Thickness8:
		return mm > 5 && mm <= 8
	case Thickness12:
		return mm > 8 && mm <= 12
	case Thickness20:
		return mm > 12
	}
	return false
}
