package academic

import (
	"fmt"

	"github.com/jsamuelsen11/academic-catalog/internal/domain"
)

// Semester bounds for a Duration. StandardSemesters is the five-year length
// that separates short programs from long ones.
const (
	MinSemesters      = 6
	MaxSemesters      = 14
	StandardSemesters = 10
)

// Classification buckets a Duration relative to StandardSemesters.
type Classification string

// Duration classifications.
const (
	ClassificationShort    Classification = "short"
	ClassificationStandard Classification = "standard"
	ClassificationLong     Classification = "long"
)

// IsValid reports whether c is one of the defined classifications.
func (c Classification) IsValid() bool {
	switch c {
	case ClassificationShort, ClassificationStandard, ClassificationLong:
		return true
	default:
		return false
	}
}

// SemesterRange returns the inclusive semester bounds covered by c.
func (c Classification) SemesterRange() (lo, hi int) {
	switch c {
	case ClassificationShort:
		return MinSemesters, StandardSemesters - 1
	case ClassificationStandard:
		return StandardSemesters, StandardSemesters
	case ClassificationLong:
		return StandardSemesters + 1, MaxSemesters
	default:
		return 0, -1
	}
}

// Duration is a validated program length in semesters.
type Duration struct {
	semesters int
}

// NewDuration fails with a *domain.ValidationError of kind invalid_duration
// when semesters is outside [MinSemesters, MaxSemesters].
func NewDuration(semesters int) (Duration, error) {
	if semesters < MinSemesters || semesters > MaxSemesters {
		return Duration{}, domain.NewValidationError(domain.KindInvalidDuration, "semesters",
			fmt.Sprintf("must be between %d and %d, got %d", MinSemesters, MaxSemesters, semesters))
	}
	return Duration{semesters: semesters}, nil
}

// Semesters returns the semester count.
func (d Duration) Semesters() int {
	return d.semesters
}

// Years returns ceil(semesters / 2).
func (d Duration) Years() int {
	return (d.semesters + 1) / 2
}

// Classification returns short below the standard length, standard at it,
// and long above it.
func (d Duration) Classification() Classification {
	switch {
	case d.semesters < StandardSemesters:
		return ClassificationShort
	case d.semesters == StandardSemesters:
		return ClassificationStandard
	default:
		return ClassificationLong
	}
}

func (d Duration) IsShort() bool    { return d.Classification() == ClassificationShort }
func (d Duration) IsStandard() bool { return d.Classification() == ClassificationStandard }
func (d Duration) IsLong() bool     { return d.Classification() == ClassificationLong }

// Equal reports whether both durations have the same semester count.
func (d Duration) Equal(other Duration) bool {
	return d.semesters == other.semesters
}

// IsZero reports whether d is the zero value.
func (d Duration) IsZero() bool {
	return d.semesters == 0
}
