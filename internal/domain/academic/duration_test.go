package academic

import (
	"testing"

	"github.com/jsamuelsen11/academic-catalog/internal/domain"
)

func TestNewDuration_Range(t *testing.T) {
	t.Parallel()

	for s := 0; s <= 20; s++ {
		_, err := NewDuration(s)
		wantOK := s >= 6 && s <= 14
		if wantOK && err != nil {
			t.Errorf("NewDuration(%d) error: %v", s, err)
		}
		if !wantOK {
			requireValidationKind(t, err, domain.KindInvalidDuration)
		}
	}
}

func TestDuration_Years(t *testing.T) {
	t.Parallel()

	tests := []struct {
		semesters int
		want      int
	}{
		{semesters: 6, want: 3},
		{semesters: 7, want: 4},
		{semesters: 10, want: 5},
		{semesters: 11, want: 6},
		{semesters: 14, want: 7},
	}

	for _, tt := range tests {
		d, err := NewDuration(tt.semesters)
		if err != nil {
			t.Fatalf("NewDuration(%d) error: %v", tt.semesters, err)
		}
		if got := d.Years(); got != tt.want {
			t.Errorf("Duration(%d).Years() = %d, want %d", tt.semesters, got, tt.want)
		}
	}
}

func TestDuration_Classification(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		semesters int
		want      Classification
	}{
		{name: "minimum is short", semesters: 6, want: ClassificationShort},
		{name: "nine is short", semesters: 9, want: ClassificationShort},
		{name: "ten is standard", semesters: 10, want: ClassificationStandard},
		{name: "eleven is long", semesters: 11, want: ClassificationLong},
		{name: "maximum is long", semesters: 14, want: ClassificationLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d, err := NewDuration(tt.semesters)
			if err != nil {
				t.Fatalf("NewDuration(%d) error: %v", tt.semesters, err)
			}
			if got := d.Classification(); got != tt.want {
				t.Errorf("Classification() = %q, want %q", got, tt.want)
			}
			if d.IsShort() != (tt.want == ClassificationShort) {
				t.Errorf("IsShort() = %v for %d semesters", d.IsShort(), tt.semesters)
			}
			if d.IsStandard() != (tt.want == ClassificationStandard) {
				t.Errorf("IsStandard() = %v for %d semesters", d.IsStandard(), tt.semesters)
			}
			if d.IsLong() != (tt.want == ClassificationLong) {
				t.Errorf("IsLong() = %v for %d semesters", d.IsLong(), tt.semesters)
			}
		})
	}
}

func TestClassification_SemesterRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		c      Classification
		lo, hi int
	}{
		{c: ClassificationShort, lo: 6, hi: 9},
		{c: ClassificationStandard, lo: 10, hi: 10},
		{c: ClassificationLong, lo: 11, hi: 14},
	}

	for _, tt := range tests {
		lo, hi := tt.c.SemesterRange()
		if lo != tt.lo || hi != tt.hi {
			t.Errorf("%s.SemesterRange() = (%d, %d), want (%d, %d)", tt.c, lo, hi, tt.lo, tt.hi)
		}
	}

	if Classification("medium").IsValid() {
		t.Error("IsValid() = true for unknown classification")
	}
}
