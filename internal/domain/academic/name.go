// Package academic holds the value objects shared by faculties and programs:
// the normalized display Name and the semester-based Duration.
package academic

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/jsamuelsen11/academic-catalog/internal/domain"
)

// Length bounds for a normalized Name, counted in characters (runes).
const (
	NameMinLength = 3
	NameMaxLength = 100
)

// connectors stay lowercase wherever they appear and never contribute to
// initials.
var connectors = map[string]struct{}{
	"de":  {},
	"del": {},
	"la":  {},
	"las": {},
	"los": {},
	"el":  {},
	"y":   {},
	"e":   {},
}

// Name is a normalized, validated academic display name. The zero value is
// not a valid name; use NewName.
type Name struct {
	value string
}

// NewName trims, normalizes, and validates raw. Words are separated by any
// run of whitespace; each word gets an uppercase first character and a
// lowercase remainder, except connector words, which are lowercased. Fails with a *domain.ValidationError of kind blank,
// too_short, or too_long.
func NewName(raw string) (Name, error) {
	trimmed := strings.TrimSpace(norm.NFC.String(raw))
	if trimmed == "" {
		return Name{}, domain.NewValidationError(domain.KindBlank, "name", "must not be blank")
	}

	value := normalize(trimmed)

	switch n := utf8.RuneCountInString(value); {
	case n < NameMinLength:
		return Name{}, domain.NewValidationError(domain.KindTooShort, "name", "must be at least 3 characters")
	case n > NameMaxLength:
		return Name{}, domain.NewValidationError(domain.KindTooLong, "name", "must be at most 100 characters")
	}

	return Name{value: value}, nil
}

// MustName is NewName for literals known to be valid. It panics on error.
func MustName(raw string) Name {
	n, err := NewName(raw)
	if err != nil {
		panic(err)
	}
	return n
}

// String returns the normalized value.
func (n Name) String() string {
	return n.value
}

// IsZero reports whether n is the zero value.
func (n Name) IsZero() bool {
	return n.value == ""
}

// Equal reports whether both names hold the same normalized value.
func (n Name) Equal(other Name) bool {
	return n.value == other.value
}

// Initials concatenates the uppercased first letter of every non-connector
// word, e.g. "Facultad de Ingeniería y Arquitectura" -> "FIA".
func (n Name) Initials() string {
	var b strings.Builder
	for _, word := range strings.Fields(n.value) {
		if isConnector(word) {
			continue
		}
		for _, r := range word {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				b.WriteRune(unicode.ToUpper(r))
				break
			}
		}
	}
	return b.String()
}

// normalize rebuilds s word by word: connectors are lowercased, every other
// word gets an uppercase first character and a lowercase remainder. Casers
// are stateful, so they are created per call rather than shared.
func normalize(s string) string {
	upper := cases.Upper(language.Spanish)
	lower := cases.Lower(language.Spanish)
	words := strings.Fields(s)
	for i, word := range words {
		if isConnector(word) {
			words[i] = lower.String(word)
			continue
		}
		_, size := utf8.DecodeRuneInString(word)
		words[i] = upper.String(word[:size]) + lower.String(word[size:])
	}
	return strings.Join(words, " ")
}

func isConnector(word string) bool {
	_, ok := connectors[cases.Lower(language.Spanish).String(word)]
	return ok
}
