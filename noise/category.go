// Package noise implements the lesson's first example: a closed set of
// categories for the sections of a noise-measurement summary. Each category is
// a named constant mapped to a display label, so a typo'd key fails loudly at
// the edges instead of producing an unlabelled report row at runtime.
package noise

import (
	"errors"
	"strings"
)

// Category identifies one section of a noise-measurement summary.
type Category string

const (
	// CategoryAmbient covers the steady background level across the whole window.
	CategoryAmbient Category = "ambient"
	// CategoryPeak covers the loudest reading observed.
	CategoryPeak Category = "peak"
	// CategoryAverage covers the energy-averaged level.
	CategoryAverage Category = "average"
	// CategoryBackground covers the residual level with primary sources excluded.
	CategoryBackground Category = "background"
)

// ErrUnknownCategory is returned when a value outside the declared set is used
// where a Category is expected.
var ErrUnknownCategory = errors.New("noise: unknown category")

// categoryLabels maps every declared category to its report heading. Keys are
// unique; the labels happen to be distinct too, though nothing requires that.
// See Unit, where every category shares the same value.
var categoryLabels = map[Category]string{
	CategoryAmbient:    "Ambient level",
	CategoryPeak:       "Peak level",
	CategoryAverage:    "Average level",
	CategoryBackground: "Background level",
}

// categoryOrder fixes the order sections appear in a rendered summary.
var categoryOrder = []Category{
	CategoryAmbient,
	CategoryPeak,
	CategoryAverage,
	CategoryBackground,
}

// Categories returns the declared members in declaration order. The returned
// slice is a copy; callers may mutate it freely.
func Categories() []Category {
	return append([]Category(nil), categoryOrder...)
}

// ParseCategory converts a raw string into a declared Category. Unknown keys
// are rejected with ErrUnknownCategory rather than passed through, which is
// the whole point of using a closed set over raw literals.
func ParseCategory(value string) (Category, error) {
	candidate := Category(strings.ToLower(strings.TrimSpace(value)))
	if _, ok := categoryLabels[candidate]; !ok {
		return "", ErrUnknownCategory
	}
	return candidate, nil
}

// String returns the symbolic key for the category.
func (c Category) String() string { return string(c) }

// Valid reports whether the category belongs to the declared set.
func (c Category) Valid() error {
	if _, ok := categoryLabels[c]; !ok {
		return ErrUnknownCategory
	}
	return nil
}

// Label returns the display heading associated with the category. Undeclared
// categories yield an empty label; callers that need rejection semantics
// should check Valid or go through ParseCategory first.
func (c Category) Label() string {
	return categoryLabels[c]
}

// Unit returns the measurement unit attached to the category's readings.
// Every declared category shares the same unit: the key→value mapping is
// injective on keys, not on values.
func (c Category) Unit() string {
	if c.Valid() != nil {
		return ""
	}
	return "dBA"
}
