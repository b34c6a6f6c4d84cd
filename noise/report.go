package noise

import (
	"fmt"
	"strings"
)

// Row is a single labelled reading inside a summary section.
type Row struct {
	Category Category
	Label    string
	Value    float64
	Unit     string
}

// Section is a rendered slice of a noise-measurement summary: a heading plus
// one row per declared category present in the input readings.
type Section struct {
	Title string
	Rows  []Row
}

const defaultSectionTitle = "Noise summary"

// BuildSection assembles a summary section from the supplied readings. Rows
// appear in declaration order regardless of map iteration order. Readings
// keyed by an undeclared category are an error, never a silently dropped or
// mislabelled row.
func BuildSection(title string, readings map[Category]float64) (*Section, error) {
	for category := range readings {
		if err := category.Valid(); err != nil {
			return nil, fmt.Errorf("noise: build section: category %q: %w", string(category), err)
		}
	}

	if strings.TrimSpace(title) == "" {
		title = defaultSectionTitle
	}

	section := &Section{Title: title}
	for _, category := range categoryOrder {
		value, ok := readings[category]
		if !ok {
			continue
		}
		section.Rows = append(section.Rows, Row{
			Category: category,
			Label:    category.Label(),
			Value:    value,
			Unit:     category.Unit(),
		})
	}

	return section, nil
}

// Render formats the section as plain text, one reading per line.
func (s *Section) Render() string {
	if s == nil {
		return ""
	}

	builder := strings.Builder{}
	builder.WriteString(s.Title)
	builder.WriteByte('\n')
	for _, row := range s.Rows {
		fmt.Fprintf(&builder, "  %s: %.1f %s\n", row.Label, row.Value, row.Unit)
	}
	return builder.String()
}
