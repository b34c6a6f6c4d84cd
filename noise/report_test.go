package noise

import (
	"errors"
	"strings"
	"testing"
)

func TestBuildSectionOrdersRows(t *testing.T) {
	section, err := BuildSection("Night shift", map[Category]float64{
		CategoryBackground: 33.1,
		CategoryAmbient:    38.2,
		CategoryPeak:       71.5,
	})
	if err != nil {
		t.Fatalf("BuildSection: %v", err)
	}

	if section.Title != "Night shift" {
		t.Fatalf("unexpected title: %q", section.Title)
	}
	if len(section.Rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(section.Rows))
	}

	want := []Category{CategoryAmbient, CategoryPeak, CategoryBackground}
	for i, category := range want {
		if section.Rows[i].Category != category {
			t.Fatalf("row %d: expected %q, got %q", i, category, section.Rows[i].Category)
		}
		if section.Rows[i].Label != category.Label() {
			t.Fatalf("row %d: label mismatch: %q", i, section.Rows[i].Label)
		}
	}
}

func TestBuildSectionDefaultsTitle(t *testing.T) {
	section, err := BuildSection("  ", map[Category]float64{CategoryAverage: 46.9})
	if err != nil {
		t.Fatalf("BuildSection: %v", err)
	}
	if section.Title != defaultSectionTitle {
		t.Fatalf("expected default title, got %q", section.Title)
	}
}

func TestBuildSectionRejectsUndeclaredKeys(t *testing.T) {
	_, err := BuildSection("Broken", map[Category]float64{
		CategoryAmbient:    38.2,
		Category("ambiant"): 40.0,
	})
	if !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestSectionRender(t *testing.T) {
	section, err := BuildSection("Summary", map[Category]float64{
		CategoryAmbient: 38.25,
	})
	if err != nil {
		t.Fatalf("BuildSection: %v", err)
	}

	rendered := section.Render()
	if !strings.HasPrefix(rendered, "Summary\n") {
		t.Fatalf("expected title line, got %q", rendered)
	}
	if !strings.Contains(rendered, "Ambient level: 38.2 dBA") {
		t.Fatalf("expected formatted row, got %q", rendered)
	}

	var empty *Section
	if empty.Render() != "" {
		t.Fatalf("nil section should render empty")
	}
}
