package static

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadCatalog_ScalarAndMappingEntries(t *testing.T) {
	input := strings.NewReader(`
name: cities
choices:
  - Lima
  - value: fr-PA
    label: Paris
  - value: cz-PR
`)

	catalog, err := LoadCatalog(input)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if catalog.Name != "cities" {
		t.Fatalf("unexpected name %q", catalog.Name)
	}

	want := []Choice{
		{Value: "Lima", Label: "Lima"},
		{Value: "fr-PA", Label: "Paris"},
		{Value: "cz-PR", Label: "cz-PR"},
	}
	if diff := cmp.Diff(want, catalog.Choices); diff != "" {
		t.Fatalf("unexpected choices (-want +got):\n%s", diff)
	}
}

func TestLoadCatalog_RejectsBlankEntries(t *testing.T) {
	input := strings.NewReader(`
name: cities
choices:
  - "  "
`)
	if _, err := LoadCatalog(input); err == nil {
		t.Fatalf("expected error for blank entry")
	}
}

func TestLoadCatalog_RejectsMissingValue(t *testing.T) {
	input := strings.NewReader(`
name: cities
choices:
  - label: Paris
`)
	if _, err := LoadCatalog(input); err == nil {
		t.Fatalf("expected error for missing value")
	}
}

func TestLoadCatalog_RejectsEmptyCatalog(t *testing.T) {
	if _, err := LoadCatalog(strings.NewReader("name: cities\n")); err == nil {
		t.Fatalf("expected error for empty catalog")
	}
}

func TestLoadCatalog_RejectsUnknownFields(t *testing.T) {
	input := strings.NewReader(`
name: cities
chocies:
  - Lima
`)
	if _, err := LoadCatalog(input); err == nil {
		t.Fatalf("expected error for unknown field")
	}
}

func TestLoadCatalog_NilReader(t *testing.T) {
	if _, err := LoadCatalog(nil); err == nil {
		t.Fatalf("expected error for nil reader")
	}
}
