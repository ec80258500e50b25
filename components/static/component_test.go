package static

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goliatone/go-autocomplete/pkg/registry"
	"github.com/goliatone/go-autocomplete/pkg/routes"
)

func citiesComponent(fns ...OptionFn) *Component {
	base := []OptionFn{
		WithName("cities"),
		WithChoices([]Choice{
			{Value: "fr-PA", Label: "Paris"},
			{Value: "cz-PR", Label: "Prague"},
			{Value: "pe-LI", Label: "Lima"},
		}),
	}
	return New(append(base, fns...)...)
}

func TestComponentAutocompleter_RendersValueLabelPairs(t *testing.T) {
	ac := citiesComponent().Autocompleter(
		httptest.NewRequest("GET", "/autocomplete/cities?q=par", nil), nil)

	got, err := ac.Render()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	want := `<span data-value="fr-PA">Paris</span>`
	if got != want {
		t.Fatalf("unexpected markup:\n got %q\nwant %q", got, want)
	}
}

func TestComponentAutocompleter_ValidateValues(t *testing.T) {
	comp := citiesComponent()

	valid := comp.Autocompleter(nil, []string{"fr-PA", "pe-LI"})
	ok, err := valid.ValidateValues()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !ok {
		t.Fatalf("expected both values to validate")
	}

	invalid := comp.Autocompleter(nil, []string{"fr-PA", "ghost"})
	ok, err = invalid.ValidateValues()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if ok {
		t.Fatalf("expected validation to fail for unmapped value")
	}
}

func TestComponentRegister_EndToEnd(t *testing.T) {
	reg := registry.New()
	mux := http.NewServeMux()
	table, err := routes.RegisterRoutes(mux, "", reg)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	comp := citiesComponent(WithRoutes(table))
	if err := comp.Register(reg); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	ac := comp.Autocompleter(nil, nil)
	url, err := ac.AbsoluteURL()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if url != "/autocomplete/cities" {
		t.Fatalf("unexpected url %q", url)
	}

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url+"?q=pra", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `data-value="cz-PR"`) {
		t.Fatalf("unexpected body %q", rec.Body.String())
	}
}

func TestComponentFromCatalog(t *testing.T) {
	catalog, err := LoadCatalog(strings.NewReader("name: tags\nchoices: [go, web]\n"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	comp := FromCatalog(catalog)
	if comp.Name() != "tags" {
		t.Fatalf("unexpected name %q", comp.Name())
	}
	if len(comp.Options().Choices) != 2 {
		t.Fatalf("unexpected choices %#v", comp.Options().Choices)
	}
}

func TestComponentAutocompleter_NonChoiceFallsBackToText(t *testing.T) {
	ac := citiesComponent().Autocompleter(nil, nil)
	if got := ac.ChoiceHTML("raw"); got != `<span data-value="raw">raw</span>` {
		t.Fatalf("unexpected markup %q", got)
	}
}
