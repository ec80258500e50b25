package routes

import (
	"errors"
	"testing"

	autocomplete "github.com/goliatone/go-autocomplete"
)

func TestTable_ReverseSubstitutesArgs(t *testing.T) {
	table := NewTable()
	if err := table.Add(autocomplete.RouteName, "/autocomplete/:name"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	url, err := table.Reverse(autocomplete.RouteName, map[string]string{"name": "cities"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if url != "/autocomplete/cities" {
		t.Fatalf("unexpected url %q", url)
	}
}

func TestTable_ReverseEscapesArgs(t *testing.T) {
	table := NewTable()
	_ = table.Add(autocomplete.RouteName, "/autocomplete/:name")

	url, err := table.Reverse(autocomplete.RouteName, map[string]string{"name": "a b/c"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if url != "/autocomplete/a%20b%2Fc" {
		t.Fatalf("unexpected url %q", url)
	}
}

func TestTable_ReverseUnknownRoute(t *testing.T) {
	table := NewTable()
	_, err := table.Reverse("ghost", nil)
	if !errors.Is(err, autocomplete.ErrRouteNotFound) {
		t.Fatalf("expected ErrRouteNotFound, got %v", err)
	}
}

func TestTable_ReverseMissingArg(t *testing.T) {
	table := NewTable()
	_ = table.Add(autocomplete.RouteName, "/autocomplete/:name")

	if _, err := table.Reverse(autocomplete.RouteName, nil); err == nil {
		t.Fatalf("expected error for missing argument")
	}
}

func TestTable_AddValidation(t *testing.T) {
	table := NewTable()
	if err := table.Add("", "/x"); err == nil {
		t.Fatalf("expected error for empty name")
	}
	if err := table.Add("x", ""); err == nil {
		t.Fatalf("expected error for empty pattern")
	}
	if err := table.Add("x", "/x"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := table.Add("x", "/y"); err == nil {
		t.Fatalf("expected error for duplicate route")
	}
}

func TestMountPath(t *testing.T) {
	cases := []struct {
		base  string
		route string
		want  string
	}{
		{"", "/autocomplete", "/autocomplete"},
		{"/", "/autocomplete", "/autocomplete"},
		{"/admin", "/autocomplete", "/admin/autocomplete"},
		{"admin/", "autocomplete", "/admin/autocomplete"},
		{"/admin", "", "/admin"},
	}
	for _, tc := range cases {
		if got := mountPath(tc.base, tc.route); got != tc.want {
			t.Fatalf("mountPath(%q, %q) = %q, want %q", tc.base, tc.route, got, tc.want)
		}
	}
}
