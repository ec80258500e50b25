package autocomplete

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestUnimplemented_OperationsFailLoudly(t *testing.T) {
	contract := NewUnimplemented("bare", nil, nil, nil)

	if _, err := contract.Render(); !errors.Is(err, ErrNotImplemented) {
		t.Fatalf("Render: expected ErrNotImplemented, got %v", err)
	}
	if _, err := contract.ValidateValues(); !errors.Is(err, ErrNotImplemented) {
		t.Fatalf("ValidateValues: expected ErrNotImplemented, got %v", err)
	}
	if _, err := contract.ChoicesForValues(); !errors.Is(err, ErrNotImplemented) {
		t.Fatalf("ChoicesForValues: expected ErrNotImplemented, got %v", err)
	}
}

func TestUnimplemented_HoldsRequestAndValues(t *testing.T) {
	req := httptest.NewRequest("GET", "/autocomplete/bare?q=x", nil)
	contract := NewUnimplemented("bare", nil, req, "solo")

	if contract.Request() != req {
		t.Fatalf("expected the request handle to be held as-is")
	}
	if diff := cmp.Diff([]string{"solo"}, contract.Values()); diff != "" {
		t.Fatalf("unexpected values (-want +got):\n%s", diff)
	}
	if contract.Name() != "bare" {
		t.Fatalf("unexpected name %q", contract.Name())
	}
}

func TestUnimplemented_AbsoluteURLWithoutRoutes(t *testing.T) {
	contract := NewUnimplemented("bare", nil, nil, nil)

	_, err := contract.AbsoluteURL()
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *ConfigError, got %v", err)
	}
	if cfgErr.Name != "bare" {
		t.Fatalf("expected error to carry the implementation name, got %q", cfgErr.Name)
	}
}
