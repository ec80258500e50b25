package autocomplete

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type stringerValue struct{ id string }

func (s stringerValue) String() string { return "id:" + s.id }

func TestNormalizeValues_NilBecomesEmpty(t *testing.T) {
	values := NormalizeValues(nil)
	if values == nil {
		t.Fatalf("expected empty sequence, got nil")
	}
	if len(values) != 0 {
		t.Fatalf("expected empty sequence, got %#v", values)
	}
}

func TestNormalizeValues_ScalarWrapped(t *testing.T) {
	cases := []struct {
		name  string
		input any
		want  []string
	}{
		{"string", "x", []string{"x"}},
		{"int", 4, []string{"4"}},
		{"stringer", stringerValue{id: "7"}, []string{"id:7"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, NormalizeValues(tc.input)); diff != "" {
				t.Fatalf("unexpected values (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNormalizeValues_SliceKeepsOrderAndDuplicates(t *testing.T) {
	got := NormalizeValues([]string{"b", "a", "b"})
	want := []string{"b", "a", "b"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected values (-want +got):\n%s", diff)
	}
}

func TestNormalizeValues_MixedSliceConverted(t *testing.T) {
	got := NormalizeValues([]any{1, "two", stringerValue{id: "3"}})
	want := []string{"1", "two", "id:3"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected values (-want +got):\n%s", diff)
	}
}

func TestNormalizeValues_IntSliceConverted(t *testing.T) {
	got := NormalizeValues([]int{3, 1, 2})
	want := []string{"3", "1", "2"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected values (-want +got):\n%s", diff)
	}
}

func TestNormalizeValues_CopiesStringSlice(t *testing.T) {
	input := []string{"a", "b"}
	got := NormalizeValues(input)
	input[0] = "mutated"
	if got[0] != "a" {
		t.Fatalf("expected normalized values to be detached from input, got %#v", got)
	}
}
