package autocomplete

import (
	"fmt"
	"reflect"
)

// NormalizeValues coerces the caller-supplied values argument into an
// ordered sequence: nil becomes an empty sequence, a slice or array keeps
// its elements in order (duplicates retained), and any other value is
// wrapped into a one-element sequence. Elements are converted to their
// textual form via ValueString.
func NormalizeValues(values any) []string {
	switch v := values.(type) {
	case nil:
		return []string{}
	case []string:
		return append([]string{}, v...)
	case string:
		return []string{v}
	}

	rv := reflect.ValueOf(values)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		out := make([]string, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out = append(out, ValueString(rv.Index(i).Interface()))
		}
		return out
	}

	return []string{ValueString(values)}
}

// ValueString returns the textual form of a value or choice, honoring
// fmt.Stringer.
func ValueString(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprint(v)
}
