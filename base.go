package autocomplete

import (
	"fmt"
	"html"
	"net/http"
	"reflect"
	"strings"
)

// Base is a reusable Autocompleter implementation that supplies the HTML
// composition logic (escaping, per-choice formatting, the empty-state
// message, the list wrapper) and defers choice retrieval to a ChoiceSource.
//
// Rendering and validation are pure functions of the constructed values and
// whatever the source returns: no caching, no deduplication, no truncation.
type Base struct {
	*Unimplemented
	opts   Options
	source ChoiceSource
}

// NewBase builds a formatter over source for one request/render cycle.
// values is normalized per NormalizeValues. A nil source leaves the
// retrieval operations unimplemented, which the corresponding methods report
// loudly.
func NewBase(source ChoiceSource, r *http.Request, values any, fns ...OptionFn) *Base {
	opts := NewOptions(fns...)
	name := opts.Name
	if name == "" {
		name = sourceName(source)
	}
	return &Base{
		Unimplemented: NewUnimplemented(name, opts.Routes, r, values),
		opts:          opts,
		source:        source,
	}
}

// Options returns a copy of the formatter configuration.
func (b *Base) Options() Options {
	return b.opts
}

// ChoicesForRequest returns the candidate choices available for the current
// request, in the order the source produces them.
func (b *Base) ChoicesForRequest() ([]Choice, error) {
	if b.source == nil {
		return nil, notImplemented("ChoicesForRequest")
	}
	return b.source.ChoicesForRequest(b.Request())
}

// ChoicesForValues returns the choices corresponding to the current values.
func (b *Base) ChoicesForValues() ([]Choice, error) {
	if b.source == nil {
		return nil, notImplemented("ChoicesForValues")
	}
	return b.source.ChoicesForValues(b.Values())
}

// ValidateValues reports whether the number of resolvable choices equals the
// number of values. This is a cardinality check, not a per-value membership
// check; that looseness is part of the contract.
func (b *Base) ValidateValues() (bool, error) {
	choices, err := b.ChoicesForValues()
	if err != nil {
		return false, err
	}
	return len(choices) == len(b.Values()), nil
}

// Render formats every choice returned by ChoicesForRequest, concatenates
// them in source order, substitutes the empty-state message when nothing
// rendered, and wraps the result in the list template.
func (b *Base) Render() (string, error) {
	choices, err := b.ChoicesForRequest()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, choice := range choices {
		sb.WriteString(b.ChoiceHTML(choice))
	}

	markup := sb.String()
	if markup == "" {
		markup = fmt.Sprintf(b.opts.EmptyTemplate, translateEmpty(b.opts.Translator, b.opts.Locale))
	}
	return fmt.Sprintf(b.opts.ListTemplate, markup), nil
}

// ChoiceHTML formats one choice. The value is always entity-escaped; the
// label is escaped too unless a label policy is configured, in which case it
// is sanitized instead.
func (b *Base) ChoiceHTML(choice Choice) string {
	value := html.EscapeString(b.ChoiceValue(choice))
	label := b.ChoiceLabel(choice)
	if b.opts.LabelPolicy != nil {
		label = b.opts.LabelPolicy.Sanitize(label)
	} else {
		label = html.EscapeString(label)
	}
	return fmt.Sprintf(b.opts.ChoiceTemplate, value, label)
}

// ChoiceValue returns the identity of a choice, by default its textual
// conversion.
func (b *Base) ChoiceValue(choice Choice) string {
	if b.opts.ChoiceValue != nil {
		return b.opts.ChoiceValue(choice)
	}
	return ValueString(choice)
}

// ChoiceLabel returns the display text of a choice, by default its textual
// conversion.
func (b *Base) ChoiceLabel(choice Choice) string {
	if b.opts.ChoiceLabel != nil {
		return b.opts.ChoiceLabel(choice)
	}
	return ValueString(choice)
}

// AddAnotherURL resolves the configured "create another choice" route and
// appends the popup marker. An unset route name means the capability is
// absent and yields no URL and no error; a configured route that fails to
// reverse propagates the resolver error.
func (b *Base) AddAnotherURL() (string, error) {
	if b.opts.AddAnotherRoute == "" {
		return "", nil
	}
	if b.opts.Routes == nil {
		return "", &ConfigError{Name: b.Name(), Err: ErrRouteNotFound}
	}
	url, err := b.opts.Routes.Reverse(b.opts.AddAnotherRoute, b.opts.AddAnotherArgs)
	if err != nil {
		return "", err
	}
	if strings.Contains(url, "?") {
		return url + "&_popup=1", nil
	}
	return url + "?_popup=1", nil
}

func sourceName(source ChoiceSource) string {
	if source == nil {
		return ""
	}
	t := reflect.TypeOf(source)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

var _ Autocompleter = (*Base)(nil)
