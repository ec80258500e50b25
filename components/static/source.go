package static

import (
	"net/http"
	"strconv"

	autocomplete "github.com/goliatone/go-autocomplete"
)

// Source adapts a static choice list to the autocomplete.ChoiceSource
// contract: requests are answered via Search, values resolve against the
// choice identities.
type Source struct {
	opts Options
}

// NewSource builds a source from default options plus overrides.
func NewSource(fns ...OptionFn) *Source {
	return &Source{opts: NewOptions(fns...)}
}

// ChoicesForRequest searches the configured choices with the request's
// search and limit parameters. A nil request behaves like an empty query.
func (s *Source) ChoicesForRequest(r *http.Request) ([]autocomplete.Choice, error) {
	query := ""
	limit := 0
	if r != nil {
		query = r.URL.Query().Get(s.opts.SearchParam)
		limit = parseInt(r.URL.Query().Get(s.opts.LimitParam))
	}

	results := Search(s.opts.Choices, query, limit, s.opts)
	out := make([]autocomplete.Choice, 0, len(results))
	for _, choice := range results {
		out = append(out, choice)
	}
	return out, nil
}

// ChoicesForValues resolves values against the choice identities, preserving
// input order. Unmapped values are skipped, which is what makes the
// formatter's cardinality validation meaningful.
func (s *Source) ChoicesForValues(values []string) ([]autocomplete.Choice, error) {
	byValue := make(map[string]Choice, len(s.opts.Choices))
	for _, choice := range s.opts.Choices {
		if _, exists := byValue[choice.Value]; exists {
			continue
		}
		byValue[choice.Value] = choice
	}

	out := make([]autocomplete.Choice, 0, len(values))
	for _, value := range values {
		if choice, ok := byValue[value]; ok {
			out = append(out, choice)
		}
	}
	return out, nil
}

func parseInt(raw string) int {
	if raw == "" {
		return 0
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return value
}

var _ autocomplete.ChoiceSource = (*Source)(nil)
