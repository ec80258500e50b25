package routes

import (
	"fmt"
	"net/url"
	"strings"
	"sync"

	autocomplete "github.com/goliatone/go-autocomplete"
)

// Table is a named-route resolver: it maps symbolic route names to path
// patterns whose ":arg" segments are substituted on Reverse. RegisterRoutes
// returns a table pre-populated with the autocomplete endpoint pattern;
// applications can Add their own named routes (add-another targets, etc.).
type Table struct {
	mu       sync.RWMutex
	patterns map[string]string
}

// NewTable creates an empty route table.
func NewTable() *Table {
	return &Table{patterns: make(map[string]string)}
}

// Add registers a path pattern under a route name. Patterns may contain
// ":arg" placeholders consumed by Reverse. Duplicate names return an error.
func (t *Table) Add(name, pattern string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("routes: route name is required")
	}
	if strings.TrimSpace(pattern) == "" {
		return fmt.Errorf("routes: pattern for route %q is required", name)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.patterns[name]; exists {
		return fmt.Errorf("routes: route %q already registered", name)
	}
	t.patterns[name] = pattern
	return nil
}

// Reverse resolves a route name into a path, substituting args into ":arg"
// placeholders (path-escaped). Unknown names return an error satisfying
// errors.Is(err, autocomplete.ErrRouteNotFound); placeholders left without
// an argument are an error too, never a silently broken path.
func (t *Table) Reverse(name string, args map[string]string) (string, error) {
	t.mu.RLock()
	pattern, ok := t.patterns[name]
	t.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("routes: %q: %w", name, autocomplete.ErrRouteNotFound)
	}

	segments := strings.Split(pattern, "/")
	for i, segment := range segments {
		if !strings.HasPrefix(segment, ":") {
			continue
		}
		arg := strings.TrimPrefix(segment, ":")
		value, ok := args[arg]
		if !ok || value == "" {
			return "", fmt.Errorf("routes: route %q: missing argument %q", name, arg)
		}
		segments[i] = url.PathEscape(value)
	}
	return strings.Join(segments, "/"), nil
}

var _ autocomplete.Resolver = (*Table)(nil)
