package autocomplete

import "net/http"

// RouteName is the symbolic name under which route tables expose the
// autocomplete endpoint. AbsoluteURL reverses it with the implementation
// name as the "name" argument.
const RouteName = "autocomplete"

// Choice is one selectable item. It is opaque to this package: by default
// its value and label are both its textual conversion, and implementations
// override ChoiceValue/ChoiceLabel when identity and display text differ.
type Choice any

// Autocompleter is the minimum contract a custom autocomplete implementation
// must satisfy to be usable by the widget layer and the HTTP handlers.
//
// Implementations are built per request/render cycle and hold no state
// beyond their constructed values and request handle.
type Autocompleter interface {
	// Values returns the normalized sequence of currently selected values.
	Values() []string

	// Request returns the in-flight request the instance was built for. It
	// is held for choice retrieval and never interpreted by this package.
	Request() *http.Request

	// Render returns the HTML fragment listing the choices matching the
	// current request.
	Render() (string, error)

	// ValidateValues reports whether every current value resolves to a
	// choice.
	ValidateValues() (bool, error)

	// ChoicesForValues returns the choices corresponding to the current
	// values.
	ChoicesForValues() ([]Choice, error)

	// AbsoluteURL returns the URL of the autocomplete endpoint registered
	// for this implementation.
	AbsoluteURL() (string, error)
}

// ChoiceSource supplies the two retrieval operations Base leaves abstract:
// which choices exist for a request, and which choices correspond to a set
// of values. Sources typically sit in front of an in-memory list, a store,
// or a remote service; any I/O discipline belongs to the source.
type ChoiceSource interface {
	ChoicesForRequest(r *http.Request) ([]Choice, error)
	ChoicesForValues(values []string) ([]Choice, error)
}

// Resolver reverses symbolic route names into URL paths. pkg/routes provides
// a Table implementation populated when autocomplete routes are mounted.
// A lookup for an unregistered name must return an error satisfying
// errors.Is(err, ErrRouteNotFound).
type Resolver interface {
	Reverse(route string, args map[string]string) (string, error)
}
