package autocomplete

import "net/http"

// Unimplemented is the bare form of the Autocompleter contract. It carries
// the normalized values and the request handle, implements AbsoluteURL, and
// fails every other operation with ErrNotImplemented so "not implemented"
// can never be mistaken for "no matches".
//
// Embed it (directly or through Base) when building an implementation.
type Unimplemented struct {
	name    string
	routes  Resolver
	request *http.Request
	values  []string
}

// NewUnimplemented builds the contract base for an implementation known
// under name, normalizing values per NormalizeValues.
func NewUnimplemented(name string, routes Resolver, r *http.Request, values any) *Unimplemented {
	return &Unimplemented{
		name:    name,
		routes:  routes,
		request: r,
		values:  NormalizeValues(values),
	}
}

// Name returns the implementation name used for route lookup.
func (u *Unimplemented) Name() string { return u.name }

// Values returns the normalized values sequence.
func (u *Unimplemented) Values() []string { return u.values }

// Request returns the request handle the instance was constructed with.
func (u *Unimplemented) Request() *http.Request { return u.request }

// Render fails with ErrNotImplemented.
func (u *Unimplemented) Render() (string, error) {
	return "", notImplemented("Render")
}

// ValidateValues fails with ErrNotImplemented.
func (u *Unimplemented) ValidateValues() (bool, error) {
	return false, notImplemented("ValidateValues")
}

// ChoicesForValues fails with ErrNotImplemented.
func (u *Unimplemented) ChoicesForValues() ([]Choice, error) {
	return nil, notImplemented("ChoicesForValues")
}

// AbsoluteURL reverses the autocomplete route for this implementation. A
// missing resolver or route is a deployment mistake and surfaces as a
// *ConfigError naming the implementation; it must not be downgraded to an
// empty URL.
func (u *Unimplemented) AbsoluteURL() (string, error) {
	if u.routes == nil {
		return "", &ConfigError{Name: u.name, Err: ErrRouteNotFound}
	}
	url, err := u.routes.Reverse(RouteName, map[string]string{"name": u.name})
	if err != nil {
		return "", &ConfigError{Name: u.name, Err: err}
	}
	return url, nil
}

var _ Autocompleter = (*Unimplemented)(nil)
