package autocomplete

import (
	"errors"
	"fmt"
)

// ErrNotImplemented signals that a required capability was not provided by
// the implementation. Callers must never mistake it for "no matches": the
// operations that return it never return an empty result instead.
var ErrNotImplemented = errors.New("not implemented")

// ErrRouteNotFound is returned by resolvers when no route is registered
// under the requested name.
var ErrRouteNotFound = errors.New("route not found")

// ConfigError reports a misconfigured deployment, typically an autocomplete
// implementation whose endpoint route was never mounted. It is deliberately
// loud: swallowing it would corrupt unrelated rendering on the hosting page.
type ConfigError struct {
	// Name identifies the offending implementation.
	Name string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("autocomplete: URL lookup for autocomplete %q failed; "+
		"register the autocomplete routes (routes.RegisterRoutes) before rendering: %v",
		e.Name, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

func notImplemented(op string) error {
	return fmt.Errorf("autocomplete: %s: %w", op, ErrNotImplemented)
}
