// Package routes mounts registered autocomplete implementations on a mux
// and provides the named-route resolver the core uses for URL lookup.
package routes

import (
	"fmt"
	"net/http"
	"strings"

	autocomplete "github.com/goliatone/go-autocomplete"
	"github.com/goliatone/go-autocomplete/pkg/registry"
)

// Mux is the minimal interface required to register a net/http handler.
// It is satisfied by *http.ServeMux.
type Mux interface {
	Handle(pattern string, handler http.Handler)
}

// MountPath returns the path prefix under which implementations are served.
func MountPath(basePath string, fns ...OptionFn) string {
	opts := NewOptions(fns...)
	return mountPath(basePath, opts.RoutePath)
}

// RegisterRoutes mounts a fragment handler for every implementation in reg
// under basePath and returns a Table that reverses the autocomplete route.
// The returned table is what implementations should receive as their
// resolver (autocomplete.WithRoutes) so AbsoluteURL agrees with the mount.
func RegisterRoutes(mux Mux, basePath string, reg *registry.Registry, fns ...OptionFn) (*Table, error) {
	opts := NewOptions(fns...)
	return RegisterRoutesWithOptions(mux, basePath, reg, opts)
}

// RegisterRoutesWithOptions registers the handler using a pre-built Options
// value. Callers are expected to pass an Options value produced by
// NewOptions (or equivalent) so defaults apply.
func RegisterRoutesWithOptions(mux Mux, basePath string, reg *registry.Registry, opts Options) (*Table, error) {
	if mux == nil {
		return nil, fmt.Errorf("routes: missing mux")
	}
	if reg == nil {
		return nil, fmt.Errorf("routes: missing registry")
	}
	opts = NewOptions(func(o *Options) { *o = opts })

	prefix := mountPath(basePath, opts.RoutePath)
	mux.Handle(prefix+"/", HandlerWithOptions(reg, prefix, opts))

	table := NewTable()
	if err := table.Add(autocomplete.RouteName, prefix+"/:name"); err != nil {
		return nil, err
	}
	return table, nil
}

func mountPath(basePath, routePath string) string {
	basePath = strings.TrimSpace(basePath)
	routePath = strings.TrimSpace(routePath)

	if routePath == "" {
		routePath = "/"
	}
	if !strings.HasPrefix(routePath, "/") {
		routePath = "/" + routePath
	}
	routePath = strings.TrimRight(routePath, "/")

	if basePath == "" || basePath == "/" {
		return routePath
	}
	if !strings.HasPrefix(basePath, "/") {
		basePath = "/" + basePath
	}
	basePath = strings.TrimRight(basePath, "/")
	return basePath + routePath
}
