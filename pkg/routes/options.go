package routes

import "net/http"

// GuardFunc can reject a request before an autocompleter is built. Returning
// an error aborts the request; errors implementing HTTPError pick the status
// code.
type GuardFunc func(r *http.Request) error

// Options configure the mounted autocomplete endpoint.
type Options struct {
	// RoutePath is the path under which implementations are served,
	// relative to the base path passed to RegisterRoutes.
	RoutePath string
	// ValuesParam names the repeated query parameter carrying the current
	// values of the requesting widget.
	ValuesParam string
	Guard       GuardFunc
}

// OptionFn mutates Options during construction.
type OptionFn func(*Options)

// DefaultOptions returns the endpoint defaults.
func DefaultOptions() Options {
	return Options{
		RoutePath:   "/autocomplete",
		ValuesParam: "values",
	}
}

// NewOptions applies fns on top of DefaultOptions and backfills blanks.
func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.RoutePath == "" {
		opts.RoutePath = "/autocomplete"
	}
	if opts.ValuesParam == "" {
		opts.ValuesParam = "values"
	}
	return opts
}

func WithRoutePath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.RoutePath = path
	}
}

func WithValuesParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.ValuesParam = name
	}
}

func WithGuard(guard GuardFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Guard = guard
	}
}
