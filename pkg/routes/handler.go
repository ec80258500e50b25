package routes

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/goliatone/go-autocomplete/pkg/registry"
)

// HTTPError lets guard errors choose their response status.
type HTTPError interface {
	error
	StatusCode() int
}

// StatusError wraps an error with an HTTP status code.
type StatusError struct {
	Code int
	Err  error
}

func (e StatusError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Code)
}

func (e StatusError) Unwrap() error { return e.Err }

func (e StatusError) StatusCode() int {
	if e.Code <= 0 {
		return http.StatusInternalServerError
	}
	return e.Code
}

// Handler builds the fragment handler with default options plus overrides.
// prefix is the mount path the implementation name is resolved against,
// typically the value of MountPath.
func Handler(reg *registry.Registry, prefix string, fns ...OptionFn) http.Handler {
	opts := NewOptions(fns...)
	return HandlerWithOptions(reg, prefix, opts)
}

// HandlerWithOptions builds the fragment handler from a pre-constructed
// Options value. The handler serves GET/HEAD requests for
// <prefix>/<name>, builds a per-request instance from the registry, and
// writes its rendered HTML fragment.
func HandlerWithOptions(reg *registry.Registry, prefix string, opts Options) http.Handler {
	opts = NewOptions(func(o *Options) { *o = opts })
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r == nil || reg == nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", http.MethodGet+", "+http.MethodHead)
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}

		if opts.Guard != nil {
			if err := opts.Guard(r); err != nil {
				writeGuardError(w, err)
				return
			}
		}

		name, ok := implementationName(r.URL.Path, prefix)
		if !ok || !reg.Has(name) {
			http.NotFound(w, r)
			return
		}

		var values any
		if raw := r.URL.Query()[opts.ValuesParam]; len(raw) > 0 {
			values = raw
		}

		ac, err := reg.Build(name, r, values)
		if err != nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		markup, err := ac.Render()
		if err != nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if r.Method == http.MethodHead {
			return
		}
		_, _ = w.Write([]byte(markup))
	})
}

// implementationName extracts the trailing path segment naming the
// implementation. Nested paths are rejected so implementation lookups stay
// exact.
func implementationName(path, prefix string) (string, bool) {
	rest := strings.TrimPrefix(path, prefix)
	if rest == path {
		return "", false
	}
	rest = strings.Trim(rest, "/")
	if rest == "" || strings.Contains(rest, "/") {
		return "", false
	}
	name, err := url.PathUnescape(rest)
	if err != nil {
		return "", false
	}
	return name, true
}

func writeGuardError(w http.ResponseWriter, err error) {
	if w == nil {
		return
	}
	if err == nil {
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}
	code := http.StatusForbidden
	var httpErr HTTPError
	if errors.As(err, &httpErr) && httpErr != nil {
		code = httpErr.StatusCode()
		if code <= 0 {
			code = http.StatusForbidden
		}
	}
	http.Error(w, http.StatusText(code), code)
}
