package static

import (
	"net/http"

	autocomplete "github.com/goliatone/go-autocomplete"
	"github.com/goliatone/go-autocomplete/pkg/registry"
)

// Component bundles a static choice list with the configuration needed to
// build per-request autocompleters for it.
type Component struct {
	opts Options
}

// New constructs a component with default options plus any overrides.
func New(fns ...OptionFn) *Component {
	return &Component{opts: NewOptions(fns...)}
}

// FromCatalog constructs a component from a loaded catalog plus overrides.
// The catalog name is used unless an override names the component.
func FromCatalog(catalog *Catalog, fns ...OptionFn) *Component {
	base := []OptionFn{}
	if catalog != nil {
		base = append(base, WithName(catalog.Name), WithChoices(catalog.Choices))
	}
	return New(append(base, fns...)...)
}

// Options returns a copy of the component configuration.
func (c *Component) Options() Options {
	if c == nil {
		return DefaultOptions()
	}
	return NewOptions(func(o *Options) { *o = c.opts })
}

// Name returns the component's implementation name.
func (c *Component) Name() string {
	if c == nil {
		return ""
	}
	return c.opts.Name
}

// Autocompleter builds a fresh formatter over this component's choices for
// one request/render cycle.
func (c *Component) Autocompleter(r *http.Request, values any) *autocomplete.Base {
	opts := c.Options()
	source := &Source{opts: opts}

	baseOpts := []autocomplete.OptionFn{
		autocomplete.WithName(opts.Name),
		autocomplete.WithRoutes(opts.Routes),
		autocomplete.WithTranslator(opts.Translator, opts.Locale),
		autocomplete.WithChoiceValue(func(choice autocomplete.Choice) string {
			if sc, ok := choice.(Choice); ok {
				return sc.Value
			}
			return autocomplete.ValueString(choice)
		}),
		autocomplete.WithChoiceLabel(func(choice autocomplete.Choice) string {
			if sc, ok := choice.(Choice); ok {
				return sc.Label
			}
			return autocomplete.ValueString(choice)
		}),
	}
	if opts.AddAnotherRoute != "" {
		baseOpts = append(baseOpts, autocomplete.WithAddAnotherRoute(opts.AddAnotherRoute, opts.AddAnotherArgs))
	}

	return autocomplete.NewBase(source, r, values, baseOpts...)
}

// Factory returns a registry factory producing per-request instances.
func (c *Component) Factory() registry.Factory {
	return func(r *http.Request, values any) (autocomplete.Autocompleter, error) {
		return c.Autocompleter(r, values), nil
	}
}

// Register adds the component to a registry under its configured name.
func (c *Component) Register(reg *registry.Registry) error {
	return reg.Register(c.opts.Name, c.Factory())
}
