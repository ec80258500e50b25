package static

import autocomplete "github.com/goliatone/go-autocomplete"

// EmptySearchMode controls what an empty query returns.
type EmptySearchMode string

const (
	// EmptySearchNone returns no choices for an empty query.
	EmptySearchNone EmptySearchMode = "none"
	// EmptySearchTop returns the first choices up to the limit.
	EmptySearchTop EmptySearchMode = "top"
)

// Options configure a static component.
type Options struct {
	Name            string
	SearchParam     string
	LimitParam      string
	DefaultLimit    int
	MaxLimit        int
	EmptySearchMode EmptySearchMode

	Choices []Choice

	// Routes, Translator, Locale, and the add-another route are forwarded
	// to the Base formatter built for each request.
	Routes          autocomplete.Resolver
	Translator      autocomplete.Translator
	Locale          string
	AddAnotherRoute string
	AddAnotherArgs  map[string]string
}

// OptionFn mutates Options during construction.
type OptionFn func(*Options)

// DefaultOptions returns the component defaults.
func DefaultOptions() Options {
	return Options{
		SearchParam:     "q",
		LimitParam:      "limit",
		DefaultLimit:    20,
		MaxLimit:        100,
		EmptySearchMode: EmptySearchNone,
	}
}

// NewOptions applies fns on top of DefaultOptions and clamps the results.
func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.SearchParam == "" {
		opts.SearchParam = "q"
	}
	if opts.LimitParam == "" {
		opts.LimitParam = "limit"
	}
	if opts.DefaultLimit <= 0 {
		opts.DefaultLimit = 20
	}
	if opts.MaxLimit <= 0 {
		opts.MaxLimit = 100
	}
	if opts.EmptySearchMode == "" {
		opts.EmptySearchMode = EmptySearchNone
	}
	if opts.Choices != nil {
		opts.Choices = append([]Choice{}, opts.Choices...)
	}
	return opts
}

func WithName(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Name = name
	}
}

func WithSearchParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.SearchParam = name
	}
}

func WithLimitParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.LimitParam = name
	}
}

func WithDefaultLimit(limit int) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.DefaultLimit = limit
	}
}

func WithMaxLimit(limit int) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.MaxLimit = limit
	}
}

func WithEmptySearchMode(mode EmptySearchMode) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.EmptySearchMode = mode
	}
}

func WithChoices(choices []Choice) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		if choices == nil {
			o.Choices = nil
			return
		}
		o.Choices = append([]Choice{}, choices...)
	}
}

func WithRoutes(routes autocomplete.Resolver) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Routes = routes
	}
}

func WithTranslator(t autocomplete.Translator, locale string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Translator = t
		o.Locale = locale
	}
}

func WithAddAnotherRoute(name string, args map[string]string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.AddAnotherRoute = name
		o.AddAnotherArgs = args
	}
}

func clampLimit(limit int, opts Options) int {
	if limit < 0 {
		return 0
	}
	if limit == 0 {
		limit = opts.DefaultLimit
	}
	if opts.MaxLimit > 0 && limit > opts.MaxLimit {
		return opts.MaxLimit
	}
	return limit
}
