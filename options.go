package autocomplete

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// Default templates used by Base. ChoiceTemplate takes the escaped value and
// the escaped label, in that order; EmptyTemplate takes the localized
// empty-state message; ListTemplate wraps the concatenated choices.
const (
	DefaultChoiceTemplate = `<span data-value="%s">%s</span>`
	DefaultEmptyTemplate  = `<span class="block"><em>%s</em></span>`
	DefaultListTemplate   = `%s`
)

// Options configure a Base formatter. Zero fields fall back to the defaults
// applied by NewOptions.
type Options struct {
	// Name identifies the implementation for route lookup and registry
	// mounting. When empty, Base derives it from the choice source type.
	Name string

	ChoiceTemplate string
	EmptyTemplate  string
	ListTemplate   string

	// AddAnotherRoute names the route used to create a new choice via a
	// popup. When empty the capability is absent and AddAnotherURL returns
	// no URL.
	AddAnotherRoute string
	AddAnotherArgs  map[string]string

	// Routes resolves named routes for AbsoluteURL and AddAnotherURL.
	Routes Resolver

	// Translator localizes the empty-state message. Nil falls back to the
	// literal text.
	Translator Translator
	Locale     string

	// ChoiceValue and ChoiceLabel extract identity and display text from a
	// choice. Both default to the textual conversion of the choice.
	ChoiceValue func(Choice) string
	ChoiceLabel func(Choice) string

	// LabelPolicy, when set, sanitizes labels instead of escaping them so
	// implementations can render labels that legitimately carry inline
	// markup. Values are always escaped regardless.
	LabelPolicy *bluemonday.Policy
}

// OptionFn mutates Options during construction.
type OptionFn func(*Options)

// DefaultOptions returns the options Base uses when none are supplied.
func DefaultOptions() Options {
	return Options{
		ChoiceTemplate: DefaultChoiceTemplate,
		EmptyTemplate:  DefaultEmptyTemplate,
		ListTemplate:   DefaultListTemplate,
	}
}

// NewOptions applies fns on top of DefaultOptions and backfills any blank
// template so Base never formats against an empty pattern.
func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.ChoiceTemplate == "" {
		opts.ChoiceTemplate = DefaultChoiceTemplate
	}
	if opts.EmptyTemplate == "" {
		opts.EmptyTemplate = DefaultEmptyTemplate
	}
	if opts.ListTemplate == "" {
		opts.ListTemplate = DefaultListTemplate
	}
	if opts.AddAnotherArgs != nil {
		args := make(map[string]string, len(opts.AddAnotherArgs))
		for k, v := range opts.AddAnotherArgs {
			args[k] = v
		}
		opts.AddAnotherArgs = args
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

func WithChoiceTemplate(tpl string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.ChoiceTemplate = tpl
	}
}

func WithEmptyTemplate(tpl string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.EmptyTemplate = tpl
	}
}

func WithListTemplate(tpl string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.ListTemplate = tpl
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

func WithRoutes(routes Resolver) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Routes = routes
	}
}

func WithTranslator(t Translator, locale string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Translator = t
		o.Locale = locale
	}
}

func WithChoiceValue(fn func(Choice) string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.ChoiceValue = fn
	}
}

func WithChoiceLabel(fn func(Choice) string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.ChoiceLabel = fn
	}
}

func WithLabelPolicy(policy *bluemonday.Policy) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.LabelPolicy = policy
	}
}

var (
	richLabelOnce   sync.Once
	richLabelPolicy *bluemonday.Policy
)

// RichLabelPolicy returns a sanitizer for labels that carry inline
// formatting markup. Anything outside the allowed inline elements is
// stripped, so script or structural markup in a label never reaches the
// rendered fragment.
func RichLabelPolicy() *bluemonday.Policy {
	richLabelOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("em", "strong", "b", "i", "u", "mark", "small", "code", "span")
		policy.AllowAttrs("class").OnElements("span")
		richLabelPolicy = policy
	})
	return richLabelPolicy
}
