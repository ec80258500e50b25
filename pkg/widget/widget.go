// Package widget renders the full form-field markup around an autocomplete
// fragment: the hidden inputs carrying current values, the text input, the
// deck holding the fragment, and the optional add-another link.
package widget

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"

	autocomplete "github.com/goliatone/go-autocomplete"
)

const widgetTemplate = "templates/widget.tpl"

// TemplateRenderer is the seam the widget renderer relies on; Engine
// satisfies it and custom implementations can be injected for testing or to
// swap template engines.
type TemplateRenderer interface {
	RenderTemplate(name string, data map[string]any, out ...io.Writer) (string, error)
}

// Option configures the widget renderer.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer TemplateRenderer
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// RenderOptions describe per-widget presentation details.
type RenderOptions struct {
	// Name overrides the implementation name used for the input name and
	// data attributes. Defaults to the autocompleter's name when it exposes
	// one.
	Name string
	// WidgetID and InputID override the generated element ids.
	WidgetID        string
	InputID         string
	Placeholder     string
	ExtraClasses    string
	AddAnotherLabel string
}

// Renderer produces widget markup for autocompleters.
type Renderer struct {
	templates TemplateRenderer
}

// New constructs the widget renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := NewEngine(WithFS(cfg.templateFS), WithExtension(".tpl"))
		if err != nil {
			return nil, fmt.Errorf("widget renderer: configure template engine: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer}, nil
}

// ContentType returns the media type of rendered widgets.
func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render produces the widget markup for one autocompleter instance. Route
// lookup failures (AbsoluteURL, AddAnotherURL) propagate: a widget with a
// broken endpoint must fail loudly rather than render a dead control.
func (r *Renderer) Render(_ context.Context, ac autocomplete.Autocompleter, opts RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("widget renderer: template renderer is nil")
	}
	if ac == nil {
		return nil, fmt.Errorf("widget renderer: autocompleter is required")
	}

	name := opts.Name
	if name == "" {
		if named, ok := ac.(interface{ Name() string }); ok {
			name = named.Name()
		}
	}
	if name == "" {
		return nil, fmt.Errorf("widget renderer: implementation name is required")
	}

	url, err := ac.AbsoluteURL()
	if err != nil {
		return nil, err
	}

	fragment, err := ac.Render()
	if err != nil {
		return nil, fmt.Errorf("widget renderer: render fragment: %w", err)
	}

	addAnotherURL := ""
	if adder, ok := ac.(interface{ AddAnotherURL() (string, error) }); ok {
		addAnotherURL, err = adder.AddAnotherURL()
		if err != nil {
			return nil, err
		}
	}

	widgetID := opts.WidgetID
	if widgetID == "" {
		widgetID = "autocomplete-" + name
	}
	inputID := opts.InputID
	if inputID == "" {
		inputID = widgetID + "-input"
	}
	addAnotherLabel := opts.AddAnotherLabel
	if addAnotherLabel == "" {
		addAnotherLabel = "+"
	}

	result, err := r.templates.RenderTemplate(widgetTemplate, map[string]any{
		"name":              name,
		"widget_id":         widgetID,
		"input_id":          inputID,
		"placeholder":       opts.Placeholder,
		"extra_classes":     opts.ExtraClasses,
		"url":               url,
		"values":            ac.Values(),
		"fragment":          fragment,
		"add_another_url":   addAnotherURL,
		"add_another_label": addAnotherLabel,
	})
	if err != nil {
		return nil, fmt.Errorf("widget renderer: render template: %w", err)
	}
	return []byte(result), nil
}
