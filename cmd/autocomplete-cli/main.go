// Command autocomplete-cli renders autocomplete fragments from a YAML choice
// catalog, either one-shot or through an interactive query prompt.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/goliatone/go-autocomplete/components/static"
)

func main() {
	catalogPath := flag.String("choices", "choices.yaml", "YAML catalog of choices")
	name := flag.String("name", "", "implementation name (catalog name if empty)")
	query := flag.String("query", "", "search query to render matches for")
	values := flag.String("values", "", "comma-separated values to validate")
	output := flag.String("output", "", "output file (stdout if empty)")
	interactive := flag.Bool("interactive", false, "prompt for queries interactively")
	flag.Parse()

	catalog, err := static.LoadCatalogFile(*catalogPath)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	opts := []static.OptionFn{}
	if *name != "" {
		opts = append(opts, static.WithName(*name))
	}
	component := static.FromCatalog(catalog, opts...)

	if *interactive {
		runPrompt(component)
		return
	}

	markup, err := render(component, *query)
	if err != nil {
		log.Fatalf("Failed to render fragment: %v", err)
	}

	if *values != "" {
		ac := component.Autocompleter(nil, splitValues(*values))
		ok, err := ac.ValidateValues()
		if err != nil {
			log.Fatalf("Failed to validate values: %v", err)
		}
		fmt.Fprintf(os.Stderr, "values valid: %v\n", ok)
	}

	if *output != "" {
		if err := os.WriteFile(*output, []byte(markup), 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Fragment written to %s\n", *output)
	} else {
		fmt.Println(markup)
	}
}

func runPrompt(component *static.Component) {
	for {
		var query string
		prompt := &survey.Input{
			Message: "query:",
			Help:    "empty input exits",
		}
		if err := survey.AskOne(prompt, &query); err != nil {
			if errors.Is(err, terminal.InterruptErr) {
				return
			}
			log.Fatalf("Prompt failed: %v", err)
		}
		if strings.TrimSpace(query) == "" {
			return
		}

		markup, err := render(component, query)
		if err != nil {
			log.Fatalf("Failed to render fragment: %v", err)
		}
		fmt.Println(markup)
	}
}

func render(component *static.Component, query string) (string, error) {
	req, err := http.NewRequest(http.MethodGet, "/?"+url.Values{
		component.Options().SearchParam: []string{query},
	}.Encode(), nil)
	if err != nil {
		return "", err
	}
	return component.Autocompleter(req, nil).Render()
}

func splitValues(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
