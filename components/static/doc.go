// Package static provides an autocomplete implementation backed by an
// in-memory choice list. Choices can be supplied directly or loaded from a
// YAML catalog, and are matched against the request's search parameter with
// prefix matches ranked before substring matches.
package static
