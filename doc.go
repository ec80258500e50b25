// Package autocomplete provides the building blocks for autocomplete form
// field widgets: an implementation contract, a reusable HTML formatter, and
// the glue (route lookup, localization, escaping) those need.
//
// An autocompleter is constructed fresh for each request with the values the
// user has currently selected. It renders the matching choices as an HTML
// fragment and validates that every selected value resolves to a choice.
// Retrieving the choices themselves is left to a ChoiceSource; see
// components/static for a ready-made in-memory implementation and pkg/routes
// for mounting autocompleters on a mux.
package autocomplete
