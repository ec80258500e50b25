package autocomplete

import "strings"

// EmptyMessageKey is the translation key looked up for the empty-state
// message before falling back to the literal text.
const EmptyMessageKey = "autocomplete.empty"

const defaultEmptyMessage = "No matches found"

// Translator resolves a message key for a locale. Implementations are
// supplied by the host application; this package only consumes the lookup at
// render time.
type Translator interface {
	Translate(locale, key string) (string, error)
}

// translateEmpty resolves the empty-state message. A nil translator, a
// lookup error, or a blank result all fall back to the default literal so a
// missing translation never blanks the fragment.
func translateEmpty(t Translator, locale string) string {
	if t == nil {
		return defaultEmptyMessage
	}
	result, err := t.Translate(locale, EmptyMessageKey)
	if err != nil || strings.TrimSpace(result) == "" {
		return defaultEmptyMessage
	}
	return result
}
