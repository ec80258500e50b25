package static

import (
	"sort"
	"strings"
)

// Search filters choices by a case-insensitive substring match on label or
// value. Prefix matches on the label rank before plain substring matches,
// ties keep label order, and the result is capped by the clamped limit. An
// empty query follows opts.EmptySearchMode.
func Search(choices []Choice, query string, limit int, opts Options) []Choice {
	limit = clampLimit(limit, opts)
	if limit == 0 {
		return nil
	}

	query = strings.TrimSpace(query)
	if query == "" {
		if opts.EmptySearchMode == EmptySearchTop {
			if len(choices) <= limit {
				return append([]Choice{}, choices...)
			}
			return append([]Choice{}, choices[:limit]...)
		}
		return nil
	}

	q := strings.ToLower(query)
	matches := make([]matchedChoice, 0, 16)
	for _, choice := range choices {
		label := strings.ToLower(choice.Label)
		value := strings.ToLower(choice.Value)
		if !strings.Contains(label, q) && !strings.Contains(value, q) {
			continue
		}
		matches = append(matches, matchedChoice{
			choice:   choice,
			isPrefix: strings.HasPrefix(label, q),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].isPrefix != matches[j].isPrefix {
			return matches[i].isPrefix
		}
		return matches[i].choice.Label < matches[j].choice.Label
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}

	out := make([]Choice, 0, len(matches))
	for _, match := range matches {
		out = append(out, match.choice)
	}
	return out
}

type matchedChoice struct {
	choice   Choice
	isPrefix bool
}
