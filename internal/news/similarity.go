// Package news holds the lexical post-processing of a category's fetched
// articles: near-duplicate title removal and same-event story clustering.
// Both are pure token-overlap measures; there is no semantic understanding
// and no cross-language matching here.
package news

import (
	"strings"
	"unicode"
)

// normalizeTitle lowercases a title and strips every character that is not
// a letter, digit or space (Unicode-aware).
func normalizeTitle(s string) string {
	s = strings.ToLower(s)
	b := make([]rune, 0, len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsSpace(r) {
			b = append(b, r)
		}
	}
	return strings.Join(strings.Fields(string(b)), " ")
}

// tokenSet splits a normalized title into its unique word set.
func tokenSet(normalized string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(normalized) {
		set[w] = struct{}{}
	}
	return set
}

// titleTokens is the composition callers actually want.
func titleTokens(title string) map[string]struct{} {
	return tokenSet(normalizeTitle(title))
}

// jaccard returns intersection over union of two word sets. Two empty sets
// compare as 0, not 1: a title that normalizes to nothing matches nothing.
func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	intersection := 0
	for w := range a {
		if _, ok := b[w]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}
