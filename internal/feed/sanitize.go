package feed

import (
	"html"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Sanitize reduces a feed description to plain text: script and style
// blocks removed, markup stripped, character entities decoded, whitespace
// runs collapsed to one space, ends trimmed. Sanitizing already-plain text
// returns it unchanged, so the operation is idempotent.
func Sanitize(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		// The HTML parser is tolerant enough that this should not happen;
		// degrade to a naive strip rather than losing the description.
		return collapseWhitespace(html.UnescapeString(stripTags(s)))
	}
	doc.Find("script, style").Remove()

	return collapseWhitespace(doc.Text())
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func stripTags(s string) string {
	var b strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return b.String()
}
