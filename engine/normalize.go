package engine

import (
	"regexp"
	"strings"
	"unicode"
)

// ============================================================================
// LEXICAL NORMALIZER
// ============================================================================
// Deterministic, side-effect-free text cleanup applied to both the query and
// every field name, so that a field literally named "ReadingValue" matches
// the phrase "reading value" in a query.
// ============================================================================

var nonAlnumPattern = regexp.MustCompile(`[^a-z0-9\s]`)

// Normalize lower-cases text, splits camelCase/PascalCase/snake_case/kebab-case
// boundaries into spaces, strips punctuation, and collapses whitespace.
func Normalize(text string) string {
	spaced := splitWordBoundaries(text)
	lowered := strings.ToLower(spaced)
	cleaned := nonAlnumPattern.ReplaceAllString(lowered, " ")
	return strings.Join(strings.Fields(cleaned), " ")
}

// Tokenize normalizes text and drops stop words.
func Tokenize(text string) []string {
	var tokens []string
	for _, tok := range strings.Fields(Normalize(text)) {
		if _, stop := stopWords[tok]; stop {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// splitWordBoundaries inserts spaces at identifier-case boundaries:
// "ReadingValue" → "Reading Value", "TemperatureUOM" → "Temperature UOM",
// "XMLParser" → "XML Parser". Underscores and hyphens are handled later by
// punctuation stripping.
func splitWordBoundaries(text string) string {
	runes := []rune(text)
	var b strings.Builder
	b.Grow(len(runes) + 8)
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			switch {
			case unicode.IsLower(prev) || unicode.IsDigit(prev):
				b.WriteRune(' ')
			case unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1]):
				b.WriteRune(' ')
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}
