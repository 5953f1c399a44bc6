package match

import (
	"strings"
	"unicode"
)

// Normalize folds an identifier for fuzzy comparison: CamelCase, snake_case
// and kebab-case spellings of the same words normalize equally.
func Normalize(s string) string {
	return strings.Join(Tokens(s), "")
}

// Tokens splits an identifier into lower-case words.
// Examples:
//   - "OrderID" -> ["order", "id"]
//   - "customer_name" -> ["customer", "name"]
//   - "XMLParser" -> ["xml", "parser"]
func Tokens(s string) []string {
	var (
		tokens  []string
		current []rune
	)

	flush := func() {
		if len(current) > 0 {
			tokens = append(tokens, strings.ToLower(string(current)))
			current = current[:0]
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()
			continue
		}

		if i > 0 && startsWord(runes, i) {
			flush()
		}
		current = append(current, r)
	}
	flush()

	return tokens
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == '.'
}

// startsWord reports a lower-to-upper transition ("orderID") or the end of
// an acronym ("XMLParser").
func startsWord(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]
	if !unicode.IsUpper(r) || isSeparator(prev) {
		return false
	}
	if !unicode.IsUpper(prev) {
		return true
	}

	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
