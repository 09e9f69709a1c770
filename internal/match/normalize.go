package match

import (
	"strings"
	"unicode"
)

// NormalizeIdent lowercases an identifier and drops word separators, so
// snake_case, camelCase and PascalCase spellings of one name compare equal.
func NormalizeIdent(s string) string {
	return strings.Join(Words(s), "")
}

// Words splits an identifier into lowercase words.
// Examples:
//   - "skipAccessor" -> ["skip", "accessor"]
//   - "accessors_return_copy" -> ["accessors", "return", "copy"]
//   - "HTTPError" -> ["http", "error"]
func Words(s string) []string {
	var (
		words   []string
		current strings.Builder
	)

	flush := func() {
		if current.Len() > 0 {
			words = append(words, strings.ToLower(current.String()))
			current.Reset()
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

		current.WriteRune(r)
	}

	flush()

	return words
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == ':'
}

// startsWord reports whether runes[i] begins a new camel-case word.
func startsWord(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]

	if !unicode.IsUpper(r) || isSeparator(prev) {
		return false
	}

	// lower -> Upper: "skipAll" splits before 'A'
	if !unicode.IsUpper(prev) {
		return true
	}

	// end of an acronym: "HTTPError" splits before 'E'
	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
