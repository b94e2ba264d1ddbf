package analysis

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// nonWord matches runs of everything outside the Unicode word class, so
// accented letters survive tokenization intact.
var nonWord = regexp.MustCompile(`[^\p{L}\p{N}_]+`)

// minTokenLen is exclusive: tokens of this length or shorter are dropped.
const minTokenLen = 2

// Tokenize lowercases text, replaces non-word characters with spaces, splits on
// whitespace, and drops stop words and tokens of length <= 2. Empty input
// yields an empty (non-nil) slice.
func Tokenize(text string) []string {
	cleaned := nonWord.ReplaceAllString(strings.ToLower(text), " ")

	tokens := []string{}
	for _, tok := range strings.Fields(cleaned) {
		if utf8.RuneCountInString(tok) <= minTokenLen {
			continue
		}
		if _, stopped := stopWords[tok]; stopped {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}
