// Package tokenizer turns document text into the distinct tokens used as
// inverted-index keys.
package tokenizer

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// tokenRunRegex matches maximal runs of indexable characters: ASCII
// alphanumerics plus the common CJK ranges (unified ideographs,
// hiragana, katakana, hangul syllables). Everything else is a delimiter.
var tokenRunRegex = regexp.MustCompile(`[0-9A-Za-z\x{4E00}-\x{9FFF}\x{3040}-\x{30FF}\x{AC00}-\x{D7AF}]+`)

// MinTokenLength is the minimum token length in runes. Shorter runs are
// discarded both at index-build time and when deciding whether a query
// group can be answered from the index.
const MinTokenLength = 2

// Tokenize converts a string into the set of distinct lowercase tokens
// it contains, in first-appearance order. No stemming, no stop words.
func Tokenize(text string) []string {
	runs := tokenRunRegex.FindAllString(strings.ToLower(text), -1)

	tokens := make([]string, 0, len(runs))
	seen := make(map[string]struct{}, len(runs))
	for _, run := range runs {
		if utf8.RuneCountInString(run) < MinTokenLength {
			continue
		}
		if _, dup := seen[run]; dup {
			continue
		}
		seen[run] = struct{}{}
		tokens = append(tokens, run)
	}
	return tokens
}

// IsIndexableASCII reports whether token consists solely of ASCII
// alphanumerics and meets the minimum length. Only such tokens have a
// directly addressable index bucket; CJK tokens are indexed but are
// never used for candidate pruning.
func IsIndexableASCII(token string) bool {
	if len(token) < MinTokenLength {
		return false
	}
	for i := 0; i < len(token); i++ {
		c := token[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		default:
			return false
		}
	}
	return true
}
