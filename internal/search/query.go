package search

import (
	"strings"
	"unicode"
)

// Group is one AND-level unit of a parsed query: an ordered OR of
// alternatives. Alternatives keeps the user's casing for display;
// Lowered holds the lowercase projections used for matching.
type Group struct {
	Alternatives []string
	Lowered      []string
}

// ParseQuery turns a raw keyword string into an ordered list of groups.
// The scanner recognizes either a double-quoted phrase (interior
// whitespace included) or a run of non-whitespace characters as one raw
// token; each raw token is then split on '|' into trimmed, non-empty
// alternatives. A raw token yielding no alternatives contributes no
// group. An empty input parses to zero groups, which callers treat as
// "return no results".
func ParseQuery(raw string) []Group {
	var groups []Group

	runes := []rune(raw)
	i := 0
	for i < len(runes) {
		if unicode.IsSpace(runes[i]) {
			i++
			continue
		}

		var token string
		if runes[i] == '"' {
			i++
			start := i
			for i < len(runes) && runes[i] != '"' {
				i++
			}
			token = string(runes[start:i])
			if i < len(runes) {
				i++ // closing quote
			}
		} else {
			start := i
			for i < len(runes) && !unicode.IsSpace(runes[i]) {
				i++
			}
			token = string(runes[start:i])
		}

		if group, ok := splitAlternatives(token); ok {
			groups = append(groups, group)
		}
	}
	return groups
}

func splitAlternatives(token string) (Group, bool) {
	var group Group
	for _, alt := range strings.Split(token, "|") {
		alt = strings.TrimSpace(alt)
		if alt == "" {
			continue
		}
		group.Alternatives = append(group.Alternatives, alt)
		group.Lowered = append(group.Lowered, strings.ToLower(alt))
	}
	return group, len(group.Alternatives) > 0
}
