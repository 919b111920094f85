package textutil

import (
	"regexp"
	"strings"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)
var parentheticalRegex = regexp.MustCompile(`\([^)]*\)`)

// NormalizeName lowercases a name and strips all whitespace so that
// substring matching is insensitive to spacing and casing.
func NormalizeName(name string) string {
	name = strings.ToLower(name)
	name = strings.Trim(name, " \n\t")
	name = whitespaceRegex.ReplaceAllString(name, "")
	return name
}

// MatchAny reports whether any of the matchers occurs in the
// normalized form of name.
func MatchAny(name string, matchers []string) bool {
	name = NormalizeName(name)
	for _, m := range matchers {
		if strings.Contains(name, m) {
			return true
		}
	}
	return false
}

// StripParenthetical removes "(...)" runs, e.g. pack-size annotations
// inside ingredient names.
func StripParenthetical(text string) string {
	return parentheticalRegex.ReplaceAllString(text, "")
}

// CollapseSpaces trims the text and squashes interior whitespace runs
// down to single spaces.
func CollapseSpaces(text string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(text, " "))
}
