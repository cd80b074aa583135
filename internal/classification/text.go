// Package classification resolves confessions to sin categories and detects
// the easter eggs that override the monk's usual reaction.
package classification

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Lower folds text to lower case using German casing rules.
func Lower(text string) string {
	// cases.Caser keeps state between calls, so build one per call.
	return cases.Lower(language.German).String(text)
}

// ContainsAny reports whether the lower-cased text contains any of the
// given lower-case substrings.
func ContainsAny(lowered string, substrings []string) bool {
	for _, s := range substrings {
		if strings.Contains(lowered, s) {
			return true
		}
	}
	return false
}

// Length returns the number of characters in text.
func Length(text string) int {
	return utf8.RuneCountInString(text)
}

// IsShouting reports whether text has at least one cased letter and no
// lower-case or title-case letters.
func IsShouting(text string) bool {
	cased := false
	for _, r := range text {
		switch {
		case unicode.IsLower(r), unicode.IsTitle(r):
			return false
		case unicode.IsUpper(r):
			cased = true
		}
	}
	return cased
}
