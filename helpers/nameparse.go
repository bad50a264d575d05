// Package helpers holds small name formatting utilities.
package helpers

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var spaceRegex = regexp.MustCompile(`\s+`)

// NormalizeSpace collapses runs of whitespace into single spaces.
func NormalizeSpace(s string) string {
	return strings.TrimSpace(spaceRegex.ReplaceAllString(s, " "))
}

// Initials abbreviates a given name: "John Paul" becomes "J. P." and
// hyphenated names keep their hyphen, so "Jean-Pierre" becomes "J.-P.".
// Parts that are already initials are kept as they are.
func Initials(given string) string {
	var parts []string
	for _, word := range strings.Fields(given) {
		var sub []string
		for _, piece := range strings.Split(word, "-") {
			if piece == "" {
				continue
			}
			sub = append(sub, initial(piece))
		}
		if len(sub) > 0 {
			parts = append(parts, strings.Join(sub, "-"))
		}
	}
	return strings.Join(parts, " ")
}

func initial(word string) string {
	if strings.HasSuffix(word, ".") {
		return word
	}
	r, _ := utf8.DecodeRuneInString(word)
	return string(unicode.ToUpper(r)) + "."
}

// PaperName joins the abbreviated given name and the family name with a
// single space, e.g. "A. Einstein". When no abbreviation is supplied it is
// derived from the given name.
func PaperName(abbrev, given, family string) string {
	abbrev = NormalizeSpace(abbrev)
	if abbrev == "" {
		abbrev = Initials(given)
	}

	var parts []string
	for _, p := range []string{abbrev, NormalizeSpace(family)} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}
