package textfmt

import (
	"regexp"

	"github.com/rivo/uniseg"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Capitalize upper-cases the first character of s and leaves the rest alone.
// The first character is a full grapheme cluster, so combining marks stay
// attached.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	first, rest, _, _ := uniseg.FirstGraphemeClusterInString(s, -1)
	return cases.Upper(language.Und).String(first) + rest
}

// EscapeRegexp quotes every regular expression metacharacter in s.
func EscapeRegexp(s string) string {
	return regexp.QuoteMeta(s)
}
