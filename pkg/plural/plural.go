package plural

import (
	"regexp"
	"strings"
)

// tokenRegex matches a single {...} token. Tokens never contain braces.
var tokenRegex = regexp.MustCompile(`\{([^{}]*)\}`)

const (
	countToken     = "#"
	choiceSplitter = "|"
)

type tokenKind int

const (
	suffixToken tokenKind = iota
	choiceToken
	quantityToken
)

type token struct {
	kind     tokenKind
	singular string
	plural   string
}

func parseToken(inner string) token {
	if inner == countToken {
		return token{kind: quantityToken}
	}
	if strings.Contains(inner, choiceSplitter) {
		choices := strings.Split(inner, choiceSplitter)
		return token{kind: choiceToken, singular: choices[0], plural: choices[1]}
	}
	return token{kind: suffixToken, plural: inner}
}

func (t token) render(n float64, isPlural bool) string {
	switch t.kind {
	case quantityToken:
		return formatQuantity(n)
	case choiceToken:
		if isPlural {
			return t.plural
		}
		return t.singular
	default:
		if isPlural {
			return t.plural
		}
		return ""
	}
}

// IsPlural reports whether n selects the plural form.
func IsPlural(n float64) bool {
	return normalize(n) != 1
}

// Pluralize renders tmpl for quantity n. NaN is treated as 0.
func Pluralize(n float64, tmpl string) string {
	n = normalize(n)
	isPlural := n != 1

	matches := tokenRegex.FindAllStringSubmatchIndex(tmpl, -1)
	if len(matches) == 0 {
		return tmpl
	}

	var b strings.Builder
	b.Grow(len(tmpl))

	last := 0
	for _, m := range matches {
		b.WriteString(tmpl[last:m[0]])
		b.WriteString(parseToken(tmpl[m[2]:m[3]]).render(n, isPlural))
		last = m[1]
	}
	b.WriteString(tmpl[last:])

	return b.String()
}

// Parse renders tmpl using the integer at its start as the quantity.
// The leading number stays part of the output.
func Parse(tmpl string) string {
	return Pluralize(PrefixQuantity(tmpl), tmpl)
}

// Any renders tmpl for a loosely typed quantity, see Quantity.
func Any(n any, tmpl string) string {
	return Pluralize(Quantity(n), tmpl)
}
