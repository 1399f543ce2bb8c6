package placeholder

import (
	"strings"
)

// Replace substitutes every token in tmpl with its value resolved against
// data. Text outside tokens is copied verbatim, in order, unless a literal
// transform is configured.
func Replace(tmpl string, data any, opts ...Option) string {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	matches := cfg.pattern.FindAllStringSubmatchIndex(tmpl, -1)
	if len(matches) == 0 {
		return cfg.text(tmpl)
	}

	var b strings.Builder
	b.Grow(len(tmpl))

	last := 0
	for _, m := range matches {
		b.WriteString(cfg.text(tmpl[last:m[0]]))
		b.WriteString(parseToken(inner(tmpl, m)).resolve(data))
		last = m[1]
	}
	b.WriteString(cfg.text(tmpl[last:]))

	return b.String()
}

// Placeholders returns the inner text of every token in tmpl, in order of
// appearance. Duplicates are kept.
func Placeholders(tmpl string, opts ...Option) []string {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	matches := cfg.pattern.FindAllStringSubmatchIndex(tmpl, -1)
	result := make([]string, 0, len(matches))
	for _, m := range matches {
		result = append(result, inner(tmpl, m))
	}
	return result
}

// inner extracts capture group 1 from a submatch index slice.
func inner(s string, m []int) string {
	if len(m) < 4 || m[2] < 0 {
		return ""
	}
	return s[m[2]:m[3]]
}
