package placeholder

import (
	"regexp"

	"github.com/dmitrymomot/textkit/pkg/textfmt"
)

// DefaultPattern matches mustache-style tokens: {{inner}}.
var DefaultPattern = regexp.MustCompile(`\{\{([^}]+)\}\}`)

// Option configures a Replace call.
type Option func(*config)

type config struct {
	pattern *regexp.Regexp
	literal func(string) string
}

func defaultConfig() *config {
	return &config{pattern: DefaultPattern}
}

func (c *config) text(s string) string {
	if c.literal == nil || s == "" {
		return s
	}
	return c.literal(s)
}

// WithPattern sets the token pattern. Capture group 1 must be the token's
// inner text. Nil patterns are ignored.
func WithPattern(re *regexp.Regexp) Option {
	return func(c *config) {
		if re != nil {
			c.pattern = re
		}
	}
}

// WithDelimiters builds a token pattern from literal start and end markers.
// The inner text may not contain the first character of the end marker.
// Empty markers are ignored.
func WithDelimiters(start, end string) Option {
	return func(c *config) {
		if start == "" || end == "" {
			return
		}
		stop := textfmt.EscapeRegexp(string([]rune(end)[0]))
		c.pattern = regexp.MustCompile(
			textfmt.EscapeRegexp(start) + `([^` + stop + `]+)` + textfmt.EscapeRegexp(end),
		)
	}
}

// WithLiteralTransform applies fn to every span of text outside tokens.
// Resolved token values are not passed through fn.
func WithLiteralTransform(fn func(string) string) Option {
	return func(c *config) {
		c.literal = fn
	}
}
