package funcs

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// SlugOption configures Slug.
type SlugOption func(*slugConfig)

type slugConfig struct {
	separator string
	maxLength int
}

// SlugSeparator replaces the default "-" separator.
func SlugSeparator(sep string) SlugOption {
	return func(c *slugConfig) { c.separator = sep }
}

// SlugMaxLength truncates the slug to n characters. Zero means no limit.
func SlugMaxLength(n int) SlugOption {
	return func(c *slugConfig) { c.maxLength = n }
}

// Slug lowercases s, folds diacritics to ASCII and joins the remaining
// alphanumeric runs with the separator. Other characters are dropped.
func Slug(s string, opts ...SlugOption) string {
	cfg := &slugConfig{separator: "-"}
	for _, opt := range opts {
		opt(cfg)
	}

	// Decompose, then drop combining marks: "é" becomes "e".
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if folded, _, err := transform.String(fold, s); err == nil {
		s = folded
	}

	var b strings.Builder
	b.Grow(len(s))

	count := 0
	pendingSep := false
	for _, r := range strings.ToLower(s) {
		if cfg.maxLength > 0 && count >= cfg.maxLength {
			break
		}
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingSep && b.Len() > 0 {
				if cfg.maxLength > 0 && count+len(cfg.separator)+1 > cfg.maxLength {
					break
				}
				b.WriteString(cfg.separator)
				count += len(cfg.separator)
			}
			pendingSep = false
			b.WriteRune(r)
			count++
			continue
		}
		pendingSep = true
	}

	return b.String()
}
