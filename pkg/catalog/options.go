package catalog

import (
	"io"
	"log/slog"

	"github.com/dmitrymomot/textkit/pkg/placeholder"
)

// DefaultLanguage is used when no default is configured.
const DefaultLanguage = "en"

// Option configures a Catalog.
type Option func(*Catalog)

// WithDefaultLanguage sets the language used when the requested one cannot be
// matched. Empty values are ignored.
func WithDefaultLanguage(lang string) Option {
	return func(c *Catalog) {
		if lang != "" {
			c.defaultLang = lang
		}
	}
}

// WithFallbackToKey controls whether a missing key renders as the key itself.
// Default is true.
func WithFallbackToKey(fallback bool) Option {
	return func(c *Catalog) {
		c.fallbackToKey = fallback
	}
}

// WithLogger sets the logger. A discard logger is used by default.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Catalog) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMissingLogging enables warnings for missing keys. Default is false.
func WithMissingLogging(enabled bool) Option {
	return func(c *Catalog) {
		c.missingLogMode = enabled
	}
}

// WithPlaceholderOptions passes options, such as custom delimiters, to every
// placeholder substitution.
func WithPlaceholderOptions(opts ...placeholder.Option) Option {
	return func(c *Catalog) {
		c.placeholderOpts = append(c.placeholderOpts, opts...)
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
