package logger

import (
	"log/slog"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Template records a template string.
func Template(tmpl string) slog.Attr {
	return slog.String("template", tmpl)
}

// Key records a catalog key.
func Key(key string) slog.Attr {
	return slog.String("key", key)
}

// Lang records a language code. Empty codes produce an empty Attr.
func Lang(lang string) slog.Attr {
	if lang == "" {
		return slog.Attr{}
	}
	return slog.String("lang", lang)
}

// Quantity records the number used for pluralization.
func Quantity(n float64) slog.Attr {
	return slog.Float64("quantity", n)
}

// Command records the CLI subcommand being run.
func Command(name string) slog.Attr {
	return slog.String("command", name)
}
