package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/textkit/pkg/datapath"
	"github.com/dmitrymomot/textkit/pkg/placeholder"
	"github.com/dmitrymomot/textkit/pkg/plural"
)

// Plural form keys for map-shaped plural entries.
const (
	FormZero  = "zero"
	FormOne   = "one"
	FormOther = "other"
)

// CountKey is bound to the quantity during Plural unless data defines it.
const CountKey = "count"

// Catalog renders message templates loaded from an Adapter.
type Catalog struct {
	mu        sync.RWMutex
	templates map[string]map[string]any
	languages []string
	matcher   language.Matcher

	adapter         Adapter
	defaultLang     string
	fallbackToKey   bool
	missingLogMode  bool
	logger          *slog.Logger
	placeholderOpts []placeholder.Option
}

// New loads templates from adapter and returns a ready Catalog.
func New(ctx context.Context, adapter Adapter, opts ...Option) (*Catalog, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	c := &Catalog{
		adapter:       adapter,
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        discardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if err := c.Reload(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

// Reload fetches templates from the adapter again and swaps them in.
// On error the current templates are kept.
func (c *Catalog) Reload(ctx context.Context) error {
	templates, err := c.adapter.Load(ctx)
	if err != nil {
		return err
	}
	if err := validate(templates); err != nil {
		return err
	}
	if len(templates) == 0 {
		c.logger.WarnContext(ctx, "No templates provided")
	}

	languages := make([]string, 0, len(templates))
	for lang := range templates {
		languages = append(languages, lang)
	}
	sort.Strings(languages)

	c.mu.Lock()
	c.templates = templates
	c.languages = languages
	c.matcher = buildMatcher(c.defaultLang, languages)
	c.mu.Unlock()

	c.logger.InfoContext(ctx, "Templates loaded", slog.Any("languages", languages))
	return nil
}

func validate(templates map[string]map[string]any) error {
	for lang, t := range templates {
		if lang == "" {
			return ErrEmptyLanguage
		}
		if t == nil {
			return fmt.Errorf("%w: %s", ErrNilTemplates, lang)
		}
	}
	return nil
}

// buildMatcher puts the default language first so it wins when nothing
// else matches.
func buildMatcher(defaultLang string, languages []string) language.Matcher {
	tags := []language.Tag{language.Make(defaultLang)}
	for _, lang := range languages {
		tags = append(tags, language.Make(lang))
	}
	return language.NewMatcher(tags)
}

// Languages returns the loaded language codes, sorted.
func (c *Catalog) Languages() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, len(c.languages))
	copy(out, c.languages)
	return out
}

// Has reports whether key exists for lang, after language matching.
func (c *Catalog) Has(lang, key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return !c.lookup(lang, key).IsMissing()
}

// Render substitutes data into the template stored at key.
func (c *Catalog) Render(lang, key string, data any) string {
	c.mu.RLock()
	v := c.lookup(lang, key)
	c.mu.RUnlock()

	if v.Kind() != datapath.Scalar {
		return c.missing(lang, key, v)
	}
	return placeholder.Replace(v.String(), data, c.placeholderOpts...)
}

// Plural renders the template at key for quantity n. The template may be a
// string using plural tokens, or a map with zero, one and other forms.
// {{count}} resolves to n unless data defines count itself.
func (c *Catalog) Plural(lang, key string, n float64, data any) string {
	c.mu.RLock()
	v := c.lookup(lang, key)
	c.mu.RUnlock()

	if v.Kind() == datapath.Map {
		v = pickForm(v, n)
	}
	if v.Kind() != datapath.Scalar {
		return c.missing(lang, key, v)
	}

	opts := append([]placeholder.Option{
		placeholder.WithLiteralTransform(func(s string) string { return plural.Pluralize(n, s) }),
	}, c.placeholderOpts...)
	return placeholder.Replace(v.String(), withCount{data: data, count: n}, opts...)
}

// RenderContext is Render with the language taken from ctx.
func (c *Catalog) RenderContext(ctx context.Context, key string, data any) string {
	return c.Render(Locale(ctx), key, data)
}

// PluralContext is Plural with the language taken from ctx.
func (c *Catalog) PluralContext(ctx context.Context, key string, n float64, data any) string {
	return c.Plural(Locale(ctx), key, n, data)
}

// resolveLanguage maps lang onto a loaded language. Callers hold c.mu.
func (c *Catalog) resolveLanguage(lang string) string {
	if _, ok := c.templates[lang]; ok {
		return lang
	}
	if lang != "" && c.matcher != nil {
		tag, err := language.Parse(lang)
		if err == nil {
			if _, idx, conf := c.matcher.Match(tag); conf != language.No && idx > 0 {
				return c.languages[idx-1]
			}
		}
	}
	return c.defaultLang
}

func (c *Catalog) lookup(lang, key string) datapath.Value {
	return datapath.Lookup(c.templates[c.resolveLanguage(lang)], key)
}

func (c *Catalog) missing(lang, key string, v datapath.Value) string {
	if c.missingLogMode {
		c.logger.Warn("Template not found",
			slog.String("lang", lang),
			slog.String("key", key),
			slog.String("kind", v.Kind().String()),
		)
	}
	if c.fallbackToKey {
		return key
	}
	return ""
}

// pickForm selects the zero/one/other entry of a plural map.
func pickForm(forms datapath.Value, n float64) datapath.Value {
	if n == 0 {
		if v := forms.Get(FormZero); !v.IsMissing() {
			return v
		}
	}
	if !plural.IsPlural(n) {
		if v := forms.Get(FormOne); !v.IsMissing() {
			return v
		}
	}
	return forms.Get(FormOther)
}

// withCount exposes data with an extra count key.
type withCount struct {
	data  any
	count float64
}

func (w withCount) Get(key string) (any, bool) {
	v := datapath.Lookup(w.data, key)
	if !v.IsMissing() {
		return v.Raw(), true
	}
	if key == CountKey {
		return w.count, true
	}
	return nil, false
}
