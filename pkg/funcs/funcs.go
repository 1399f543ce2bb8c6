package funcs

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/textkit/pkg/datapath"
	"github.com/dmitrymomot/textkit/pkg/hexcolor"
	"github.com/dmitrymomot/textkit/pkg/textfmt"
)

// Builtins returns a fresh map of the built-in functions.
func Builtins() datapath.M {
	return datapath.M{
		"upper":      func(s string) string { return cases.Upper(language.Und).String(s) },
		"lower":      func(s string) string { return cases.Lower(language.Und).String(s) },
		"title":      func(s string) string { return cases.Title(language.Und).String(s) },
		"capitalize": textfmt.Capitalize,
		"trim":       strings.TrimSpace,
		"slug":       func(s string) string { return Slug(s) },
		"hex":        func(s string) string { return hexcolor.Ensure(s, false) },
	}
}

// With layers the builtins underneath data.
func With(data any) datapath.Getter {
	return layered{data: data, builtins: Builtins()}
}

type layered struct {
	data     any
	builtins datapath.M
}

func (l layered) Get(key string) (any, bool) {
	if v := datapath.Lookup(l.data, key); !v.IsMissing() {
		return v.Raw(), true
	}
	fn, ok := l.builtins[key]
	return fn, ok
}
