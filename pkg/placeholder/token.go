package placeholder

import (
	"regexp"

	"github.com/dmitrymomot/textkit/pkg/datapath"
)

var callRegex = regexp.MustCompile(`^([^(]+)\(([^)]+)\)$`)

// token is a parsed token body: either a plain path or a call.
type token struct {
	fn   string // empty for plain path tokens
	path string
}

func parseToken(inner string) token {
	if m := callRegex.FindStringSubmatch(inner); m != nil {
		return token{fn: m[1], path: m[2]}
	}
	return token{path: inner}
}

func (t token) isCall() bool { return t.fn != "" }

// resolve computes the replacement for a single token.
func (t token) resolve(data any) string {
	if !t.isCall() {
		return datapath.Lookup(data, t.path).String()
	}

	fn := datapath.Lookup(data, t.fn)
	if fn.Kind() != datapath.Callable {
		return ""
	}

	arg := datapath.Lookup(data, t.path)
	if arg.IsMissing() {
		return ""
	}

	out, _ := fn.Call(arg)
	return out
}
