package datapath

import (
	"strings"
)

// Separator splits path segments.
const Separator = "."

// Value is the result of resolving a path.
type Value struct {
	kind Kind
	raw  any
}

// Of classifies an arbitrary value.
func Of(v any) Value {
	if v == nil {
		return Value{}
	}
	switch v.(type) {
	case map[string]any, M, map[string]string, map[any]any, Getter:
		return Value{kind: Map, raw: v}
	case Func, func(any) string, func(string) string, func(any) any:
		return Value{kind: Callable, raw: v}
	default:
		return Value{kind: Scalar, raw: v}
	}
}

// Kind returns the value's classification.
func (v Value) Kind() Kind { return v.kind }

// Raw returns the underlying value, or nil when missing.
func (v Value) Raw() any { return v.raw }

// IsMissing reports whether the path failed to resolve.
func (v Value) IsMissing() bool { return v.kind == Missing }

// Lookup walks path through data. The first segment is resolved against data
// itself and every following segment against the previous result.
func Lookup(data any, path string) Value {
	current := Of(data)
	for _, key := range strings.Split(path, Separator) {
		current = current.child(key)
		if current.kind == Missing {
			return current
		}
	}
	return current
}

// Get resolves a single key on a Map value.
func (v Value) Get(key string) Value {
	return v.child(key)
}

func (v Value) child(key string) Value {
	if v.kind != Map {
		return Value{}
	}

	switch m := v.raw.(type) {
	case map[string]any:
		if val, ok := m[key]; ok {
			return Of(val)
		}
	case M:
		if val, ok := m[key]; ok {
			return Of(val)
		}
	case map[string]string:
		if val, ok := m[key]; ok {
			return Of(val)
		}
	case map[any]any:
		if val, ok := m[key]; ok {
			return Of(val)
		}
	case Getter:
		if val, ok := m.Get(key); ok {
			return Of(val)
		}
	}
	return Value{}
}
