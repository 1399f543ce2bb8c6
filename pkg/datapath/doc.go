// Package datapath resolves dotted paths such as "user.address.city" against
// heterogeneous data maps whose values may be nested maps, scalars or unary
// functions.
//
// Resolution never fails loudly. Any missing segment, a segment that narrows
// into something that is not a container, or a nil value produces a Value of
// kind Missing, which renders as an empty string.
//
// # Containers
//
// The following types are traversed by Lookup:
//
//   - map[string]any and M
//   - map[string]string
//   - map[any]any with string keys (as produced by some YAML decoders)
//   - any type implementing Getter
//
// # Callables
//
// Func, func(any) string, func(string) string and func(any) any are all
// recognised as callables. They are invoked through Value.Call.
//
// # Usage
//
//	data := datapath.M{
//		"user": datapath.M{"name": "Jess"},
//		"possessive": func(s string) string { return s + "'" },
//	}
//
//	name := datapath.Lookup(data, "user.name")
//	fn := datapath.Lookup(data, "possessive")
//	out, _ := fn.Call(name) // "Jess'"
package datapath
