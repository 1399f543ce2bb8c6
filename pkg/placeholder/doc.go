// Package placeholder replaces delimiter-wrapped tokens in a template with
// values resolved from a data map.
//
// The default delimiters are double curly braces. A token is either a dotted
// path, resolved with package datapath, or a single-level call of the form
// fn(path), where fn resolves to a function stored in the same data map and
// path resolves to its only argument.
//
// Missing data never fails: a token whose path or function cannot be resolved
// is replaced with an empty string. When the function of a call token is
// missing, its argument is not resolved at all.
//
// # Usage
//
//	out := placeholder.Replace("{{name}} is a {{creature}}", datapath.M{
//		"name":     "Benedict",
//		"creature": "bear",
//	})
//	// out == "Benedict is a bear"
//
//	out = placeholder.Replace("pick up {{ownership(name)}} car", datapath.M{
//		"name":      "Jess",
//		"ownership": func(s string) string { return s + "'" },
//	})
//	// out == "pick up Jess' car"
//
// # Custom Delimiters
//
// WithPattern accepts any compiled regular expression whose first capture
// group is the token's inner text. The pattern is not validated.
// WithDelimiters builds such a pattern from literal start and end markers:
//
//	out := placeholder.Replace("~name~ likes ~food~", data,
//		placeholder.WithDelimiters("~", "~"),
//	)
package placeholder
