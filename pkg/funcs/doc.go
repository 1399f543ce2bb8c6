// Package funcs provides built-in unary functions for {{fn(path)}}
// placeholders.
//
// Builtins are layered underneath caller data with With, so a function of
// the same name in the data map always wins:
//
//	data := funcs.With(map[string]any{"name": "élan vital"})
//	placeholder.Replace("{{slug(name)}}", data) // "elan-vital"
//
// Available functions: upper, lower, title, capitalize, trim, slug, hex.
package funcs
