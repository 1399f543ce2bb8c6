// Package catalog stores message templates per language and renders them with
// the plural and placeholder packages.
//
// Templates are loaded once through an Adapter, which returns a
// language -> nested map structure. Keys are dotted paths into that structure,
// so "cart.items" resolves catalog["en"]["cart"]["items"].
//
// # Loading
//
// Ready-made adapters read from an in-memory map, a single file, a directory
// or any fs.FS (including embed.FS). Files are decoded by a Parser chosen by
// extension: YAML, TOML and JSON are supported.
//
//	adapter := catalog.NewDirectoryAdapter(catalog.NewYAMLParser(), "./messages")
//	c, err := catalog.New(ctx, adapter,
//		catalog.WithDefaultLanguage("en"),
//		catalog.WithLogger(log),
//	)
//
// # Rendering
//
// Render looks up a template and substitutes {{placeholders}} from data.
// Plural resolves {plural|tokens} in the literal text against n and
// substitutes placeholders, with {{count}} bound to n unless data already has
// a count. Substituted values are never treated as plural tokens.
// A plural entry may also be a map of "zero", "one" and "other" forms.
//
//	// en.yaml:
//	//   cart:
//	//     items: "{{name}}, you have {#} item{s} in your cart"
//	msg := c.Plural("en", "cart.items", 3, datapath.M{"name": "Tim"})
//	// msg == "Tim, you have 3 items in your cart"
//
// # Language Fallback
//
// Unknown languages are matched against the loaded ones with
// golang.org/x/text/language, so "en-GB" can be served by "en". When nothing
// matches, the default language is used. Missing keys render as the key
// itself unless WithFallbackToKey(false) is set, in which case they render
// as an empty string.
//
// A Catalog is safe for concurrent use. Reload swaps the whole template set
// atomically.
package catalog
