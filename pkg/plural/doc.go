// Package plural selects singular or plural wording inside a template
// according to a numeric quantity.
//
// A template is ordinary text with tokens in curly braces:
//
//   - {#} is replaced with the quantity itself
//   - {singular|plural} picks one of two choices
//   - {suffix} is emitted only for plural quantities
//
// Plural is chosen for every quantity other than exactly 1, so 0 and
// negative numbers are plural too. This is deliberately simple English-style
// selection and not a locale-aware plural rule engine.
//
// # Usage
//
//	plural.Pluralize(1, "dog{s}")                       // "dog"
//	plural.Pluralize(2, "g{oo|ee}se")                   // "geese"
//	plural.Pluralize(2, "There w{as|ere} {#} dog{s}")   // "There were 2 dogs"
//
// Parse reads the quantity from the leading integer of the template and then
// renders the whole template, leading digits included:
//
//	plural.Parse("0 g{oo|ee}se") // "0 geese"
//
// Any accepts loosely typed quantities, such as numeric strings, and coerces
// anything that is not a number to 0.
package plural
