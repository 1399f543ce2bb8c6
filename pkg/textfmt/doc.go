// Package textfmt provides small display-oriented string transforms.
//
// Pad and PadWidth right-pad strings that may carry ANSI styling sequences.
// The styling is kept in the output, but the target length is measured on the
// visible text only, so colored and plain cells line up in terminal tables:
//
//	textfmt.Pad("\x1b[31mok\x1b[0m", 4) // "\x1b[31mok\x1b[0m  "
//
// Pad counts characters (runes) of the visible text. PadWidth counts terminal
// cells instead, so wide East Asian characters and emoji take two columns.
//
// The pad character must be exactly one character. Anything else is a
// programming error and both functions panic with ErrInvalidPadChar.
//
// Capitalize upper-cases the first character of a string and EscapeRegexp
// quotes a literal for use inside a regular expression.
package textfmt
