package textfmt

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// DefaultPadChar is used when no pad character is given.
const DefaultPadChar = " "

// Pad appends chr to s until the visible text of s, with ANSI styling
// stripped, is at least length characters long. Strings already at or past
// length are returned unchanged. chr defaults to a space.
//
// Pad panics with ErrInvalidPadChar when chr is not a single character.
func Pad(s string, length int, chr ...string) string {
	c := padChar(chr)

	visible := utf8.RuneCountInString(ansi.Strip(s))
	if visible >= length {
		return s
	}
	return s + strings.Repeat(c, length-visible)
}

// PadWidth is like Pad but measures terminal cells rather than characters.
// A wide pad character may overshoot width by one cell.
func PadWidth(s string, width int, chr ...string) string {
	c := padChar(chr)

	cw := runewidth.StringWidth(c)
	if cw < 1 {
		panic(ErrInvalidPadChar)
	}

	visible := ansi.StringWidth(s)
	if visible >= width {
		return s
	}
	n := (width - visible + cw - 1) / cw
	return s + strings.Repeat(c, n)
}

func padChar(chr []string) string {
	switch len(chr) {
	case 0:
		return DefaultPadChar
	case 1:
		if utf8.RuneCountInString(chr[0]) != 1 {
			panic(ErrInvalidPadChar)
		}
		return chr[0]
	default:
		panic(ErrInvalidPadChar)
	}
}
