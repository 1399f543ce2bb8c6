package hexcolor

import (
	"errors"
	"strconv"
	"strings"
)

const hash = "#"

// Ensure returns color as a six character hex string. Three character
// shorthand is expanded by doubling each character, any other length is left
// as is. The result is prefixed with '#' unless noHash is set.
func Ensure(color string, noHash bool) string {
	color = strings.TrimPrefix(color, hash)

	if r := []rune(color); len(r) == 3 {
		color = string([]rune{r[0], r[0], r[1], r[1], r[2], r[2]})
	}

	if noHash {
		return color
	}
	return hash + color
}

// ToInt parses color as a hexadecimal integer after normalizing it with Ensure.
// Values that do not fit in an int return ErrInvalidHex.
func ToInt(color string) (int, error) {
	n, err := strconv.ParseInt(Ensure(color, true), 16, strconv.IntSize)
	if err != nil {
		return 0, errors.Join(ErrInvalidHex, err)
	}
	return int(n), nil
}

// ToRGB returns the red, green and blue components of color.
// Only the lowest 24 bits are split into channels, red takes whatever is
// above the lowest 16.
func ToRGB(color string) ([3]int, error) {
	n, err := ToInt(color)
	if err != nil {
		return [3]int{}, err
	}
	return [3]int{n >> 16, n >> 8 & 0xff, n & 0xff}, nil
}

// FromInt formats n as a lowercase hex color with a leading '#'.
// The result is not zero padded.
func FromInt(n int) string {
	return hash + strconv.FormatInt(int64(n), 16)
}
