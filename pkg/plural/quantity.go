package plural

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var (
	decimalRegex  = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)
	infinityRegex = regexp.MustCompile(`^[+-]?Infinity$`)
	radixRegex    = regexp.MustCompile(`^0([xX][0-9a-fA-F]+|[oO][0-7]+|[bB][01]+)$`)
)

// Quantity coerces v to a number. Go numeric types convert directly, bools
// map to 0 and 1, and strings are parsed as a whole after trimming
// whitespace, see ParseNumber. Nil and other types yield 0.
func Quantity(v any) float64 {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int8:
		f = float64(n)
	case int16:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint:
		f = float64(n)
	case uint8:
		f = float64(n)
	case uint16:
		f = float64(n)
	case uint32:
		f = float64(n)
	case uint64:
		f = float64(n)
	case bool:
		if n {
			f = 1
		}
	case string:
		f = ParseNumber(n)
	default:
		return 0
	}
	return normalize(f)
}

// ParseNumber reads s as a numeric literal: a decimal with optional sign,
// fraction and exponent, a signed "Infinity", or an unsigned 0x, 0o or 0b
// integer. Surrounding whitespace is ignored. Empty and non-numeric strings
// yield 0, as do Go-only forms such as "inf" or "1_000". Values too large
// for float64 become ±Inf.
func ParseNumber(s string) float64 {
	s = strings.TrimSpace(s)

	switch {
	case s == "":
		return 0
	case infinityRegex.MatchString(s):
		if s[0] == '-' {
			return math.Inf(-1)
		}
		return math.Inf(1)
	case radixRegex.MatchString(s):
		return parseRadix(s[2:], radixBase(s[1]))
	case decimalRegex.MatchString(s):
		return parseFloat(s)
	}
	return 0
}

func radixBase(prefix byte) float64 {
	switch prefix {
	case 'x', 'X':
		return 16
	case 'o', 'O':
		return 8
	default:
		return 2
	}
}

// parseRadix accumulates digits in float64 so long literals lose precision
// instead of failing.
func parseRadix(digits string, base float64) float64 {
	var f float64
	for _, r := range digits {
		var d rune
		switch {
		case r >= '0' && r <= '9':
			d = r - '0'
		case r >= 'a' && r <= 'f':
			d = r - 'a' + 10
		default:
			d = r - 'A' + 10
		}
		f = f*base + float64(d)
	}
	return f
}

// parseFloat keeps the ±Inf ParseFloat reports for out of range input.
func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0
	}
	return f
}

// PrefixQuantity parses the integer at the start of s: optional leading
// whitespace, an optional sign and one or more digits. Anything after the
// digits is ignored, so "12abc" yields 12. Without leading digits it
// returns 0.
func PrefixQuantity(s string) float64 {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}

	return normalize(parseFloat(s[:end]))
}

// normalize maps NaN and negative zero to 0.
func normalize(f float64) float64 {
	if math.IsNaN(f) || f == 0 {
		return 0
	}
	return f
}

func formatQuantity(f float64) string {
	if math.IsInf(f, 0) {
		if f > 0 {
			return "Infinity"
		}
		return "-Infinity"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
