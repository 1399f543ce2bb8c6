package plural_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/textkit/pkg/plural"
)

var quantities = []struct {
	n   float64
	str string
}{
	{n: 1, str: "1"},
	{n: 0, str: "0"},
	{n: 2, str: "2"},
	{n: -1, str: "-1"},
	{n: 10, str: "10"},
}

func TestPluralize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		tmpl     string
		expected map[float64]string
	}{
		{
			name: "no tokens",
			tmpl: "blah",
			expected: map[float64]string{
				1: "blah", 0: "blah", 2: "blah", -1: "blah", 10: "blah",
			},
		},
		{
			name: "plural suffix",
			tmpl: "dog{s}",
			expected: map[float64]string{
				1: "dog", 0: "dogs", 2: "dogs", -1: "dogs", 10: "dogs",
			},
		},
		{
			name: "singular and plural choice",
			tmpl: "i have {a goose|geese}",
			expected: map[float64]string{
				1:  "i have a goose",
				0:  "i have geese",
				2:  "i have geese",
				-1: "i have geese",
				10: "i have geese",
			},
		},
		{
			name: "quantity token",
			tmpl: "the number {#} here",
			expected: map[float64]string{
				1:  "the number 1 here",
				0:  "the number 0 here",
				2:  "the number 2 here",
				-1: "the number -1 here",
				10: "the number 10 here",
			},
		},
		{
			name: "multiple tokens",
			tmpl: "there w{as|ere} {#} pe{rson|ople} in {#} car{s}",
			expected: map[float64]string{
				1:  "there was 1 person in 1 car",
				0:  "there were 0 people in 0 cars",
				2:  "there were 2 people in 2 cars",
				-1: "there were -1 people in -1 cars",
				10: "there were 10 people in 10 cars",
			},
		},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			for _, q := range quantities {
				assert.Equal(t, tt.expected[q.n], plural.Pluralize(q.n, tt.tmpl), "quantity %v", q.n)
				assert.Equal(t, tt.expected[q.n], plural.Any(q.str, tt.tmpl), "quantity %q", q.str)
			}
		})
	}
}

func TestPluralizeEdgeCases(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		n        float64
		tmpl     string
		expected string
	}{
		{name: "fractional quantity is plural", n: 1.5, tmpl: "{#} mile{s}", expected: "1.5 miles"},
		{name: "NaN is zero", n: math.NaN(), tmpl: "{#} dog{s}", expected: "0 dogs"},
		{name: "negative zero", n: math.Copysign(0, -1), tmpl: "{#} dog{s}", expected: "0 dogs"},
		{name: "empty token", n: 2, tmpl: "a{}b", expected: "ab"},
		{name: "extra choices use the second", n: 2, tmpl: "{a|b|c}", expected: "b"},
		{name: "extra choices singular", n: 1, tmpl: "{a|b|c}", expected: "a"},
		{name: "empty plural choice", n: 2, tmpl: "x{y|}z", expected: "xz"},
		{name: "unmatched opening brace", n: 2, tmpl: "dog{s} {oops", expected: "dogs {oops"},
		{name: "unmatched closing brace", n: 2, tmpl: "dog} {s}", expected: "dog} s"},
		{name: "brace inside token", n: 2, tmpl: "{{s}}", expected: "{s}"},
		{name: "hash with spaces is a suffix", n: 1, tmpl: "{ # }", expected: ""},
		{name: "large number", n: 1234567, tmpl: "{#}", expected: "1234567"},
		{name: "empty template", n: 2, tmpl: "", expected: ""},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, plural.Pluralize(tt.n, tt.tmpl))
		})
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		tmpl     string
		expected string
	}{
		{name: "no formatting", tmpl: "blah", expected: "blah"},
		{name: "suffix singular", tmpl: "1 dog{s}", expected: "1 dog"},
		{name: "suffix zero", tmpl: "0 dog{s}", expected: "0 dogs"},
		{name: "suffix plural", tmpl: "2 dog{s}", expected: "2 dogs"},
		{name: "suffix negative", tmpl: "-1 dog{s}", expected: "-1 dogs"},
		{name: "suffix ten", tmpl: "10 dog{s}", expected: "10 dogs"},
		{name: "choice singular", tmpl: "1 {goose|geese}", expected: "1 goose"},
		{name: "choice zero", tmpl: "0 g{oo|ee}se", expected: "0 geese"},
		{name: "choice negative", tmpl: "-1 {goose|geese}", expected: "-1 geese"},
		{name: "quantity token", tmpl: "10 the number {#} here", expected: "10 the number 10 here"},
		{
			name:     "multiple tokens",
			tmpl:     "1 there w{as|ere} {#} pe{rson|ople} in {#} car{s}",
			expected: "1 there was 1 person in 1 car",
		},
		{name: "no prefix means zero", tmpl: "dog{s} {#}", expected: "dogs 0"},
		{name: "lenient prefix", tmpl: "1abc dog{s}", expected: "1abc dog"},
		{name: "leading whitespace", tmpl: "  1 dog{s}", expected: "  1 dog"},
		{name: "fraction is truncated", tmpl: "1.5 mile{s}", expected: "1.5 mile"},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, plural.Parse(tt.tmpl))
		})
	}
}

func TestQuantity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    any
		expected float64
	}{
		{name: "float64", input: 2.5, expected: 2.5},
		{name: "int", input: 3, expected: 3},
		{name: "int64", input: int64(-4), expected: -4},
		{name: "uint8", input: uint8(7), expected: 7},
		{name: "float32", input: float32(0.5), expected: 0.5},
		{name: "true", input: true, expected: 1},
		{name: "false", input: false, expected: 0},
		{name: "numeric string", input: "10", expected: 10},
		{name: "negative string", input: "-1", expected: -1},
		{name: "padded string", input: " 2 ", expected: 2},
		{name: "empty string", input: "", expected: 0},
		{name: "non numeric string", input: "abc", expected: 0},
		{name: "partially numeric string", input: "12abc", expected: 0},
		{name: "nan string", input: "NaN", expected: 0},
		{name: "fraction string", input: "1.5", expected: 1.5},
		{name: "leading dot string", input: ".5", expected: 0.5},
		{name: "exponent string", input: "2e3", expected: 2000},
		{name: "hex string", input: "0x10", expected: 16},
		{name: "octal string", input: "0o17", expected: 15},
		{name: "binary string", input: "0b101", expected: 5},
		{name: "signed hex string", input: "-0x10", expected: 0},
		{name: "infinity string", input: "Infinity", expected: math.Inf(1)},
		{name: "negative infinity string", input: "-Infinity", expected: math.Inf(-1)},
		{name: "go inf string", input: "inf", expected: 0},
		{name: "go infinity spelling", input: "infinity", expected: 0},
		{name: "underscore string", input: "1_000", expected: 0},
		{name: "go hex float string", input: "0x1p-2", expected: 0},
		{name: "out of range string", input: "1e400", expected: math.Inf(1)},
		{name: "nil", input: nil, expected: 0},
		{name: "struct", input: struct{}{}, expected: 0},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, plural.Quantity(tt.input))
		})
	}
}

func TestPrefixQuantity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected float64
	}{
		{input: "2 dogs", expected: 2},
		{input: "-3 dogs", expected: -3},
		{input: "+4", expected: 4},
		{input: "12abc", expected: 12},
		{input: "  7", expected: 7},
		{input: "\t\n8 x", expected: 8},
		{input: "abc", expected: 0},
		{input: "-", expected: 0},
		{input: "", expected: 0},
		{input: "-0", expected: 0},
		{input: "3.9", expected: 3},
		{input: strings.Repeat("9", 400) + " dogs", expected: math.Inf(1)},
		{input: "-" + strings.Repeat("9", 400), expected: math.Inf(-1)},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, plural.PrefixQuantity(tt.input))
		})
	}
}

func TestQuantityRendering(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0 xs", plural.Any("inf", "{#} x{s}"))
	assert.Equal(t, "16 xs", plural.Any("0x10", "{#} x{s}"))
	assert.Equal(t, "0 xs", plural.Any("1_000", "{#} x{s}"))
	assert.Equal(t, "Infinity xs", plural.Any("Infinity", "{#} x{s}"))

	huge := strings.Repeat("9", 400)
	assert.Equal(t, huge+" dogs Infinity", plural.Parse(huge+" dog{s} {#}"))
	assert.Equal(t, "-"+huge+" dogs -Infinity", plural.Parse("-"+huge+" dog{s} {#}"))
}

func TestIsPlural(t *testing.T) {
	t.Parallel()

	assert.False(t, plural.IsPlural(1))
	assert.True(t, plural.IsPlural(0))
	assert.True(t, plural.IsPlural(-1))
	assert.True(t, plural.IsPlural(2))
	assert.True(t, plural.IsPlural(math.NaN()))
}

func TestPluralizeIdempotentWithoutTokens(t *testing.T) {
	t.Parallel()

	once := plural.Pluralize(3, "{#} dog{s}")
	assert.Equal(t, "3 dogs", once)
	assert.Equal(t, once, plural.Pluralize(3, once))
}
