package funcs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/textkit/pkg/datapath"
	"github.com/dmitrymomot/textkit/pkg/funcs"
	"github.com/dmitrymomot/textkit/pkg/placeholder"
)

func TestSlug(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		opts []funcs.SlugOption
		want string
	}{
		{"simple", "Hello World", nil, "hello-world"},
		{"diacritics", "Crème Brûlée à la carte", nil, "creme-brulee-a-la-carte"},
		{"punctuation runs", "  --Go!! is   fun?? ", nil, "go-is-fun"},
		{"digits kept", "Release 2.0", nil, "release-2-0"},
		{"custom separator", "a b c", []funcs.SlugOption{funcs.SlugSeparator("_")}, "a_b_c"},
		{"max length cuts at boundary", "hello world", []funcs.SlugOption{funcs.SlugMaxLength(7)}, "hello-w"},
		{"max length drops dangling separator", "hello world", []funcs.SlugOption{funcs.SlugMaxLength(6)}, "hello"},
		{"non latin dropped", "日本 go", nil, "go"},
		{"empty", "", nil, ""},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, funcs.Slug(tt.in, tt.opts...))
		})
	}
}

func TestWith(t *testing.T) {
	t.Parallel()

	t.Run("builtins resolve in placeholders", func(t *testing.T) {
		t.Parallel()
		data := funcs.With(map[string]any{
			"name":  "ada lovelace",
			"title": "Élan Vital",
			"color": "abc",
			"pad":   "  x  ",
		})

		assert.Equal(t, "ADA LOVELACE", placeholder.Replace("{{upper(name)}}", data))
		assert.Equal(t, "Ada Lovelace", placeholder.Replace("{{title(name)}}", data))
		assert.Equal(t, "Ada lovelace", placeholder.Replace("{{capitalize(name)}}", data))
		assert.Equal(t, "elan-vital", placeholder.Replace("{{slug(title)}}", data))
		assert.Equal(t, "#aabbcc", placeholder.Replace("{{hex(color)}}", data))
		assert.Equal(t, "[x]", placeholder.Replace("[{{trim(pad)}}]", data))
		assert.Equal(t, "élan vital", placeholder.Replace("{{lower(title)}}", data))
	})

	t.Run("data shadows builtins", func(t *testing.T) {
		t.Parallel()
		data := funcs.With(datapath.M{
			"name":  "ada",
			"upper": datapath.Func(func(v any) string { return "custom" }),
		})
		assert.Equal(t, "custom", placeholder.Replace("{{upper(name)}}", data))
	})

	t.Run("plain data still resolves", func(t *testing.T) {
		t.Parallel()
		data := funcs.With(map[string]any{"user": map[string]any{"name": "Ada"}})
		assert.Equal(t, "Ada", placeholder.Replace("{{user.name}}", data))
		assert.Equal(t, "", placeholder.Replace("{{nope}}", data))
	})

	t.Run("nil data", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", placeholder.Replace("{{upper(name)}}", funcs.With(nil)))
	})
}
