package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/dmitrymomot/textkit/pkg/catalog"
	"github.com/dmitrymomot/textkit/pkg/funcs"
	"github.com/dmitrymomot/textkit/pkg/hexcolor"
	"github.com/dmitrymomot/textkit/pkg/logger"
	"github.com/dmitrymomot/textkit/pkg/placeholder"
	"github.com/dmitrymomot/textkit/pkg/plural"
	"github.com/dmitrymomot/textkit/pkg/textfmt"
)

type cmdEnv struct {
	cfg    Config
	log    *slog.Logger
	stdout io.Writer
	stderr io.Writer
}

type command func(ctx context.Context, env *cmdEnv, args []string) error

var commands = map[string]command{
	"plural":  runPlural,
	"replace": runReplace,
	"pad":     runPad,
	"hex":     runHex,
	"render":  runRender,
}

func (e *cmdEnv) flags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	return fs
}

func runPlural(ctx context.Context, env *cmdEnv, args []string) error {
	fs := env.flags("plural")
	n := fs.String("n", "", "quantity (default: leading number of the template)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("%w: plural expects one template", errUsage)
	}
	tmpl := fs.Arg(0)

	var out string
	if *n == "" {
		out = plural.Parse(tmpl)
	} else {
		q := plural.Quantity(*n)
		env.log.DebugContext(ctx, "pluralizing", logger.Template(tmpl), logger.Quantity(q))
		out = plural.Pluralize(q, tmpl)
	}
	_, err := fmt.Fprintln(env.stdout, out)
	return err
}

func runReplace(ctx context.Context, env *cmdEnv, args []string) error {
	fs := env.flags("replace")
	dataPath := fs.String("data", "", "YAML, TOML or JSON data file")
	delims := fs.String("delims", "", "custom delimiters as START,END")
	list := fs.Bool("list", false, "list placeholders instead of replacing them")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("%w: replace expects one template", errUsage)
	}
	tmpl := fs.Arg(0)

	var opts []placeholder.Option
	if *delims != "" {
		start, end, ok := strings.Cut(*delims, ",")
		if !ok || start == "" || end == "" {
			return fmt.Errorf("%w: -delims must look like START,END", errUsage)
		}
		opts = append(opts, placeholder.WithDelimiters(start, end))
	}

	if *list {
		for _, p := range placeholder.Placeholders(tmpl, opts...) {
			if _, err := fmt.Fprintln(env.stdout, p); err != nil {
				return err
			}
		}
		return nil
	}

	data, err := loadData(*dataPath)
	if err != nil {
		return err
	}
	env.log.DebugContext(ctx, "replacing", logger.Template(tmpl), slog.Int("keys", len(data)))

	_, err = fmt.Fprintln(env.stdout, placeholder.Replace(tmpl, funcs.With(data), opts...))
	return err
}

func runPad(_ context.Context, env *cmdEnv, args []string) (err error) {
	fs := env.flags("pad")
	chr := fs.String("char", env.cfg.PadChar, "single pad character")
	cells := fs.Bool("width", false, "measure terminal cells instead of characters")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("%w: pad expects LENGTH STRING", errUsage)
	}
	length, err := strconv.Atoi(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("%w: invalid length %q", errUsage, fs.Arg(0))
	}

	// An invalid pad character is a usage error here, not a crash.
	defer func() {
		if r := recover(); r != nil {
			if r != textfmt.ErrInvalidPadChar {
				panic(r)
			}
			err = fmt.Errorf("%w: %v", errUsage, textfmt.ErrInvalidPadChar)
		}
	}()

	pad := textfmt.Pad
	if *cells {
		pad = textfmt.PadWidth
	}
	// Brackets make trailing padding visible.
	_, err = fmt.Fprintf(env.stdout, "[%s]\n", pad(fs.Arg(1), length, *chr))
	return err
}

func runHex(_ context.Context, env *cmdEnv, args []string) error {
	fs := env.flags("hex")
	noHash := fs.Bool("no-hash", false, "omit the leading #")
	rgb := fs.Bool("rgb", false, "print red, green and blue components")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("%w: hex expects one color", errUsage)
	}

	if *rgb {
		c, err := hexcolor.ToRGB(fs.Arg(0))
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(env.stdout, "%d,%d,%d\n", c[0], c[1], c[2])
		return err
	}
	_, err := fmt.Fprintln(env.stdout, hexcolor.Ensure(fs.Arg(0), *noHash))
	return err
}

func runRender(ctx context.Context, env *cmdEnv, args []string) error {
	fs := env.flags("render")
	path := fs.String("catalog", env.cfg.CatalogPath, "template file or directory")
	lang := fs.String("lang", env.cfg.DefaultLang, "language")
	n := fs.String("n", "", "quantity; renders the plural form when set")
	dataPath := fs.String("data", "", "YAML, TOML or JSON data file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("%w: render expects one key", errUsage)
	}
	if *path == "" {
		return fmt.Errorf("%w: no catalog given (-catalog or TEXTKIT_CATALOG_PATH)", errUsage)
	}
	key := fs.Arg(0)

	adapter, err := catalogAdapter(*path)
	if err != nil {
		return err
	}
	c, err := catalog.New(ctx, adapter,
		catalog.WithDefaultLanguage(env.cfg.DefaultLang),
		catalog.WithLogger(env.log),
		catalog.WithMissingLogging(true),
	)
	if err != nil {
		return err
	}

	data, err := loadData(*dataPath)
	if err != nil {
		return err
	}

	env.log.DebugContext(ctx, "rendering", logger.Key(key), logger.Lang(*lang))

	var out string
	if *n == "" {
		out = c.Render(*lang, key, funcs.With(data))
	} else {
		out = c.Plural(*lang, key, plural.Quantity(*n), funcs.With(data))
	}
	_, err = fmt.Fprintln(env.stdout, out)
	return err
}
