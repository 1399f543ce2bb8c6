package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/textkit/pkg/config"
	"github.com/dmitrymomot/textkit/pkg/logger"
)

// Config is read from TEXTKIT_* environment variables and .env.
type Config struct {
	Env         string `env:"ENV" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL"`
	LogFormat   string `env:"LOG_FORMAT"`
	CatalogPath string `env:"CATALOG_PATH"`
	DefaultLang string `env:"DEFAULT_LANG" envDefault:"en"`
	PadChar     string `env:"PAD_CHAR" envDefault:" "`
}

const envPrefix = "TEXTKIT_"

func main() {
	var cfg Config
	if err := config.Load(&cfg, config.WithPrefix(envPrefix)); err != nil {
		fmt.Fprintf(os.Stderr, "textkit: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, cfg, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// run executes one subcommand. Errors are logged to stderr before returning.
func run(ctx context.Context, cfg Config, args []string, stdout, stderr io.Writer) error {
	log, err := newLogger(cfg, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "textkit: %v\n", err)
		return err
	}

	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return errUsage
	}

	name, rest := args[0], args[1:]
	cmd, ok := commands[name]
	if !ok {
		fmt.Fprint(stderr, usage)
		log.ErrorContext(ctx, "unknown command", logger.Command(name))
		return errUsage
	}

	env := &cmdEnv{cfg: cfg, log: log, stdout: stdout, stderr: stderr}
	if err := cmd(ctx, env, rest); err != nil {
		log.ErrorContext(ctx, "command failed", logger.Command(name), logger.Error(err))
		return err
	}
	return nil
}

// newLogger applies environment defaults first so explicit level and format
// settings win.
func newLogger(cfg Config, w io.Writer) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, "textkit"),
		logger.WithOutput(w),
	}
	if cfg.LogLevel != "" {
		opts = append(opts, logger.WithLevelName(cfg.LogLevel))
	}
	switch f := logger.Format(cfg.LogFormat); f {
	case "":
	case logger.FormatJSON, logger.FormatText:
		opts = append(opts, logger.WithFormat(f))
	default:
		return nil, fmt.Errorf("%w: unknown log format %q", errUsage, cfg.LogFormat)
	}
	return logger.New(opts...), nil
}

const usage = `usage: textkit <command> [flags] [args]

commands:
  plural   render a pluralization template
  replace  substitute {{placeholders}} from a data file
  pad      right-pad a string to a visible length
  hex      normalize or convert a hex color
  render   render a message from a template catalog
`
