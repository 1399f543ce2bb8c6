// Package logger builds *slog.Logger instances from functional options.
//
// New picks a JSON or text handler, attaches static attributes and wraps the
// handler with a decorator that copies values out of context.Context on every
// record. Attribute helpers in attr.go keep key names consistent:
//
//	log := logger.New(
//		logger.WithEnvironment(os.Getenv("TEXTKIT_ENV"), "textkit"),
//		logger.WithLevel(slog.LevelDebug),
//	)
//	log.Info("rendered", logger.Key("cart.items"), logger.Lang("en"))
//
// Helpers such as Error return an empty attribute for nil input, so they can
// be passed unconditionally.
package logger
