// Package logger builds configured slog loggers for flagkit components and
// provides attribute helpers with the library's canonical field names.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithFormat(logger.FormatText),
//	    logger.WithService("flag-sync"),
//	)
//
//	reg := registry.MustNew("checkout", registry.WithLogger(log))
//
// The default configuration writes JSON to stdout at info level, suitable
// for log aggregation in production.
package logger
