package logger

import (
	"log/slog"
	"time"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Namespace records a flag namespace under the key "namespace".
func Namespace(name string) slog.Attr {
	return slog.String("namespace", name)
}

// Feature records a feature key under the key "feature".
func Feature(key string) slog.Attr {
	return slog.String("feature", key)
}

// Decision records an evaluation decision kind under the key "decision".
func Decision(kind string) slog.Attr {
	return slog.String("decision", kind)
}

// Elapsed records a duration in seconds under the key "elapsed".
func Elapsed(d time.Duration) slog.Attr {
	return slog.Float64("elapsed", d.Seconds())
}

// ConfigVersion records a configuration version label under the key
// "config_version".
func ConfigVersion(v string) slog.Attr {
	return slog.String("config_version", v)
}
