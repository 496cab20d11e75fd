package telemetry

import (
	"context"
	"log/slog"

	"github.com/flagkit/flagkit/pkg/engine"
	"github.com/flagkit/flagkit/pkg/logger"
)

// SlogObserver is an engine observer that logs every evaluation at debug
// level. Pair it with a debug-level logger in development; at the default
// info level it stays silent.
type SlogObserver struct {
	log *slog.Logger
}

var _ engine.Observer = (*SlogObserver)(nil)

// NewSlogObserver wraps log as an observer. A nil log falls back to
// slog.Default().
func NewSlogObserver(log *slog.Logger) *SlogObserver {
	if log == nil {
		log = slog.Default()
	}
	return &SlogObserver{log: log}
}

// Observe implements engine.Observer.
func (o *SlogObserver) Observe(rec engine.Record) {
	attrs := []slog.Attr{
		slog.String("evaluation_id", rec.ID.String()),
		logger.Namespace(rec.Namespace),
		logger.Feature(rec.FeatureKey),
		logger.Decision(string(rec.Kind)),
		logger.Elapsed(rec.Elapsed),
	}
	if rec.HasBucket {
		attrs = append(attrs, slog.Int("bucket", rec.Bucket))
	}
	if rec.ViaAllowlist {
		attrs = append(attrs, slog.Bool("allowlisted", true))
	}
	o.log.LogAttrs(context.Background(), slog.LevelDebug, "flag evaluated", attrs...)
}
