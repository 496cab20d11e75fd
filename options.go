package flagkit

import (
	"log/slog"

	"github.com/flagkit/flagkit/pkg/axis"
	"github.com/flagkit/flagkit/pkg/engine"
)

// Option configures a Client.
type Option func(*clientConfig)

type clientConfig struct {
	historyCapacity int
	logger          *slog.Logger
	catalog         *axis.Catalog
	observers       []engine.Observer
}

// WithHistoryCapacity bounds the client's rollback history. Zero disables
// rollback.
func WithHistoryCapacity(n int) Option {
	return func(c *clientConfig) { c.historyCapacity = n }
}

// WithLogger attaches a logger to the client's registry. Configuration
// loads, rollbacks and kill-switch transitions are logged.
func WithLogger(log *slog.Logger) Option {
	return func(c *clientConfig) {
		if log != nil {
			c.logger = log
		}
	}
}

// WithCatalog attaches an axis catalog. Loaded documents are then rejected
// when they reference axes or axis values the catalog does not define.
func WithCatalog(catalog *axis.Catalog) Option {
	return func(c *clientConfig) { c.catalog = catalog }
}

// WithObservers attaches evaluation observers, such as those in
// pkg/telemetry.
func WithObservers(observers ...engine.Observer) Option {
	return func(c *clientConfig) {
		c.observers = append(c.observers, observers...)
	}
}
