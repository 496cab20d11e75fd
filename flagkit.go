package flagkit

import (
	"errors"
	"fmt"
	"io"

	"github.com/flagkit/flagkit/pkg/axis"
	"github.com/flagkit/flagkit/pkg/codec"
	"github.com/flagkit/flagkit/pkg/config"
	"github.com/flagkit/flagkit/pkg/engine"
	"github.com/flagkit/flagkit/pkg/identity"
	"github.com/flagkit/flagkit/pkg/logger"
	"github.com/flagkit/flagkit/pkg/registry"
	"github.com/flagkit/flagkit/pkg/snapshot"
	"github.com/flagkit/flagkit/pkg/target"
)

// ErrWrongNamespace is returned when a loaded document declares features
// outside the client's namespace.
var ErrWrongNamespace = errors.New("feature outside client namespace")

// Client is the single entry point for hosts: a namespace-scoped registry,
// an evaluation engine and strict codecs behind one API. Safe for
// concurrent use.
type Client struct {
	namespace string
	registry  *registry.Registry
	engine    *engine.Engine
	decoder   *codec.Decoder
	catalog   *axis.Catalog
}

// New builds a client for the given namespace.
func New(namespace string, opts ...Option) (*Client, error) {
	cfg := clientConfig{historyCapacity: registry.DefaultHistoryCapacity}
	for _, opt := range opts {
		opt(&cfg)
	}

	regOpts := []registry.Option{registry.WithHistoryCapacity(cfg.historyCapacity)}
	if cfg.logger != nil {
		regOpts = append(regOpts, registry.WithLogger(cfg.logger))
	}
	reg, err := registry.New(namespace, regOpts...)
	if err != nil {
		return nil, err
	}

	var engOpts []engine.Option
	if len(cfg.observers) > 0 {
		engOpts = append(engOpts, engine.WithObservers(cfg.observers...))
	}
	eng, err := engine.New(reg, engOpts...)
	if err != nil {
		return nil, err
	}

	var decOpts []codec.Option
	if cfg.catalog != nil {
		decOpts = append(decOpts, codec.WithCatalog(cfg.catalog))
	}

	return &Client{
		namespace: namespace,
		registry:  reg,
		engine:    eng,
		decoder:   codec.NewDecoder(decOpts...),
		catalog:   cfg.catalog,
	}, nil
}

// MustNew is like New but panics on error. Intended for program startup.
func MustNew(namespace string, opts ...Option) *Client {
	c, err := New(namespace, opts...)
	if err != nil {
		panic(fmt.Sprintf("flagkit: %v", err))
	}
	return c
}

// NewFromEnv builds a client configured from FLAGKIT_* environment
// variables: history capacity, log level, and startup kill-switches.
// Explicit options override the environment.
func NewFromEnv(namespace string, opts ...Option) (*Client, error) {
	settings, err := config.Load()
	if err != nil {
		return nil, err
	}

	envOpts := []Option{
		WithHistoryCapacity(settings.HistoryCapacity),
		WithLogger(logger.New(logger.WithLevel(settings.SlogLevel()))),
	}
	client, err := New(namespace, append(envOpts, opts...)...)
	if err != nil {
		return nil, err
	}

	for _, disabled := range settings.DisabledNamespaces {
		if disabled == namespace {
			client.DisableAll()
			break
		}
	}
	return client, nil
}

// Namespace returns the namespace this client serves.
func (c *Client) Namespace() string { return c.namespace }

// Registry exposes the underlying registry for hosts that manage snapshots
// directly.
func (c *Client) Registry() *registry.Registry { return c.registry }

// Catalog returns the attached axis catalog, or nil when none was given.
func (c *Client) Catalog() *axis.Catalog { return c.catalog }

// LoadJSON decodes a JSON document from r and atomically installs it. On
// any decode or validation failure the active configuration is untouched.
func (c *Client) LoadJSON(r io.Reader) error {
	cfg, err := c.decoder.DecodeJSON(r)
	if err != nil {
		return err
	}
	return c.install(cfg)
}

// LoadYAML decodes a YAML document from r and atomically installs it. On
// any decode or validation failure the active configuration is untouched.
func (c *Client) LoadYAML(r io.Reader) error {
	cfg, err := c.decoder.DecodeYAML(r)
	if err != nil {
		return err
	}
	return c.install(cfg)
}

// Load atomically installs an already-built configuration.
func (c *Client) Load(cfg *snapshot.Configuration) error {
	if cfg == nil {
		return registry.ErrNilConfiguration
	}
	return c.install(cfg)
}

func (c *Client) install(cfg *snapshot.Configuration) error {
	for _, id := range cfg.Identities() {
		if id.Namespace() != c.namespace {
			return errors.Join(ErrWrongNamespace,
				fmt.Errorf("%s does not belong to namespace %q", id, c.namespace))
		}
	}
	return c.registry.Load(cfg)
}

// Rollback restores the configuration active the given number of loads ago.
func (c *Client) Rollback(steps int) error {
	return c.registry.Rollback(steps)
}

// DisableAll engages the namespace kill-switch: every evaluation returns
// its feature's default until EnableAll is called.
func (c *Client) DisableAll() { c.registry.DisableAll() }

// EnableAll releases the namespace kill-switch.
func (c *Client) EnableAll() { c.registry.EnableAll() }

// Disabled reports whether the kill-switch is engaged.
func (c *Client) Disabled() bool { return c.registry.Disabled() }

// Evaluate evaluates the named feature for ctx and returns the full result
// with its decision.
func (c *Client) Evaluate(key string, ctx target.Context) (engine.Result, error) {
	id, err := identity.NewFeatureIdentity(c.namespace, key)
	if err != nil {
		return engine.Result{}, err
	}
	return c.engine.Evaluate(id, ctx)
}

// Bool evaluates a boolean feature.
func (c *Client) Bool(key string, ctx target.Context) (bool, error) {
	id, err := identity.NewFeatureIdentity(c.namespace, key)
	if err != nil {
		return false, err
	}
	return c.engine.Bool(id, ctx)
}

// String evaluates a string feature.
func (c *Client) String(key string, ctx target.Context) (string, error) {
	id, err := identity.NewFeatureIdentity(c.namespace, key)
	if err != nil {
		return "", err
	}
	return c.engine.String(id, ctx)
}

// Int evaluates an integer feature.
func (c *Client) Int(key string, ctx target.Context) (int64, error) {
	id, err := identity.NewFeatureIdentity(c.namespace, key)
	if err != nil {
		return 0, err
	}
	return c.engine.Int(id, ctx)
}

// Float evaluates a float feature.
func (c *Client) Float(key string, ctx target.Context) (float64, error) {
	id, err := identity.NewFeatureIdentity(c.namespace, key)
	if err != nil {
		return 0, err
	}
	return c.engine.Float(id, ctx)
}
