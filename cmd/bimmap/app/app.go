// Package app provides the application context and dependency management
// for the bimmap CLI. It centralizes configuration, logging and the lazily
// created bimmap client that commands share.
package app

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/bimmap"
	"github.com/agentstation/bimmap/internal/cmd/application"
	"github.com/agentstation/bimmap/pkg/errors"
)

// App represents the bimmap application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	config *Config
	logger *zerolog.Logger

	// Client instance (lazy-initialized, singleton)
	mu     sync.RWMutex
	client bimmap.Client
}

// Ensure App implements application.Application at compile time.
var _ application.Application = (*App)(nil)

// New creates a new App instance with the given version information.
// The app is initialized with configuration loaded from the environment and
// config file, which functional options can replace.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// Settings returns the configured pipeline input defaults.
func (a *App) Settings() application.Settings {
	return application.Settings{
		VPFile:       a.config.VPFile,
		CentralDoc:   a.config.CentralDoc,
		CentralSheet: a.config.CentralSheet,
		TopN:         a.config.TopN,
	}
}

// Client returns a bimmap client. Without options it returns the shared
// instance, creating it on first use; with options it returns a new client
// configured from the app plus the given options.
func (a *App) Client(opts ...bimmap.Option) (bimmap.Client, error) {
	if len(opts) > 0 {
		c, err := bimmap.New(append(a.clientOptions(), opts...)...)
		if err != nil {
			return nil, errors.WrapResource("create", "client", "with custom options", err)
		}
		return c, nil
	}

	a.mu.RLock()
	if a.client != nil {
		c := a.client
		a.mu.RUnlock()
		return c, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	// Double-check after acquiring write lock
	if a.client != nil {
		return a.client, nil
	}

	c, err := bimmap.New(a.clientOptions()...)
	if err != nil {
		return nil, errors.WrapResource("create", "client", "", err)
	}
	a.client = c
	return c, nil
}

// clientOptions constructs client options from the app configuration.
func (a *App) clientOptions() []bimmap.Option {
	opts := []bimmap.Option{bimmap.WithLogger(a.logger)}
	if a.config.CentralSheet != "" {
		opts = append(opts, bimmap.WithCentralSheet(a.config.CentralSheet))
	}
	return opts
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		if config == nil {
			return errors.NewValidationError("config", nil, "must not be nil")
		}
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithClient sets the shared client (useful for testing).
func WithClient(c bimmap.Client) Option {
	return func(a *App) error {
		a.client = c
		return nil
	}
}
