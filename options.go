package bimmap

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/agentstation/bimmap/pkg/workbook"
)

// config holds the Client configuration
type config struct {
	centralSheet string
	opener       workbook.Opener
	logger       *zerolog.Logger
}

func defaultConfig() *config {
	return &config{
		opener: workbook.DefaultOpener,
	}
}

// options applies the given options to the client
func (c *client) options(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c.config); err != nil {
			return err
		}
	}
	return nil
}

// Option is a function that configures a Client
type Option func(*config) error

// WithCentralSheet selects the central document sheet. Without it the Linear
// sheet is used, or the first sheet when the workbook has no Linear sheet.
func WithCentralSheet(sheet string) Option {
	return func(c *config) error {
		if sheet == "" {
			return fmt.Errorf("central sheet name must not be empty")
		}
		c.centralSheet = sheet
		return nil
	}
}

// WithOpener configures how workbooks are opened, for example from memory in tests
func WithOpener(opener workbook.Opener) Option {
	return func(c *config) error {
		if opener == nil {
			return fmt.Errorf("opener must not be nil")
		}
		c.opener = opener
		return nil
	}
}

// WithLogger configures the logger used for runs
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *config) error {
		c.logger = logger
		return nil
	}
}
