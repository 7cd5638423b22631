// Package application provides the application interface for bimmap commands.
//
// The Application interface is the contract between the app layer and the
// command implementations. Commands accept it instead of the concrete App so
// they can be tested against a Mock:
//
//	mock := &application.Mock{
//	    ClientFunc: func(...bimmap.Option) (bimmap.Client, error) {
//	        return bimmap.New(bimmap.WithOpener(opener))
//	    },
//	}
//	cmd := run.NewCommand(mock)
package application

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/bimmap"
)

// Settings are the configured defaults for the pipeline inputs. Command flags
// override them.
type Settings struct {
	VPFile       string
	CentralDoc   string
	CentralSheet string
	TopN         int
}

// Application provides what commands need from the app.
//
// Thread Safety: All methods must be safe for concurrent access.
type Application interface {
	// Client returns a bimmap client. Without options it returns the cached
	// default client; with options it creates a new one.
	Client(opts ...bimmap.Option) (bimmap.Client, error)

	// Settings returns the configured input defaults.
	Settings() Settings

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (json, yaml, table, wide).
	OutputFormat() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
