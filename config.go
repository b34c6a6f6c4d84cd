package primer

import (
	"errors"
	"strings"

	"github.com/goliatone/go-enum-primer/pkg/interfaces"
)

var (
	// ErrDocsDirRequired signals that no lesson directory was configured.
	ErrDocsDirRequired = errors.New("primer: docs directory is required")
	// ErrLoggingProviderUnknown signals an unrecognised logging provider name.
	ErrLoggingProviderUnknown = errors.New("primer: unknown logging provider")
	// ErrLoggingLevelInvalid signals an unrecognised logging level.
	ErrLoggingLevelInvalid = errors.New("primer: invalid logging level")
	// ErrLoggingFormatInvalid signals an unrecognised logging output format.
	ErrLoggingFormatInvalid = errors.New("primer: invalid logging format")
)

// Config captures the runtime options for the lesson tooling.
type Config struct {
	// DocsDir is the directory holding the lesson Markdown files.
	DocsDir string
	// Pattern limits discovery to matching files (defaults to "*.md").
	Pattern string
	// Recursive controls whether sub-directories of DocsDir are traversed.
	Recursive bool
	// Parser holds the default Markdown rendering options.
	Parser interfaces.ParseOptions
	// Logging configures the provider used for module loggers.
	Logging LoggingConfig
}

// LoggingConfig mirrors the options accepted by the go-logger adapter.
type LoggingConfig struct {
	// Provider selects the logging backend: "gologger" (default) or "noop".
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig returns the configuration used by the preview CLI when no
// overrides are supplied.
func DefaultConfig() Config {
	return Config{
		DocsDir:   "docs",
		Pattern:   "*.md",
		Recursive: true,
		Parser: interfaces.ParseOptions{
			Extensions: []string{"gfm", "linkify", "tasklist"},
		},
		Logging: LoggingConfig{
			Provider: "gologger",
			Level:    "info",
			Format:   "console",
		},
	}
}

// Validate checks the configuration before any services are wired.
func (c Config) Validate() error {
	if strings.TrimSpace(c.DocsDir) == "" {
		return ErrDocsDirRequired
	}
	return c.Logging.Validate()
}

// Validate checks the logging options against the values the providers accept.
func (c LoggingConfig) Validate() error {
	switch strings.ToLower(strings.TrimSpace(c.Provider)) {
	case "", "gologger", "noop":
	default:
		return ErrLoggingProviderUnknown
	}

	switch strings.ToLower(strings.TrimSpace(c.Level)) {
	case "", "trace", "debug", "info", "warn", "warning", "error", "fatal":
	default:
		return ErrLoggingLevelInvalid
	}

	switch strings.ToLower(strings.TrimSpace(c.Format)) {
	case "", "json", "console", "pretty":
	default:
		return ErrLoggingFormatInvalid
	}

	return nil
}
