// Package primer wires together the lesson tooling: the Markdown documents
// under docs/, the goldmark-backed renderer, and the module loggers used by
// the preview CLI. The worked examples themselves live in the noise and
// voyage packages.
package primer

import (
	"strings"

	"github.com/goliatone/go-enum-primer/internal/logging"
	"github.com/goliatone/go-enum-primer/internal/logging/gologger"
	"github.com/goliatone/go-enum-primer/internal/markdown"
	"github.com/goliatone/go-enum-primer/pkg/interfaces"
)

// Primer is the composed runtime: a configured document service plus the
// logger provider shared by every module.
type Primer struct {
	cfg      Config
	provider interfaces.LoggerProvider
	parser   interfaces.MarkdownParser
	docs     interfaces.MarkdownService
}

// Option customises construction of a Primer.
type Option func(*Primer)

// WithLoggerProvider overrides the logging provider selected by the config.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(p *Primer) {
		p.provider = provider
	}
}

// WithParser overrides the goldmark parser the document service would
// otherwise construct from Config.Parser.
func WithParser(parser interfaces.MarkdownParser) Option {
	return func(p *Primer) {
		p.parser = parser
	}
}

// New validates the configuration and wires the document service and logging
// provider.
func New(cfg Config, opts ...Option) (*Primer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	p := &Primer{cfg: cfg}
	for _, opt := range opts {
		opt(p)
	}

	if p.provider == nil {
		provider, err := buildLoggerProvider(cfg.Logging)
		if err != nil {
			return nil, err
		}
		p.provider = provider
	}

	docs, err := markdown.NewService(markdown.Config{
		BasePath:  cfg.DocsDir,
		Pattern:   cfg.Pattern,
		Recursive: cfg.Recursive,
		Parser:    cfg.Parser,
	}, p.parser)
	if err != nil {
		return nil, err
	}
	p.docs = docs

	return p, nil
}

// Docs exposes the lesson document service.
func (p *Primer) Docs() interfaces.MarkdownService { return p.docs }

// LoggerProvider exposes the provider so callers can derive module loggers.
func (p *Primer) LoggerProvider() interfaces.LoggerProvider { return p.provider }

// MarkdownLogger returns the logger namespace for document loading.
func (p *Primer) MarkdownLogger() interfaces.Logger {
	return logging.MarkdownLogger(p.provider)
}

// DemoLogger returns the logger namespace for the example runners.
func (p *Primer) DemoLogger() interfaces.Logger {
	return logging.DemoLogger(p.provider)
}

func buildLoggerProvider(cfg LoggingConfig) (interfaces.LoggerProvider, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "noop":
		return noopProvider{}, nil
	case "", "gologger":
		return gologger.NewProvider(gologger.Config{
			Level:     cfg.Level,
			Format:    cfg.Format,
			AddSource: cfg.AddSource,
			Focus:     cfg.Focus,
		})
	default:
		return nil, ErrLoggingProviderUnknown
	}
}

type noopProvider struct{}

func (noopProvider) GetLogger(string) interfaces.Logger { return logging.NoOp() }
