package codegen

import (
	"fmt"

	"github.com/erraggy/tscodegen/config"
	"github.com/erraggy/tscodegen/internal/issues"
	"github.com/erraggy/tscodegen/internal/severity"
	"github.com/erraggy/tscodegen/names"
	"github.com/erraggy/tscodegen/tserrors"
	"github.com/erraggy/tscodegen/typemap"
)

// Severity indicates the severity level of a processing issue.
type Severity = severity.Severity

const (
	// SeverityInfo records a fallback applied silently
	SeverityInfo = severity.SeverityInfo
	// SeverityWarning indicates output that is probably not what the author intended
	SeverityWarning = severity.SeverityWarning
	// SeverityError indicates an element that could not be processed
	SeverityError = severity.SeverityError
)

// Issue is a single fallback or problem observed while processing.
type Issue = issues.Issue

// DefaultConcurrency is the number of models processed in parallel when no
// limit is configured.
const DefaultConcurrency = 8

// Processor post-processes models and operation groups. It is safe for
// concurrent use.
type Processor struct {
	cfg         *config.Config
	names       *names.Normalizer
	types       *typemap.Resolver
	logger      Logger
	concurrency int
}

// Option is a function that configures a Processor.
type Option func(*processorConfig) error

type processorConfig struct {
	logger      Logger
	concurrency int
}

// New returns a Processor for cfg.
func New(cfg *config.Config, opts ...Option) (*Processor, error) {
	if cfg == nil {
		return nil, &tserrors.ConfigError{Option: "config", Message: "must not be nil"}
	}
	pc := &processorConfig{
		logger:      NopLogger{},
		concurrency: DefaultConcurrency,
	}
	for _, opt := range opts {
		if err := opt(pc); err != nil {
			return nil, fmt.Errorf("codegen: invalid options: %w", err)
		}
	}
	return &Processor{
		cfg:         cfg,
		names:       names.New(cfg),
		types:       typemap.New(cfg),
		logger:      pc.logger,
		concurrency: pc.concurrency,
	}, nil
}

// WithLogger sets the logger. A nil logger discards output.
func WithLogger(l Logger) Option {
	return func(pc *processorConfig) error {
		if l == nil {
			l = NopLogger{}
		}
		pc.logger = l
		return nil
	}
}

// WithConcurrency limits how many models ProcessModels handles at once.
func WithConcurrency(n int) Option {
	return func(pc *processorConfig) error {
		if n < 1 {
			return &tserrors.ConfigError{Option: "concurrency", Value: n, Message: "must be at least 1"}
		}
		pc.concurrency = n
		return nil
	}
}

// Config returns the configuration the Processor was created with.
func (p *Processor) Config() *config.Config { return p.cfg }

// Names returns the identifier normalizer.
func (p *Processor) Names() *names.Normalizer { return p.names }

// Types returns the type resolver.
func (p *Processor) Types() *typemap.Resolver { return p.types }
