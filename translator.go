package gotrans

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Translator dispatches requests to the backend named in each request.
type Translator struct {
	registry *Registry
	logger   zerolog.Logger
}

// TranslatorOption is a functional option for configuring the Translator.
type TranslatorOption func(*Translator)

// WithLogger sets the logger used to report dispatches and outcomes.
func WithLogger(logger zerolog.Logger) TranslatorOption {
	return func(t *Translator) {
		t.logger = logger
	}
}

// NewTranslator creates a Translator that resolves backends from registry.
func NewTranslator(registry *Registry, opts ...TranslatorOption) *Translator {
	t := &Translator{
		registry: registry,
		logger:   zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Translate resolves req.Engine and performs a single translation with it.
// Errors from the registry and the backend are returned unchanged.
func (t *Translator) Translate(ctx context.Context, req Request) (*Translation, error) {
	backend, err := t.registry.Lookup(req.Engine)
	if err != nil {
		t.logger.Error().Err(err).Str("engine", req.Engine).Msg("engine lookup failed")
		return nil, err
	}

	t.logger.Debug().
		Str("engine", backend.Name()).
		Str("from", req.SourceLang).
		Str("to", req.TargetLang).
		Int("text_len", len(req.Text)).
		Msg("dispatching translation")

	start := time.Now()
	result, err := backend.Translate(ctx, req.Text, req.SourceLang, req.TargetLang)
	elapsed := time.Since(start)
	if err != nil {
		t.logger.Error().Err(err).Str("engine", backend.Name()).Dur("elapsed", elapsed).Msg("translation failed")
		return nil, err
	}

	t.logger.Info().
		Str("engine", result.Engine).
		Int("explains", len(result.Explains)).
		Dur("elapsed", elapsed).
		Msg("translation done")

	return result, nil
}

// Engines returns the engine names the Translator can dispatch to.
func (t *Translator) Engines() []string {
	return t.registry.Names()
}
