package twin

import (
	"context"
	"strings"
	"time"

	"github.com/wikizero/twin-gateway/internal/ai"
	"github.com/wikizero/twin-gateway/internal/logger"
)

// Options bound the two blocking calls and the transcript window.
type Options struct {
	HistoryMaxTurns int
	LookupTimeout   time.Duration
	ProviderTimeout time.Duration
}

type service struct {
	store    Store
	provider ai.Provider
	opts     Options
}

func NewService(store Store, provider ai.Provider, opts Options) Service {
	if opts.HistoryMaxTurns <= 0 {
		opts.HistoryMaxTurns = 50
	}
	if opts.LookupTimeout <= 0 {
		opts.LookupTimeout = 2 * time.Second
	}
	if opts.ProviderTimeout <= 0 {
		opts.ProviderTimeout = 30 * time.Second
	}
	return &service{store: store, provider: provider, opts: opts}
}

// Chat runs the strictly sequential pipeline for one turn: resolve the
// tenant, check configuration and compile the persona, validate the
// transcript, call the provider. Any stage failure is terminal for the
// request and no later stage runs; in particular a validation failure never
// reaches the provider. Nothing is retried and nothing is kept between
// requests. The inbound ctx flows into both outbound calls, so a client
// disconnect cancels an in-flight, tenant-billed provider call.
func (s *service) Chat(ctx context.Context, publicBotID string, history []Turn, newMessage string) (string, error) {
	log := logger.Get()

	// Resolving
	lookupCtx, cancel := context.WithTimeout(ctx, s.opts.LookupTimeout)
	rec, err := s.store.Lookup(lookupCtx, publicBotID)
	cancel()
	if err != nil {
		gerr := TranslateLookup(err)
		if gerr.Kind != KindNotFound {
			log.Error().Err(err).Str("bot_id", publicBotID).Msg("tenant lookup failed")
		}
		return "", gerr
	}

	// Configuring
	if strings.TrimSpace(rec.Credential) == "" {
		return "", notConfigured()
	}
	systemPrompt := CompilePersona(rec)

	// Validating
	turns, msg, err := ValidateTranscript(history, newMessage, s.opts.HistoryMaxTurns)
	if err != nil {
		return "", err
	}

	// Generating
	aiHistory := make([]ai.Message, 0, len(turns))
	for _, t := range turns {
		aiHistory = append(aiHistory, ai.Message{Role: t.Role, Text: t.Text})
	}

	genCtx, cancel := context.WithTimeout(ctx, s.opts.ProviderTimeout)
	defer cancel()
	reply, err := s.provider.Generate(genCtx, rec.Credential, systemPrompt, aiHistory, msg)
	if err != nil {
		gerr := TranslateProvider(err)
		log.Warn().
			Str("bot_id", publicBotID).
			Str("kind", string(gerr.Kind)).
			Msg("provider call failed")
		return "", gerr
	}

	return reply, nil
}

// ValidateKey probes the provider with a candidate owner credential. The raw
// error comes back for owner-facing translation in the handler.
func (s *service) ValidateKey(ctx context.Context, apiKey string) error {
	probeCtx, cancel := context.WithTimeout(ctx, s.opts.ProviderTimeout)
	defer cancel()
	return s.provider.ValidateKey(probeCtx, apiKey)
}
