package ai

import (
	"context"
	"errors"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/wikizero/twin-gateway/internal/logger"
	"github.com/wikizero/twin-gateway/internal/metrics"
)

// GeminiClient talks to Gemini through its OpenAI-compatible endpoint.
// Every call is made with the credential passed in, never a process-wide
// key: one tenant's traffic must never be billed against another tenant's
// credential. The zero value is not usable; construct with NewGeminiClient.
type GeminiClient struct {
	baseURL string
	model   string
}

func NewGeminiClient(baseURL, model string) *GeminiClient {
	return &GeminiClient{
		baseURL: baseURL,
		model:   model,
	}
}

// newClient builds a client bound to one credential. Cheap: the underlying
// http transport is shared by the http package, so per-request construction
// costs only the config struct.
func (c *GeminiClient) newClient(credential string) *openai.Client {
	cfg := openai.DefaultConfig(credential)
	cfg.BaseURL = c.baseURL
	return openai.NewClientWithConfig(cfg)
}

// Generate sends one completion request. No retries: a failed call surfaces
// immediately. Errors come back unmodified. Only metadata is logged —
// never the credential, the prompt, or message bodies.
func (c *GeminiClient) Generate(
	ctx context.Context,
	credential string,
	systemPrompt string,
	history []Message,
	newMessage string,
) (string, error) {
	msgs := make([]openai.ChatCompletionMessage, 0, len(history)+2)

	msgs = append(msgs, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: systemPrompt,
	})

	for _, m := range history {
		msgs = append(msgs, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Text,
		})
	}

	msgs = append(msgs, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: newMessage,
	})

	start := time.Now()
	resp, err := c.newClient(credential).CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: msgs,
	})
	elapsed := time.Since(start)
	metrics.ProviderDuration.Observe(elapsed.Seconds())

	log := logger.Get()
	if err != nil {
		log.Warn().
			Dur("elapsed", elapsed).
			Str("model", c.model).
			Msg("gemini completion failed")
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("gemini: completion returned no choices")
	}

	log.Debug().
		Dur("elapsed", elapsed).
		Str("model", c.model).
		Int("history_turns", len(history)).
		Msg("gemini completion ok")

	return resp.Choices[0].Message.Content, nil
}

// ValidateKey probes the provider with a single lightweight model-list call.
// A nil return means the credential was accepted.
func (c *GeminiClient) ValidateKey(ctx context.Context, credential string) error {
	_, err := c.newClient(credential).ListModels(ctx)
	return err
}
