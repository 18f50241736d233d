package twin

import (
	"context"
	"errors"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// Kind is the closed classification of gateway failures.
type Kind string

const (
	KindNotFound            Kind = "not_found"
	KindNotConfigured       Kind = "not_configured"
	KindInvalidCredential   Kind = "invalid_credential"
	KindQuotaExceeded       Kind = "quota_exceeded"
	KindProviderUnavailable Kind = "provider_unavailable"
	KindBadRequest          Kind = "bad_request"
	KindInternal            Kind = "internal"
)

// GatewayError is the only error type that crosses the gateway boundary.
// Message is safe to show an anonymous caller; raw provider or store error
// text never is, since it may leak implementation details or partial
// credential material.
type GatewayError struct {
	Kind    Kind
	Status  int
	Message string
}

func (e *GatewayError) Error() string {
	return string(e.Kind) + ": " + e.Message
}

// Caller-safe messages. The closed set: nothing else leaves the gateway.
const (
	msgNotFound            = "Bot not found"
	msgNotConfigured       = "Bot is not configured by its owner."
	msgInvalidCredential   = "The bot's API key is invalid or has expired."
	msgQuotaExceeded       = "This bot has exceeded its API quota."
	msgProviderUnavailable = "Model not found. Please check API settings."
	msgProviderTimeout     = "The bot's AI provider did not respond in time."
	msgInternal            = "Internal Server Error"
)

func notFound() *GatewayError {
	return &GatewayError{Kind: KindNotFound, Status: http.StatusNotFound, Message: msgNotFound}
}

func notConfigured() *GatewayError {
	return &GatewayError{Kind: KindNotConfigured, Status: http.StatusInternalServerError, Message: msgNotConfigured}
}

func badRequest(reason string) *GatewayError {
	return &GatewayError{Kind: KindBadRequest, Status: http.StatusBadRequest, Message: reason}
}

func internal() *GatewayError {
	return &GatewayError{Kind: KindInternal, Status: http.StatusInternalServerError, Message: msgInternal}
}

// TranslateLookup classifies a Tenant Store failure.
func TranslateLookup(err error) *GatewayError {
	if errors.Is(err, ErrTenantNotFound) {
		return notFound()
	}
	return internal()
}

// TranslateProvider classifies a raw provider failure. Structured matching
// on the provider's HTTP status comes first; substring heuristics on the
// error text are the fallback for errors that carry no structure (Gemini's
// OpenAI-compatible surface does not document stable error codes).
func TranslateProvider(err error) *GatewayError {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		if g := byProviderStatus(apiErr.HTTPStatusCode); g != nil {
			return g
		}
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		if g := byProviderStatus(reqErr.HTTPStatusCode); g != nil {
			return g
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return &GatewayError{Kind: KindProviderUnavailable, Status: http.StatusInternalServerError, Message: msgProviderTimeout}
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "API key not valid"), strings.Contains(msg, "API_KEY_INVALID"):
		return &GatewayError{Kind: KindInvalidCredential, Status: http.StatusInternalServerError, Message: msgInvalidCredential}
	case strings.Contains(msg, "quota"), strings.Contains(msg, "RESOURCE_EXHAUSTED"):
		return &GatewayError{Kind: KindQuotaExceeded, Status: http.StatusInternalServerError, Message: msgQuotaExceeded}
	case strings.Contains(msg, "not found"), strings.Contains(msg, "NOT_FOUND"):
		return &GatewayError{Kind: KindProviderUnavailable, Status: http.StatusInternalServerError, Message: msgProviderUnavailable}
	}

	return internal()
}

func byProviderStatus(status int) *GatewayError {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return &GatewayError{Kind: KindInvalidCredential, Status: http.StatusInternalServerError, Message: msgInvalidCredential}
	case http.StatusTooManyRequests:
		return &GatewayError{Kind: KindQuotaExceeded, Status: http.StatusInternalServerError, Message: msgQuotaExceeded}
	case http.StatusNotFound:
		return &GatewayError{Kind: KindProviderUnavailable, Status: http.StatusInternalServerError, Message: msgProviderUnavailable}
	}
	return nil
}

// AsGatewayError extracts the GatewayError from an orchestrator failure,
// falling back to Internal so no unclassified error ever reaches a caller.
func AsGatewayError(err error) *GatewayError {
	var gerr *GatewayError
	if errors.As(err, &gerr) {
		return gerr
	}
	return internal()
}

// OwnerProbeResult maps a key-validation probe failure to the owner-facing
// status and message. Unlike the chat taxonomy these are detailed: only the
// owner sees them.
func OwnerProbeResult(err error) (int, string) {
	if err == nil {
		return http.StatusOK, "API key is valid."
	}
	switch TranslateProvider(err).Kind {
	case KindInvalidCredential:
		return http.StatusBadRequest, "This API key is not valid. Please check it and try again."
	case KindQuotaExceeded:
		return http.StatusBadRequest, "This API key has exceeded its quota or rate limit."
	}
	return http.StatusInternalServerError, "API key validation failed. The key may be incorrect or disabled."
}
