package ai

import "context"

// Provider is the remote completion service. It knows nothing about tenants
// beyond the credential it is handed for a single call.
type Provider interface {
	// Generate performs one completion round trip with the given credential.
	// The raw provider error is returned unmodified so the caller can
	// classify it.
	Generate(ctx context.Context, credential, systemPrompt string, history []Message, newMessage string) (string, error)

	// ValidateKey probes the provider with a candidate credential using a
	// single lightweight call.
	ValidateKey(ctx context.Context, credential string) error
}

// Message is the provider-agnostic dialogue format.
type Message struct {
	Role string // "user" | "assistant" | "system"
	Text string
}
