package twin

import (
	"context"
	"errors"
)

// PersonaMode selects the voice the compiled prompt speaks in. The two
// template variants share one compiler; the non-impersonation rule is fixed
// regardless of mode.
type PersonaMode string

const (
	ModeThirdPerson PersonaMode = "third_person"
	ModeFirstPerson PersonaMode = "first_person"
)

// Persona holds the owner-supplied biographical fields. Empty string means
// "not provided"; defaults are resolved by the compiler, nowhere else.
type Persona struct {
	Bio        string
	Skills     string
	Expertise  string
	Tone       string
	Opinions   string
	LinkedIn   string
	GitHub     string
	Twitter    string
	ResumeLink string
}

// TenantRecord is one tenant as seen by the gateway: read-only, addressed by
// its public bot id. Credential is the tenant's own provider key and must
// never appear in logs or responses.
type TenantRecord struct {
	PublicBotID string
	DisplayName string
	Mode        PersonaMode
	Persona     Persona
	Credential  string
}

// Turn roles accepted on the wire. Anything else is rejected, not coerced.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one entry of the caller-supplied transcript.
type Turn struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// ErrTenantNotFound is returned by Store when no tenant owns the id.
var ErrTenantNotFound = errors.New("tenant not found")

// Store is the external tenant collaborator: a side-effect-free point lookup
// keyed by the public bot id.
type Store interface {
	Lookup(ctx context.Context, publicBotID string) (*TenantRecord, error)
}

// Service is the gateway orchestration surface.
type Service interface {
	// Chat runs one full turn for the bot. On failure the returned error is
	// always a *GatewayError.
	Chat(ctx context.Context, publicBotID string, history []Turn, newMessage string) (string, error)

	// ValidateKey probes the provider with a candidate owner credential and
	// returns the raw provider error, if any.
	ValidateKey(ctx context.Context, apiKey string) error
}
