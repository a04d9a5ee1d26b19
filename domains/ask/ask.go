package ask

import "context"

// Outcome tags the result of a single provider call. The orchestrator
// consumes it immediately; outcomes are never persisted.
type Outcome string

const (
	OutcomeSuccess          Outcome = "success"
	OutcomeSafetyBlocked    Outcome = "safety_blocked"
	OutcomeQuotaExceeded    Outcome = "quota_exceeded"
	OutcomeEmptyOrTooShort  Outcome = "empty_or_too_short"
	OutcomeTransportFailure Outcome = "transport_failure"
	OutcomeNotConfigured    Outcome = "not_configured"
)

// ProviderResult is the uniform contract every provider client returns.
// Answer is set only when Outcome is OutcomeSuccess; Err carries the raw
// provider error for logging and is never shown to the caller.
type ProviderResult struct {
	Outcome Outcome
	Answer  string
	Err     error
}

// AIProvider is one external generative-text backend. Name is the model
// identifier reported to the caller in the response "source" field.
type AIProvider interface {
	Name() string
	Answer(ctx context.Context, question string) ProviderResult
}

// SourceCache is the response source tag when the answer came from the
// shared cache instead of a provider.
const SourceCache = "cloud_cache"

type AskRequest struct {
	Question string `json:"question"`
}

type AskResponse struct {
	Answer    string `json:"answer"`
	Source    string `json:"source"`
	Cached    bool   `json:"cached"`
	CacheSize int    `json:"cache_size,omitempty"`
}

type IAskUsecase interface {
	Ask(ctx context.Context, question string) (AskResponse, error)
	ClearCache(ctx context.Context) int
}
