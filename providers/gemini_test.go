package providers

import (
	"context"
	"errors"
	"testing"

	domainAsk "github.com/AzielCF/az-medqa/domains/ask"
	"github.com/stretchr/testify/assert"
)

func TestGemini_NotConfiguredWithoutKey(t *testing.T) {
	p := NewGeminiProvider("", "gemini-2.5-flash")

	// Must short-circuit with no network call.
	result := p.Answer(context.Background(), "What causes anemia?")
	assert.Equal(t, domainAsk.OutcomeNotConfigured, result.Outcome)
	assert.Empty(t, result.Answer)
}

func TestGemini_Name(t *testing.T) {
	p := NewGeminiProvider("key", "gemini-2.5-flash")
	assert.Equal(t, "gemini-2.5-flash", p.Name())
}

func TestGemini_ClassifyError(t *testing.T) {
	p := NewGeminiProvider("key", "gemini-2.5-flash")

	cases := []struct {
		name string
		err  error
		want domainAsk.Outcome
	}{
		{"http 429", errors.New("Error 429: rate limit hit"), domainAsk.OutcomeQuotaExceeded},
		{"quota message", errors.New("googleapi: quota exceeded for quota metric"), domainAsk.OutcomeQuotaExceeded},
		{"resource exhausted", errors.New("rpc error: code = RESOURCE_EXHAUSTED"), domainAsk.OutcomeQuotaExceeded},
		{"server error", errors.New("Error 500: internal error"), domainAsk.OutcomeTransportFailure},
		{"timeout", errors.New("context deadline exceeded"), domainAsk.OutcomeTransportFailure},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := p.classifyError(tc.err)
			assert.Equal(t, tc.want, result.Outcome)
			assert.Equal(t, tc.err, result.Err)
		})
	}
}
