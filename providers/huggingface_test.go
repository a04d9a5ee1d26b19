package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	domainAsk "github.com/AzielCF/az-medqa/domains/ask"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHFProvider(t *testing.T, handler http.HandlerFunc) *HuggingFaceProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	p := NewHuggingFaceProvider("test-token", "mistralai/Mistral-7B-Instruct-v0.3")
	p.baseURL = server.URL + "/"
	return p
}

func TestHuggingFace_NotConfiguredWithoutToken(t *testing.T) {
	p := NewHuggingFaceProvider("", "some-model")

	result := p.Answer(context.Background(), "What causes anemia?")
	assert.Equal(t, domainAsk.OutcomeNotConfigured, result.Outcome)
}

func TestHuggingFace_SuccessCleansArtifacts(t *testing.T) {
	raw := "<s>[INST] You are a medical educator. Question: What causes anemia? [/INST] Answer: Anemia is caused by decreased red cell production, increased destruction, or blood loss.\n\n\n\nIron deficiency is the most common cause worldwide.</s>"

	p := newTestHFProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"generated_text": ` + jsonString(raw) + `}]`))
	})

	result := p.Answer(context.Background(), "What causes anemia?")
	require.Equal(t, domainAsk.OutcomeSuccess, result.Outcome)

	assert.NotContains(t, result.Answer, "[INST]")
	assert.NotContains(t, result.Answer, "[/INST]")
	assert.NotContains(t, result.Answer, "</s>")
	assert.False(t, strings.HasPrefix(result.Answer, "Answer:"))
	assert.NotContains(t, result.Answer, "\n\n\n", "blank-line runs must be collapsed")
	assert.Contains(t, result.Answer, Disclaimer, "missing disclaimer must be appended")
}

func TestHuggingFace_KeepsExistingDisclaimer(t *testing.T) {
	raw := "Anemia has many causes, most commonly iron deficiency. This information is for educational purposes only and does not replace professional medical advice."

	p := newTestHFProvider(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"generated_text": ` + jsonString(raw) + `}]`))
	})

	result := p.Answer(context.Background(), "What causes anemia?")
	require.Equal(t, domainAsk.OutcomeSuccess, result.Outcome)
	assert.Equal(t, 1, strings.Count(strings.ToLower(result.Answer), "educational purposes"))
}

func TestHuggingFace_ModelLoadingIsTransportFailure(t *testing.T) {
	p := newTestHFProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error": "Model mistralai/Mistral-7B-Instruct-v0.3 is currently loading", "estimated_time": 42.5}`))
	})

	result := p.Answer(context.Background(), "What causes anemia?")
	assert.Equal(t, domainAsk.OutcomeTransportFailure, result.Outcome)
}

func TestHuggingFace_UnauthorizedIsTransportFailure(t *testing.T) {
	p := newTestHFProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error": "Authorization header is correct, but the token seems invalid"}`))
	})

	result := p.Answer(context.Background(), "What causes anemia?")
	assert.Equal(t, domainAsk.OutcomeTransportFailure, result.Outcome)
}

func TestHuggingFace_ShortOutputIsEmptyOrTooShort(t *testing.T) {
	p := newTestHFProvider(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"generated_text": "[/INST] ok </s>"}]`))
	})

	result := p.Answer(context.Background(), "What causes anemia?")
	assert.Equal(t, domainAsk.OutcomeEmptyOrTooShort, result.Outcome)
}

func TestHuggingFace_TruncatedBodyIsTransportFailure(t *testing.T) {
	p := newTestHFProvider(t, func(w http.ResponseWriter, r *http.Request) {
		// Announce more bytes than we send so the client read fails mid-body.
		w.Header().Set("Content-Length", "500")
		_, _ = w.Write([]byte(`[{"generated_text": "partial`))
	})

	result := p.Answer(context.Background(), "What causes anemia?")
	assert.Equal(t, domainAsk.OutcomeTransportFailure, result.Outcome)
	assert.Error(t, result.Err)
}

func TestHuggingFace_MalformedBodyIsEmptyOrTooShort(t *testing.T) {
	p := newTestHFProvider(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"unexpected": "shape"}`))
	})

	result := p.Answer(context.Background(), "What causes anemia?")
	assert.Equal(t, domainAsk.OutcomeEmptyOrTooShort, result.Outcome)
}

func TestCleanModelOutput(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "echoed instruction block",
			in:   "<s>[INST] question here [/INST] The aorta carries oxygenated blood.</s>",
			want: "The aorta carries oxygenated blood.",
		},
		{
			name: "response label",
			in:   "Response: The liver metabolizes most drugs.",
			want: "The liver metabolizes most drugs.",
		},
		{
			name: "blank line runs",
			in:   "First paragraph.\n\n\n\n\nSecond paragraph.",
			want: "First paragraph.\n\nSecond paragraph.",
		},
		{
			name: "plain text untouched",
			in:   "Insulin lowers blood glucose.",
			want: "Insulin lowers blood glucose.",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, cleanModelOutput(tc.in))
		})
	}
}

// jsonString quotes raw text as a JSON string literal for response fixtures.
func jsonString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return `"` + s + `"`
}
