package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	domainAsk "github.com/AzielCF/az-medqa/domains/ask"
	"github.com/sirupsen/logrus"
)

const (
	// Cold models on the inference API can take a long while to answer, so
	// the fallback carries a much longer timeout than the primary.
	hfTimeout   = 25 * time.Second
	hfMinAnswer = 20

	hfBaseURL = "https://api-inference.huggingface.co/models/"
)

// HuggingFaceProvider is the adapter for the Hugging Face Inference API,
// the secondary backend of the fallback chain. The raw model output needs
// cleanup before it is usable: instruction-tuned models echo their template
// delimiters and sometimes prefix the answer with a label.
type HuggingFaceProvider struct {
	token      string
	model      string
	baseURL    string
	httpClient *http.Client
}

func NewHuggingFaceProvider(token, model string) *HuggingFaceProvider {
	return &HuggingFaceProvider{
		token:      token,
		model:      model,
		baseURL:    hfBaseURL,
		httpClient: &http.Client{Timeout: hfTimeout},
	}
}

func (p *HuggingFaceProvider) Name() string {
	return p.model
}

type hfRequest struct {
	Inputs     string       `json:"inputs"`
	Parameters hfParameters `json:"parameters"`
}

type hfParameters struct {
	MaxNewTokens   int     `json:"max_new_tokens"`
	Temperature    float64 `json:"temperature"`
	ReturnFullText bool    `json:"return_full_text"`
}

type hfGeneration struct {
	GeneratedText string `json:"generated_text"`
}

type hfError struct {
	Error         string  `json:"error"`
	EstimatedTime float64 `json:"estimated_time"`
}

// Answer issues a single text-generation call, cleans up the raw model
// output and classifies the result.
func (p *HuggingFaceProvider) Answer(ctx context.Context, question string) domainAsk.ProviderResult {
	if p.token == "" {
		// Non-fatal: the provider is simply unavailable for this process.
		logrus.Debug("[HF] No token configured, fallback provider unavailable")
		return domainAsk.ProviderResult{Outcome: domainAsk.OutcomeNotConfigured}
	}

	payload, err := json.Marshal(hfRequest{
		Inputs: instructPrompt(question),
		Parameters: hfParameters{
			MaxNewTokens:   400,
			Temperature:    0.4,
			ReturnFullText: false,
		},
	})
	if err != nil {
		return domainAsk.ProviderResult{Outcome: domainAsk.OutcomeTransportFailure, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+p.model, bytes.NewReader(payload))
	if err != nil {
		return domainAsk.ProviderResult{Outcome: domainAsk.OutcomeTransportFailure, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.token)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return domainAsk.ProviderResult{Outcome: domainAsk.OutcomeTransportFailure, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return domainAsk.ProviderResult{Outcome: domainAsk.OutcomeTransportFailure, Err: err}
	}

	if resp.StatusCode >= 400 {
		return p.classifyHTTPError(resp.StatusCode, body)
	}

	var generations []hfGeneration
	if err := json.Unmarshal(body, &generations); err != nil || len(generations) == 0 {
		logrus.WithField("model", p.model).Warn("[HF] Malformed generation response")
		return domainAsk.ProviderResult{Outcome: domainAsk.OutcomeEmptyOrTooShort, Err: err}
	}

	cleaned := cleanModelOutput(generations[0].GeneratedText)
	if len(cleaned) < hfMinAnswer {
		return domainAsk.ProviderResult{Outcome: domainAsk.OutcomeEmptyOrTooShort}
	}

	return domainAsk.ProviderResult{Outcome: domainAsk.OutcomeSuccess, Answer: ensureDisclaimer(cleaned)}
}

func (p *HuggingFaceProvider) classifyHTTPError(status int, body []byte) domainAsk.ProviderResult {
	var apiErr hfError
	_ = json.Unmarshal(body, &apiErr)

	switch {
	case status == http.StatusServiceUnavailable && strings.Contains(strings.ToLower(apiErr.Error), "loading"):
		// Cold start. Transient; the caller decides whether anything retries.
		logrus.WithFields(logrus.Fields{
			"model":          p.model,
			"estimated_time": apiErr.EstimatedTime,
		}).Warn("[HF] Model is loading")
	case status == http.StatusUnauthorized:
		logrus.WithField("model", p.model).Error("[HF] Invalid token, check HF_TOKEN")
	default:
		logrus.WithFields(logrus.Fields{
			"model":  p.model,
			"status": status,
		}).Warn("[HF] Inference request failed")
	}

	return domainAsk.ProviderResult{
		Outcome: domainAsk.OutcomeTransportFailure,
		Err:     fmt.Errorf("hf inference status %d: %s", status, apiErr.Error),
	}
}

var (
	answerLabel   = regexp.MustCompile(`(?i)^\s*(answer|response)\s*:\s*`)
	excessiveGaps = regexp.MustCompile(`\n{3,}`)
)

// cleanModelOutput strips the instruction-template artifacts an
// instruction-tuned model may echo back: [INST] blocks, sentinel tokens, a
// leading "Answer:"/"Response:" label, and runs of blank lines.
func cleanModelOutput(raw string) string {
	text := raw

	// If the model echoed the instruction block, keep only what follows it.
	if idx := strings.LastIndex(text, "[/INST]"); idx >= 0 {
		text = text[idx+len("[/INST]"):]
	}
	text = strings.ReplaceAll(text, "[INST]", "")
	text = strings.ReplaceAll(text, "[/INST]", "")
	text = strings.ReplaceAll(text, "<s>", "")
	text = strings.ReplaceAll(text, "</s>", "")

	text = answerLabel.ReplaceAllString(strings.TrimSpace(text), "")
	text = excessiveGaps.ReplaceAllString(text, "\n\n")

	return strings.TrimSpace(text)
}

// ensureDisclaimer appends the mandatory closing sentence when the model
// did not include it on its own.
func ensureDisclaimer(text string) string {
	if strings.Contains(strings.ToLower(text), "educational purposes") {
		return text
	}
	return text + "\n\n" + Disclaimer
}
