package providers

import (
	"context"
	"strings"
	"time"

	domainAsk "github.com/AzielCF/az-medqa/domains/ask"
	"github.com/sirupsen/logrus"
	"google.golang.org/genai"
)

const (
	geminiTimeout   = 10 * time.Second
	geminiMinAnswer = 15
)

// GeminiProvider is the adapter for the Google Gemini API, the primary
// backend of the fallback chain.
type GeminiProvider struct {
	apiKey string
	model  string
}

func NewGeminiProvider(apiKey, model string) *GeminiProvider {
	return &GeminiProvider{apiKey: apiKey, model: model}
}

func (p *GeminiProvider) Name() string {
	return p.model
}

// Answer issues a single generate call and classifies the result. It never
// returns a raw provider error to the caller; the orchestrator only sees the
// tagged outcome.
func (p *GeminiProvider) Answer(ctx context.Context, question string) domainAsk.ProviderResult {
	if p.apiKey == "" {
		// Short-circuit: no credential means no network call.
		return domainAsk.ProviderResult{Outcome: domainAsk.OutcomeNotConfigured}
	}

	ctx, cancel := context.WithTimeout(ctx, geminiTimeout)
	defer cancel()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  p.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return domainAsk.ProviderResult{Outcome: domainAsk.OutcomeTransportFailure, Err: err}
	}

	contents := []*genai.Content{{
		Role:  genai.RoleUser,
		Parts: []*genai.Part{{Text: question}},
	}}
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(geminiSystemPrompt, ""),
	}

	result, err := client.Models.GenerateContent(ctx, p.model, contents, cfg)
	if err != nil {
		return p.classifyError(err)
	}

	if result == nil || len(result.Candidates) == 0 {
		logrus.WithField("model", p.model).Warn("[GEMINI] No candidates in response, treating as safety block")
		return domainAsk.ProviderResult{Outcome: domainAsk.OutcomeSafetyBlocked}
	}
	if result.PromptFeedback != nil && result.PromptFeedback.BlockReason != "" {
		logrus.WithFields(logrus.Fields{
			"model":  p.model,
			"reason": result.PromptFeedback.BlockReason,
		}).Warn("[GEMINI] Prompt blocked by safety classifier")
		return domainAsk.ProviderResult{Outcome: domainAsk.OutcomeSafetyBlocked}
	}

	candidate := result.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		logrus.WithField("model", p.model).Warn("[GEMINI] Candidate finished for safety reasons")
		return domainAsk.ProviderResult{Outcome: domainAsk.OutcomeSafetyBlocked}
	}

	// Extract text manually from the parts, more robust than result.Text().
	var fullText string
	if candidate.Content != nil {
		for _, part := range candidate.Content.Parts {
			if part.Text != "" {
				fullText += part.Text
			}
		}
	}

	answer := strings.TrimSpace(fullText)
	if len(answer) < geminiMinAnswer {
		return domainAsk.ProviderResult{Outcome: domainAsk.OutcomeEmptyOrTooShort}
	}

	return domainAsk.ProviderResult{Outcome: domainAsk.OutcomeSuccess, Answer: answer}
}

// classifyError separates quota exhaustion from everything else. The genai
// SDK surfaces upstream HTTP statuses inside the error string, so string
// matching is the stable way to detect them.
func (p *GeminiProvider) classifyError(err error) domainAsk.ProviderResult {
	errStr := strings.ToLower(err.Error())
	if strings.Contains(errStr, "429") || strings.Contains(errStr, "quota") || strings.Contains(errStr, "resource_exhausted") {
		return domainAsk.ProviderResult{Outcome: domainAsk.OutcomeQuotaExceeded, Err: err}
	}
	return domainAsk.ProviderResult{Outcome: domainAsk.OutcomeTransportFailure, Err: err}
}
