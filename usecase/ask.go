package usecase

import (
	"context"
	"fmt"
	"strings"

	domainAsk "github.com/AzielCF/az-medqa/domains/ask"
	"github.com/AzielCF/az-medqa/pkg/answercache"
	pkgError "github.com/AzielCF/az-medqa/pkg/error"
	"github.com/AzielCF/az-medqa/validations"
	"github.com/sirupsen/logrus"
)

const (
	safetyBlockedMessage = "Your question was blocked by the content safety filter. Please rephrase it as a general medical knowledge question."
	notConfiguredMessage = "AI service is not configured"
	quotaMessage         = "The AI service quota has been exhausted. Please try again later."
	unavailableMessage   = "The AI service is temporarily unavailable. Please try again later."
)

// askService owns the request lifecycle: validate, check the shared cache,
// then walk the provider chain in order until one succeeds or an
// authoritative rejection stops the walk. The first successful answer is
// written through to the cache before it is returned.
//
// Two concurrent requests for the same uncached question may both miss and
// both call providers; there is deliberately no single-flight deduplication.
type askService struct {
	cache     *answercache.Cache
	providers []domainAsk.AIProvider
}

// NewAskService wires the orchestrator. Providers are attempted in the given
// order; the first one is the primary and its safety/configuration failures
// are terminal for the whole request.
func NewAskService(cache *answercache.Cache, providers ...domainAsk.AIProvider) domainAsk.IAskUsecase {
	return &askService{cache: cache, providers: providers}
}

func (s *askService) Ask(ctx context.Context, question string) (domainAsk.AskResponse, error) {
	accepted, err := validations.ValidateAskQuestion(ctx, domainAsk.AskRequest{Question: question})
	if err != nil {
		return domainAsk.AskResponse{}, err
	}

	key := answercache.NormalizeKey(accepted)
	if answer, ok := s.cache.Lookup(key); ok {
		logrus.WithField("key", key).Debug("[ASK] Cache hit, no provider call")
		return domainAsk.AskResponse{
			Answer:    answer,
			Source:    domainAsk.SourceCache,
			Cached:    true,
			CacheSize: s.cache.Len(),
		}, nil
	}

	var (
		primaryQuota bool
		failures     []string
	)

	for i, provider := range s.providers {
		result := provider.Answer(ctx, accepted)

		if result.Outcome != domainAsk.OutcomeSuccess {
			logrus.WithFields(logrus.Fields{
				"provider": provider.Name(),
				"outcome":  result.Outcome,
				"question": accepted,
				"error":    result.Err,
			}).Warn("[ASK] Provider attempt failed")
			failures = append(failures, fmt.Sprintf("%s=%s", provider.Name(), result.Outcome))
		}

		switch result.Outcome {
		case domainAsk.OutcomeSuccess:
			s.cache.Insert(key, result.Answer)
			return domainAsk.AskResponse{
				Answer:    result.Answer,
				Source:    provider.Name(),
				Cached:    false,
				CacheSize: s.cache.Len(),
			}, nil

		case domainAsk.OutcomeSafetyBlocked:
			if i == 0 {
				// A content-safety rejection is authoritative: it must not
				// be retried on a second provider.
				return domainAsk.AskResponse{}, pkgError.SafetyBlockedError(safetyBlockedMessage)
			}

		case domainAsk.OutcomeNotConfigured:
			if i == 0 {
				return domainAsk.AskResponse{}, pkgError.NotConfiguredError(notConfiguredMessage)
			}
			// A missing fallback credential just means the provider is
			// unavailable; the walk continues (and ends) normally.

		case domainAsk.OutcomeQuotaExceeded:
			if i == 0 {
				primaryQuota = true
			}

		case domainAsk.OutcomeEmptyOrTooShort, domainAsk.OutcomeTransportFailure:
			// Silent fallthrough to the next provider.
		}
	}

	details := strings.Join(failures, ", ")
	if primaryQuota {
		return domainAsk.AskResponse{}, pkgError.DetailedError{
			GenericError: pkgError.QuotaExceededError(quotaMessage),
			Details:      details,
		}
	}
	return domainAsk.AskResponse{}, pkgError.DetailedError{
		GenericError: pkgError.UnavailableError(unavailableMessage),
		Details:      details,
	}
}

func (s *askService) ClearCache(ctx context.Context) int {
	n := s.cache.Clear()
	logrus.WithField("dropped", n).Info("[ASK] Answer cache cleared")
	return n
}
