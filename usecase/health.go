package usecase

import (
	"context"
	"time"

	"github.com/AzielCF/az-medqa/core/config"
	domainHealth "github.com/AzielCF/az-medqa/domains/health"
	"github.com/AzielCF/az-medqa/pkg/answercache"
)

type healthService struct {
	cache     *answercache.Cache
	startedAt time.Time
}

func NewHealthService(cache *answercache.Cache) domainHealth.IHealthUsecase {
	return &healthService{cache: cache, startedAt: time.Now()}
}

func (s *healthService) GetStatus(ctx context.Context) (domainHealth.HealthStatus, error) {
	status := domainHealth.HealthStatus{
		Status:          "ok",
		CachedQuestions: s.cache.Len(),
		Timestamp:       time.Now().UTC().Format(time.RFC3339),
		UptimeSeconds:   int64(time.Since(s.startedAt).Seconds()),
	}
	if config.Global != nil {
		status.PrimaryModel = config.Global.AI.GeminiModel
		status.FallbackModel = config.Global.AI.HFModel
	}
	return status, nil
}
