package health

import "context"

type HealthStatus struct {
	Status          string `json:"status"`
	CachedQuestions int    `json:"cached_questions"`
	Timestamp       string `json:"timestamp"`
	UptimeSeconds   int64  `json:"uptime_seconds"`
	PrimaryModel    string `json:"primary_model"`
	FallbackModel   string `json:"fallback_model"`
}

type IHealthUsecase interface {
	GetStatus(ctx context.Context) (HealthStatus, error)
}
