package services

import (
	"context"
	"time"

	"github.com/lifementor/lifementor-cli/internal/client/models"
)

// defaultStatsDelay imitates the latency of a future stats endpoint so the
// dashboard's loading path stays exercised.
const defaultStatsDelay = time.Second

// StatsService produces the dashboard summary. The backend has no stats
// endpoint yet, so values are generated locally after a short deferred delay.
type StatsService interface {
	// Dashboard returns the summary once the deferred delay elapses, or
	// the context's error if the view is torn down first. At most one
	// deferred load runs per call.
	Dashboard(ctx context.Context) (*models.DashboardStats, error)
}

type statsService struct {
	delay time.Duration
}

// NewStatsService constructs a StatsService with the default delay.
func NewStatsService() StatsService {
	return &statsService{delay: defaultStatsDelay}
}

// NewStatsServiceWithDelay is the test seam for the deferred delay.
func NewStatsServiceWithDelay(delay time.Duration) StatsService {
	return &statsService{delay: delay}
}

func (s *statsService) Dashboard(ctx context.Context) (*models.DashboardStats, error) {
	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-timer.C:
	}

	return &models.DashboardStats{
		DailyCheckins:  7,
		Streak:         14,
		CompletedGoals: 3,
	}, nil
}
