package service

import (
	"context"

	"github.com/tayaudrey222/yumstation/internal/authz"
	"github.com/tayaudrey222/yumstation/internal/models"
)

// StatsService serves the admin dashboard counters.
type StatsService struct {
	stats StatsStore
}

func NewStatsService(stats StatsStore) *StatsService {
	return &StatsService{stats: stats}
}

// Dashboard returns the aggregate counters. Revenue counts completed orders
// only.
func (s *StatsService) Dashboard(ctx context.Context, actor models.Identity) (*models.DashboardStats, error) {
	if err := authz.Require(actor.Role, authz.ActionDashboardRead); err != nil {
		return nil, err
	}
	return s.stats.GetDashboardStats(ctx)
}
