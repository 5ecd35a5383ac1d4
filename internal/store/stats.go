package store

import (
	"context"

	"github.com/tayaudrey222/yumstation/internal/models"
)

// GetDashboardStats aggregates the admin dashboard counters. Revenue sums
// completed orders only; pending and cancelled totals are customer claims,
// not committed figures.
func (s *Store) GetDashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	var stats models.DashboardStats

	if err := s.db.GetContext(ctx, &stats.TotalItems, "SELECT COUNT(*) FROM menu_items"); err != nil {
		return nil, err
	}
	if err := s.db.GetContext(ctx, &stats.TotalCategories, "SELECT COUNT(*) FROM categories"); err != nil {
		return nil, err
	}
	if err := s.db.GetContext(ctx, &stats.TotalOrders, "SELECT COUNT(*) FROM orders"); err != nil {
		return nil, err
	}
	err := s.db.GetContext(ctx, &stats.Revenue,
		"SELECT COALESCE(SUM(confirmed_total), 0) FROM orders WHERE status = $1",
		models.OrderStatusCompleted)
	if err != nil {
		return nil, err
	}
	err = s.db.GetContext(ctx, &stats.LowStockCount,
		"SELECT COUNT(*) FROM inventory WHERE quantity <= reorder_threshold")
	if err != nil {
		return nil, err
	}

	return &stats, nil
}
