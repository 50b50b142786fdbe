package service

import (
	"context"
	"time"

	"github.com/f1store-next/internal/cache"
	"github.com/f1store-next/internal/logger"
	"github.com/f1store-next/internal/models"
	"github.com/f1store-next/internal/repository"
)

const (
	dashboardCacheKey = "dashboard:summary"
	dashboardCacheTTL = 30 * time.Second
)

// DashboardSummary 经营统计汇总。
// 营收只计入确认中/已发货/已送达的订单，订单数不区分状态。
type DashboardSummary struct {
	TotalRevenue    models.Money             `json:"total_revenue"`
	TotalOrders     int64                    `json:"total_orders"`
	StatusBreakdown []repository.StatusCount `json:"status_breakdown"`
}

// DashboardService 经营统计服务
type DashboardService struct {
	dashboardRepo repository.DashboardRepository
}

// NewDashboardService 创建统计服务
func NewDashboardService(dashboardRepo repository.DashboardRepository) *DashboardService {
	return &DashboardService{dashboardRepo: dashboardRepo}
}

// Summary 获取统计汇总，带短 TTL 缓存；缓存故障降级为直查。
func (s *DashboardService) Summary(ctx context.Context) (*DashboardSummary, error) {
	var cached DashboardSummary
	hit, err := cache.GetJSON(ctx, dashboardCacheKey, &cached)
	if err != nil {
		logger.Warnw("read dashboard cache failed", "error", err)
	}
	if hit {
		return &cached, nil
	}

	summary, err := s.loadSummary()
	if err != nil {
		return nil, err
	}
	if err := cache.SetJSON(ctx, dashboardCacheKey, summary, dashboardCacheTTL); err != nil {
		logger.Warnw("write dashboard cache failed", "error", err)
	}
	return summary, nil
}

func (s *DashboardService) loadSummary() (*DashboardSummary, error) {
	revenue, err := s.dashboardRepo.TotalRevenue()
	if err != nil {
		return nil, ErrOrderFetchFail
	}
	total, err := s.dashboardRepo.TotalOrders()
	if err != nil {
		return nil, ErrOrderFetchFail
	}
	breakdown, err := s.dashboardRepo.StatusBreakdown()
	if err != nil {
		return nil, ErrOrderFetchFail
	}
	return &DashboardSummary{
		TotalRevenue:    models.NewMoneyFromDecimal(revenue),
		TotalOrders:     total,
		StatusBreakdown: breakdown,
	}, nil
}
