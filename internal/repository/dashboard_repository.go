package repository

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/f1store-next/internal/constants"
	"github.com/f1store-next/internal/models"
)

// StatusCount 单个状态的订单数
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// DashboardRepository 经营统计数据访问接口
type DashboardRepository interface {
	TotalRevenue() (decimal.Decimal, error)
	TotalOrders() (int64, error)
	StatusBreakdown() ([]StatusCount, error)
}

// GormDashboardRepository 基于 GORM 的统计仓储实现
type GormDashboardRepository struct {
	db *gorm.DB
}

// NewGormDashboardRepository 创建统计仓储
func NewGormDashboardRepository(db *gorm.DB) *GormDashboardRepository {
	return &GormDashboardRepository{db: db}
}

// TotalRevenue 统计营收：只计入确认中/已发货/已送达的订单，
// Pending 与 Cancelled 不计入；没有符合条件的订单时返回 0。
func (r *GormDashboardRepository) TotalRevenue() (decimal.Decimal, error) {
	var row struct {
		Total decimal.Decimal
	}
	err := r.db.Model(&models.Order{}).
		Select("COALESCE(SUM(total_amount), 0) AS total").
		Where("status IN ?", constants.RevenueStatuses).
		Scan(&row).Error
	if err != nil {
		return decimal.Zero, err
	}
	return row.Total, nil
}

// TotalOrders 统计全量订单数，不区分状态
func (r *GormDashboardRepository) TotalOrders() (int64, error) {
	var total int64
	if err := r.db.Model(&models.Order{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// StatusBreakdown 按状态统计订单数
func (r *GormDashboardRepository) StatusBreakdown() ([]StatusCount, error) {
	var rows []StatusCount
	err := r.db.Model(&models.Order{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Order("status ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
