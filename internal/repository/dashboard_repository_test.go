package repository

import (
	"fmt"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/f1store-next/internal/constants"
	"github.com/f1store-next/internal/models"
)

func setupDashboardRepositoryTest(t *testing.T) (*GormDashboardRepository, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Order{}, &models.OrderItem{}); err != nil {
		t.Fatalf("migrate order models failed: %v", err)
	}
	return NewGormDashboardRepository(db), db
}

func seedDashboardOrder(t *testing.T, db *gorm.DB, orderNo, status string, total int64) {
	t.Helper()
	order := &models.Order{
		OrderNo:     orderNo,
		UserID:      1,
		Status:      status,
		TotalAmount: models.NewMoneyFromDecimal(decimal.NewFromInt(total)),
	}
	if err := db.Create(order).Error; err != nil {
		t.Fatalf("create order %s failed: %v", orderNo, err)
	}
}

func TestTotalRevenueCountsOnlyRevenueStatuses(t *testing.T) {
	repo, db := setupDashboardRepositoryTest(t)

	seedDashboardOrder(t, db, "ORD-20260828120001-1", constants.OrderStatusPending, 999)
	seedDashboardOrder(t, db, "ORD-20260828120002-1", constants.OrderStatusCancelled, 500)
	seedDashboardOrder(t, db, "ORD-20260828120003-1", constants.OrderStatusProcessing, 100)
	seedDashboardOrder(t, db, "ORD-20260828120004-1", constants.OrderStatusShipped, 80)
	seedDashboardOrder(t, db, "ORD-20260828120005-1", constants.OrderStatusDelivered, 20)

	revenue, err := repo.TotalRevenue()
	if err != nil {
		t.Fatalf("total revenue failed: %v", err)
	}
	if !revenue.Equal(decimal.NewFromInt(200)) {
		t.Fatalf("expected revenue 200, got %s", revenue.String())
	}
}

func TestTotalRevenueEmptyIsZero(t *testing.T) {
	repo, _ := setupDashboardRepositoryTest(t)

	revenue, err := repo.TotalRevenue()
	if err != nil {
		t.Fatalf("total revenue failed: %v", err)
	}
	if !revenue.IsZero() {
		t.Fatalf("expected zero revenue, got %s", revenue.String())
	}
}

func TestTotalOrdersCountsAllStatuses(t *testing.T) {
	repo, db := setupDashboardRepositoryTest(t)

	seedDashboardOrder(t, db, "ORD-20260828120001-1", constants.OrderStatusPending, 10)
	seedDashboardOrder(t, db, "ORD-20260828120002-1", constants.OrderStatusCancelled, 10)
	seedDashboardOrder(t, db, "ORD-20260828120003-1", constants.OrderStatusDelivered, 10)

	total, err := repo.TotalOrders()
	if err != nil {
		t.Fatalf("total orders failed: %v", err)
	}
	if total != 3 {
		t.Fatalf("expected 3 orders, got %d", total)
	}
}

func TestStatusBreakdownGroupsByStatus(t *testing.T) {
	repo, db := setupDashboardRepositoryTest(t)

	seedDashboardOrder(t, db, "ORD-20260828120001-1", constants.OrderStatusPending, 10)
	seedDashboardOrder(t, db, "ORD-20260828120002-1", constants.OrderStatusPending, 10)
	seedDashboardOrder(t, db, "ORD-20260828120003-1", constants.OrderStatusShipped, 10)

	rows, err := repo.StatusBreakdown()
	if err != nil {
		t.Fatalf("status breakdown failed: %v", err)
	}
	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	if counts[constants.OrderStatusPending] != 2 {
		t.Fatalf("expected 2 pending orders, got %d", counts[constants.OrderStatusPending])
	}
	if counts[constants.OrderStatusShipped] != 1 {
		t.Fatalf("expected 1 shipped order, got %d", counts[constants.OrderStatusShipped])
	}
}
