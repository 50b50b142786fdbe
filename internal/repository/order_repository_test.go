package repository

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/f1store-next/internal/constants"
	"github.com/f1store-next/internal/models"
)

func setupOrderRepositoryTest(t *testing.T) (*GormOrderRepository, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Order{}, &models.OrderItem{}); err != nil {
		t.Fatalf("migrate order models failed: %v", err)
	}
	return NewGormOrderRepository(db), db
}

func newTestOrder(orderNo string, userID uint, status string, total int64) *models.Order {
	return &models.Order{
		OrderNo:     orderNo,
		UserID:      userID,
		Status:      status,
		TotalAmount: models.NewMoneyFromDecimal(decimal.NewFromInt(total)),
		Items: []models.OrderItem{
			{
				ProductID:   1,
				ProductName: "Team Polo",
				UnitPrice:   models.NewMoneyFromDecimal(decimal.NewFromInt(total)),
				Quantity:    1,
				TotalPrice:  models.NewMoneyFromDecimal(decimal.NewFromInt(total)),
			},
		},
	}
}

func TestCreateRejectsDuplicateOrderNo(t *testing.T) {
	repo, _ := setupOrderRepositoryTest(t)

	if err := repo.Create(newTestOrder("ORD-20260828120000-1", 1, constants.OrderStatusPending, 100)); err != nil {
		t.Fatalf("create first order failed: %v", err)
	}

	err := repo.Create(newTestOrder("ORD-20260828120000-1", 2, constants.OrderStatusPending, 50))
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("expected gorm.ErrDuplicatedKey, got %v", err)
	}
}

func TestGetByOrderNoLoadsItems(t *testing.T) {
	repo, _ := setupOrderRepositoryTest(t)

	if err := repo.Create(newTestOrder("ORD-20260828120000-1", 1, constants.OrderStatusPending, 100)); err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	order, err := repo.GetByOrderNo("ORD-20260828120000-1")
	if err != nil {
		t.Fatalf("get order by no failed: %v", err)
	}
	if order == nil {
		t.Fatalf("expected order, got nil")
	}
	if len(order.Items) != 1 || order.Items[0].ProductName != "Team Polo" {
		t.Fatalf("expected preloaded items, got %+v", order.Items)
	}

	missing, err := repo.GetByOrderNo("ORD-20260828120000-999")
	if err != nil {
		t.Fatalf("get missing order failed: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for missing order, got %+v", missing)
	}
}

func TestListFiltersByUserAndStatus(t *testing.T) {
	repo, _ := setupOrderRepositoryTest(t)

	seeds := []*models.Order{
		newTestOrder("ORD-20260828120001-1", 1, constants.OrderStatusPending, 100),
		newTestOrder("ORD-20260828120002-1", 1, constants.OrderStatusShipped, 80),
		newTestOrder("ORD-20260828120003-2", 2, constants.OrderStatusShipped, 60),
	}
	for _, order := range seeds {
		if err := repo.Create(order); err != nil {
			t.Fatalf("create order %s failed: %v", order.OrderNo, err)
		}
	}

	orders, total, err := repo.List(OrderListFilter{UserID: 1, Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("list user orders failed: %v", err)
	}
	if total != 2 || len(orders) != 2 {
		t.Fatalf("expected 2 orders for user 1, got total=%d len=%d", total, len(orders))
	}

	orders, total, err = repo.List(OrderListFilter{Status: constants.OrderStatusShipped, Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("list shipped orders failed: %v", err)
	}
	if total != 2 {
		t.Fatalf("expected 2 shipped orders, got %d", total)
	}
	for _, order := range orders {
		if order.Status != constants.OrderStatusShipped {
			t.Fatalf("unexpected status %s in filtered list", order.Status)
		}
	}
}

func TestUpdateStatusPersists(t *testing.T) {
	repo, _ := setupOrderRepositoryTest(t)

	order := newTestOrder("ORD-20260828120000-1", 1, constants.OrderStatusPending, 100)
	if err := repo.Create(order); err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	if err := repo.UpdateStatus(order.ID, constants.OrderStatusProcessing); err != nil {
		t.Fatalf("update status failed: %v", err)
	}

	loaded, err := repo.GetByID(order.ID)
	if err != nil {
		t.Fatalf("reload order failed: %v", err)
	}
	if loaded.Status != constants.OrderStatusProcessing {
		t.Fatalf("expected status %s, got %s", constants.OrderStatusProcessing, loaded.Status)
	}
}

func TestDeleteRemovesOrderAndItems(t *testing.T) {
	repo, db := setupOrderRepositoryTest(t)

	order := newTestOrder("ORD-20260828120000-1", 1, constants.OrderStatusPending, 100)
	if err := repo.Create(order); err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	deleted, err := repo.Delete(order.ID)
	if err != nil {
		t.Fatalf("delete order failed: %v", err)
	}
	if !deleted {
		t.Fatalf("expected order to be deleted")
	}

	var itemCount int64
	if err := db.Model(&models.OrderItem{}).Where("order_id = ?", order.ID).Count(&itemCount).Error; err != nil {
		t.Fatalf("count order items failed: %v", err)
	}
	if itemCount != 0 {
		t.Fatalf("expected cascading item delete, %d items left", itemCount)
	}

	deleted, err = repo.Delete(order.ID)
	if err != nil {
		t.Fatalf("second delete failed: %v", err)
	}
	if deleted {
		t.Fatalf("expected second delete to be a no-op")
	}
}
