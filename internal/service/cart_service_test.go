package service

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/f1store-next/internal/models"
	"github.com/f1store-next/internal/repository"
)

func setupCartServiceTest(t *testing.T) (*CartService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}, &models.Cart{}, &models.CartItem{}); err != nil {
		t.Fatalf("migrate cart models failed: %v", err)
	}
	return NewCartService(
		repository.NewGormCartRepository(db),
		repository.NewGormProductRepository(db),
	), db
}

func createServiceTestProduct(t *testing.T, db *gorm.DB, name string, price string) *models.Product {
	t.Helper()
	amount, err := decimal.NewFromString(price)
	if err != nil {
		t.Fatalf("parse price failed: %v", err)
	}
	product := &models.Product{
		Name:  name,
		Price: models.NewMoneyFromDecimal(amount),
		Team:  "McLaren",
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func TestGetByUserReturnsEmptyCartForNewUser(t *testing.T) {
	svc, _ := setupCartServiceTest(t)

	cart, err := svc.GetByUser(42)
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if len(cart.Items) != 0 || cart.ItemCount != 0 {
		t.Fatalf("expected empty cart, got %+v", cart)
	}
	if !cart.Total.IsZero() {
		t.Fatalf("expected zero total, got %s", cart.Total.String())
	}
}

func TestAddItemAccumulatesSameProduct(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := createServiceTestProduct(t, db, "Team Polo", "55.00")

	if _, err := svc.AddItem(AddCartItemInput{UserID: 1, ProductID: product.ID, Quantity: 2}); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	cart, err := svc.AddItem(AddCartItemInput{UserID: 1, ProductID: product.ID, Quantity: 3})
	if err != nil {
		t.Fatalf("second add failed: %v", err)
	}

	if len(cart.Items) != 1 {
		t.Fatalf("expected single line for same product, got %d", len(cart.Items))
	}
	if cart.Items[0].Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", cart.Items[0].Quantity)
	}
	if cart.Total.String() != "275.00" {
		t.Fatalf("expected total 275.00, got %s", cart.Total.String())
	}
}

func TestAddItemRejectsInvalidQuantityAndMissingProduct(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := createServiceTestProduct(t, db, "Team Polo", "55.00")

	if _, err := svc.AddItem(AddCartItemInput{UserID: 1, ProductID: product.ID, Quantity: 0}); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
	if _, err := svc.AddItem(AddCartItemInput{UserID: 1, ProductID: 999, Quantity: 1}); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestUpdateItemOverwritesQuantity(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := createServiceTestProduct(t, db, "Team Polo", "55.00")

	cart, err := svc.AddItem(AddCartItemInput{UserID: 1, ProductID: product.ID, Quantity: 5})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	updated, err := svc.UpdateItem(UpdateCartItemInput{UserID: 1, ItemID: cart.Items[0].ID, Quantity: 2})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Items[0].Quantity != 2 {
		t.Fatalf("expected quantity overwritten to 2, got %d", updated.Items[0].Quantity)
	}

	if _, err := svc.UpdateItem(UpdateCartItemInput{UserID: 1, ItemID: cart.Items[0].ID, Quantity: 0}); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
	if _, err := svc.UpdateItem(UpdateCartItemInput{UserID: 1, ItemID: 9999, Quantity: 1}); !errors.Is(err, ErrCartItemNotFound) {
		t.Fatalf("expected ErrCartItemNotFound, got %v", err)
	}
}

func TestRemoveItemAndClear(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	polo := createServiceTestProduct(t, db, "Team Polo", "55.00")
	cap := createServiceTestProduct(t, db, "Driver Cap", "35.00")

	if _, err := svc.AddItem(AddCartItemInput{UserID: 1, ProductID: polo.ID, Quantity: 1}); err != nil {
		t.Fatalf("add polo failed: %v", err)
	}
	cart, err := svc.AddItem(AddCartItemInput{UserID: 1, ProductID: cap.ID, Quantity: 2})
	if err != nil {
		t.Fatalf("add cap failed: %v", err)
	}

	afterRemove, err := svc.RemoveItem(1, cart.Items[0].ID)
	if err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if len(afterRemove.Items) != 1 {
		t.Fatalf("expected 1 item after remove, got %d", len(afterRemove.Items))
	}

	if _, err := svc.RemoveItem(1, 9999); !errors.Is(err, ErrCartItemNotFound) {
		t.Fatalf("expected ErrCartItemNotFound, got %v", err)
	}

	cleared, err := svc.Clear(1)
	if err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if len(cleared.Items) != 0 {
		t.Fatalf("expected empty cart after clear, got %d items", len(cleared.Items))
	}

	// 空车再清一次应当是幂等的
	if _, err := svc.Clear(1); err != nil {
		t.Fatalf("clearing empty cart failed: %v", err)
	}
}

func TestCartHidesDeletedProductLines(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	polo := createServiceTestProduct(t, db, "Team Polo", "55.00")
	cap := createServiceTestProduct(t, db, "Driver Cap", "20.00")

	if _, err := svc.AddItem(AddCartItemInput{UserID: 1, ProductID: polo.ID, Quantity: 1}); err != nil {
		t.Fatalf("add polo failed: %v", err)
	}
	if _, err := svc.AddItem(AddCartItemInput{UserID: 1, ProductID: cap.ID, Quantity: 2}); err != nil {
		t.Fatalf("add cap failed: %v", err)
	}
	if err := db.Delete(&models.Product{}, cap.ID).Error; err != nil {
		t.Fatalf("delete product failed: %v", err)
	}

	// 商品下架后对应购物项不再展示，也不计入数量与总额
	cart, err := svc.GetByUser(1)
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if len(cart.Items) != 1 || cart.Items[0].ProductID != polo.ID {
		t.Fatalf("expected single polo line, got %+v", cart.Items)
	}
	if cart.ItemCount != 1 {
		t.Fatalf("expected item count 1, got %d", cart.ItemCount)
	}
	if cart.Total.String() != "55.00" {
		t.Fatalf("expected total 55.00, got %s", cart.Total.String())
	}
}

func TestCartTotalTracksCurrentProductPrice(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := createServiceTestProduct(t, db, "Team Polo", "55.00")

	if _, err := svc.AddItem(AddCartItemInput{UserID: 1, ProductID: product.ID, Quantity: 2}); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	// 购物车不冻结价格，调价后重新汇总
	if err := db.Model(&models.Product{}).Where("id = ?", product.ID).
		Update("price", models.NewMoneyFromDecimal(decimal.NewFromInt(60))).Error; err != nil {
		t.Fatalf("reprice product failed: %v", err)
	}

	cart, err := svc.GetByUser(1)
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if cart.Total.String() != "120.00" {
		t.Fatalf("expected total 120.00 after reprice, got %s", cart.Total.String())
	}
}
