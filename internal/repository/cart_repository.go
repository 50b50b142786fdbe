package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/f1store-next/internal/models"
)

// CartRepository 购物车数据访问接口
type CartRepository interface {
	GetByUser(userID uint) (*models.Cart, error)
	GetOrCreateByUser(userID uint) (*models.Cart, error)
	UpsertItem(item *models.CartItem) error
	GetItem(cartID, itemID uint) (*models.CartItem, error)
	UpdateItemQuantity(itemID uint, quantity int) error
	RemoveItem(cartID, itemID uint) (bool, error)
	ClearByCart(cartID uint) error
	TouchCart(cartID uint) error
	WithTx(tx *gorm.DB) CartRepository
}

// GormCartRepository 基于 GORM 的购物车仓储实现
type GormCartRepository struct {
	db *gorm.DB
}

// NewGormCartRepository 创建购物车仓储
func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// WithTx 返回绑定到指定事务的仓储
func (r *GormCartRepository) WithTx(tx *gorm.DB) CartRepository {
	return &GormCartRepository{db: tx}
}

// GetByUser 查询用户购物车（含购物项与关联商品），未找到返回 (nil, nil)
func (r *GormCartRepository) GetByUser(userID uint) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("cart_items.id ASC")
		}).
		Preload("Items.Product").
		Where("user_id = ?", userID).
		First(&cart).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cart, nil
}

// GetOrCreateByUser 查询用户购物车，不存在则创建空车。
// user_id 上有唯一索引，并发创建时落败的一方改走重查。
func (r *GormCartRepository) GetOrCreateByUser(userID uint) (*models.Cart, error) {
	cart, err := r.GetByUser(userID)
	if err != nil {
		return nil, err
	}
	if cart != nil {
		return cart, nil
	}

	created := &models.Cart{UserID: userID}
	if err := r.db.Create(created).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return r.GetByUser(userID)
		}
		return nil, err
	}
	return created, nil
}

// UpsertItem 原子地插入购物项，(cart_id, product_id) 冲突时累加数量。
// 依赖唯一索引 idx_cart_items_cart_product，并发加购同一商品不会丢更新。
func (r *GormCartRepository) UpsertItem(item *models.CartItem) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "cart_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity":   gorm.Expr("quantity + ?", item.Quantity),
			"updated_at": time.Now(),
		}),
	}).Create(item).Error
}

// GetItem 查询购物车内的指定购物项，未找到返回 (nil, nil)
func (r *GormCartRepository) GetItem(cartID, itemID uint) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.Where("id = ? AND cart_id = ?", itemID, cartID).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// UpdateItemQuantity 覆盖购物项数量
func (r *GormCartRepository) UpdateItemQuantity(itemID uint, quantity int) error {
	return r.db.Model(&models.CartItem{}).
		Where("id = ?", itemID).
		Updates(map[string]interface{}{
			"quantity":   quantity,
			"updated_at": time.Now(),
		}).Error
}

// RemoveItem 删除购物车内的指定购物项，返回是否确有删除
func (r *GormCartRepository) RemoveItem(cartID, itemID uint) (bool, error) {
	result := r.db.Where("id = ? AND cart_id = ?", itemID, cartID).Delete(&models.CartItem{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// ClearByCart 清空购物车全部购物项
func (r *GormCartRepository) ClearByCart(cartID uint) error {
	return r.db.Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error
}

// TouchCart 刷新购物车 updated_at
func (r *GormCartRepository) TouchCart(cartID uint) error {
	return r.db.Model(&models.Cart{}).
		Where("id = ?", cartID).
		Update("updated_at", time.Now()).Error
}
