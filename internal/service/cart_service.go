package service

import (
	"github.com/shopspring/decimal"

	"github.com/f1store-next/internal/models"
	"github.com/f1store-next/internal/repository"
)

// CartItemDetail 购物车项详情（用于响应）
type CartItemDetail struct {
	ID        uint            `json:"id"`
	ProductID uint            `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice models.Money    `json:"unit_price"`
	LineTotal models.Money    `json:"line_total"`
	Product   *models.Product `json:"product,omitempty"`
}

// CartDetail 购物车详情（用于响应）。
// 单价取商品当前价格，购物车阶段不冻结价格。
type CartDetail struct {
	ID        uint             `json:"id"`
	UserID    uint             `json:"user_id"`
	Items     []CartItemDetail `json:"items"`
	ItemCount int              `json:"item_count"`
	Total     models.Money     `json:"total"`
}

// AddCartItemInput 加购输入
type AddCartItemInput struct {
	UserID    uint
	ProductID uint
	Quantity  int
}

// UpdateCartItemInput 购物项改量输入
type UpdateCartItemInput struct {
	UserID   uint
	ItemID   uint
	Quantity int
}

// CartService 购物车服务
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartService 创建购物车服务
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// GetByUser 获取用户购物车详情；从未加购的用户返回空车。
func (s *CartService) GetByUser(userID uint) (*CartDetail, error) {
	cart, err := s.cartRepo.GetByUser(userID)
	if err != nil {
		return nil, ErrCartFetchFail
	}
	if cart == nil {
		return &CartDetail{UserID: userID, Items: []CartItemDetail{}}, nil
	}
	return buildCartDetail(cart), nil
}

// AddItem 加购商品：同一商品重复加购时数量累加而不是新增行。
func (s *CartService) AddItem(input AddCartItemInput) (*CartDetail, error) {
	if input.Quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	product, err := s.productRepo.GetByID(input.ProductID)
	if err != nil {
		return nil, ErrCartFetchFail
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	cart, err := s.cartRepo.GetOrCreateByUser(input.UserID)
	if err != nil {
		return nil, ErrCartUpdateFail
	}
	item := &models.CartItem{
		CartID:    cart.ID,
		ProductID: input.ProductID,
		Quantity:  input.Quantity,
	}
	if err := s.cartRepo.UpsertItem(item); err != nil {
		return nil, ErrCartUpdateFail
	}
	if err := s.cartRepo.TouchCart(cart.ID); err != nil {
		return nil, ErrCartUpdateFail
	}
	return s.GetByUser(input.UserID)
}

// UpdateItem 覆盖购物项数量（不是累加）
func (s *CartService) UpdateItem(input UpdateCartItemInput) (*CartDetail, error) {
	if input.Quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	cart, err := s.cartRepo.GetByUser(input.UserID)
	if err != nil {
		return nil, ErrCartFetchFail
	}
	if cart == nil {
		return nil, ErrCartItemNotFound
	}
	item, err := s.cartRepo.GetItem(cart.ID, input.ItemID)
	if err != nil {
		return nil, ErrCartFetchFail
	}
	if item == nil {
		return nil, ErrCartItemNotFound
	}
	if err := s.cartRepo.UpdateItemQuantity(item.ID, input.Quantity); err != nil {
		return nil, ErrCartUpdateFail
	}
	if err := s.cartRepo.TouchCart(cart.ID); err != nil {
		return nil, ErrCartUpdateFail
	}
	return s.GetByUser(input.UserID)
}

// RemoveItem 移除购物项；itemID 必须属于该用户的购物车。
func (s *CartService) RemoveItem(userID, itemID uint) (*CartDetail, error) {
	cart, err := s.cartRepo.GetByUser(userID)
	if err != nil {
		return nil, ErrCartFetchFail
	}
	if cart == nil {
		return nil, ErrCartItemNotFound
	}
	removed, err := s.cartRepo.RemoveItem(cart.ID, itemID)
	if err != nil {
		return nil, ErrCartUpdateFail
	}
	if !removed {
		return nil, ErrCartItemNotFound
	}
	if err := s.cartRepo.TouchCart(cart.ID); err != nil {
		return nil, ErrCartUpdateFail
	}
	return s.GetByUser(userID)
}

// Clear 清空用户购物车；空车清空是幂等的 no-op。
func (s *CartService) Clear(userID uint) (*CartDetail, error) {
	cart, err := s.cartRepo.GetByUser(userID)
	if err != nil {
		return nil, ErrCartFetchFail
	}
	if cart == nil {
		return &CartDetail{UserID: userID, Items: []CartItemDetail{}}, nil
	}
	if err := s.cartRepo.ClearByCart(cart.ID); err != nil {
		return nil, ErrCartUpdateFail
	}
	if err := s.cartRepo.TouchCart(cart.ID); err != nil {
		return nil, ErrCartUpdateFail
	}
	return s.GetByUser(userID)
}

// buildCartDetail 汇总购物车：逐项按商品当前价格计算小计并求和。
// 商品已下架删除的购物项（商品指针为空）不展示也不参与汇总，
// 结算时同样跳过，两边口径一致。
func buildCartDetail(cart *models.Cart) *CartDetail {
	detail := &CartDetail{
		ID:     cart.ID,
		UserID: cart.UserID,
		Items:  make([]CartItemDetail, 0, len(cart.Items)),
	}
	total := decimal.Zero
	for _, item := range cart.Items {
		if item.Product == nil {
			continue
		}
		unitPrice := item.Product.Price.Decimal
		lineTotal := unitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(lineTotal)
		detail.ItemCount += item.Quantity
		detail.Items = append(detail.Items, CartItemDetail{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: models.NewMoneyFromDecimal(unitPrice),
			LineTotal: models.NewMoneyFromDecimal(lineTotal),
			Product:   item.Product,
		})
	}
	detail.Total = models.NewMoneyFromDecimal(total)
	return detail
}
