package service

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/f1store-next/internal/constants"
	"github.com/f1store-next/internal/logger"
	"github.com/f1store-next/internal/models"
	"github.com/f1store-next/internal/queue"
	"github.com/f1store-next/internal/repository"
)

// CheckoutInput 结算输入
type CheckoutInput struct {
	UserID             uint
	ShippingAddress    string
	ShippingCity       string
	ShippingPostalCode string
	ShippingCountry    string
}

// CheckoutService 结算服务：把可变购物车一次性转换为不可变订单。
type CheckoutService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	notifier    *queue.Client
	maxAttempts int
	now         func() time.Time
}

// NewCheckoutService 创建结算服务。
// maxAttempts 为订单号冲突时的最大重试次数，小于 1 时取默认值。
func NewCheckoutService(
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	notifier *queue.Client,
	maxAttempts int,
) *CheckoutService {
	if maxAttempts < 1 {
		maxAttempts = 5
	}
	return &CheckoutService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
		notifier:    notifier,
		maxAttempts: maxAttempts,
		now:         time.Now,
	}
}

// Checkout 结算用户购物车。
// 整个过程在单个数据库事务内完成：创建订单与订单项、清空购物车，
// 任一步失败全部回滚，购物车保持原样。
// 单价与商品展示信息在此刻快照进订单项，之后商品调价不影响该订单。
func (s *CheckoutService) Checkout(input CheckoutInput) (*models.Order, error) {
	if err := validateShipping(input); err != nil {
		return nil, err
	}

	cart, err := s.cartRepo.GetByUser(input.UserID)
	if err != nil {
		return nil, ErrCheckoutFail
	}
	if cart == nil || len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	var created *models.Order
	err = s.orderRepo.Transaction(func(tx *gorm.DB) error {
		cartRepo := s.cartRepo.WithTx(tx)

		// 事务内重读购物车，避免用事务外的旧快照下单
		current, err := cartRepo.GetByUser(input.UserID)
		if err != nil {
			return ErrCheckoutFail
		}
		if current == nil || len(current.Items) == 0 {
			return ErrEmptyCart
		}

		order, err := s.buildOrder(input, current)
		if err != nil {
			return err
		}
		if err := s.createWithUniqueOrderNo(tx, order); err != nil {
			return err
		}
		if err := cartRepo.ClearByCart(current.ID); err != nil {
			return ErrCheckoutFail
		}
		if err := cartRepo.TouchCart(current.ID); err != nil {
			return ErrCheckoutFail
		}
		created = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifyStatus(created)
	return s.orderRepo.GetByID(created.ID)
}

// buildOrder 把购物车内容物化为订单：逐项冻结单价并汇总总额。
// 商品已下架删除的购物项跳过，不进订单；与购物车展示口径一致。
func (s *CheckoutService) buildOrder(input CheckoutInput, cart *models.Cart) (*models.Order, error) {
	items := make([]models.OrderItem, 0, len(cart.Items))
	total := decimal.Zero
	for _, cartItem := range cart.Items {
		product := cartItem.Product
		if product == nil || product.ID == 0 {
			p, err := s.productRepo.GetByID(cartItem.ProductID)
			if err != nil {
				return nil, ErrCheckoutFail
			}
			product = p
		}
		if product == nil {
			continue
		}
		unitPrice := product.Price.Decimal
		lineTotal := unitPrice.Mul(decimal.NewFromInt(int64(cartItem.Quantity)))
		total = total.Add(lineTotal)
		items = append(items, models.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Team:        product.Team,
			Driver:      product.Driver,
			Size:        product.Size,
			ImagePath:   product.ImagePath,
			UnitPrice:   models.NewMoneyFromDecimal(unitPrice),
			Quantity:    cartItem.Quantity,
			TotalPrice:  models.NewMoneyFromDecimal(lineTotal),
		})
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	return &models.Order{
		UserID:             input.UserID,
		Status:             constants.OrderStatusPending,
		TotalAmount:        models.NewMoneyFromDecimal(total),
		ShippingAddress:    strings.TrimSpace(input.ShippingAddress),
		ShippingCity:       strings.TrimSpace(input.ShippingCity),
		ShippingPostalCode: strings.TrimSpace(input.ShippingPostalCode),
		ShippingCountry:    strings.TrimSpace(input.ShippingCountry),
		Items:              items,
	}, nil
}

// createWithUniqueOrderNo 写入订单，订单号撞唯一索引时换后缀重试。
// 同一用户同一秒内的并发结算会生成相同的基础编号，
// 第二笔及以后追加 -2、-3 等序号后缀。
// 每次写入跑在嵌套事务（SAVEPOINT）里：Postgres 上唯一索引冲突会
// 中止当前事务，必须回滚到保存点，外层结算事务才能继续重试。
func (s *CheckoutService) createWithUniqueOrderNo(tx *gorm.DB, order *models.Order) error {
	base := s.generateOrderNo(order.UserID)
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		order.OrderNo = base
		if attempt > 1 {
			order.OrderNo = fmt.Sprintf("%s-%d", base, attempt)
		}
		err := tx.Transaction(func(inner *gorm.DB) error {
			return s.orderRepo.WithTx(inner).Create(order)
		})
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrCheckoutFail
		}
		// 换号重试前清掉上一轮可能回填的主键
		order.ID = 0
		for i := range order.Items {
			order.Items[i].ID = 0
			order.Items[i].OrderID = 0
		}
		logger.Warnw("order no conflict, retrying",
			"order_no", order.OrderNo,
			"attempt", attempt,
		)
	}
	return ErrOrderNoConflict
}

// generateOrderNo 生成基础订单号：ORD-<yyyyMMddHHmmss>-<userId>
func (s *CheckoutService) generateOrderNo(userID uint) string {
	return fmt.Sprintf("%s-%s-%d",
		constants.OrderNoPrefix,
		s.now().Format(constants.OrderNoTimeLayout),
		userID,
	)
}

// notifyStatus 结算成功后入队状态通知；队列不可用只记日志，不影响下单。
func (s *CheckoutService) notifyStatus(order *models.Order) {
	if s.notifier == nil || order == nil {
		return
	}
	err := s.notifier.EnqueueOrderStatusNotify(queue.OrderStatusNotifyPayload{
		OrderID: order.ID,
		OrderNo: order.OrderNo,
		Status:  order.Status,
	})
	if err != nil {
		logger.Warnw("enqueue order status notify failed",
			"order_no", order.OrderNo,
			"error", err,
		)
	}
}

// validateShipping 校验收货信息：四个字段必填且不超长，长度按字符数计
func validateShipping(input CheckoutInput) error {
	address := strings.TrimSpace(input.ShippingAddress)
	city := strings.TrimSpace(input.ShippingCity)
	postalCode := strings.TrimSpace(input.ShippingPostalCode)
	country := strings.TrimSpace(input.ShippingCountry)
	if address == "" || city == "" || postalCode == "" || country == "" {
		return ErrShippingInvalid
	}
	if utf8.RuneCountInString(address) > constants.MaxShippingAddressLen ||
		utf8.RuneCountInString(city) > constants.MaxShippingCityLen ||
		utf8.RuneCountInString(postalCode) > constants.MaxShippingPostalCodeLen ||
		utf8.RuneCountInString(country) > constants.MaxShippingCountryLen {
		return ErrShippingInvalid
	}
	return nil
}
