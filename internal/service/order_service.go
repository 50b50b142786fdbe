package service

import (
	"github.com/f1store-next/internal/logger"
	"github.com/f1store-next/internal/models"
	"github.com/f1store-next/internal/queue"
	"github.com/f1store-next/internal/repository"
)

// OrderListResult 订单列表查询结果
type OrderListResult struct {
	Orders   []models.Order `json:"orders"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// OrderService 订单查询与状态管理服务
type OrderService struct {
	orderRepo    repository.OrderRepository
	statusPolicy StatusPolicy
	notifier     *queue.Client
}

// NewOrderService 创建订单服务
func NewOrderService(orderRepo repository.OrderRepository, statusPolicy StatusPolicy, notifier *queue.Client) *OrderService {
	if statusPolicy == nil {
		statusPolicy = NewMembershipStatusPolicy()
	}
	return &OrderService{
		orderRepo:    orderRepo,
		statusPolicy: statusPolicy,
		notifier:     notifier,
	}
}

// GetByID 根据ID获取订单（含订单项）
func (s *OrderService) GetByID(id uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, ErrOrderFetchFail
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// GetByOrderNo 根据订单编号获取订单（含订单项）
func (s *OrderService) GetByOrderNo(orderNo string) (*models.Order, error) {
	order, err := s.orderRepo.GetByOrderNo(orderNo)
	if err != nil {
		return nil, ErrOrderFetchFail
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// GetUserOrder 获取用户自己的订单；订单属于别人时按不存在处理。
func (s *OrderService) GetUserOrder(userID, orderID uint) (*models.Order, error) {
	order, err := s.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// ListByUser 分页获取用户订单，按创建时间倒序
func (s *OrderService) ListByUser(userID uint, page, pageSize int) (*OrderListResult, error) {
	return s.list(repository.OrderListFilter{
		UserID:   userID,
		Page:     page,
		PageSize: pageSize,
	})
}

// List 管理端订单列表，支持按状态/用户/编号过滤
func (s *OrderService) List(filter repository.OrderListFilter) (*OrderListResult, error) {
	if filter.Status != "" {
		if err := s.statusPolicy.Validate("", filter.Status); err != nil {
			return nil, err
		}
	}
	return s.list(filter)
}

func (s *OrderService) list(filter repository.OrderListFilter) (*OrderListResult, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 || filter.PageSize > 100 {
		filter.PageSize = 20
	}
	orders, total, err := s.orderRepo.List(filter)
	if err != nil {
		return nil, ErrOrderFetchFail
	}
	return &OrderListResult{
		Orders:   orders,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}

// UpdateStatus 更新订单状态。
// 只校验目标状态是否合法，不限制迁移方向；幂等：重复设置同一状态成功返回。
func (s *OrderService) UpdateStatus(id uint, status string) (*models.Order, error) {
	order, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.statusPolicy.Validate(order.Status, status); err != nil {
		return nil, err
	}
	if order.Status != status {
		if err := s.orderRepo.UpdateStatus(order.ID, status); err != nil {
			return nil, ErrOrderUpdateFail
		}
		s.notifyStatus(order, status)
	}
	return s.GetByID(id)
}

// Delete 硬删除订单（连带订单项）
func (s *OrderService) Delete(id uint) error {
	deleted, err := s.orderRepo.Delete(id)
	if err != nil {
		return ErrOrderDeleteFail
	}
	if !deleted {
		return ErrOrderNotFound
	}
	return nil
}

func (s *OrderService) notifyStatus(order *models.Order, status string) {
	if s.notifier == nil {
		return
	}
	err := s.notifier.EnqueueOrderStatusNotify(queue.OrderStatusNotifyPayload{
		OrderID: order.ID,
		OrderNo: order.OrderNo,
		Status:  status,
	})
	if err != nil {
		logger.Warnw("enqueue order status notify failed",
			"order_no", order.OrderNo,
			"error", err,
		)
	}
}
