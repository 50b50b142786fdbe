package admin

import (
	"errors"

	"github.com/gin-gonic/gin"

	handlershared "github.com/f1store-next/internal/http/handlers/shared"
	"github.com/f1store-next/internal/http/response"
	"github.com/f1store-next/internal/repository"
	"github.com/f1store-next/internal/service"
)

// UpdateOrderStatusRequest 订单状态更新请求
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ListOrders 管理端订单列表，支持按状态/用户/编号过滤
func (h *Handler) ListOrders(c *gin.Context) {
	page, pageSize := handlershared.NormalizePagination(
		handlershared.QueryInt(c, "page", 1),
		handlershared.QueryInt(c, "page_size", 20),
	)

	filter := repository.OrderListFilter{
		Page:     page,
		PageSize: pageSize,
		Status:   c.Query("status"),
		OrderNo:  c.Query("order_no"),
		UserID:   uint(handlershared.QueryInt(c, "user_id", 0)),
	}

	result, err := h.OrderService.List(filter)
	if err != nil {
		if errors.Is(err, service.ErrOrderStatusInvalid) {
			respondError(c, response.CodeBadRequest, "invalid order status", nil)
			return
		}
		respondError(c, response.CodeInternal, "failed to fetch orders", err)
		return
	}
	response.SuccessWithPage(c, gin.H{"orders": result.Orders},
		response.NewPagination(result.Page, result.PageSize, result.Total))
}

// GetOrder 管理端订单详情
func (h *Handler) GetOrder(c *gin.Context) {
	orderID, ok := handlershared.ParamUint(c, "order_id")
	if !ok {
		return
	}

	order, err := h.OrderService.GetByID(orderID)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			respondError(c, response.CodeNotFound, "order not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "failed to fetch order", err)
		return
	}
	response.Success(c, gin.H{"order": order})
}

// GetOrderByNo 按订单编号查询订单
func (h *Handler) GetOrderByNo(c *gin.Context) {
	orderNo := c.Param("order_no")
	if orderNo == "" {
		respondError(c, response.CodeBadRequest, "invalid order_no", nil)
		return
	}

	order, err := h.OrderService.GetByOrderNo(orderNo)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			respondError(c, response.CodeNotFound, "order not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "failed to fetch order", err)
		return
	}
	response.Success(c, gin.H{"order": order})
}

// UpdateOrderStatus 更新订单状态（仅校验目标状态合法性）
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	orderID, ok := handlershared.ParamUint(c, "order_id")
	if !ok {
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", nil)
		return
	}

	order, err := h.OrderService.UpdateStatus(orderID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			respondError(c, response.CodeNotFound, "order not found", nil)
		case errors.Is(err, service.ErrOrderStatusInvalid):
			respondError(c, response.CodeBadRequest, "invalid order status", nil)
		default:
			respondError(c, response.CodeInternal, "failed to update order", err)
		}
		return
	}
	response.Success(c, gin.H{"order": order})
}

// DeleteOrder 删除订单（连带订单项）
func (h *Handler) DeleteOrder(c *gin.Context) {
	orderID, ok := handlershared.ParamUint(c, "order_id")
	if !ok {
		return
	}

	if err := h.OrderService.Delete(orderID); err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			respondError(c, response.CodeNotFound, "order not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "failed to delete order", err)
		return
	}
	response.SuccessWithMsg(c, "order deleted", nil)
}
