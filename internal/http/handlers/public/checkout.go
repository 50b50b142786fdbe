package public

import (
	"github.com/gin-gonic/gin"

	"github.com/f1store-next/internal/http/response"
	"github.com/f1store-next/internal/service"
)

// CheckoutRequest 结算请求
type CheckoutRequest struct {
	ShippingAddress    string `json:"shipping_address" binding:"required"`
	ShippingCity       string `json:"shipping_city" binding:"required"`
	ShippingPostalCode string `json:"shipping_postal_code" binding:"required"`
	ShippingCountry    string `json:"shipping_country" binding:"required"`
}

// Checkout 结算购物车：生成订单并清空购物车
func (h *Handler) Checkout(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "shipping information is invalid", nil)
		return
	}

	order, err := h.CheckoutService.Checkout(service.CheckoutInput{
		UserID:             uid,
		ShippingAddress:    req.ShippingAddress,
		ShippingCity:       req.ShippingCity,
		ShippingPostalCode: req.ShippingPostalCode,
		ShippingCountry:    req.ShippingCountry,
	})
	if err != nil {
		respondWithMappedError(c, err, checkoutErrorRules, response.CodeInternal, "failed to place order")
		return
	}
	response.SuccessWithMsg(c, "order placed", gin.H{"order": order})
}
