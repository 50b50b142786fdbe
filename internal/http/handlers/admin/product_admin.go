package admin

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	handlershared "github.com/f1store-next/internal/http/handlers/shared"
	"github.com/f1store-next/internal/http/response"
	"github.com/f1store-next/internal/service"
)

// ProductRequest 商品创建/更新请求
type ProductRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Team        string          `json:"team"`
	Driver      string          `json:"driver"`
	Size        string          `json:"size"`
	ImagePath   string          `json:"image_path"`
}

func (r ProductRequest) toInput() service.ProductInput {
	return service.ProductInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Team:        r.Team,
		Driver:      r.Driver,
		Size:        r.Size,
		ImagePath:   r.ImagePath,
	}
}

func respondProductError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrProductNotFound):
		respondError(c, response.CodeNotFound, "product not found", nil)
	case errors.Is(err, service.ErrProductNameEmpty):
		respondError(c, response.CodeBadRequest, "product name is required", nil)
	case errors.Is(err, service.ErrProductPriceNeg):
		respondError(c, response.CodeBadRequest, "product price must not be negative", nil)
	default:
		respondError(c, response.CodeInternal, "failed to save product", err)
	}
}

// CreateProduct 创建商品
func (h *Handler) CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", nil)
		return
	}

	product, err := h.ProductService.Create(req.toInput())
	if err != nil {
		respondProductError(c, err)
		return
	}
	response.SuccessWithMsg(c, "product created", gin.H{"product": product})
}

// UpdateProduct 更新商品；调价不影响已结算订单的快照价
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, ok := handlershared.ParamUint(c, "product_id")
	if !ok {
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", nil)
		return
	}

	product, err := h.ProductService.Update(id, req.toInput())
	if err != nil {
		respondProductError(c, err)
		return
	}
	response.Success(c, gin.H{"product": product})
}

// DeleteProduct 下架商品
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := handlershared.ParamUint(c, "product_id")
	if !ok {
		return
	}

	if err := h.ProductService.Delete(id); err != nil {
		respondProductError(c, err)
		return
	}
	response.SuccessWithMsg(c, "product deleted", nil)
}
