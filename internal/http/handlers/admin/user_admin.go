package admin

import (
	"errors"

	"github.com/gin-gonic/gin"

	handlershared "github.com/f1store-next/internal/http/handlers/shared"
	"github.com/f1store-next/internal/http/response"
	"github.com/f1store-next/internal/service"
)

// ListUsers 用户目录列表
func (h *Handler) ListUsers(c *gin.Context) {
	page, pageSize := handlershared.NormalizePagination(
		handlershared.QueryInt(c, "page", 1),
		handlershared.QueryInt(c, "page_size", 20),
	)

	users, total, err := h.UserService.List(page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to fetch users", err)
		return
	}
	response.SuccessWithPage(c, gin.H{"users": users},
		response.NewPagination(page, pageSize, total))
}

// GetUser 用户详情
func (h *Handler) GetUser(c *gin.Context) {
	id, ok := handlershared.ParamUint(c, "user_id")
	if !ok {
		return
	}

	user, err := h.UserService.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			respondError(c, response.CodeNotFound, "user not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "failed to fetch user", err)
		return
	}
	response.Success(c, gin.H{"user": user})
}
