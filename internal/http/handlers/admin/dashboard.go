package admin

import (
	"github.com/gin-gonic/gin"

	"github.com/f1store-next/internal/http/response"
)

// Dashboard 经营统计汇总：营收、订单数与状态分布
func (h *Handler) Dashboard(c *gin.Context) {
	summary, err := h.DashboardService.Summary(c.Request.Context())
	if err != nil {
		respondError(c, response.CodeInternal, "failed to fetch dashboard", err)
		return
	}
	response.Success(c, gin.H{"summary": summary})
}
