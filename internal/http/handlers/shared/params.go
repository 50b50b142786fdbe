package shared

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/f1store-next/internal/http/response"
)

// ParamUint 读取路径上的正整数参数，非法时统一返回 400。
func ParamUint(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || value == 0 {
		RespondError(c, response.CodeBadRequest, "invalid "+name, nil)
		return 0, false
	}
	return uint(value), true
}

// QueryInt 读取整型查询参数，缺省或非法时返回默认值。
func QueryInt(c *gin.Context, name string, def int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return value
}
