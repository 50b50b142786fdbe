package public

import (
	"github.com/gin-gonic/gin"

	handlershared "github.com/f1store-next/internal/http/handlers/shared"
)

// getUserID 从路径参数读取用户ID
func getUserID(c *gin.Context) (uint, bool) {
	return handlershared.ParamUint(c, "user_id")
}

func respondError(c *gin.Context, code int, msg string, err error) {
	handlershared.RespondError(c, code, msg, err)
}
