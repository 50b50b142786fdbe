package router

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/f1store-next/internal/cache"
	"github.com/f1store-next/internal/config"
	adminhandlers "github.com/f1store-next/internal/http/handlers/admin"
	publichandlers "github.com/f1store-next/internal/http/handlers/public"
	"github.com/f1store-next/internal/logger"
	"github.com/f1store-next/internal/provider"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)

	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "f1"
	}
	checkoutRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:checkout", redisPrefix),
		WindowSeconds: cfg.Security.CheckoutRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.CheckoutRateLimit.MaxAttempts,
		Message:       "too many checkout attempts, please retry later",
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// 商品图片静态服务
	r.Static("/uploads", "./uploads")

	apiV1 := r.Group("/api/v1")
	{
		// 商品目录（公开）
		apiV1.GET("/products", publicHandler.ListProducts)
		apiV1.GET("/products/:product_id", publicHandler.GetProduct)

		// 用户侧购物车与订单
		users := apiV1.Group("/users/:user_id")
		{
			users.GET("/cart", publicHandler.GetCart)
			users.POST("/cart/items", publicHandler.AddCartItem)
			users.PUT("/cart/items/:item_id", publicHandler.UpdateCartItem)
			users.DELETE("/cart/items/:item_id", publicHandler.RemoveCartItem)
			users.DELETE("/cart", publicHandler.ClearCart)

			users.POST("/checkout",
				RateLimitMiddleware(cache.Client(), checkoutRule, KeyByUserParam("user_id")),
				publicHandler.Checkout)

			users.GET("/orders", publicHandler.ListOrders)
			users.GET("/orders/:order_id", publicHandler.GetOrder)
		}

		// 管理端
		admin := apiV1.Group("/admin")
		{
			admin.GET("/orders", adminHandler.ListOrders)
			admin.GET("/orders/:order_id", adminHandler.GetOrder)
			admin.GET("/orders/by-order-no/:order_no", adminHandler.GetOrderByNo)
			admin.PUT("/orders/:order_id/status", adminHandler.UpdateOrderStatus)
			admin.DELETE("/orders/:order_id", adminHandler.DeleteOrder)

			admin.POST("/products", adminHandler.CreateProduct)
			admin.PUT("/products/:product_id", adminHandler.UpdateProduct)
			admin.DELETE("/products/:product_id", adminHandler.DeleteProduct)

			admin.GET("/users", adminHandler.ListUsers)
			admin.GET("/users/:user_id", adminHandler.GetUser)

			admin.GET("/dashboard", adminHandler.Dashboard)
		}
	}

	return r
}
