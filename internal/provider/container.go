package provider

import (
	"github.com/f1store-next/internal/cache"
	"github.com/f1store-next/internal/config"
	"github.com/f1store-next/internal/logger"
	"github.com/f1store-next/internal/models"
	"github.com/f1store-next/internal/queue"
	"github.com/f1store-next/internal/repository"
	"github.com/f1store-next/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	UserRepo      repository.UserRepository
	ProductRepo   repository.ProductRepository
	CartRepo      repository.CartRepository
	OrderRepo     repository.OrderRepository
	DashboardRepo repository.DashboardRepository

	// Services
	UserService      *service.UserService
	ProductService   *service.ProductService
	CartService      *service.CartService
	CheckoutService  *service.CheckoutService
	OrderService     *service.OrderService
	DashboardService *service.DashboardService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	c.initRepositories()
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.UserRepo = repository.NewGormUserRepository(db)
	c.ProductRepo = repository.NewGormProductRepository(db)
	c.CartRepo = repository.NewGormCartRepository(db)
	c.OrderRepo = repository.NewGormOrderRepository(db)
	c.DashboardRepo = repository.NewGormDashboardRepository(db)
}

func (c *Container) initServices() {
	c.UserService = service.NewUserService(c.UserRepo)
	c.ProductService = service.NewProductService(c.ProductRepo)
	c.CartService = service.NewCartService(c.CartRepo, c.ProductRepo)
	c.CheckoutService = service.NewCheckoutService(
		c.CartRepo,
		c.ProductRepo,
		c.OrderRepo,
		c.QueueClient,
		c.Config.Checkout.OrderNoMaxAttempts,
	)
	c.OrderService = service.NewOrderService(
		c.OrderRepo,
		service.NewMembershipStatusPolicy(),
		c.QueueClient,
	)
	c.DashboardService = service.NewDashboardService(c.DashboardRepo)
}

// Close 释放容器持有的外部资源
func (c *Container) Close() {
	if c == nil {
		return
	}
	if c.QueueClient != nil {
		if err := c.QueueClient.Close(); err != nil {
			logger.Warnw("provider_close_queue_client_failed", "error", err)
		}
	}
}
