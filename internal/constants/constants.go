package constants

// 订单状态
const (
	OrderStatusPending    = "Pending"
	OrderStatusProcessing = "Processing"
	OrderStatusShipped    = "Shipped"
	OrderStatusDelivered  = "Delivered"
	OrderStatusCancelled  = "Cancelled"
)

// OrderStatuses 全部合法订单状态
var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// RevenueStatuses 计入营收统计的订单状态（不含 Pending / Cancelled）
var RevenueStatuses = []string{
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
}

// 订单编号
const (
	OrderNoPrefix     = "ORD"
	OrderNoTimeLayout = "20060102150405"
)

// 收货信息长度限制
const (
	MaxShippingAddressLen    = 200
	MaxShippingCityLen       = 100
	MaxShippingPostalCodeLen = 20
	MaxShippingCountryLen    = 100
)

// 队列与任务
const (
	QueueDefault          = "default"
	TaskOrderStatusNotify = "order:status_notify"
)
