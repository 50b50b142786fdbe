package models

import "time"

// Order 订单表
// 结算时一次性创建，之后只有 status 与 updated_at 允许变化；
// 金额在创建时冻结，后续商品调价不影响已有订单。
// 订单走硬删除（连带订单项），因此不使用软删除字段。
type Order struct {
	ID                 uint      `gorm:"primarykey" json:"id"`                                      // 主键
	OrderNo            string    `gorm:"uniqueIndex;not null" json:"order_no"`                      // 订单编号（全局唯一）
	UserID             uint      `gorm:"index;not null" json:"user_id"`                             // 用户ID
	Status             string    `gorm:"index;not null" json:"status"`                              // 订单状态
	TotalAmount        Money     `gorm:"type:decimal(20,2);not null;default:0" json:"total_amount"` // 订单总额
	ShippingAddress    string    `gorm:"type:varchar(200)" json:"shipping_address"`                 // 收货地址
	ShippingCity       string    `gorm:"type:varchar(100)" json:"shipping_city"`                    // 收货城市
	ShippingPostalCode string    `gorm:"type:varchar(20)" json:"shipping_postal_code"`              // 邮编
	ShippingCountry    string    `gorm:"type:varchar(100)" json:"shipping_country"`                 // 国家
	CreatedAt          time.Time `gorm:"index" json:"created_at"`                                   // 创建时间
	UpdatedAt          time.Time `gorm:"index" json:"updated_at"`                                   // 更新时间

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"` // 订单项
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}
