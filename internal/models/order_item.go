package models

import "time"

// OrderItem 订单项表
// 单价与展示信息在结算时快照，商品后续修改不回写这里；
// total_price 冗余存储（= unit_price × quantity）便于审计。
type OrderItem struct {
	ID          uint      `gorm:"primarykey" json:"id"`                                     // 主键
	OrderID     uint      `gorm:"index;not null" json:"order_id"`                           // 订单ID
	ProductID   uint      `gorm:"index;not null" json:"product_id"`                         // 商品ID
	ProductName string    `gorm:"type:varchar(200);not null" json:"product_name"`           // 商品名称快照
	Team        string    `gorm:"type:varchar(100)" json:"team"`                            // 车队快照
	Driver      string    `gorm:"type:varchar(100)" json:"driver"`                          // 车手快照
	Size        string    `gorm:"type:varchar(20)" json:"size"`                             // 尺码快照
	ImagePath   string    `gorm:"type:varchar(500)" json:"image_path"`                      // 图片快照
	UnitPrice   Money     `gorm:"type:decimal(20,2);not null;default:0" json:"unit_price"`  // 结算时单价
	Quantity    int       `gorm:"not null" json:"quantity"`                                 // 数量
	TotalPrice  Money     `gorm:"type:decimal(20,2);not null;default:0" json:"total_price"` // 小计
	CreatedAt   time.Time `gorm:"index" json:"created_at"`                                  // 创建时间
}

// TableName 指定表名
func (OrderItem) TableName() string {
	return "order_items"
}
