package models

import (
	"time"

	"gorm.io/gorm"
)

// Product 商品表
type Product struct {
	ID          uint           `gorm:"primarykey" json:"id"`                             // 主键
	Name        string         `gorm:"type:varchar(200);not null;index" json:"name"`     // 商品名称
	Description string         `gorm:"type:varchar(2000)" json:"description"`            // 商品描述
	Price       Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"` // 当前售价
	Team        string         `gorm:"type:varchar(100);index" json:"team"`              // 车队
	Driver      string         `gorm:"type:varchar(100);index" json:"driver"`            // 车手
	Size        string         `gorm:"type:varchar(20)" json:"size"`                     // 尺码
	ImagePath   string         `gorm:"type:varchar(500)" json:"image_path"`              // 图片路径
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`                          // 创建时间
	UpdatedAt   time.Time      `json:"updated_at"`                                       // 更新时间
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                                   // 软删除时间
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}
