package models

import (
	"time"

	"gorm.io/gorm"
)

// User 用户模型
// 账户余额随消费记录扣减、随余额充值接口增加
type User struct {
	ID             uint           `json:"id" gorm:"primaryKey"`
	Username       string         `json:"username" gorm:"uniqueIndex;size:50;not null"`
	Email          string         `json:"email" gorm:"uniqueIndex;size:100;not null"`
	Password       string         `json:"-" gorm:"size:255;not null"`
	AccountBalance float64        `json:"account_balance" gorm:"type:decimal(12,2);not null;default:0"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName 设置表名
func (User) TableName() string {
	return "users"
}
