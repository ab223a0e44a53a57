package models

import (
	"time"

	"gorm.io/gorm"
)

// Expense 消费记录模型
// 每个固定类别一列，Amount 为各类别分项之和；
// 记录创建后不可修改，创建时在同一事务内扣减用户余额
type Expense struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	UserID    uint           `json:"user_id" gorm:"index;not null"`
	Amount    float64        `json:"amount" gorm:"type:decimal(12,2);not null"`
	Groceries float64        `json:"groceries" gorm:"type:decimal(12,2);not null;default:0"`
	Fuel      float64        `json:"fuel" gorm:"type:decimal(12,2);not null;default:0"`
	Bills     float64        `json:"bills" gorm:"type:decimal(12,2);not null;default:0"`
	Travel    float64        `json:"travel" gorm:"type:decimal(12,2);not null;default:0"`
	Apparel   float64        `json:"apparel" gorm:"type:decimal(12,2);not null;default:0"`
	Utilities float64        `json:"utilities" gorm:"type:decimal(12,2);not null;default:0"`
	Other     float64        `json:"other" gorm:"type:decimal(12,2);not null;default:0"`
	Date      time.Time      `json:"date" gorm:"type:date;not null;index"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
	User      User           `json:"-" gorm:"foreignKey:UserID"`
}

// TableName 设置表名
func (Expense) TableName() string {
	return "expenses"
}

// Breakdown 按类别返回分项金额
func (e *Expense) Breakdown() map[string]float64 {
	return map[string]float64{
		CategoryGroceries: e.Groceries,
		CategoryFuel:      e.Fuel,
		CategoryBills:     e.Bills,
		CategoryTravel:    e.Travel,
		CategoryApparel:   e.Apparel,
		CategoryUtilities: e.Utilities,
		CategoryOther:     e.Other,
	}
}

// Total 各类别分项之和
func (e *Expense) Total() float64 {
	return e.Groceries + e.Fuel + e.Bills + e.Travel + e.Apparel + e.Utilities + e.Other
}
