package models

import "time"

// BudgetAllocation 预算分配模型
// 每个用户仅一行，user_id 上的唯一索引配合 upsert 保证不产生重复行
type BudgetAllocation struct {
	ID        uint      `json:"-" gorm:"primaryKey"`
	UserID    uint      `json:"-" gorm:"uniqueIndex;not null"`
	Groceries float64   `json:"groceries" gorm:"type:decimal(12,2);not null;default:0"`
	Fuel      float64   `json:"fuel" gorm:"type:decimal(12,2);not null;default:0"`
	Bills     float64   `json:"bills" gorm:"type:decimal(12,2);not null;default:0"`
	Travel    float64   `json:"travel" gorm:"type:decimal(12,2);not null;default:0"`
	Apparel   float64   `json:"apparel" gorm:"type:decimal(12,2);not null;default:0"`
	Utilities float64   `json:"utilities" gorm:"type:decimal(12,2);not null;default:0"`
	Other     float64   `json:"other" gorm:"type:decimal(12,2);not null;default:0"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TableName 设置表名
func (BudgetAllocation) TableName() string {
	return "budget_allocations"
}

// Fields 按类别返回已分配金额
func (b *BudgetAllocation) Fields() map[string]float64 {
	return map[string]float64{
		CategoryGroceries: b.Groceries,
		CategoryFuel:      b.Fuel,
		CategoryBills:     b.Bills,
		CategoryTravel:    b.Travel,
		CategoryApparel:   b.Apparel,
		CategoryUtilities: b.Utilities,
		CategoryOther:     b.Other,
	}
}
