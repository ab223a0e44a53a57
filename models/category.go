package models

import (
	"time"

	"gorm.io/gorm"
)

// ExpenseCategory 消费类别
// UserID 为空表示系统预置类别，对所有用户可见；
// (user_id, name) 上的唯一索引保证同一用户不会产生重名类别
type ExpenseCategory struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Name      string         `json:"name" gorm:"size:50;not null;uniqueIndex:idx_user_category"`
	UserID    *uint          `json:"user_id" gorm:"uniqueIndex:idx_user_category"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (ExpenseCategory) TableName() string {
	return "expense_categories"
}

// 预算/消费的七个固定类别
const (
	CategoryGroceries = "groceries"
	CategoryFuel      = "fuel"
	CategoryBills     = "bills"
	CategoryTravel    = "travel"
	CategoryApparel   = "apparel"
	CategoryUtilities = "utilities"
	CategoryOther     = "other"
)

// GetCategories 获取所有固定消费类别
func GetCategories() []string {
	return []string{
		CategoryGroceries,
		CategoryFuel,
		CategoryBills,
		CategoryTravel,
		CategoryApparel,
		CategoryUtilities,
		CategoryOther,
	}
}
