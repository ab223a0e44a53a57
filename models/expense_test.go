package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpense_Total(t *testing.T) {
	e := Expense{
		Groceries: 10,
		Fuel:      5,
		Bills:     2.5,
		Other:     1.5,
	}
	assert.Equal(t, 19.0, e.Total())

	// 分项允许为负，总额随之抵减
	e.Travel = -3
	assert.Equal(t, 16.0, e.Total())
}

func TestExpense_Breakdown(t *testing.T) {
	e := Expense{Groceries: 10, Fuel: 5}
	b := e.Breakdown()

	assert.Len(t, b, 7)
	assert.Equal(t, 10.0, b[CategoryGroceries])
	assert.Equal(t, 5.0, b[CategoryFuel])
	assert.Equal(t, 0.0, b[CategoryOther])
}

func TestGetCategories(t *testing.T) {
	categories := GetCategories()
	assert.Len(t, categories, 7)
	assert.Contains(t, categories, CategoryGroceries)
	assert.Contains(t, categories, CategoryOther)
}

func TestBudgetAllocation_Fields(t *testing.T) {
	b := BudgetAllocation{Groceries: 300, Utilities: 120}
	fields := b.Fields()

	assert.Len(t, fields, 7)
	assert.Equal(t, 300.0, fields[CategoryGroceries])
	assert.Equal(t, 120.0, fields[CategoryUtilities])
	assert.Equal(t, 0.0, fields[CategoryFuel])
}
