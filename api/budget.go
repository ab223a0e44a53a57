package api

import (
	"errors"

	"famfin/database"
	"famfin/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BudgetHandler 预算分配处理器
type BudgetHandler struct{}

// NewBudgetHandler 创建预算分配处理器
func NewBudgetHandler() *BudgetHandler {
	return &BudgetHandler{}
}

// AllocateBudgetRequest 预算分配请求
// 字段可空，缺省按 0 处理；任一字段为负整体拒绝
type AllocateBudgetRequest struct {
	Groceries *float64 `json:"groceries" example:"300"`
	Fuel      *float64 `json:"fuel" example:"150"`
	Bills     *float64 `json:"bills" example:"200"`
	Travel    *float64 `json:"travel" example:"100"`
	Apparel   *float64 `json:"apparel" example:"80"`
	Utilities *float64 `json:"utilities" example:"120"`
	Other     *float64 `json:"other" example:"50"`
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// Allocate 分配预算
// @Summary 分配月度预算
// @Description 按类别设置用户预算。每用户仅一行，重复调用覆盖已有分配；通过 user_id 唯一约束配合原子 upsert 保证并发下不产生重复行。任一金额为负返回 400 且不写入。
// @Tags 预算
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param user_id query int true "用户ID（须与令牌主体一致）"
// @Param request body AllocateBudgetRequest true "各类别预算金额"
// @Success 200 {object} models.BudgetAllocation "分配成功"
// @Failure 400 {object} ErrorResponse "预算金额不能为负数"
// @Failure 401 {object} ErrorResponse "未授权"
// @Failure 403 {object} ErrorResponse "无权操作其他用户的数据"
// @Router /budgets/ [post]
func (h *BudgetHandler) Allocate(c *gin.Context) {
	userID, ok := requireOwnUser(c)
	if !ok {
		return
	}

	var req AllocateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	// 负值校验先于任何写入，已存在的分配保持不变
	for _, v := range []*float64{req.Groceries, req.Fuel, req.Bills, req.Travel, req.Apparel, req.Utilities, req.Other} {
		if v != nil && *v < 0 {
			BadRequest(c, "预算金额不能为负数")
			return
		}
	}

	alloc := models.BudgetAllocation{
		UserID:    userID,
		Groceries: deref(req.Groceries),
		Fuel:      deref(req.Fuel),
		Bills:     deref(req.Bills),
		Travel:    deref(req.Travel),
		Apparel:   deref(req.Apparel),
		Utilities: deref(req.Utilities),
		Other:     deref(req.Other),
	}

	// 原子 upsert：不存在则插入，存在则整行覆盖
	if err := database.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"groceries", "fuel", "bills", "travel", "apparel", "utilities", "other", "updated_at",
		}),
	}).Create(&alloc).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "保存预算分配失败"))
		return
	}

	c.JSON(200, alloc)
}

// BudgetStatusResponse 预算状态响应
// remaining 为各类别预算减去该用户全部消费分项后的剩余额度
type BudgetStatusResponse struct {
	TotalAllocated map[string]float64 `json:"total_allocated"`
	Remaining      map[string]float64 `json:"remaining"`
}

// Status 查询预算状态
// @Summary 查询预算状态
// @Description 返回用户的各类别预算分配，以及扣除历史消费后的各类别剩余额度
// @Tags 预算
// @Produce json
// @Security BearerAuth
// @Param user_id path int true "用户ID（须与令牌主体一致）"
// @Success 200 {object} BudgetStatusResponse "获取成功"
// @Failure 401 {object} ErrorResponse "未授权"
// @Failure 403 {object} ErrorResponse "无权操作其他用户的数据"
// @Failure 404 {object} ErrorResponse "预算分配不存在"
// @Router /budgets/status/{user_id} [get]
func (h *BudgetHandler) Status(c *gin.Context) {
	userID, ok := requireOwnUser(c)
	if !ok {
		return
	}

	var alloc models.BudgetAllocation
	if err := database.DB.Where("user_id = ?", userID).First(&alloc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "预算分配不存在")
			return
		}
		InternalError(c, SafeErrorMessage(err, "查询预算分配失败"))
		return
	}

	// 各类别消费合计
	var sums categorySums
	if err := database.DB.Model(&models.Expense{}).
		Where("user_id = ?", userID).
		Select(categorySumSelect).Scan(&sums).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "统计消费失败"))
		return
	}

	allocated := alloc.Fields()
	spent := sums.toMap()
	remaining := make(map[string]float64, len(allocated))
	for category, amount := range allocated {
		remaining[category] = amount - spent[category]
	}

	c.JSON(200, BudgetStatusResponse{
		TotalAllocated: allocated,
		Remaining:      remaining,
	})
}
