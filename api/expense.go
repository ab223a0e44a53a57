package api

import (
	"errors"
	"log"
	"strconv"
	"time"

	"famfin/config"
	"famfin/database"
	"famfin/models"
	"famfin/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ExpenseHandler 消费记录处理器
type ExpenseHandler struct {
	cfg          *config.Config
	emailService *service.EmailService
}

// NewExpenseHandler 创建消费记录处理器
func NewExpenseHandler(cfg *config.Config) *ExpenseHandler {
	return &ExpenseHandler{
		cfg:          cfg,
		emailService: service.NewEmailService(&cfg.Email),
	}
}

// CreateExpenseRequest 创建消费记录请求
// 七个固定类别各一个分项金额，总额为各分项之和
type CreateExpenseRequest struct {
	Groceries float64 `json:"groceries" example:"10"`
	Fuel      float64 `json:"fuel" example:"5"`
	Bills     float64 `json:"bills" example:"0"`
	Travel    float64 `json:"travel" example:"0"`
	Apparel   float64 `json:"apparel" example:"0"`
	Utilities float64 `json:"utilities" example:"0"`
	Other     float64 `json:"other" example:"0"`
	Date      string  `json:"date" binding:"required" example:"2024-01-15"`
}

// ExpenseResponse 消费记录响应
// category 字段承载按类别的分项明细
type ExpenseResponse struct {
	ID       uint               `json:"id" example:"1"`
	Amount   float64            `json:"amount" example:"15"`
	Category map[string]float64 `json:"category"`
	Date     string             `json:"date" example:"2024-01-15"`
	UserID   uint               `json:"user_id" example:"1"`
}

var errUserNotFound = errors.New("用户不存在")

// Create 创建消费记录
// @Summary 创建消费记录
// @Description 记录一笔消费，金额为各类别分项之和。用户校验、记录写入与余额扣减在同一数据库事务内完成。
// @Tags 消费记录
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param user_id query int true "用户ID（须与令牌主体一致）"
// @Param request body CreateExpenseRequest true "消费分项与日期"
// @Success 200 {object} ExpenseResponse "创建成功"
// @Failure 400 {object} ErrorResponse "请求参数错误"
// @Failure 401 {object} ErrorResponse "未授权"
// @Failure 403 {object} ErrorResponse "无权操作其他用户的数据"
// @Failure 404 {object} ErrorResponse "用户不存在"
// @Router /expenses/ [post]
func (h *ExpenseHandler) Create(c *gin.Context) {
	userID, ok := requireOwnUser(c)
	if !ok {
		return
	}

	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	// 解析日期
	date, err := time.ParseInLocation("2006-01-02", req.Date, time.Local)
	if err != nil {
		BadRequest(c, "日期格式错误，应为: 2006-01-02")
		return
	}

	expense := models.Expense{
		UserID:    userID,
		Groceries: req.Groceries,
		Fuel:      req.Fuel,
		Bills:     req.Bills,
		Travel:    req.Travel,
		Apparel:   req.Apparel,
		Utilities: req.Utilities,
		Other:     req.Other,
		Date:      date,
	}
	expense.Amount = expense.Total()

	// 用户校验、记录写入与余额扣减放在同一事务，
	// 避免“记录已写入、余额未扣减”的中间状态
	var user models.User
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errUserNotFound
			}
			return err
		}
		if err := tx.Create(&expense).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).Where("id = ?", userID).
			Update("account_balance", gorm.Expr("account_balance - ?", expense.Amount)).Error
	})
	if err != nil {
		if errors.Is(err, errUserNotFound) {
			NotFound(c, "用户不存在")
			return
		}
		InternalError(c, SafeErrorMessage(err, "创建消费记录失败"))
		return
	}

	// 扣减后余额为负时发送透支提醒，失败不影响请求结果
	if newBalance := user.AccountBalance - expense.Amount; newBalance < 0 && h.cfg.Email.Enabled {
		if err := h.emailService.SendOverdraftEmail(user.Email, user.Username, newBalance); err != nil {
			log.Printf("透支提醒发送失败 user=%d: %v", userID, err)
		}
	}

	c.JSON(200, ExpenseResponse{
		ID:       expense.ID,
		Amount:   expense.Amount,
		Category: expense.Breakdown(),
		Date:     expense.Date.Format("2006-01-02"),
		UserID:   expense.UserID,
	})
}

// categorySums 各类别金额合计的扫描目标
type categorySums struct {
	Groceries float64
	Fuel      float64
	Bills     float64
	Travel    float64
	Apparel   float64
	Utilities float64
	Other     float64
}

const categorySumSelect = "COALESCE(SUM(groceries),0) AS groceries, " +
	"COALESCE(SUM(fuel),0) AS fuel, " +
	"COALESCE(SUM(bills),0) AS bills, " +
	"COALESCE(SUM(travel),0) AS travel, " +
	"COALESCE(SUM(apparel),0) AS apparel, " +
	"COALESCE(SUM(utilities),0) AS utilities, " +
	"COALESCE(SUM(other),0) AS other"

func (s *categorySums) toMap() map[string]float64 {
	return map[string]float64{
		models.CategoryGroceries: s.Groceries,
		models.CategoryFuel:      s.Fuel,
		models.CategoryBills:     s.Bills,
		models.CategoryTravel:    s.Travel,
		models.CategoryApparel:   s.Apparel,
		models.CategoryUtilities: s.Utilities,
		models.CategoryOther:     s.Other,
	}
}

// monthlyRange 计算 [当月第一天, 次月第一天) 的半开区间
// 12 月自动滚动到次年 1 月
func monthlyRange(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	return start, start.AddDate(0, 1, 0)
}

// MonthlySummaryResponse 月度汇总响应
type MonthlySummaryResponse struct {
	Total      map[string]float64 `json:"total"`
	Categories map[string]float64 `json:"categories"`
}

// Monthly 月度消费汇总
// @Summary 月度消费汇总
// @Description 统计指定用户在 [当月第一天, 次月第一天) 内的消费总额与按类别分项合计
// @Tags 消费记录
// @Produce json
// @Security BearerAuth
// @Param user_id path int true "用户ID（须与令牌主体一致）"
// @Param month path int true "月份 (1-12)"
// @Param year path int true "年份，如 2024"
// @Success 200 {object} MonthlySummaryResponse "获取成功"
// @Failure 400 {object} ErrorResponse "请求参数错误"
// @Failure 401 {object} ErrorResponse "未授权"
// @Failure 403 {object} ErrorResponse "无权操作其他用户的数据"
// @Router /expenses/monthly/{user_id}/{month}/{year} [get]
func (h *ExpenseHandler) Monthly(c *gin.Context) {
	userID, ok := requireOwnUser(c)
	if !ok {
		return
	}

	month, err := strconv.Atoi(c.Param("month"))
	if err != nil || month < 1 || month > 12 {
		BadRequest(c, "无效的月份，应为 1-12")
		return
	}
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		BadRequest(c, "无效的年份")
		return
	}

	start, end := monthlyRange(year, month)

	// 总额
	var total float64
	if err := database.DB.Model(&models.Expense{}).
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Select("COALESCE(SUM(amount),0)").Scan(&total).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "统计失败"))
		return
	}

	// 按类别分项合计
	var sums categorySums
	if err := database.DB.Model(&models.Expense{}).
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Select(categorySumSelect).Scan(&sums).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "统计失败"))
		return
	}

	c.JSON(200, MonthlySummaryResponse{
		Total:      map[string]float64{"total_expense": total},
		Categories: sums.toMap(),
	})
}
