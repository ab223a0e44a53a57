package api

import (
	"errors"
	"strconv"

	"famfin/database"
	"famfin/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// BalanceHandler 账户余额处理器
type BalanceHandler struct{}

// NewBalanceHandler 创建账户余额处理器
func NewBalanceHandler() *BalanceHandler {
	return &BalanceHandler{}
}

// BalanceResponse 余额查询响应
type BalanceResponse struct {
	Balance float64 `json:"balance" example:"85"`
}

// Update 余额充值
// @Summary 更新账户余额
// @Description 将 new_amount 累加到用户余额（单条原子 UPDATE）。金额可为负，接口不做符号校验。
// @Tags 余额
// @Produce json
// @Security BearerAuth
// @Param user_id query int true "用户ID（须与令牌主体一致）"
// @Param new_amount query number true "累加金额"
// @Success 200 {object} models.User "更新成功"
// @Failure 400 {object} ErrorResponse "请求参数错误"
// @Failure 401 {object} ErrorResponse "未授权"
// @Failure 403 {object} ErrorResponse "无权操作其他用户的数据"
// @Failure 404 {object} ErrorResponse "用户不存在"
// @Router /balance/ [post]
func (h *BalanceHandler) Update(c *gin.Context) {
	userID, ok := requireOwnUser(c)
	if !ok {
		return
	}

	amount, err := strconv.ParseFloat(c.Query("new_amount"), 64)
	if err != nil {
		BadRequest(c, "无效的 new_amount")
		return
	}

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "用户不存在")
			return
		}
		InternalError(c, SafeErrorMessage(err, "查询用户失败"))
		return
	}

	// 累加余额，单条 UPDATE 保证并发充值不丢失
	if err := database.DB.Model(&user).
		Update("account_balance", gorm.Expr("account_balance + ?", amount)).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "更新余额失败"))
		return
	}

	// 重新获取更新后的用户
	if err := database.DB.First(&user, userID).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询用户失败"))
		return
	}

	c.JSON(200, user)
}

// Get 查询账户余额
// @Summary 查询账户余额
// @Description 查询用户当前余额，用户不存在返回 404 而非默认余额
// @Tags 余额
// @Produce json
// @Security BearerAuth
// @Param user_id path int true "用户ID（须与令牌主体一致）"
// @Success 200 {object} BalanceResponse "获取成功"
// @Failure 401 {object} ErrorResponse "未授权"
// @Failure 403 {object} ErrorResponse "无权操作其他用户的数据"
// @Failure 404 {object} ErrorResponse "用户不存在"
// @Router /balance/{user_id} [get]
func (h *BalanceHandler) Get(c *gin.Context) {
	userID, ok := requireOwnUser(c)
	if !ok {
		return
	}

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "用户不存在")
			return
		}
		InternalError(c, SafeErrorMessage(err, "查询用户失败"))
		return
	}

	c.JSON(200, BalanceResponse{Balance: user.AccountBalance})
}
