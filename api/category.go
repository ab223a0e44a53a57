package api

import (
	"strings"

	"famfin/database"
	"famfin/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"
)

// CategoryHandler 消费类别处理器
type CategoryHandler struct{}

// NewCategoryHandler 创建消费类别处理器
func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

// CategoryMessageResponse 类别操作结果
type CategoryMessageResponse struct {
	Message string `json:"message" example:"类别添加成功"`
}

// Add 为用户添加自定义类别
// @Summary 添加消费类别
// @Description 为用户添加自定义消费类别。(user_id, name) 上的唯一约束配合冲突忽略插入保证并发下不产生重复行；重复添加返回“类别已存在”。
// @Tags 消费类别
// @Produce json
// @Security BearerAuth
// @Param user_id path int true "用户ID（须与令牌主体一致）"
// @Param category_name query string true "类别名称"
// @Success 200 {object} CategoryMessageResponse "添加成功或类别已存在"
// @Failure 400 {object} ErrorResponse "类别名称不能为空"
// @Failure 401 {object} ErrorResponse "未授权"
// @Failure 403 {object} ErrorResponse "无权操作其他用户的数据"
// @Router /expenses/categories/{user_id}/add [post]
func (h *CategoryHandler) Add(c *gin.Context) {
	userID, ok := requireOwnUser(c)
	if !ok {
		return
	}

	name := strings.TrimSpace(c.Query("category_name"))
	if name == "" {
		BadRequest(c, "类别名称不能为空")
		return
	}

	// 冲突忽略插入，依赖唯一约束而非查询预检查，
	// 并发同名请求最多只会写入一行
	category := models.ExpenseCategory{Name: name, UserID: &userID}
	result := database.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&category)
	if result.Error != nil {
		InternalError(c, SafeErrorMessage(result.Error, "添加类别失败"))
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(200, CategoryMessageResponse{Message: "类别已存在"})
		return
	}

	c.JSON(200, CategoryMessageResponse{Message: "类别添加成功"})
}

// List 获取用户可见的类别列表
// @Summary 获取消费类别列表
// @Description 返回系统预置类别（user_id 为空）与该用户自定义类别的并集
// @Tags 消费类别
// @Produce json
// @Security BearerAuth
// @Param user_id path int true "用户ID（须与令牌主体一致）"
// @Success 200 {array} models.ExpenseCategory "获取成功"
// @Failure 401 {object} ErrorResponse "未授权"
// @Failure 403 {object} ErrorResponse "无权操作其他用户的数据"
// @Failure 500 {object} ErrorResponse "查询失败"
// @Router /expenses/categories/{user_id} [get]
func (h *CategoryHandler) List(c *gin.Context) {
	userID, ok := requireOwnUser(c)
	if !ok {
		return
	}

	var list []models.ExpenseCategory
	if err := database.DB.
		Where("user_id IS NULL OR user_id = ?", userID).
		Order("id ASC").
		Find(&list).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询类别失败"))
		return
	}

	c.JSON(200, list)
}
