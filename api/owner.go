package api

import (
	"strconv"

	"famfin/middleware"

	"github.com/gin-gonic/gin"
)

// parseUserID 从路径参数或查询参数中取 user_id
func parseUserID(c *gin.Context) (uint, bool) {
	raw := c.Param("user_id")
	if raw == "" {
		raw = c.Query("user_id")
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// requireOwnUser 校验请求中的 user_id 与令牌主体一致
// 接口保留显式 user_id 参数以维持外部契约，但仅允许操作本人数据；
// 不一致返回 403 并终止请求
func requireOwnUser(c *gin.Context) (uint, bool) {
	userID, ok := parseUserID(c)
	if !ok {
		BadRequest(c, "无效的 user_id")
		return 0, false
	}
	if userID != middleware.GetCurrentUserID(c) {
		Forbidden(c, "无权操作其他用户的数据")
		return 0, false
	}
	return userID, true
}
