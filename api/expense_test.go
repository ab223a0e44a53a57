package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"famfin/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setUserIDMiddleware 模拟 JWT 中间件，直接在上下文中写入用户ID
func setUserIDMiddleware(userID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", userID)
		c.Next()
	}
}

func TestExpenseHandler_Create(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	cfg := testConfig()
	config.GlobalConfig = cfg
	defer func() { config.GlobalConfig = nil }()

	// 用户校验、记录写入与余额扣减在同一事务内
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM `users`").
		WithArgs(1, 1).
		WillReturnRows(sqlmock.NewRows(userRowColumns()).
			AddRow(1, "testuser", "test@example.com", "hashed", 100.0, time.Now(), time.Now(), nil))
	mock.ExpectExec("INSERT INTO `expenses`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("UPDATE `users`").
		WithArgs(15.0, sqlmock.AnyArg(), 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewExpenseHandler(cfg)
	router.POST("/expenses/", setUserIDMiddleware(1), h.Create)

	body := `{"groceries":10,"fuel":5,"bills":0,"travel":0,"apparel":0,"utilities":0,"other":0,"date":"2024-01-15"}`
	req := httptest.NewRequest("POST", "/expenses/?user_id=1", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp ExpenseResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	// 总额为各分项之和
	assert.Equal(t, 15.0, resp.Amount)
	assert.Equal(t, 10.0, resp.Category["groceries"])
	assert.Equal(t, 5.0, resp.Category["fuel"])
	assert.Equal(t, 0.0, resp.Category["bills"])
	assert.Equal(t, "2024-01-15", resp.Date)
	assert.Equal(t, uint(1), resp.UserID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_Create_UserNotFound(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	cfg := testConfig()
	config.GlobalConfig = cfg
	defer func() { config.GlobalConfig = nil }()

	// 用户不存在时整个事务回滚，不会写入消费记录
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM `users`").
		WithArgs(1, 1).
		WillReturnRows(sqlmock.NewRows(userRowColumns()))
	mock.ExpectRollback()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewExpenseHandler(cfg)
	router.POST("/expenses/", setUserIDMiddleware(1), h.Create)

	body := `{"groceries":10,"fuel":5,"date":"2024-01-15"}`
	req := httptest.NewRequest("POST", "/expenses/?user_id=1", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 404, w.Code)
	assert.Contains(t, w.Body.String(), "用户不存在")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_Create_OtherUser(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	cfg := testConfig()
	config.GlobalConfig = cfg
	defer func() { config.GlobalConfig = nil }()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewExpenseHandler(cfg)
	router.POST("/expenses/", setUserIDMiddleware(2), h.Create)

	// 令牌主体是用户 2，却尝试操作用户 1 的数据
	body := `{"groceries":10,"date":"2024-01-15"}`
	req := httptest.NewRequest("POST", "/expenses/?user_id=1", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 403, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_Create_InvalidDate(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	cfg := testConfig()
	config.GlobalConfig = cfg
	defer func() { config.GlobalConfig = nil }()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewExpenseHandler(cfg)
	router.POST("/expenses/", setUserIDMiddleware(1), h.Create)

	body := `{"groceries":10,"date":"15/01/2024"}`
	req := httptest.NewRequest("POST", "/expenses/?user_id=1", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "日期格式错误")
}

func TestMonthlyRange(t *testing.T) {
	// 闰年 2 月，区间覆盖 2 月 29 日
	start, end := monthlyRange(2024, 2)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.Local), start)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local), end)
	feb29 := time.Date(2024, 2, 29, 12, 0, 0, 0, time.Local)
	assert.True(t, !feb29.Before(start) && feb29.Before(end))

	// 12 月滚动到次年 1 月
	start, end = monthlyRange(2024, 12)
	assert.Equal(t, time.Date(2024, 12, 1, 0, 0, 0, 0, time.Local), start)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local), end)
}

func TestExpenseHandler_Monthly(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	cfg := testConfig()
	config.GlobalConfig = cfg
	defer func() { config.GlobalConfig = nil }()

	mock.ExpectQuery("SELECT COALESCE").
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(15.0))
	mock.ExpectQuery("SELECT COALESCE").
		WillReturnRows(sqlmock.NewRows([]string{"groceries", "fuel", "bills", "travel", "apparel", "utilities", "other"}).
			AddRow(10.0, 5.0, 0.0, 0.0, 0.0, 0.0, 0.0))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewExpenseHandler(cfg)
	router.GET("/expenses/monthly/:user_id/:month/:year", setUserIDMiddleware(1), h.Monthly)

	req := httptest.NewRequest("GET", "/expenses/monthly/1/1/2024", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp MonthlySummaryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 15.0, resp.Total["total_expense"])
	assert.Equal(t, 10.0, resp.Categories["groceries"])
	assert.Equal(t, 5.0, resp.Categories["fuel"])
	assert.Len(t, resp.Categories, 7)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_Monthly_NoExpenses(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	cfg := testConfig()
	config.GlobalConfig = cfg
	defer func() { config.GlobalConfig = nil }()

	// 没有任何记录时各项合计为 0 而非报错
	mock.ExpectQuery("SELECT COALESCE").
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(0.0))
	mock.ExpectQuery("SELECT COALESCE").
		WillReturnRows(sqlmock.NewRows([]string{"groceries", "fuel", "bills", "travel", "apparel", "utilities", "other"}).
			AddRow(0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewExpenseHandler(cfg)
	router.GET("/expenses/monthly/:user_id/:month/:year", setUserIDMiddleware(1), h.Monthly)

	req := httptest.NewRequest("GET", "/expenses/monthly/1/6/2024", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp MonthlySummaryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0.0, resp.Total["total_expense"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_Monthly_InvalidMonth(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	cfg := testConfig()
	config.GlobalConfig = cfg
	defer func() { config.GlobalConfig = nil }()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewExpenseHandler(cfg)
	router.GET("/expenses/monthly/:user_id/:month/:year", setUserIDMiddleware(1), h.Monthly)

	req := httptest.NewRequest("GET", "/expenses/monthly/1/13/2024", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "无效的月份")
}
