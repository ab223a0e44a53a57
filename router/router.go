package router

import (
	"time"

	"famfin/api"
	"famfin/config"
	_ "famfin/docs"
	"famfin/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config) *gin.Engine {
	// 设置运行模式
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()

	// CORS 中间件
	r.Use(CORSMiddleware())

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	authHandler := api.NewAuthHandler(cfg)
	expenseHandler := api.NewExpenseHandler(cfg)
	budgetHandler := api.NewBudgetHandler()
	categoryHandler := api.NewCategoryHandler()
	balanceHandler := api.NewBalanceHandler()
	exportHandler := api.NewExportHandler()

	// 认证相关路由（无需登录）
	r.POST("/register/", authHandler.Register)
	r.POST("/login/", middleware.LoginRateLimit(5, time.Minute), authHandler.Login)

	// 需要 JWT 认证的路由，接口中的 user_id 须与令牌主体一致
	authorized := r.Group("")
	authorized.Use(middleware.JWTAuth())
	{
		authorized.GET("/profile", authHandler.GetProfile)

		// 消费记录
		authorized.POST("/expenses/", expenseHandler.Create)
		authorized.GET("/expenses/monthly/:user_id/:month/:year", expenseHandler.Monthly)

		// 消费类别
		authorized.POST("/expenses/categories/:user_id/add", categoryHandler.Add)
		authorized.GET("/expenses/categories/:user_id", categoryHandler.List)

		// 预算
		authorized.POST("/budgets/", budgetHandler.Allocate)
		authorized.GET("/budgets/status/:user_id", budgetHandler.Status)

		// 余额
		authorized.POST("/balance/", balanceHandler.Update)
		authorized.GET("/balance/:user_id", balanceHandler.Get)

		// 导出
		authorized.GET("/export/csv", exportHandler.ExportCSV)
		authorized.GET("/export/excel", exportHandler.ExportExcel)
	}

	return r
}

// CORSMiddleware CORS 跨域中间件
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
