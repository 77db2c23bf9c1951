package router

import (
	"expense-tracker/api"
	"expense-tracker/config"
	_ "expense-tracker/docs"
	"expense-tracker/middleware"

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

	// API v1 路由组
	v1 := r.Group("/api/v1")
	{
		expenseHandler := api.NewExpenseHandler()

		// 读接口
		expenses := v1.Group("/expenses")
		{
			expenses.GET("", expenseHandler.List)
			expenses.GET("/summary", expenseHandler.Summary)
			expenses.GET("/:id", expenseHandler.Get)
		}

		// 写接口，可按配置启用限流
		writes := v1.Group("/expenses")
		if cfg.RateLimit.Enabled {
			writes.Use(middleware.RateLimit(cfg.RateLimit.MaxRequests, cfg.RateLimit.Window))
		}
		{
			writes.POST("", expenseHandler.Create)
			writes.PATCH("/:id", expenseHandler.Update)
			writes.DELETE("/:id", expenseHandler.Delete)
		}

		// 导出相关
		exportHandler := api.NewExportHandler()
		export := v1.Group("/export")
		{
			export.GET("/csv", exportHandler.ExportCSV)
			export.GET("/json", exportHandler.ExportJSON)
			export.GET("/excel", exportHandler.ExportExcel)
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

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
