// Package server assembles the HTTP router from configuration, the database
// and the market quote cache.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"wealthtrack/internal/config"
	_ "wealthtrack/internal/docs" // Import swagger docs
	"wealthtrack/internal/handlers"
	"wealthtrack/internal/market"
	"wealthtrack/internal/middleware"
	"wealthtrack/internal/services"
	"wealthtrack/internal/validator"
)

// NewRouter wires services and handlers and registers every route. quotes
// may not be nil; a quote cache without providers simply never fills.
func NewRouter(cfg config.Config, db *gorm.DB, quotes *market.Service) *gin.Engine {
	validator.Register()

	// Initialize services
	auditService := services.NewAuditService(db)
	accountService := services.NewAccountService(db, cfg.DefaultCurrency)
	monthlyLimitService := services.NewMonthlyLimitService(db)
	investmentService := services.NewInvestmentService(db, cfg.DefaultCurrency)
	transactionService := services.NewTransactionService(db, accountService)
	budgetService := services.NewBudgetService(db)
	savingsService := services.NewSavingsService(db)
	marketService := services.NewMarketService(quotes)
	reportService := services.NewReportService(transactionService, budgetService, savingsService, investmentService)

	// Initialize handlers
	accountHandler := handlers.NewAccountHandler(accountService, auditService)
	monthlyLimitHandler := handlers.NewMonthlyLimitHandler(monthlyLimitService, auditService)
	investmentHandler := handlers.NewInvestmentHandler(investmentService, auditService)
	transactionHandler := handlers.NewTransactionHandler(transactionService, auditService)
	budgetHandler := handlers.NewBudgetHandler(budgetService, auditService)
	savingsHandler := handlers.NewSavingsHandler(savingsService, auditService)
	marketHandler := handlers.NewMarketHandler(marketService, quotes.Hub())
	reportHandler := handlers.NewReportHandler(reportService)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(cors())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	// Public routes
	v1.GET("/investments/rates", investmentHandler.GetRateTable)
	v1.GET("/investments/risk/:type", investmentHandler.GetRiskAssessment)
	v1.GET("/market/stream", marketHandler.Stream)

	// Machine routes
	internal := v1.Group("/internal")
	internal.Use(middleware.RefreshKeyMiddleware(cfg.RefreshAPIKey))
	internal.POST("/market/refresh", marketHandler.RefreshQuotes)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(cfg.AuthJWTSecret, cfg.AuthJWTIssuer))

	account := protected.Group("/account")
	account.GET("", accountHandler.GetAccount)
	account.PUT("/balance", accountHandler.SetBalance)
	account.DELETE("/data", accountHandler.DeleteAllData)

	investments := protected.Group("/investments")
	investments.POST("", investmentHandler.CreateInvestment)
	investments.GET("", investmentHandler.GetInvestments)
	investments.POST("/preview", investmentHandler.PreviewInvestment)
	investments.GET("/summary", investmentHandler.GetPortfolioSummary)
	investments.GET("/allocation.png", investmentHandler.GetAllocationChart)
	investments.GET("/:id", investmentHandler.GetInvestment)
	investments.GET("/:id/projections", investmentHandler.GetInvestmentProjections)
	investments.DELETE("/:id", investmentHandler.DeleteInvestment)

	transactions := protected.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.GetUserTransactions)
	transactions.GET("/summary", transactionHandler.GetTransactionSummary)
	transactions.GET("/:id", transactionHandler.GetTransactionByID)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	budgets := protected.Group("/budgets")
	budgets.POST("", budgetHandler.CreateBudget)
	budgets.GET("", budgetHandler.GetBudgets)
	budgets.GET("/:id", budgetHandler.GetBudget)
	budgets.PUT("/:id", budgetHandler.UpdateBudget)
	budgets.DELETE("/:id", budgetHandler.DeleteBudget)
	budgets.GET("/:id/progress", budgetHandler.GetBudgetProgress)

	savings := protected.Group("/savings-goals")
	savings.POST("", savingsHandler.CreateSavingsGoal)
	savings.GET("", savingsHandler.GetSavingsGoals)
	savings.GET("/:id", savingsHandler.GetSavingsGoal)
	savings.POST("/:id/contribute", savingsHandler.Contribute)
	savings.DELETE("/:id", savingsHandler.DeleteSavingsGoal)

	limits := protected.Group("/monthly-limits")
	limits.PUT("", monthlyLimitHandler.SetMonthlyLimit)
	limits.GET("", monthlyLimitHandler.GetMonthlyLimits)
	limits.GET("/:month", monthlyLimitHandler.GetMonthlyLimitProgress)

	marketGroup := protected.Group("/market")
	marketGroup.GET("/instruments", marketHandler.GetInstruments)
	marketGroup.GET("/quotes", marketHandler.GetSnapshot)

	protected.GET("/reports/export", reportHandler.ExportReport)

	return router
}

func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-API-Key, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
