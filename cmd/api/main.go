package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"budgetflow/internal/cache"
	"budgetflow/internal/config"
	"budgetflow/internal/database"
	"budgetflow/internal/handlers"
	"budgetflow/internal/logger"
	"budgetflow/internal/mail"
	"budgetflow/internal/middleware"
	"budgetflow/internal/services"
	"budgetflow/internal/validator"

	_ "budgetflow/internal/docs" // Import swagger docs
)

// @title           BudgetFlow API
// @version         1.0
// @description     BudgetFlow is a personal and group budgeting application with transaction tracking, per-category budgets, shared groups, and a chat assistant.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Register custom request validators
	validator.Register()

	// Create database manager
	dbManager, err := database.NewManager(appConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Invite mail is disabled unless SMTP is configured
	var mailer mail.Mailer
	if appConfig.SMTPHost != "" {
		mailer = mail.NewSMTPMailer(appConfig.SMTPHost, appConfig.SMTPPort,
			appConfig.SMTPUser, appConfig.SMTPPassword, appConfig.MailFrom)
	} else {
		log.Warn("SMTP not configured, group invite mail is disabled")
		mailer = mail.NewNopMailer()
	}

	// Budget usage cache; disabled when REDIS_ADDR is empty
	usageCache := cache.New(appConfig.RedisAddr, appConfig.RedisPassword)
	if !usageCache.Enabled() {
		log.Warn("Redis not configured, budget usage caching is disabled")
	}

	// Initialize services
	db := dbManager.DB()
	userService := services.NewUserService(db)
	auditService := services.NewAuditService(db)
	groupService := services.NewGroupService(db, mailer, appConfig.FrontendURL)
	transactionService := services.NewTransactionService(db, groupService, usageCache)
	budgetService := services.NewBudgetService(db, groupService, usageCache)
	chatService := services.NewChatService(transactionService)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, auditService)
	userHandler := handlers.NewUserHandler(userService, budgetService, auditService)
	transactionHandler := handlers.NewTransactionHandler(transactionService, auditService)
	budgetHandler := handlers.NewBudgetHandler(budgetService, auditService)
	groupHandler := handlers.NewGroupHandler(groupService, auditService)
	chatHandler := handlers.NewChatHandler(chatService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	// Profile and onboarding budgets
	users := protected.Group("/users")
	users.GET("/profile", userHandler.GetProfile)
	users.PUT("/profile", userHandler.UpdateProfile)
	users.GET("/budgets", userHandler.GetBudgets)
	users.PUT("/budgets", userHandler.ReplaceBudgets)

	// Transaction routes
	transactions := protected.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.GetTransactions)
	transactions.GET("/:id", transactionHandler.GetTransactionByID)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)
	transactions.GET("/groups/:groupId/summary", transactionHandler.GetGroupSummary)

	// Budget routes
	budgets := protected.Group("/budgets")
	budgets.POST("", budgetHandler.CreateBudget)
	budgets.GET("", budgetHandler.GetBudgets)
	budgets.PUT("/:id", budgetHandler.UpdateBudget)
	budgets.DELETE("/:id", budgetHandler.DeleteBudget)

	// Group routes
	groups := protected.Group("/groups")
	groups.POST("", groupHandler.CreateGroup)
	groups.GET("", groupHandler.GetGroups)
	groups.GET("/:groupId", groupHandler.GetGroup)
	groups.DELETE("/:groupId", groupHandler.DeleteGroup)
	groups.POST("/:groupId/invite", groupHandler.InviteMembers)
	groups.POST("/:groupId/accept-invite", groupHandler.AcceptInvite)
	groups.GET("/:groupId/members", groupHandler.GetMembers)
	groups.GET("/:groupId/my-role", groupHandler.GetMyRole)
	groups.POST("/:groupId/members/:memberId/promote", groupHandler.PromoteMember)
	groups.POST("/:groupId/members/:memberId/demote", groupHandler.DemoteMember)
	groups.DELETE("/:groupId/members/:memberId", groupHandler.RemoveMember)
	groups.POST("/:groupId/leave", groupHandler.LeaveGroup)

	// Chat assistant
	protected.POST("/chat", chatHandler.Chat)

	log.Infof("Starting BudgetFlow backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
