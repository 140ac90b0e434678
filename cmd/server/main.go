package main

import (
	"time"

	"cafe_manager/internal/config"
	"cafe_manager/internal/database"
	"cafe_manager/internal/handlers"
	"cafe_manager/internal/logger"
	"cafe_manager/internal/middleware"
	"cafe_manager/internal/migrations"
	"cafe_manager/internal/redis"
	"cafe_manager/internal/repository"
	"cafe_manager/internal/services"
	"cafe_manager/pkg/sms"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logger.Init(cfg.Environment)
	defer logger.Sync()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		logger.L().Fatal("failed to connect to database", zap.Error(err))
	}

	if err := migrations.RunMigrations(db, cfg.AdminPassword); err != nil {
		logger.L().Fatal("failed to migrate database", zap.Error(err))
	}

	// Initialize Redis
	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		logger.L().Fatal("failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	// Initialize SMS client
	smsClient := sms.NewClient(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFromNumber)

	// Initialize repositories
	employeeRepo := repository.NewEmployeeRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	historyRepo := repository.NewHistoryRepository(db)

	// Initialize services
	authService := services.NewAuthService(employeeRepo)
	orderService := services.NewOrderService(orderRepo)
	historyService := services.NewHistoryService(historyRepo)
	notificationService := services.NewNotificationService(smsClient)

	// Initialize handlers
	sessionTTL := time.Duration(cfg.SessionTimeout) * time.Second
	authHandler := handlers.NewAuthHandler(authService, redisClient, sessionTTL)
	tableHandler := handlers.NewTableHandler(orderService, notificationService)
	historyHandler := handlers.NewHistoryHandler(historyService)
	adminHandler := handlers.NewAdminHandler(authService)

	// Setup routes
	router := gin.New()
	router.Use(middleware.RequestLogger(), gin.Recovery())

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
		}

		employee := api.Group("")
		employee.Use(middleware.RequireEmployee(redisClient))
		{
			employee.GET("/dashboard", tableHandler.Dashboard)
			employee.GET("/tables/:table_id", tableHandler.TableDetail)
			employee.POST("/tables/:table_id/items", tableHandler.AddItem)
			employee.POST("/tables/:table_id/clear", tableHandler.ClearTable)
			employee.GET("/tables/:table_id/bill", tableHandler.Bill)
			employee.POST("/notify", tableHandler.Notify)
			employee.GET("/history", historyHandler.History)
			employee.GET("/sales", tableHandler.Sales)
		}

		admin := api.Group("/admin")
		admin.Use(middleware.RequireEmployee(redisClient), middleware.RequireAdmin())
		{
			admin.GET("/employees", adminHandler.Employees)
			admin.GET("/pending", adminHandler.PendingUsers)
			admin.POST("/approve", adminHandler.Approve)
			admin.POST("/reject", adminHandler.Reject)
			admin.POST("/employees/:user_id/delete", adminHandler.DeleteEmployee)
		}
	}

	// Start server
	logger.L().Info("server starting", zap.String("port", cfg.ServerPort))
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		logger.L().Fatal("failed to start server", zap.Error(err))
	}
}
