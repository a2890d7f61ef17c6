package main

import (
	"log"
	"settleup-backend/config"
	"settleup-backend/database"
	"settleup-backend/handlers"
	"settleup-backend/middleware"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	config.Load()

	// Connect to database
	database.Connect()

	// Connect to Redis (optional, won't crash if unavailable)
	database.ConnectRedis()

	// Setup router
	r := gin.Default()
	r.Use(middleware.CORSMiddleware())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": config.AppConfig.AppName,
		})
	})

	// ==========================================
	// AUTH ROUTES (public)
	// ==========================================
	auth := r.Group("/auth")
	{
		auth.POST("/register", handlers.Register)
		auth.POST("/login", handlers.Login)
	}

	// ==========================================
	// API ROUTES (authenticated)
	// ==========================================
	api := r.Group("/api")
	api.Use(middleware.AuthRequired())
	{
		// User
		api.GET("/users/me", handlers.GetProfile)
		api.PUT("/users/me", handlers.UpdateProfile)
		api.PUT("/users/me/fcm-token", handlers.UpdateFCMToken)

		// Events
		api.POST("/events", handlers.CreateEvent)
		api.GET("/events", handlers.GetEvents)
		api.GET("/events/:id", handlers.GetEvent)
		api.POST("/events/:id/participants", handlers.AddParticipant)

		// Expenses
		api.POST("/events/:id/expenses", handlers.CreateExpense)
		api.GET("/events/:id/expenses", handlers.GetEventExpenses)
		api.PUT("/expenses/:id", handlers.UpdateExpense)
		api.DELETE("/expenses/:id", handlers.DeleteExpense)

		// Payments
		api.POST("/events/:id/payments", handlers.CreatePayment)
		api.GET("/events/:id/payments", handlers.GetEventPayments)

		// Debts
		api.GET("/events/:id/debts", handlers.GetEventDebts)

		// Activity
		api.GET("/activity", handlers.GetActivity)
		api.GET("/events/:id/activity", handlers.GetEventActivity)
	}

	// Start server
	port := config.AppConfig.Port
	log.Printf("🚀 %s server starting on port %s", config.AppConfig.AppName, port)

	addr := "0.0.0.0:" + port
	if err := r.Run(addr); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
