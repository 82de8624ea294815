package main

import (
	"log"
	"os"
	"strings"
	"time"

	"kasir-pos/internal/database"
	"kasir-pos/internal/handlers"
	"kasir-pos/internal/middleware"
	"kasir-pos/internal/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found")
	}

	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("Error: JWT_SECRET not found in .env file. Please configure a signing secret.")
	}

	database.Connect()
	r := gin.Default()

	allowOrigins := []string{"http://localhost:5173"}
	if env := os.Getenv("ALLOW_ORIGINS"); env != "" {
		allowOrigins = strings.Split(env, ",")
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "online", "terminal_id": utils.GetTerminalID()})
	})
	r.POST("/api/auth/login", handlers.Login)
	r.Static("/uploads", "./uploads")

	// Only opens if we explicitly allow it in .env
	if os.Getenv("ALLOW_REGISTRATION") == "true" {
		r.POST("/api/auth/register", handlers.Register)
		log.Println("WARNING: Registration route is OPEN. Disable this in production!")
	} else {
		log.Println("Registration route is disabled.")
	}

	// --- PROTECTED ROUTES ---
	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware())
	{
		// CASHIER & ADMIN
		api.GET("/products", handlers.GetProducts)
		api.GET("/categories", handlers.GetCategories)
		api.GET("/members", handlers.GetMembers)
		api.GET("/discounts", handlers.GetDiscounts)
		api.POST("/transactions", handlers.CreateTransaction)
		api.GET("/transactions", handlers.GetTransactions)
		api.GET("/reports/sales", handlers.GetSalesReport)
		api.GET("/reports/stock", handlers.GetStockReport)

		// ADMIN ONLY
		admin := api.Group("/")
		admin.Use(middleware.RequireRole("ADMIN"))
		{
			admin.POST("/ask", handlers.AskAI)

			admin.POST("/upload", handlers.UploadImage)
			admin.POST("/products", handlers.AddProduct)
			admin.PUT("/products/:id", handlers.UpdateProduct)
			admin.DELETE("/products/:id", handlers.DeleteProduct)

			admin.POST("/categories", handlers.AddCategory)
			admin.PUT("/categories/:id", handlers.UpdateCategory)
			admin.DELETE("/categories/:id", handlers.DeleteCategory)

			admin.POST("/members", handlers.AddMember)
			admin.PUT("/members/:id", handlers.UpdateMember)
			admin.DELETE("/members/:id", handlers.DeleteMember)

			admin.POST("/discounts", handlers.AddDiscount)
			admin.PUT("/discounts/:id", handlers.UpdateDiscount)
			admin.DELETE("/discounts/:id", handlers.DeleteDiscount)

			admin.GET("/cashiers", handlers.GetCashiers)
			admin.POST("/cashiers", handlers.AddCashier)
			admin.PUT("/cashiers/:id", handlers.UpdateCashier)
			admin.DELETE("/cashiers/:id", handlers.DeleteCashier)

			admin.GET("/reports/dashboard", handlers.GetDashboard)
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("Server starting on :" + port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
