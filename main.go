package main

import (
	"log"
	"net/http"
	"os"

	"github.com/Vinh-tho/Ticket-App-sub001/config"
	"github.com/Vinh-tho/Ticket-App-sub001/controllers"
	"github.com/Vinh-tho/Ticket-App-sub001/jobs"
	"github.com/Vinh-tho/Ticket-App-sub001/models"
	"github.com/Vinh-tho/Ticket-App-sub001/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func migrateTables() {
	if err := config.DB.AutoMigrate(&models.Notification{}, &models.DeviceToken{}, &models.Broadcast{}); err != nil {
		panic("Failed to migrate tables: " + err.Error())
	}
}

// @title Ticket Gateway API
// @version 1.0
// @description Gateway chuẩn hóa đơn hàng và thông báo cho app đặt vé
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: không load được file .env, sử dụng biến môi trường có sẵn: %v", err)
	}

	router, m, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	migrateTables()

	jobs.SetAlertFetcher(controllers.AlertSyncer())

	if err := jobs.InitCronJobs(c, m); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	config.InitWebSocket(router, m)

	routes.SetupRoutes(router, config.DB, config.RedisClient, m)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
