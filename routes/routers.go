package routes

import (
	"fmt"

	"github.com/Vinh-tho/Ticket-App-sub001/controllers"
	middlewares "github.com/Vinh-tho/Ticket-App-sub001/middleware"
	"github.com/Vinh-tho/Ticket-App-sub001/services/logger"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, m *melody.Melody) {

	notificationController := controllers.NewNotificationController(controllers.NotificationControllerOptions{
		DB:     db,
		Logger: logger.NewDefaultLogger(logger.InfoLevel),
	}, m)

	v1 := router.Group("/api/v1")
	v1.Use(middlewares.SessionMiddleware())
	v1.Use(middlewares.ErrorHandler())

	// Đơn hàng của user, proxy từ core API và chuẩn hóa cho UI
	v1.GET("/orders/my", middlewares.AuthMiddleware(), controllers.GetMyOrders)
	v1.GET("/orders/my/:id", middlewares.AuthMiddleware(), controllers.GetMyOrderDetail)
	v1.POST("/orders/my/refresh", middlewares.AuthMiddleware(), controllers.RefreshMyOrders)

	// Sự kiện
	v1.GET("/events", controllers.GetEvents)
	v1.GET("/events/search", controllers.SearchEventsHandler)
	v1.GET("/events/search/last", controllers.GetLastSearchFilters)
	v1.DELETE("/events/search/last", controllers.ClearLastSearchFilters)

	// Thông báo
	v1.GET("/notifications", middlewares.AuthMiddleware(), notificationController.GetNotifications)
	v1.POST("/notifications", middlewares.AuthMiddleware(), notificationController.CreateNotification)
	v1.PATCH("/notifications/mark-read/:id", middlewares.AuthMiddleware(), notificationController.MarkNotificationRead)
	v1.PATCH("/notifications/mark-all-read", middlewares.AuthMiddleware(), notificationController.MarkAllNotificationsRead)
	v1.POST("/notifications/token", middlewares.AuthMiddleware(), notificationController.RegisterPushToken)
	v1.POST("/notifications/broadcast", middlewares.AuthMiddleware(), notificationController.BroadcastNotification)

	// Feed cảnh báo dashboard
	v1.GET("/alerts", controllers.GetAlerts)
	v1.PATCH("/alerts/mark-read/:id", controllers.MarkAlertRead)
	v1.PATCH("/alerts/mark-all-read", controllers.MarkAllAlertsRead)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	//ws
	v1.GET("/test-broadcast", func(c *gin.Context) {
		message := []byte("Thông báo từ backend: Tin nhắn mới!")
		fmt.Println("Broadcasting message:", string(message))
		m.Broadcast(message)
		c.String(200, "Broadcast message sent!")
	})

}
