package controllers

import (
	"strconv"
	"sync"

	"github.com/Vinh-tho/Ticket-App-sub001/config"
	"github.com/Vinh-tho/Ticket-App-sub001/response"
	"github.com/Vinh-tho/Ticket-App-sub001/services"
	"github.com/Vinh-tho/Ticket-App-sub001/services/logger"

	"github.com/gin-gonic/gin"
)

var (
	alertSyncerOnce sync.Once
	alertSyncer     *services.NotificationSyncer
)

// AlertSyncer là syncer dùng chung cho feed cảnh báo dashboard, đọc
// service token mỗi lần gọi để đổi token không cần restart
func AlertSyncer() *services.NotificationSyncer {
	alertSyncerOnce.Do(func() {
		api, _ := gateway()
		log := logger.NewDefaultLogger(logger.InfoLevel)
		alertSyncer = services.NewNotificationSyncer(api, config.ServiceToken, log)
	})
	return alertSyncer
}

// GetAlerts godoc
// @Summary Lấy feed cảnh báo vận hành cho dashboard
// @Tags alerts
// @Produce json
// @Param refresh query bool false "Fetch lại từ upstream trước khi trả về"
// @Success 200 {object} map[string]interface{}
// @Router /alerts [get]
func GetAlerts(c *gin.Context) {
	syncer := AlertSyncer()

	if refresh, err := strconv.ParseBool(c.Query("refresh")); err == nil && refresh {
		syncer.Fetch()
	}

	response.Success(c, gin.H{
		"alerts":      syncer.Notifications(),
		"unreadCount": syncer.UnreadCount(),
		"loading":     syncer.Loading(),
	})
}

// MarkAlertRead godoc
// @Summary Đánh dấu một cảnh báo là đã đọc
// @Tags alerts
// @Param id path int true "ID cảnh báo"
// @Success 200 {object} map[string]interface{}
// @Router /alerts/mark-read/{id} [patch]
func MarkAlertRead(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "ID cảnh báo không hợp lệ")
		return
	}

	syncer := AlertSyncer()
	syncer.MarkAsRead(id)

	response.Success(c, gin.H{"unreadCount": syncer.UnreadCount()})
}

// MarkAllAlertsRead godoc
// @Summary Đánh dấu tất cả cảnh báo là đã đọc
// @Tags alerts
// @Success 200 {object} map[string]interface{}
// @Router /alerts/mark-all-read [patch]
func MarkAllAlertsRead(c *gin.Context) {
	syncer := AlertSyncer()
	syncer.MarkAllAsRead()

	response.Success(c, gin.H{"unreadCount": syncer.UnreadCount()})
}
