package controllers

import (
	stderrors "errors"
	"strconv"

	"github.com/Vinh-tho/Ticket-App-sub001/builders"
	"github.com/Vinh-tho/Ticket-App-sub001/commands"
	"github.com/Vinh-tho/Ticket-App-sub001/dto"
	"github.com/Vinh-tho/Ticket-App-sub001/errors"
	"github.com/Vinh-tho/Ticket-App-sub001/models"
	"github.com/Vinh-tho/Ticket-App-sub001/response"
	"github.com/Vinh-tho/Ticket-App-sub001/services"
	"github.com/Vinh-tho/Ticket-App-sub001/validator"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GetNotifications godoc
// @Summary Lấy danh sách thông báo của user hiện tại
// @Tags notifications
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /notifications [get]
func (ctrl *NotificationController) GetNotifications(c *gin.Context) {
	userID, _, ok := authContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var notifications []models.Notification
	if err := ctrl.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&notifications).Error; err != nil {
		response.ServerError(c)
		return
	}

	unreadCount := 0
	for _, n := range notifications {
		if !n.IsRead {
			unreadCount++
		}
	}

	response.Success(c, gin.H{
		"notifications": notifications,
		"unreadCount":   unreadCount,
	})
}

// MarkNotificationRead godoc
// @Summary Đánh dấu một thông báo là đã đọc
// @Tags notifications
// @Security BearerAuth
// @Param id path int true "ID thông báo"
// @Success 200 {object} map[string]interface{}
// @Router /notifications/mark-read/{id} [patch]
func (ctrl *NotificationController) MarkNotificationRead(c *gin.Context) {
	userID, _, ok := authContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "ID thông báo không hợp lệ")
		return
	}

	cmd := commands.NewMarkReadCommand(uint(id), userID, ctrl.db)
	if err := cmd.Execute(); err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	var unreadCount int64
	ctrl.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = false", userID).
		Count(&unreadCount)
	ctrl.broadcastBadge(userID, int(unreadCount))

	response.Success(c, gin.H{"message": "Thông báo đã được đánh dấu đã đọc"})
}

// MarkAllNotificationsRead godoc
// @Summary Đánh dấu tất cả thông báo của user là đã đọc
// @Tags notifications
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /notifications/mark-all-read [patch]
func (ctrl *NotificationController) MarkAllNotificationsRead(c *gin.Context) {
	userID, _, ok := authContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	if err := commands.NewMarkAllReadCommand(userID, ctrl.db).Execute(); err != nil {
		response.ServerError(c)
		return
	}

	ctrl.broadcastBadge(userID, 0)

	response.Success(c, gin.H{"message": "Tất cả thông báo đã được đánh dấu đã đọc"})
}

// RegisterPushToken godoc
// @Summary Đăng ký Expo push token cho thiết bị của user
// @Tags notifications
// @Security BearerAuth
// @Accept json
// @Param request body dto.RegisterTokenRequest true "Push token"
// @Success 200 {object} map[string]interface{}
// @Router /notifications/token [post]
func (ctrl *NotificationController) RegisterPushToken(c *gin.Context) {
	userID, _, ok := authContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req dto.RegisterTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := validator.ValidateRegisterToken(&req); err != nil {
		if appErr := errors.GetAppError(err); appErr != nil {
			response.BadRequest(c, appErr.Message)
			return
		}
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	token := models.DeviceToken{
		UserID:        userID,
		ExpoPushToken: req.ExpoPushToken,
		Platform:      req.Platform,
	}
	if err := token.Validate(); err != nil {
		response.BadRequest(c, "Push token không hợp lệ")
		return
	}

	// Token đã tồn tại thì chuyển về user hiện tại
	var existing models.DeviceToken
	if err := ctrl.db.Where("expo_push_token = ?", req.ExpoPushToken).First(&existing).Error; err == nil {
		existing.UserID = userID
		existing.Platform = req.Platform
		if err := ctrl.db.Save(&existing).Error; err != nil {
			response.ServerError(c)
			return
		}
		response.Success(c, existing)
		return
	}

	if err := ctrl.db.Create(&token).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, token)
}

// CreateNotification godoc
// @Summary Tạo thông báo cho một user và đẩy push
// @Tags notifications
// @Security BearerAuth
// @Accept json
// @Param request body dto.CreateNotificationRequest true "Thông báo"
// @Success 200 {object} map[string]interface{}
// @Router /notifications [post]
func (ctrl *NotificationController) CreateNotification(c *gin.Context) {
	var req dto.CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := validator.ValidateCreateNotification(&req); err != nil {
		if appErr := errors.GetAppError(err); appErr != nil {
			response.BadRequest(c, appErr.Message)
			return
		}
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	notification := models.Notification{
		UserID:  req.UserID,
		Message: req.Message,
	}
	if err := commands.NewCreateNotificationCommand(&notification, ctrl.db).Execute(); err != nil {
		response.ServerError(c)
		return
	}

	ctrl.pushToUser(req.UserID, req.Message)
	ctrl.notifyObservers(req.UserID, req.Message)

	var unreadCount int64
	ctrl.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = false", req.UserID).
		Count(&unreadCount)
	ctrl.broadcastBadge(req.UserID, int(unreadCount))

	response.Success(c, notification)
}

// BroadcastNotification godoc
// @Summary Gửi thông báo hàng loạt tới nhiều user
// @Tags notifications
// @Security BearerAuth
// @Accept json
// @Param request body dto.BroadcastNotificationRequest true "Thông báo hàng loạt"
// @Success 200 {object} map[string]interface{}
// @Router /notifications/broadcast [post]
func (ctrl *NotificationController) BroadcastNotification(c *gin.Context) {
	senderID, _, ok := authContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req dto.BroadcastNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := validator.ValidateBroadcast(&req); err != nil {
		if appErr := errors.GetAppError(err); appErr != nil {
			response.BadRequest(c, appErr.Message)
			return
		}
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	// Danh sách rỗng nghĩa là gửi cho mọi user đã đăng ký thiết bị
	userIDs := req.UserIDs
	if len(userIDs) == 0 {
		var rows []models.DeviceToken
		if err := ctrl.db.Distinct("user_id").Find(&rows).Error; err != nil {
			response.ServerError(c)
			return
		}
		for _, row := range rows {
			userIDs = append(userIDs, int64(row.UserID))
		}
	}

	for _, id := range userIDs {
		notification := models.Notification{
			UserID:  uint(id),
			Message: req.Message,
		}
		if err := ctrl.db.Create(&notification).Error; err != nil {
			ctrl.logger.Error("Không lưu được thông báo cho userID %d: %v", id, err)
			continue
		}
		ctrl.pushToUser(uint(id), req.Message)
		ctrl.notifyObservers(uint(id), req.Message)
	}

	broadcast := models.Broadcast{
		Message: req.Message,
		UserIDs: pq.Int64Array(userIDs),
		SentBy:  senderID,
	}
	if err := ctrl.db.Create(&broadcast).Error; err != nil {
		ctrl.logger.Error("Không lưu được bản ghi broadcast: %v", err)
	}

	response.Success(c, broadcast)
}

// pushToUser gửi Expo push tới mọi thiết bị đã đăng ký của user
func (ctrl *NotificationController) pushToUser(userID uint, message string) {
	var tokens []models.DeviceToken
	if err := ctrl.db.Where("user_id = ?", userID).Find(&tokens).Error; err != nil {
		ctrl.logger.Error("Không lấy được device token của userID %d: %v", userID, err)
		return
	}
	if len(tokens) == 0 {
		return
	}

	messages := make([]services.ExpoPushMessage, 0, len(tokens))
	for _, t := range tokens {
		if !services.IsValidExpoPushToken(t.ExpoPushToken) {
			continue
		}
		messages = append(messages, builders.NewPushMessageBuilder().
			WithToken(t.ExpoPushToken).
			WithTitle("Thông báo mới").
			WithBody(message).
			Build())
	}
	if len(messages) == 0 {
		return
	}

	go func() {
		if err := services.SendExpoPush(messages); err != nil {
			ctrl.logger.Error("Gửi Expo push thất bại cho userID %d: %v", userID, err)
		}
	}()
}
