package commands

import (
	"github.com/Vinh-tho/Ticket-App-sub001/models"

	"gorm.io/gorm"
)

// NotificationCommand định nghĩa interface cho các command
type NotificationCommand interface {
	Execute() error
}

// CreateNotificationCommand command để tạo thông báo mới
type CreateNotificationCommand struct {
	notification *models.Notification
	db           *gorm.DB
}

func NewCreateNotificationCommand(notification *models.Notification, db *gorm.DB) *CreateNotificationCommand {
	return &CreateNotificationCommand{
		notification: notification,
		db:           db,
	}
}

func (c *CreateNotificationCommand) Execute() error {
	return c.db.Create(c.notification).Error
}

// MarkReadCommand command để đánh dấu một thông báo đã đọc
type MarkReadCommand struct {
	notificationID uint
	userID         uint
	db             *gorm.DB
}

func NewMarkReadCommand(notificationID, userID uint, db *gorm.DB) *MarkReadCommand {
	return &MarkReadCommand{
		notificationID: notificationID,
		userID:         userID,
		db:             db,
	}
}

func (c *MarkReadCommand) Execute() error {
	result := c.db.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", c.notificationID, c.userID).
		Update("is_read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// MarkAllReadCommand command để đánh dấu tất cả thông báo của user đã đọc
type MarkAllReadCommand struct {
	userID uint
	db     *gorm.DB
}

func NewMarkAllReadCommand(userID uint, db *gorm.DB) *MarkAllReadCommand {
	return &MarkAllReadCommand{
		userID: userID,
		db:     db,
	}
}

func (c *MarkAllReadCommand) Execute() error {
	return c.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = false", c.userID).
		Update("is_read", true).Error
}

// DeleteNotificationCommand command để xóa thông báo
type DeleteNotificationCommand struct {
	notificationID uint
	db             *gorm.DB
}

func NewDeleteNotificationCommand(notificationID uint, db *gorm.DB) *DeleteNotificationCommand {
	return &DeleteNotificationCommand{
		notificationID: notificationID,
		db:             db,
	}
}

func (c *DeleteNotificationCommand) Execute() error {
	return c.db.Delete(&models.Notification{}, c.notificationID).Error
}
