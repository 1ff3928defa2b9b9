package controllers

import (
	"github.com/Vinh-tho/Ticket-App-sub001/services/logger"
	"github.com/Vinh-tho/Ticket-App-sub001/services/notification"

	"github.com/olahol/melody"
	"gorm.io/gorm"
)

type NotificationObserver interface {
	Notify(message string) error
}

type MelodyObserver struct {
	session *melody.Session
	userID  uint
}

func NewMelodyObserver(session *melody.Session, userID uint) *MelodyObserver {
	return &MelodyObserver{
		session: session,
		userID:  userID,
	}
}

func (o *MelodyObserver) Notify(message string) error {
	return o.session.Write([]byte(message))
}

type NotificationController struct {
	db        *gorm.DB
	logger    logger.Logger
	melody    *melody.Melody
	observers map[uint][]NotificationObserver
}

type NotificationControllerOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewNotificationController(opts NotificationControllerOptions, m *melody.Melody) *NotificationController {
	return &NotificationController{
		db:        opts.DB,
		logger:    opts.Logger,
		melody:    m,
		observers: make(map[uint][]NotificationObserver),
	}
}

// broadcastBadge đẩy số thông báo chưa đọc của user qua websocket
func (c *NotificationController) broadcastBadge(userID uint, unreadCount int) {
	if c.melody == nil {
		return
	}
	message := notification.NewMessageBuilder(userID, unreadCount).Build()
	notificationService := notification.NewMelodyService(c.melody)
	if err := notificationService.SendMessage(message); err != nil {
		c.logger.Warn("Không gửi được badge qua websocket cho userID %d: %v", userID, err)
	}
}

// notifyObservers gửi message tới các session websocket đã đăng ký của user
func (c *NotificationController) notifyObservers(userID uint, message string) {
	for _, observer := range c.observers[userID] {
		if err := observer.Notify(message); err != nil {
			c.logger.Warn("Không gửi được thông báo tới observer của userID %d: %v", userID, err)
		}
	}
}

func (c *NotificationController) RegisterObserver(session *melody.Session, userID uint) {
	observer := NewMelodyObserver(session, userID)
	c.observers[userID] = append(c.observers[userID], observer)
	c.logger.Info("Người quan sát đã đăng ký cho userID: %d", userID)
}

func (c *NotificationController) RemoveObserver(session *melody.Session, userID uint) {
	observers := c.observers[userID]
	for i, obs := range observers {
		if obs.(*MelodyObserver).session == session {
			c.observers[userID] = append(observers[:i], observers[i+1:]...)
			break
		}
	}
	c.logger.Info("Đã xóa người quan sát cho userID: %d", userID)
}
