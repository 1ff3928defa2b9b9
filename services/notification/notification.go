package notification

import (
	"fmt"

	"github.com/olahol/melody"
)

// Service gửi thông báo realtime tới các client dashboard đang kết nối
type Service interface {
	SendMessage(message string) error
}

type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) SendMessage(message string) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	return s.m.Broadcast([]byte(message))
}

// MessageBuilder dựng message badge cho dashboard khi user có thông báo mới
type MessageBuilder struct {
	userID      uint
	unreadCount int
}

func NewMessageBuilder(userID uint, unreadCount int) *MessageBuilder {
	return &MessageBuilder{
		userID:      userID,
		unreadCount: unreadCount,
	}
}

func (b *MessageBuilder) Build() string {
	return fmt.Sprintf("🔔 User %d có %d thông báo chưa đọc.", b.userID, b.unreadCount)
}
