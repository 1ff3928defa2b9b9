package builders

import (
	"github.com/Vinh-tho/Ticket-App-sub001/services"
)

// PushMessageBuilder giúp tạo Expo push message theo từng bước
type PushMessageBuilder struct {
	message services.ExpoPushMessage
}

// NewPushMessageBuilder tạo instance mới của PushMessageBuilder
func NewPushMessageBuilder() *PushMessageBuilder {
	return &PushMessageBuilder{
		message: services.ExpoPushMessage{Sound: "default"},
	}
}

// WithToken thêm Expo push token của thiết bị nhận
func (b *PushMessageBuilder) WithToken(token string) *PushMessageBuilder {
	b.message.To = token
	return b
}

// WithTitle thêm tiêu đề
func (b *PushMessageBuilder) WithTitle(title string) *PushMessageBuilder {
	b.message.Title = title
	return b
}

// WithBody thêm nội dung
func (b *PushMessageBuilder) WithBody(body string) *PushMessageBuilder {
	b.message.Body = body
	return b
}

// WithData thêm payload kèm theo
func (b *PushMessageBuilder) WithData(data map[string]interface{}) *PushMessageBuilder {
	b.message.Data = data
	return b
}

// WithSound đổi âm thanh thông báo
func (b *PushMessageBuilder) WithSound(sound string) *PushMessageBuilder {
	b.message.Sound = sound
	return b
}

// Build tạo push message hoàn chỉnh
func (b *PushMessageBuilder) Build() services.ExpoPushMessage {
	return b.message
}
