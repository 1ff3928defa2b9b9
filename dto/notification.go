package dto

import (
	"bytes"

	"github.com/goccy/go-json"
)

// NotificationView là view model thông báo cho UI
type NotificationView struct {
	ID        int64  `json:"id"`
	Message   string `json:"message"`
	CreatedAt string `json:"createdAt"`
	IsRead    bool   `json:"isRead"`
}

// notificationEnvelope là shape bọc ngoài mà core API đôi khi trả về
type notificationEnvelope struct {
	Notifications []NotificationView `json:"notifications"`
}

// ParseNotificationsPayload chuẩn hóa ba shape phản hồi của endpoint
// notifications: mảng trần, object có field "notifications", hoặc một
// object thông báo đơn lẻ. Shape không nhận ra trả về lỗi parse.
func ParseNotificationsPayload(data []byte) ([]NotificationView, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return []NotificationView{}, nil
	}

	// Mảng trần
	if data[0] == '[' {
		var list []NotificationView
		if err := json.Unmarshal(data, &list); err != nil {
			return nil, err
		}
		return list, nil
	}

	// Object bọc {"notifications": [...]}
	var envelope notificationEnvelope
	if err := json.Unmarshal(data, &envelope); err == nil && envelope.Notifications != nil {
		return envelope.Notifications, nil
	}

	// Object thông báo đơn lẻ
	var single NotificationView
	if err := json.Unmarshal(data, &single); err != nil {
		return nil, err
	}
	if single.ID == 0 && single.Message == "" {
		return []NotificationView{}, nil
	}
	return []NotificationView{single}, nil
}

// CountUnread đếm số thông báo chưa đọc trong danh sách
func CountUnread(list []NotificationView) int {
	count := 0
	for _, n := range list {
		if !n.IsRead {
			count++
		}
	}
	return count
}

// RegisterTokenRequest là DTO cho request đăng ký push token
type RegisterTokenRequest struct {
	ExpoPushToken string `json:"expoPushToken" binding:"required"`
	Platform      string `json:"platform"`
}

// CreateNotificationRequest là DTO cho request tạo thông báo
type CreateNotificationRequest struct {
	UserID  uint   `json:"userId" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// BroadcastNotificationRequest là DTO cho request gửi thông báo hàng loạt
type BroadcastNotificationRequest struct {
	UserIDs []int64 `json:"userIds" binding:"required"`
	Message string  `json:"message" binding:"required"`
}
