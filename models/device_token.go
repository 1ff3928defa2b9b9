package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// DeviceToken là Expo push token của một thiết bị đã đăng ký nhận thông báo
type DeviceToken struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	UserID        uint      `json:"userId" gorm:"index"`
	ExpoPushToken string    `json:"expoPushToken" gorm:"uniqueIndex;not null" validate:"required,startswith=ExponentPushToken["`
	Platform      string    `json:"platform" validate:"omitempty,oneof=ios android"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// Validate kiểm tra struct bằng validator tags
func (t *DeviceToken) Validate() error {
	validate := validator.New()
	return validate.Struct(t)
}
