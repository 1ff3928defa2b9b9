package validator

import (
	"strings"

	"github.com/Vinh-tho/Ticket-App-sub001/constants"
	"github.com/Vinh-tho/Ticket-App-sub001/dto"
	"github.com/Vinh-tho/Ticket-App-sub001/errors"
	"github.com/Vinh-tho/Ticket-App-sub001/services"
)

// ValidateRegisterToken validate yêu cầu đăng ký push token
func ValidateRegisterToken(req *dto.RegisterTokenRequest) error {
	if req.ExpoPushToken == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Push token không được để trống", nil)
	}

	if !services.IsValidExpoPushToken(req.ExpoPushToken) {
		return errors.NewAppError(errors.ErrCodeInvalidPushToken, "Push token không hợp lệ", nil)
	}

	if req.Platform != "" && req.Platform != constants.PlatformIOS && req.Platform != constants.PlatformAndroid {
		return errors.NewAppError(errors.ErrCodeValidation, "Platform phải là ios hoặc android", nil)
	}

	return nil
}

// ValidateCreateNotification validate yêu cầu tạo thông báo
func ValidateCreateNotification(req *dto.CreateNotificationRequest) error {
	if req.UserID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "ID người dùng không được để trống", nil)
	}

	if strings.TrimSpace(req.Message) == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Nội dung thông báo không được để trống", nil)
	}

	if len(req.Message) > 500 {
		return errors.NewAppError(errors.ErrCodeValidation, "Nội dung thông báo không được vượt quá 500 ký tự", nil)
	}

	return nil
}

// ValidateBroadcast validate yêu cầu gửi thông báo hàng loạt
func ValidateBroadcast(req *dto.BroadcastNotificationRequest) error {
	if strings.TrimSpace(req.Message) == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Nội dung thông báo không được để trống", nil)
	}

	if len(req.Message) > 500 {
		return errors.NewAppError(errors.ErrCodeValidation, "Nội dung thông báo không được vượt quá 500 ký tự", nil)
	}

	for _, id := range req.UserIDs {
		if id <= 0 {
			return errors.NewAppError(errors.ErrCodeValidation, "Danh sách người nhận chứa ID không hợp lệ", nil)
		}
	}

	return nil
}
