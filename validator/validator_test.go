package validator

import (
	"strings"
	"testing"

	"github.com/Vinh-tho/Ticket-App-sub001/dto"
	"github.com/Vinh-tho/Ticket-App-sub001/errors"
)

func TestValidateRegisterToken(t *testing.T) {
	cases := []struct {
		name     string
		req      dto.RegisterTokenRequest
		wantCode errors.ErrorCode
	}{
		{"hợp lệ", dto.RegisterTokenRequest{ExpoPushToken: "ExponentPushToken[abc]", Platform: "ios"}, ""},
		{"không platform", dto.RegisterTokenRequest{ExpoPushToken: "ExponentPushToken[abc]"}, ""},
		{"token rỗng", dto.RegisterTokenRequest{}, errors.ErrCodeRequiredField},
		{"token sai định dạng", dto.RegisterTokenRequest{ExpoPushToken: "abc"}, errors.ErrCodeInvalidPushToken},
		{"platform lạ", dto.RegisterTokenRequest{ExpoPushToken: "ExponentPushToken[abc]", Platform: "web"}, errors.ErrCodeValidation},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateRegisterToken(&tc.req)
			if tc.wantCode == "" {
				if err != nil {
					t.Errorf("lỗi không mong muốn: %v", err)
				}
				return
			}
			appErr := errors.GetAppError(err)
			if appErr == nil || appErr.Code != tc.wantCode {
				t.Errorf("err = %v, muốn code %s", err, tc.wantCode)
			}
		})
	}
}

func TestValidateCreateNotification(t *testing.T) {
	valid := dto.CreateNotificationRequest{UserID: 1, Message: "xin chào"}
	if err := ValidateCreateNotification(&valid); err != nil {
		t.Errorf("lỗi không mong muốn: %v", err)
	}

	missing := dto.CreateNotificationRequest{Message: "xin chào"}
	if err := ValidateCreateNotification(&missing); err == nil {
		t.Error("muốn lỗi khi thiếu userID")
	}

	blank := dto.CreateNotificationRequest{UserID: 1, Message: "   "}
	if err := ValidateCreateNotification(&blank); err == nil {
		t.Error("muốn lỗi khi message toàn khoảng trắng")
	}

	long := dto.CreateNotificationRequest{UserID: 1, Message: strings.Repeat("a", 501)}
	if err := ValidateCreateNotification(&long); err == nil {
		t.Error("muốn lỗi khi message quá dài")
	}
}

func TestValidateBroadcast(t *testing.T) {
	valid := dto.BroadcastNotificationRequest{UserIDs: []int64{1, 2}, Message: "bảo trì hệ thống"}
	if err := ValidateBroadcast(&valid); err != nil {
		t.Errorf("lỗi không mong muốn: %v", err)
	}

	empty := dto.BroadcastNotificationRequest{UserIDs: []int64{}, Message: "gửi tất cả"}
	if err := ValidateBroadcast(&empty); err != nil {
		t.Errorf("danh sách rỗng nghĩa là gửi tất cả, không được lỗi: %v", err)
	}

	badID := dto.BroadcastNotificationRequest{UserIDs: []int64{1, 0}, Message: "x"}
	if err := ValidateBroadcast(&badID); err == nil {
		t.Error("muốn lỗi khi có ID không hợp lệ")
	}
}
