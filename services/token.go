package services

import (
	"strings"

	"github.com/Vinh-tho/Ticket-App-sub001/errors"

	"github.com/dgrijalva/jwt-go"

	"github.com/goccy/go-json"
)

// GetUserIDFromToken lấy userID từ payload của bearer token.
// Gateway không giữ secret của core API nên chỉ decode payload,
// việc verify chữ ký do core API đảm nhận khi nhận passthrough.
func GetUserIDFromToken(tokenString string) (uint, error) {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return 0, errors.NewAppError(errors.ErrCodeInvalidToken, "Token không hợp lệ", nil)
	}

	payload, err := jwt.DecodeSegment(parts[1])
	if err != nil {
		return 0, errors.NewAppError(errors.ErrCodeInvalidToken, "Không thể giải mã token", err)
	}

	claimsMap := jwt.MapClaims{}
	if err := json.Unmarshal(payload, &claimsMap); err != nil {
		return 0, errors.NewAppError(errors.ErrCodeInvalidToken, "Không thể parse token", err)
	}

	// core API đặt userID ở claim "sub", các bản cũ dùng "id"
	if sub, ok := claimsMap["sub"].(float64); ok {
		return uint(sub), nil
	}
	if id, ok := claimsMap["id"].(float64); ok {
		return uint(id), nil
	}

	return 0, errors.NewAppError(errors.ErrCodeInvalidToken, "Không tìm thấy ID user trong token", nil)
}
