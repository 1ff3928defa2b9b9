package services

import (
	"encoding/base64"
	"testing"
)

func buildToken(payload string) string {
	encode := func(s string) string {
		return base64.RawURLEncoding.EncodeToString([]byte(s))
	}
	return encode(`{"alg":"HS256","typ":"JWT"}`) + "." + encode(payload) + "." + encode("sig")
}

func TestGetUserIDFromToken(t *testing.T) {
	t.Run("claim sub", func(t *testing.T) {
		userID, err := GetUserIDFromToken(buildToken(`{"sub":42,"exp":9999999999}`))
		if err != nil {
			t.Fatalf("lỗi không mong muốn: %v", err)
		}
		if userID != 42 {
			t.Errorf("userID = %d, muốn 42", userID)
		}
	})

	t.Run("claim id bản cũ", func(t *testing.T) {
		userID, err := GetUserIDFromToken(buildToken(`{"id":7}`))
		if err != nil {
			t.Fatalf("lỗi không mong muốn: %v", err)
		}
		if userID != 7 {
			t.Errorf("userID = %d, muốn 7", userID)
		}
	})

	t.Run("sub thắng id", func(t *testing.T) {
		userID, err := GetUserIDFromToken(buildToken(`{"sub":1,"id":2}`))
		if err != nil {
			t.Fatalf("lỗi không mong muốn: %v", err)
		}
		if userID != 1 {
			t.Errorf("userID = %d, muốn 1", userID)
		}
	})

	t.Run("không có claim id", func(t *testing.T) {
		if _, err := GetUserIDFromToken(buildToken(`{"name":"x"}`)); err == nil {
			t.Error("muốn lỗi khi token thiếu sub lẫn id")
		}
	})

	t.Run("token sai định dạng", func(t *testing.T) {
		if _, err := GetUserIDFromToken("không-phải-jwt"); err == nil {
			t.Error("muốn lỗi với chuỗi không phải JWT")
		}
	})

	t.Run("payload không decode được", func(t *testing.T) {
		if _, err := GetUserIDFromToken("a.!!!.c"); err == nil {
			t.Error("muốn lỗi khi payload không phải base64")
		}
	})
}

func TestIsValidExpoPushToken(t *testing.T) {
	cases := []struct {
		token string
		want  bool
	}{
		{"ExponentPushToken[abc123_-XYZ]", true},
		{"ExponentPushToken[]", false},
		{"ExpoPushToken[abc]", false},
		{"abc", false},
		{"ExponentPushToken[abc]extra", false},
	}
	for _, tc := range cases {
		if got := IsValidExpoPushToken(tc.token); got != tc.want {
			t.Errorf("IsValidExpoPushToken(%q) = %v, muốn %v", tc.token, got, tc.want)
		}
	}
}
