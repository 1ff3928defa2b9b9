package services

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"regexp"

	"github.com/goccy/go-json"
)

const expoPushURL = "https://exp.host/--/api/v2/push/send"

// expoPushTokenPattern khớp định dạng token của Expo
var expoPushTokenPattern = regexp.MustCompile(`^ExponentPushToken\[[A-Za-z0-9_-]+\]$`)

// ExpoPushMessage là message gửi lên Expo push service
type ExpoPushMessage struct {
	To    string                 `json:"to"`
	Title string                 `json:"title,omitempty"`
	Body  string                 `json:"body"`
	Data  map[string]interface{} `json:"data,omitempty"`
	Sound string                 `json:"sound,omitempty"`
}

type expoPushResponse struct {
	Data []struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	} `json:"data"`
}

// IsValidExpoPushToken kiểm tra định dạng Expo push token
func IsValidExpoPushToken(token string) bool {
	return expoPushTokenPattern.MatchString(token)
}

// SendExpoPush gửi một batch message lên Expo. Trả lỗi khi request hỏng
// hoặc Expo báo lỗi cho toàn bộ batch; lỗi từng ticket chỉ trả về message
// gộp để caller log.
func SendExpoPush(messages []ExpoPushMessage) error {
	if len(messages) == 0 {
		return nil
	}

	requestBody, err := json.Marshal(messages)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, expoPushURL, bytes.NewBuffer(requestBody))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("gửi push lên Expo thất bại: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("Expo trả về status %d", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	var pushResp expoPushResponse
	if err := json.Unmarshal(body, &pushResp); err != nil {
		return fmt.Errorf("không parse được phản hồi Expo: %w", err)
	}

	failed := 0
	lastMessage := ""
	for _, ticket := range pushResp.Data {
		if ticket.Status == "error" {
			failed++
			lastMessage = ticket.Message
		}
	}
	if failed == len(messages) && failed > 0 {
		return fmt.Errorf("Expo từ chối toàn bộ %d message: %s", failed, lastMessage)
	}
	return nil
}
