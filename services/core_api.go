package services

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Vinh-tho/Ticket-App-sub001/dto"
	"github.com/Vinh-tho/Ticket-App-sub001/errors"

	"github.com/goccy/go-json"
)

// CoreAPI là client gọi sang core API đặt vé (orders, events, notifications)
type CoreAPI struct {
	baseURL string
	client  *http.Client
}

// NewCoreAPI tạo client với base URL của core API
func NewCoreAPI(baseURL string) *CoreAPI {
	return &CoreAPI{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

func (a *CoreAPI) get(path, token string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, a.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeUpstreamError, "Không gọi được core API", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewAppError(errors.ErrCodeUpstreamStatus,
			fmt.Sprintf("core API trả về status %d cho %s", resp.StatusCode, path), nil)
	}

	return io.ReadAll(resp.Body)
}

func (a *CoreAPI) send(method, path, token string, body interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, a.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeUpstreamError, "Không gọi được core API", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errors.NewAppError(errors.ErrCodeUpstreamStatus,
			fmt.Sprintf("core API trả về status %d cho %s", resp.StatusCode, path), nil)
	}
	return nil
}

// FetchMyOrders lấy danh sách đơn hàng thô của user hiện tại.
// Payload có thể là {data: [...]} hoặc mảng trần.
func (a *CoreAPI) FetchMyOrders(token string) ([]dto.RawOrder, error) {
	body, err := a.get("/orders/my", token)
	if err != nil {
		return nil, err
	}
	return DecodeOrdersPayload(body), nil
}

// FetchEventDetailInfo lấy object enrichment cho một suất diễn.
// Endpoint này không yêu cầu auth phía core API.
func (a *CoreAPI) FetchEventDetailInfo(eventDetailID int64) (*dto.EventDetailInfo, error) {
	body, err := a.get(fmt.Sprintf("/event-details/%d", eventDetailID), "")
	if err != nil {
		return nil, err
	}

	var info dto.EventDetailInfo
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeUpstreamShape, "Payload event detail không hợp lệ", err)
	}
	return &info, nil
}

// FetchEvents lấy danh sách sự kiện cho màn hình tìm kiếm
func (a *CoreAPI) FetchEvents() ([]dto.EventSummary, error) {
	body, err := a.get("/events", "")
	if err != nil {
		return nil, err
	}

	var events []dto.EventSummary
	if err := json.Unmarshal(body, &events); err != nil {
		// một số bản core API bọc danh sách trong {data: [...]}
		var wrapped struct {
			Data []dto.EventSummary `json:"data"`
		}
		if err2 := json.Unmarshal(body, &wrapped); err2 != nil {
			return nil, errors.NewAppError(errors.ErrCodeUpstreamShape, "Payload danh sách sự kiện không hợp lệ", err)
		}
		events = wrapped.Data
	}
	return events, nil
}

// FetchNotifications lấy danh sách thông báo, chấp nhận cả ba shape phản hồi
func (a *CoreAPI) FetchNotifications(token string) ([]dto.NotificationView, error) {
	body, err := a.get("/notifications", token)
	if err != nil {
		return nil, err
	}

	list, err := dto.ParseNotificationsPayload(body)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeUpstreamShape, "Payload thông báo không hợp lệ", err)
	}
	return list, nil
}

// MarkNotificationRead đánh dấu một thông báo đã đọc phía core API
func (a *CoreAPI) MarkNotificationRead(token string, id int64) error {
	return a.send(http.MethodPatch, fmt.Sprintf("/notifications/mark-read/%d", id), token, nil)
}

// MarkAllNotificationsRead đánh dấu tất cả thông báo đã đọc phía core API
func (a *CoreAPI) MarkAllNotificationsRead(token string) error {
	return a.send(http.MethodPatch, "/notifications/mark-all-read", token, nil)
}

// RegisterPushToken đăng ký Expo push token với core API
func (a *CoreAPI) RegisterPushToken(token, expoPushToken string) error {
	body := map[string]string{"expoPushToken": expoPushToken}
	return a.send(http.MethodPost, "/notifications/token", token, body)
}
