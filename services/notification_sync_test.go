package services

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Vinh-tho/Ticket-App-sub001/dto"
)

type fakeFeed struct {
	mu           sync.Mutex
	list         []dto.NotificationView
	fetchErr     error
	fetchTokens  []string
	markedIDs    []int64
	markTokens   []string
	markAllCalls int
	markErr      error
	done         chan struct{}
}

func newFakeFeed(list []dto.NotificationView) *fakeFeed {
	return &fakeFeed{list: list, done: make(chan struct{}, 10)}
}

func (f *fakeFeed) FetchNotifications(token string) ([]dto.NotificationView, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetchTokens = append(f.fetchTokens, token)
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	out := make([]dto.NotificationView, len(f.list))
	copy(out, f.list)
	return out, nil
}

func (f *fakeFeed) MarkNotificationRead(token string, id int64) error {
	f.mu.Lock()
	f.markedIDs = append(f.markedIDs, id)
	f.markTokens = append(f.markTokens, token)
	err := f.markErr
	f.mu.Unlock()
	f.done <- struct{}{}
	return err
}

func (f *fakeFeed) MarkAllNotificationsRead(token string) error {
	f.mu.Lock()
	f.markAllCalls++
	f.markTokens = append(f.markTokens, token)
	err := f.markErr
	f.mu.Unlock()
	f.done <- struct{}{}
	return err
}

func (f *fakeFeed) waitForPatch(t *testing.T) {
	t.Helper()
	select {
	case <-f.done:
	case <-time.After(time.Second):
		t.Fatal("không thấy PATCH upstream nào được gọi")
	}
}

func sampleNotifications() []dto.NotificationView {
	return []dto.NotificationView{
		{ID: 1, Message: "Vé của bạn đã được xác nhận", IsRead: false},
		{ID: 2, Message: "Sự kiện sắp diễn ra", IsRead: false},
		{ID: 3, Message: "Đơn hàng cũ", IsRead: true},
	}
}

func TestSyncerFetch(t *testing.T) {
	feed := newFakeFeed(sampleNotifications())
	s := NewNotificationSyncer(feed, func() string { return "token-1" }, nil)

	s.Fetch()

	if got := len(s.Notifications()); got != 3 {
		t.Fatalf("có %d thông báo, muốn 3", got)
	}
	if s.UnreadCount() != 2 {
		t.Errorf("UnreadCount = %d, muốn 2", s.UnreadCount())
	}
	if s.Loading() {
		t.Error("Loading phải là false sau khi fetch xong")
	}
}

func TestSyncerFetchMissingTokenIsNoop(t *testing.T) {
	feed := newFakeFeed(sampleNotifications())
	s := NewNotificationSyncer(feed, func() string { return "" }, nil)

	s.Fetch()

	feed.mu.Lock()
	calls := len(feed.fetchTokens)
	feed.mu.Unlock()
	if calls != 0 {
		t.Errorf("thiếu token nhưng vẫn gọi upstream %d lần", calls)
	}
	if len(s.Notifications()) != 0 {
		t.Error("danh sách phải giữ nguyên rỗng")
	}
}

func TestSyncerFetchErrorKeepsPreviousList(t *testing.T) {
	feed := newFakeFeed(sampleNotifications())
	s := NewNotificationSyncer(feed, func() string { return "token-1" }, nil)

	s.Fetch()
	if len(s.Notifications()) != 3 {
		t.Fatal("fetch đầu phải thành công")
	}

	feed.mu.Lock()
	feed.fetchErr = errors.New("timeout")
	feed.mu.Unlock()

	s.Fetch()

	if got := len(s.Notifications()); got != 3 {
		t.Errorf("fetch lỗi phải giữ danh sách cũ, còn %d", got)
	}
	if s.UnreadCount() != 2 {
		t.Errorf("UnreadCount = %d, muốn giữ nguyên 2", s.UnreadCount())
	}
}

func TestSyncerTokenReadPerCall(t *testing.T) {
	feed := newFakeFeed(sampleNotifications())

	var mu sync.Mutex
	token := "token-cu"
	s := NewNotificationSyncer(feed, func() string {
		mu.Lock()
		defer mu.Unlock()
		return token
	}, nil)

	s.Fetch()

	mu.Lock()
	token = "token-moi"
	mu.Unlock()

	s.Fetch()

	feed.mu.Lock()
	defer feed.mu.Unlock()
	if len(feed.fetchTokens) != 2 || feed.fetchTokens[1] != "token-moi" {
		t.Errorf("fetch thứ hai dùng token %v, phải đọc lại token mỗi lần gọi", feed.fetchTokens)
	}
}

func TestSyncerMarkAsReadOptimistic(t *testing.T) {
	feed := newFakeFeed(sampleNotifications())
	feed.markErr = errors.New("upstream từ chối")
	s := NewNotificationSyncer(feed, func() string { return "token-1" }, nil)
	s.Fetch()

	s.MarkAsRead(1)

	// State local flip ngay, không chờ PATCH
	for _, n := range s.Notifications() {
		if n.ID == 1 && !n.IsRead {
			t.Error("thông báo 1 phải được đánh dấu đã đọc ngay")
		}
	}
	if s.UnreadCount() != 1 {
		t.Errorf("UnreadCount = %d, muốn 1", s.UnreadCount())
	}

	feed.waitForPatch(t)

	// PATCH lỗi không rollback
	if s.UnreadCount() != 1 {
		t.Errorf("UnreadCount = %d sau PATCH lỗi, không được rollback", s.UnreadCount())
	}
	feed.mu.Lock()
	defer feed.mu.Unlock()
	if len(feed.markedIDs) != 1 || feed.markedIDs[0] != 1 {
		t.Errorf("PATCH nhận id %v, muốn [1]", feed.markedIDs)
	}
}

func TestSyncerMarkAsReadAlreadyRead(t *testing.T) {
	feed := newFakeFeed(sampleNotifications())
	s := NewNotificationSyncer(feed, func() string { return "token-1" }, nil)
	s.Fetch()

	s.MarkAsRead(3)
	feed.waitForPatch(t)

	if s.UnreadCount() != 2 {
		t.Errorf("đánh dấu thông báo đã đọc không được giảm UnreadCount, có %d", s.UnreadCount())
	}
}

func TestSyncerMarkAllAsRead(t *testing.T) {
	feed := newFakeFeed(sampleNotifications())
	s := NewNotificationSyncer(feed, func() string { return "token-1" }, nil)
	s.Fetch()

	s.MarkAllAsRead()

	for _, n := range s.Notifications() {
		if !n.IsRead {
			t.Errorf("thông báo %d chưa được đánh dấu đã đọc", n.ID)
		}
	}
	if s.UnreadCount() != 0 {
		t.Errorf("UnreadCount = %d, muốn 0", s.UnreadCount())
	}

	feed.waitForPatch(t)
	feed.mu.Lock()
	defer feed.mu.Unlock()
	if feed.markAllCalls != 1 {
		t.Errorf("PATCH bulk được gọi %d lần, muốn 1", feed.markAllCalls)
	}
}

func TestSyncerNotificationsReturnsCopy(t *testing.T) {
	feed := newFakeFeed(sampleNotifications())
	s := NewNotificationSyncer(feed, func() string { return "token-1" }, nil)
	s.Fetch()

	list := s.Notifications()
	list[0].Message = "đã sửa"

	if s.Notifications()[0].Message == "đã sửa" {
		t.Error("Notifications phải trả về bản sao, không phải slice nội bộ")
	}
}
