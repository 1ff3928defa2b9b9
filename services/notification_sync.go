package services

import (
	"sync"

	"github.com/Vinh-tho/Ticket-App-sub001/dto"
	"github.com/Vinh-tho/Ticket-App-sub001/services/logger"
)

// NotificationFeed là phần của core API mà syncer cần
type NotificationFeed interface {
	FetchNotifications(token string) ([]dto.NotificationView, error)
	MarkNotificationRead(token string, id int64) error
	MarkAllNotificationsRead(token string) error
}

// TokenSource đọc bearer token từ nơi lưu trữ. Được gọi lại trên mỗi
// request thay vì cache trong memory.
type TokenSource func() string

// NotificationSyncer giữ bản sao local của feed thông báo với unread
// count, mutation optimistic và chính sách stale-but-available: fetch
// lỗi thì giữ nguyên danh sách cũ, không surface lỗi lên UI.
type NotificationSyncer struct {
	feed        NotificationFeed
	tokenSource TokenSource
	logger      logger.Logger

	mu            sync.Mutex
	notifications []dto.NotificationView
	unreadCount   int
	loading       bool
}

// NewNotificationSyncer tạo syncer cho một feed thông báo
func NewNotificationSyncer(feed NotificationFeed, tokenSource TokenSource, log logger.Logger) *NotificationSyncer {
	if log == nil {
		log = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &NotificationSyncer{
		feed:          feed,
		tokenSource:   tokenSource,
		logger:        log,
		notifications: []dto.NotificationView{},
	}
}

// Fetch đồng bộ danh sách thông báo từ upstream. Thiếu token hoặc fetch
// lỗi đều chỉ log; danh sách hiện có được giữ nguyên.
func (s *NotificationSyncer) Fetch() {
	token := s.tokenSource()
	if token == "" {
		s.logger.Info("Bỏ qua fetch thông báo: chưa có token")
		return
	}

	s.setLoading(true)
	defer s.setLoading(false)

	list, err := s.feed.FetchNotifications(token)
	if err != nil {
		s.logger.Error("Fetch thông báo thất bại: %v", err)
		return
	}

	s.mu.Lock()
	s.notifications = list
	s.unreadCount = dto.CountUnread(list)
	s.mu.Unlock()
}

// MarkAsRead đánh dấu đã đọc optimistic: state local cập nhật ngay,
// PATCH upstream chạy nền và không rollback nếu thất bại
func (s *NotificationSyncer) MarkAsRead(id int64) {
	s.mu.Lock()
	for i := range s.notifications {
		if s.notifications[i].ID == id && !s.notifications[i].IsRead {
			s.notifications[i].IsRead = true
			if s.unreadCount > 0 {
				s.unreadCount--
			}
			break
		}
	}
	s.mu.Unlock()

	token := s.tokenSource()
	if token == "" {
		s.logger.Info("Bỏ qua PATCH mark-read: chưa có token")
		return
	}
	go func() {
		if err := s.feed.MarkNotificationRead(token, id); err != nil {
			s.logger.Error("PATCH mark-read %d thất bại: %v", id, err)
		}
	}()
}

// MarkAllAsRead đánh dấu tất cả đã đọc optimistic với một PATCH bulk
func (s *NotificationSyncer) MarkAllAsRead() {
	s.mu.Lock()
	for i := range s.notifications {
		s.notifications[i].IsRead = true
	}
	s.unreadCount = 0
	s.mu.Unlock()

	token := s.tokenSource()
	if token == "" {
		s.logger.Info("Bỏ qua PATCH mark-all-read: chưa có token")
		return
	}
	go func() {
		if err := s.feed.MarkAllNotificationsRead(token); err != nil {
			s.logger.Error("PATCH mark-all-read thất bại: %v", err)
		}
	}()
}

// Notifications trả về bản sao danh sách hiện tại
func (s *NotificationSyncer) Notifications() []dto.NotificationView {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]dto.NotificationView, len(s.notifications))
	copy(out, s.notifications)
	return out
}

// UnreadCount trả về số thông báo chưa đọc theo state local
func (s *NotificationSyncer) UnreadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.unreadCount
}

// Loading cho biết có fetch đang chạy hay không
func (s *NotificationSyncer) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *NotificationSyncer) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}
