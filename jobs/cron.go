package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/Vinh-tho/Ticket-App-sub001/builders"
	"github.com/Vinh-tho/Ticket-App-sub001/config"
	"github.com/Vinh-tho/Ticket-App-sub001/models"
	"github.com/Vinh-tho/Ticket-App-sub001/services"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// AlertFetcher định nghĩa interface cho việc đồng bộ feed cảnh báo
type AlertFetcher interface {
	Fetch()
	UnreadCount() int
}

var alertFetcher AlertFetcher

// SetAlertFetcher thiết lập implementation cho AlertFetcher
func SetAlertFetcher(fetcher AlertFetcher) {
	alertFetcher = fetcher
}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron, m *melody.Melody) error {
	// Đồng bộ feed cảnh báo dashboard mỗi 5 phút
	_, err := c.AddFunc("*/5 * * * *", func() {
		if alertFetcher == nil {
			log.Printf("Lỗi: AlertFetcher chưa được thiết lập")
			return
		}
		alertFetcher.Fetch()
		if m != nil {
			message := fmt.Sprintf("⚠️ Dashboard có %d cảnh báo chưa đọc.", alertFetcher.UnreadCount())
			if err := m.Broadcast([]byte(message)); err != nil {
				log.Printf("Lỗi khi broadcast cảnh báo: %v", err)
			}
		}
	})
	if err != nil {
		return err
	}

	// Cron job chạy lúc 8h mỗi ngày: đẩy digest thông báo chưa đọc
	_, err = c.AddFunc("0 8 * * *", func() {
		now := time.Now()
		log.Printf("Đang chạy gửi digest thông báo lúc: %v", now)
		if err := sendUnreadDigest(); err != nil {
			log.Printf("Lỗi khi gửi digest thông báo: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}

// sendUnreadDigest gửi Expo push nhắc các user còn thông báo chưa đọc
func sendUnreadDigest() error {
	if config.DB == nil {
		return fmt.Errorf("database chưa được kết nối")
	}

	type unreadRow struct {
		UserID uint
		Count  int64
	}

	var rows []unreadRow
	if err := config.DB.Model(&models.Notification{}).
		Select("user_id, count(*) as count").
		Where("is_read = false").
		Group("user_id").
		Find(&rows).Error; err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}

	var pushMessages []services.ExpoPushMessage
	for _, row := range rows {
		var tokens []models.DeviceToken
		if err := config.DB.Where("user_id = ?", row.UserID).Find(&tokens).Error; err != nil {
			log.Printf("Lỗi khi lấy device token của userID %d: %v", row.UserID, err)
			continue
		}
		for _, t := range tokens {
			if !services.IsValidExpoPushToken(t.ExpoPushToken) {
				continue
			}
			pushMessages = append(pushMessages, builders.NewPushMessageBuilder().
				WithToken(t.ExpoPushToken).
				WithTitle("Thông báo chưa đọc").
				WithBody(fmt.Sprintf("Bạn có %d thông báo chưa đọc.", row.Count)).
				Build())
		}
	}
	if len(pushMessages) == 0 {
		return nil
	}

	return services.SendExpoPush(pushMessages)
}
