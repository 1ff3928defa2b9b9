package models

import (
	"time"

	"github.com/lib/pq"
)

// Broadcast lưu lại một lần gửi thông báo hàng loạt từ dashboard,
// giữ danh sách user nhận để đối soát
type Broadcast struct {
	ID        uint          `json:"id" gorm:"primaryKey"`
	Message   string        `gorm:"type:text;not null" json:"message"`
	UserIDs   pq.Int64Array `json:"userIds" gorm:"type:integer[]"`
	SentBy    uint          `json:"sentBy"`
	CreatedAt time.Time     `gorm:"autoCreateTime" json:"createdAt"`
}
