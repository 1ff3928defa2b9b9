package services

import (
	"context"
	"time"

	"github.com/Vinh-tho/Ticket-App-sub001/dto"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

func SaveLastSearch(ctx context.Context, rdb *redis.Client, sessionID string, filters *dto.EventSearchFilters) error {
	b, _ := json.Marshal(filters)
	return rdb.Set(ctx, "last_search:"+sessionID, b, 30*time.Minute).Err()
}

func GetLastSearch(ctx context.Context, rdb *redis.Client, sessionID string) (*dto.EventSearchFilters, error) {
	val, err := rdb.Get(ctx, "last_search:"+sessionID).Result()
	if err != nil {
		return nil, err
	}
	var filters dto.EventSearchFilters
	if err := json.Unmarshal([]byte(val), &filters); err != nil {
		return nil, err
	}
	return &filters, nil
}

func ClearLastSearch(ctx context.Context, rdb *redis.Client, sessionID string) error {
	return rdb.Del(ctx, "last_search:"+sessionID).Err()
}

// MergeSearchFilters gộp bộ lọc cũ với bộ lọc mới, field mới rỗng thì
// giữ giá trị cũ
func MergeSearchFilters(old *dto.EventSearchFilters, next *dto.EventSearchFilters) *dto.EventSearchFilters {
	if old == nil {
		return next
	}
	next.Query = orString(next.Query, old.Query)
	next.Category = orString(next.Category, old.Category)
	next.Province = orString(next.Province, old.Province)
	next.MaxPrice = orFloatPointer(next.MaxPrice, old.MaxPrice)
	next.Limit = orIntPointer(next.Limit, old.Limit)
	return next
}

func orString(newVal, oldVal string) string {
	if newVal != "" {
		return newVal
	}
	return oldVal
}

func orIntPointer(newVal, oldVal *int) *int {
	if newVal != nil {
		return newVal
	}
	return oldVal
}

func orFloatPointer(newVal, oldVal *float64) *float64 {
	if newVal != nil {
		return newVal
	}
	return oldVal
}
