package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Vinh-tho/Ticket-App-sub001/dto"
	"github.com/Vinh-tho/Ticket-App-sub001/services/logger"

	"github.com/redis/go-redis/v9"
)

const eventDetailCacheTTL = 10 * time.Minute

// CachedEventDetails bọc CoreAPI với cache Redis read-through cho
// enrichment lookup. Redis lỗi thì fallback thẳng sang core API.
type CachedEventDetails struct {
	api    *CoreAPI
	rdb    *redis.Client
	ctx    context.Context
	logger logger.Logger
}

// NewCachedEventDetails tạo lookup có cache; rdb có thể nil để tắt cache
func NewCachedEventDetails(api *CoreAPI, rdb *redis.Client, ctx context.Context, log logger.Logger) *CachedEventDetails {
	if log == nil {
		log = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &CachedEventDetails{
		api:    api,
		rdb:    rdb,
		ctx:    ctx,
		logger: log,
	}
}

// FetchEventDetailInfo implement EventDetailLookup
func (c *CachedEventDetails) FetchEventDetailInfo(eventDetailID int64) (*dto.EventDetailInfo, error) {
	cacheKey := fmt.Sprintf("event-detail:%d", eventDetailID)

	if c.rdb != nil {
		var cached dto.EventDetailInfo
		if err := GetFromRedis(c.ctx, c.rdb, cacheKey, &cached); err == nil && cached.ID != 0 {
			return &cached, nil
		}
	}

	info, err := c.api.FetchEventDetailInfo(eventDetailID)
	if err != nil {
		return nil, err
	}

	if c.rdb != nil {
		if err := SetToRedis(c.ctx, c.rdb, cacheKey, info, eventDetailCacheTTL); err != nil {
			c.logger.Warn("Không lưu được event detail %d vào Redis: %v", eventDetailID, err)
		}
	}
	return info, nil
}
