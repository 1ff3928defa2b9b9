package controllers

import (
	"strconv"
	"strings"
	"time"

	"github.com/Vinh-tho/Ticket-App-sub001/config"
	"github.com/Vinh-tho/Ticket-App-sub001/dto"
	"github.com/Vinh-tho/Ticket-App-sub001/response"
	"github.com/Vinh-tho/Ticket-App-sub001/services"
	"github.com/Vinh-tho/Ticket-App-sub001/utils"

	"github.com/gin-gonic/gin"
)

const eventsCacheKey = "events:all"

// loadEvents lấy danh sách sự kiện từ core API, ưu tiên cache
func loadEvents() ([]dto.EventSummary, error) {
	api, _ := gateway()

	var events []dto.EventSummary
	if config.RedisClient != nil {
		if err := services.GetFromRedis(config.Ctx, config.RedisClient, eventsCacheKey, &events); err == nil && len(events) > 0 {
			return events, nil
		}
	}

	events, err := api.FetchEvents()
	if err != nil {
		return nil, err
	}

	if config.RedisClient != nil {
		if err := services.SetToRedis(config.Ctx, config.RedisClient, eventsCacheKey, events, 10*time.Minute); err != nil {
			utils.LogError("Lỗi khi lưu danh sách sự kiện vào Redis: %v", err)
		}
	}

	return events, nil
}

// parseSearchFilters đọc bộ lọc tìm kiếm từ query string
func parseSearchFilters(c *gin.Context) *dto.EventSearchFilters {
	filters := &dto.EventSearchFilters{
		Query:    strings.TrimSpace(c.Query("q")),
		Category: strings.TrimSpace(c.Query("category")),
		Province: strings.TrimSpace(c.Query("province")),
	}
	if maxPriceStr := c.Query("maxPrice"); maxPriceStr != "" {
		if maxPrice, err := strconv.ParseFloat(maxPriceStr, 64); err == nil && maxPrice > 0 {
			filters.MaxPrice = &maxPrice
		}
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 {
			filters.Limit = &limit
		}
	}
	return filters
}

// applyFilters lọc danh sách sự kiện theo tỉnh, thể loại và giá tối đa
func applyFilters(events []dto.EventSummary, filters *dto.EventSearchFilters) []dto.EventSummary {
	filtered := make([]dto.EventSummary, 0, len(events))
	for _, ev := range events {
		if filters.Province != "" && !strings.EqualFold(ev.Province, filters.Province) {
			continue
		}
		if filters.Category != "" && !strings.EqualFold(ev.Category, filters.Category) {
			continue
		}
		if filters.MaxPrice != nil && float64(ev.MinPrice) > *filters.MaxPrice {
			continue
		}
		filtered = append(filtered, ev)
	}
	return filtered
}

// SearchEventsHandler godoc
// @Summary Tìm kiếm sự kiện theo từ khóa và bộ lọc
// @Tags events
// @Produce json
// @Param q query string true "Từ khóa tìm kiếm"
// @Param category query string false "Thể loại sự kiện"
// @Param province query string false "Tỉnh hoặc thành phố"
// @Param maxPrice query number false "Giá vé tối đa"
// @Param limit query int false "Số kết quả tối đa"
// @Success 200 {object} map[string]interface{}
// @Router /events/search [get]
func SearchEventsHandler(c *gin.Context) {
	filters := parseSearchFilters(c)

	// Gộp với lần tìm trước của session để giữ ngữ cảnh
	sessionID := c.GetString("sessionId")
	if config.RedisClient != nil && sessionID != "" {
		if last, err := services.GetLastSearch(config.Ctx, config.RedisClient, sessionID); err == nil {
			filters = services.MergeSearchFilters(last, filters)
		}
	}

	if filters.Query == "" {
		response.BadRequest(c, "Từ khóa tìm kiếm không được để trống")
		return
	}

	events, err := loadEvents()
	if err != nil {
		utils.LogError("Lỗi khi lấy danh sách sự kiện từ core API: %v", err)
		response.UpstreamError(c)
		return
	}

	scored := services.SearchEvents(filters.Query, applyFilters(events, filters))

	limit := 20
	if filters.Limit != nil {
		limit = *filters.Limit
	}
	if len(scored) > limit {
		scored = scored[:limit]
	}

	if config.RedisClient != nil && sessionID != "" {
		if err := services.SaveLastSearch(config.Ctx, config.RedisClient, sessionID, filters); err != nil {
			utils.LogError("Lỗi khi lưu bộ lọc tìm kiếm vào Redis: %v", err)
		}
	}

	response.Success(c, gin.H{
		"filters": filters,
		"results": scored,
	})
}

// GetLastSearchFilters godoc
// @Summary Lấy bộ lọc tìm kiếm gần nhất của session
// @Tags events
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /events/search/last [get]
func GetLastSearchFilters(c *gin.Context) {
	sessionID := c.GetString("sessionId")
	if config.RedisClient == nil || sessionID == "" {
		response.Success(c, dto.EventSearchFilters{})
		return
	}

	last, err := services.GetLastSearch(config.Ctx, config.RedisClient, sessionID)
	if err != nil {
		response.Success(c, dto.EventSearchFilters{})
		return
	}

	response.Success(c, last)
}

// ClearLastSearchFilters godoc
// @Summary Xóa bộ lọc tìm kiếm đã lưu của session
// @Tags events
// @Success 200 {object} map[string]interface{}
// @Router /events/search/last [delete]
func ClearLastSearchFilters(c *gin.Context) {
	sessionID := c.GetString("sessionId")
	if config.RedisClient != nil && sessionID != "" {
		_ = services.ClearLastSearch(config.Ctx, config.RedisClient, sessionID)
	}
	response.Success(c, gin.H{"message": "Đã xóa bộ lọc tìm kiếm"})
}

// GetEvents godoc
// @Summary Lấy toàn bộ danh sách sự kiện
// @Tags events
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /events [get]
func GetEvents(c *gin.Context) {
	events, err := loadEvents()
	if err != nil {
		utils.LogError("Lỗi khi lấy danh sách sự kiện từ core API: %v", err)
		response.UpstreamError(c)
		return
	}

	response.Success(c, events)
}
