package controllers

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Vinh-tho/Ticket-App-sub001/config"
	"github.com/Vinh-tho/Ticket-App-sub001/dto"
	"github.com/Vinh-tho/Ticket-App-sub001/response"
	"github.com/Vinh-tho/Ticket-App-sub001/services"
	"github.com/Vinh-tho/Ticket-App-sub001/services/logger"
	"github.com/Vinh-tho/Ticket-App-sub001/utils"

	"github.com/gin-gonic/gin"
)

var (
	coreAPIOnce sync.Once
	coreAPI     *services.CoreAPI
	normalizer  *services.OrderNormalizer
)

// gateway khởi tạo client core API và normalizer dùng chung cho các controller
func gateway() (*services.CoreAPI, *services.OrderNormalizer) {
	coreAPIOnce.Do(func() {
		coreAPI = services.NewCoreAPI(config.CoreAPIURL())
		log := logger.NewDefaultLogger(logger.InfoLevel)
		lookup := services.NewCachedEventDetails(coreAPI, config.RedisClient, config.Ctx, log)
		normalizer = services.NewOrderNormalizer(lookup, log)
	})
	return coreAPI, normalizer
}

// authContext lấy userID và access token do AuthMiddleware gán vào context
func authContext(c *gin.Context) (uint, string, bool) {
	userID, ok := c.Get("userID")
	if !ok {
		return 0, "", false
	}
	token, ok := c.Get("accessToken")
	if !ok {
		return 0, "", false
	}
	return userID.(uint), token.(string), true
}

// loadMyOrders lấy danh sách đơn hàng đã chuẩn hóa của user, ưu tiên cache
func loadMyOrders(userID uint, token string) ([]dto.NormalizedOrder, error) {
	api, norm := gateway()
	cacheKey := fmt.Sprintf("orders:view:user:%d", userID)

	var orders []dto.NormalizedOrder
	if config.RedisClient != nil {
		if err := services.GetFromRedis(config.Ctx, config.RedisClient, cacheKey, &orders); err == nil && len(orders) > 0 {
			return orders, nil
		}
	}

	rawOrders, err := api.FetchMyOrders(token)
	if err != nil {
		return nil, err
	}

	orders = norm.Normalize(rawOrders)
	orders = services.TagPaymentEligibility(orders)

	if config.RedisClient != nil {
		if err := services.SetToRedis(config.Ctx, config.RedisClient, cacheKey, orders, 5*time.Minute); err != nil {
			utils.LogError("Lỗi khi lưu danh sách đơn hàng vào Redis: %v", err)
		}
	}

	return orders, nil
}

// GetMyOrders godoc
// @Summary Lấy danh sách đơn hàng của user hiện tại
// @Tags orders
// @Security BearerAuth
// @Produce json
// @Param page query int false "Trang"
// @Param limit query int false "Số phần tử mỗi trang"
// @Param needsPayment query bool false "Chỉ lấy đơn cần thanh toán"
// @Param status query string false "Lọc theo trạng thái"
// @Success 200 {object} map[string]interface{}
// @Router /orders/my [get]
func GetMyOrders(c *gin.Context) {
	userID, token, ok := authContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	orders, err := loadMyOrders(userID, token)
	if err != nil {
		utils.LogError("Lỗi khi lấy đơn hàng từ core API: %v", err)
		response.UpstreamError(c)
		return
	}

	// Lọc theo query
	statusFilter := strings.ToLower(strings.TrimSpace(c.Query("status")))
	needsPaymentStr := c.Query("needsPayment")

	filtered := make([]dto.NormalizedOrder, 0, len(orders))
	for _, order := range orders {
		if statusFilter != "" && order.Status != statusFilter {
			continue
		}
		if needsPaymentStr != "" {
			wantNeedsPayment, err := strconv.ParseBool(needsPaymentStr)
			if err == nil && order.NeedsPayment != wantNeedsPayment {
				continue
			}
		}
		filtered = append(filtered, order)
	}

	// Xử lý phân trang
	page := 0
	limit := 10
	if pageStr := c.Query("page"); pageStr != "" {
		if parsedPage, err := strconv.Atoi(pageStr); err == nil && parsedPage >= 0 {
			page = parsedPage
		}
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	total := len(filtered)
	start := page * limit
	end := start + limit
	if start >= total {
		filtered = []dto.NormalizedOrder{}
	} else if end > total {
		filtered = filtered[start:]
	} else {
		filtered = filtered[start:end]
	}

	response.SuccessWithPagination(c, filtered, page, limit, total)
}

// GetMyOrderDetail godoc
// @Summary Lấy chi tiết một đơn hàng của user hiện tại
// @Tags orders
// @Security BearerAuth
// @Produce json
// @Param id path string true "ID đơn hàng"
// @Success 200 {object} map[string]interface{}
// @Router /orders/my/{id} [get]
func GetMyOrderDetail(c *gin.Context) {
	userID, token, ok := authContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	orderID := c.Param("id")

	orders, err := loadMyOrders(userID, token)
	if err != nil {
		utils.LogError("Lỗi khi lấy đơn hàng từ core API: %v", err)
		response.UpstreamError(c)
		return
	}

	for _, order := range orders {
		if order.ID == orderID {
			response.Success(c, order)
			return
		}
	}

	response.NotFound(c)
}

// RefreshMyOrders godoc
// @Summary Xóa cache và lấy lại danh sách đơn hàng mới nhất
// @Tags orders
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /orders/my/refresh [post]
func RefreshMyOrders(c *gin.Context) {
	userID, token, ok := authContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	if config.RedisClient != nil {
		cacheKey := fmt.Sprintf("orders:view:user:%d", userID)
		_ = services.DeleteFromRedis(config.Ctx, config.RedisClient, cacheKey)
	}

	orders, err := loadMyOrders(userID, token)
	if err != nil {
		utils.LogError("Lỗi khi lấy đơn hàng từ core API: %v", err)
		response.UpstreamError(c)
		return
	}

	response.Success(c, orders)
}
