package middleware

import (
	stderrors "errors"
	"strings"

	"github.com/Vinh-tho/Ticket-App-sub001/errors"
	"github.com/Vinh-tho/Ticket-App-sub001/response"
	"github.com/Vinh-tho/Ticket-App-sub001/services"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware xử lý authentication
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		userID, err := services.GetUserIDFromToken(tokenString)
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		// Lưu thông tin user vào context, giữ lại token gốc để gọi core API
		c.Set("userID", userID)
		c.Set("accessToken", tokenString)
		c.Next()
	}
}

// ErrorHandler xử lý lỗi
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Kiểm tra lỗi
		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err

			var appErr *errors.AppError
			if stderrors.As(err, &appErr) {
				switch appErr.Code {
				case errors.ErrCodeUpstreamError, errors.ErrCodeUpstreamStatus, errors.ErrCodeUpstreamShape:
					response.UpstreamError(c)
				case errors.ErrCodeUnauthorized, errors.ErrCodeInvalidToken, errors.ErrCodeMissingToken:
					response.Unauthorized(c)
				default:
					response.BadRequest(c, appErr.Message)
				}
				return
			}

			response.ServerError(c)
		}
	}
}
