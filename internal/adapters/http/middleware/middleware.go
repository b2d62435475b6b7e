package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/KianoushAmirpour/medical_image_analyzer/internal/adapters/http/dto"
	"github.com/KianoushAmirpour/medical_image_analyzer/internal/domain"
	"github.com/KianoushAmirpour/medical_image_analyzer/internal/observability"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func AddRequestIDAndTime() gin.HandlerFunc {

	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-Id")
		if requestID == "" {
			requestID = uuid.New().String()

		}
		c.Writer.Header().Set("X-Request-Id", requestID)
		c.Set("RequestID", requestID)

		ctx := observability.WithRequestID(c.Request.Context(), requestID)
		ctx = observability.WithRequestStartTime(ctx, time.Now())
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// LimitRequestBody rejects bodies larger than maxsize with 413, either up front from
// Content-Length or later when a handler reads past the limit.
func LimitRequestBody(maxsize int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxsize {
			httpErr := dto.MapDomainErrToHttpErr(domain.ErrPayloadTooLarge)
			c.AbortWithStatusJSON(httpErr.StatusCode, httpErr)
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxsize)
		c.Next()
	}
}

func LoggingRequestMiddleware(logger domain.LoggingRepository) gin.HandlerFunc {
	return func(c *gin.Context) {

		logger.Info("http_request_start",
			"request_id", c.GetString("RequestID"),
			"method", c.Request.Method,
			"user-agent", c.Request.UserAgent(),
			"path", c.FullPath())

		c.Next()

		var duration time.Duration
		if start, ok := observability.GetRequestStartTime(c.Request.Context()); ok {
			duration = time.Since(start)
		}
		logger.Info("http_request_end",
			"request_id", c.GetString("RequestID"),
			"status", c.Writer.Status(),
			"duration_ms", duration.Milliseconds())
	}
}

func PanicRecoveryMiddleware(logger domain.LoggingRepository) gin.HandlerFunc {
	return func(c *gin.Context) {

		defer func() {
			if r := recover(); r != nil {
				logger.Error("internal server error",
					"request_id", c.GetString("RequestID"),
					"method", c.Request.Method,
					"path", c.FullPath(),
					"reason", fmt.Sprintf("%v", r),
					"stack", string(debug.Stack()),
				)

				httpErr := dto.HttpError{Message: "internal server error", Code: domain.ErrCodeInternal, StatusCode: http.StatusInternalServerError}
				c.AbortWithStatusJSON(httpErr.StatusCode, httpErr)
			}
		}()

		c.Next()
	}
}
