package handler

import (
	"net/http"
	"time"

	"github.com/MohamedHany17m8/x-from-scratch/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// requestLogger tags every request with an id and logs it once the handler
// chain finishes.
func (h *Handler) requestLogger(c *gin.Context) {
	requestID := uuid.NewString()
	c.Set("requestID", requestID)

	start := time.Now()
	c.Next()

	h.logger.Info("request",
		zap.String("id", requestID),
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.String("ip", c.ClientIP()),
		zap.Int("status", c.Writer.Status()),
		zap.Duration("duration", time.Since(start)),
	)
}

// panicRecovery keeps a panicking handler from taking the process down; the
// client gets a generic 500, the detail stays in the server log.
func (h *Handler) panicRecovery(c *gin.Context) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Sugar().Errorf("panic recovered in %s %s: %v", c.Request.Method, c.Request.URL.Path, r)
			c.JSON(http.StatusInternalServerError, dto.NewBasicResponse(false, "internal server error"))
			c.Abort()
		}
	}()

	c.Next()
}
