package middlewares

import (
	"time"

	"github.com/Sanchit24s/payslip-backend/config"
	"github.com/Sanchit24s/payslip-backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// RequestLogger tags each request with a correlation id and logs one line
// per request once the handler returns.
func RequestLogger() gin.HandlerFunc {
	logger := config.GetLogger()
	return func(c *gin.Context) {
		correlationId := c.Request.Header.Get("X-Correlation-Id")
		if correlationId == "" {
			correlationId = uuid.NewString()
		}
		c.Writer.Header().Set("X-Correlation-Id", correlationId)

		ctx := utils.SetCorrelationIdInContext(c.Request.Context(), correlationId)
		c.Request = c.Request.WithContext(ctx)

		start := time.Now()
		c.Next()

		logger.WithFields(logrus.Fields{
			"correlationId": correlationId,
			"method":        c.Request.Method,
			"path":          c.Request.URL.Path,
			"status":        c.Writer.Status(),
			"durationMs":    time.Since(start).Milliseconds(),
		}).Info("request completed")
	}
}
