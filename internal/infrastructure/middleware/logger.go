package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/bucket-manager/internal/infrastructure/metrics"
	"github.com/marcos-nsantos/bucket-manager/internal/pkg/httputil"
)

const unmatchedRoute = "unmatched"

// Logger writes one access entry per request and counts it by route
// template rather than raw path.
func Logger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		metrics.HTTPRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(status)).Inc()

		fields := append(requestFields(c),
			zap.Int("status", status),
			zap.String("route", route),
			zap.Duration("latency", time.Since(start)),
			zap.Int("bytes_out", c.Writer.Size()),
			zap.String("ip", c.ClientIP()),
		)
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch {
		case status >= 500:
			logger.Error("request", fields...)
		case status >= 400:
			logger.Warn("request", fields...)
		default:
			logger.Info("request", fields...)
		}
	}
}

// requestFields identifies the caller and the object a request targets.
func requestFields(c *gin.Context) []zap.Field {
	fields := []zap.Field{
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
	}
	if id := httputil.GetRequestID(c); id != "" {
		fields = append(fields, zap.String("request_id", id))
	}
	if sess := httputil.GetSession(c); sess != nil {
		fields = append(fields, zap.Stringer("session_id", sess.ID))
	}
	if bucket := c.Param("bucket"); bucket != "" {
		fields = append(fields, zap.String("bucket", bucket))
	}
	if key := c.Query("key"); key != "" {
		fields = append(fields, zap.String("key", key))
	}
	return fields
}
