package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/bucket-manager/internal/pkg/httputil"
)

// Recovery answers 500 for a panicking handler and logs its stack.
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			logger.Error("handler panicked", append(requestFields(c),
				zap.String("panic", fmt.Sprint(rec)),
				zap.ByteString("stack", debug.Stack()),
			)...)

			_ = c.Error(fmt.Errorf("panic: %v", rec))
			httputil.InternalError(c)
			c.Abort()
		}()
		c.Next()
	}
}
