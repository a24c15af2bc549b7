package middlewares

import (
	"chatlog_service/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// HeaderTraceID request/response header carrying the trace id
	HeaderTraceID = "X-Request-ID"
	// LocalsTraceID c.Locals key of the trace id
	LocalsTraceID = "traceID"
)

// TraceMiddleware reuse the caller's X-Request-ID or generate one
func TraceMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		traceID := utils.CopyString(c.Get(HeaderTraceID))
		if traceID == "" {
			traceID = uuid.NewString()
		}
		c.Locals(LocalsTraceID, traceID)
		c.Set(HeaderTraceID, traceID)
		return c.Next()
	}
}

// TraceID get trace id of the request, empty when the middleware is not installed
func TraceID(c *fiber.Ctx) string {
	id, _ := c.Locals(LocalsTraceID).(string)
	return id
}

// Logger returns logger.Log tagged with the request trace id
func Logger(c *fiber.Ctx) *logger.LogInfo {
	return logger.Log.With(zap.String("trace_id", TraceID(c)))
}
