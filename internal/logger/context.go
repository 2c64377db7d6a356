package logger

import (
	"context"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/sirupsen/logrus"
)

// ContextKey là type cho context keys
type ContextKey string

// RequestIDKey là key cho request ID trong context.Context (dùng ngoài Fiber, ví dụ event handlers)
const RequestIDKey ContextKey = "requestID"

// WithContext trả về logger entry kèm request_id nếu context có
func WithContext(ctx context.Context) *logrus.Entry {
	entry := GetAppLogger().WithContext(ctx)
	if requestID, ok := ctx.Value(RequestIDKey).(string); ok && requestID != "" {
		entry = entry.WithField("request_id", requestID)
	}
	return entry
}

// WithRequest trả về logger entry với request_id, method, path, ip từ Fiber
func WithRequest(c fiber.Ctx) *logrus.Entry {
	entry := GetAppLogger().WithContext(c.Context())

	requestID := requestid.FromContext(c)
	if requestID == "" {
		requestID = c.Get(fiber.HeaderXRequestID)
	}
	if requestID != "" {
		entry = entry.WithField("request_id", requestID)
	}

	return entry.WithFields(logrus.Fields{
		"method": c.Method(),
		"path":   c.Path(),
		"ip":     c.IP(),
	})
}

// WithModule trả về logger entry với module name (ví dụ: "crm", "events")
func WithModule(module string) *logrus.Entry {
	return GetAppLogger().WithField("module", module)
}

// WithCollection trả về logger entry với collection name
func WithCollection(collection string) *logrus.Entry {
	return GetAppLogger().WithField("collection", collection)
}
