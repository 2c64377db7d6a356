package basehdl

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/requestid"

	"touch_crm/internal/common"
	"touch_crm/internal/global"
	"touch_crm/internal/logger"
)

// JSONResponse trả về JSON response với Content-Type: application/json; charset=utf-8
// để message tiếng Hàn hiển thị đúng ở client.
func JSONResponse(c fiber.Ctx, statusCode int, data interface{}) error {
	c.Set("Content-Type", "application/json; charset=utf-8")
	return c.Status(statusCode).JSON(data)
}

// HandleSuccessResponse trả về envelope thành công {code, message, data, status}
func HandleSuccessResponse(c fiber.Ctx, statusCode int, message string, data interface{}) error {
	return JSONResponse(c, statusCode, fiber.Map{
		"code":    statusCode,
		"message": message,
		"data":    data,
		"status":  "success",
	})
}

// HandleErrorResponse chuyển error thành envelope lỗi.
// *common.Error giữ status và mã lỗi của nó; lỗi khác là 500.
func HandleErrorResponse(c fiber.Ctx, err error) error {
	var customErr *common.Error
	if errors.As(err, &customErr) {
		if customErr.StatusCode >= common.StatusInternalServerError {
			logger.WithRequest(c).WithError(err).WithField("code", customErr.Code.Code).Error("Request failed")
		}
		return JSONResponse(c, customErr.StatusCode, fiber.Map{
			"code":    customErr.Code.Code,
			"message": customErr.Message,
			"data":    detailsForClient(customErr.Details),
			"status":  "error",
		})
	}

	logger.WithRequest(c).WithError(err).Error("Unhandled error")
	return JSONResponse(c, common.StatusInternalServerError, fiber.Map{
		"code":    common.ErrCodeInternalServer.Code,
		"message": common.MsgInternalError,
		"status":  "error",
	})
}

// detailsForClient bỏ lỗi gốc của driver khỏi response, chỉ trả về details có cấu trúc
func detailsForClient(details interface{}) interface{} {
	if _, ok := details.(error); ok {
		return nil
	}
	return details
}

// SafeHandlerWrapper bọc handler với recover để server luôn trả về response cho client,
// kể cả khi có panic xảy ra. Lỗi fn trả về được chuyển thành envelope lỗi.
func SafeHandlerWrapper(c fiber.Ctx, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.WithRequest(c).WithField("panic", r).
				WithField("stack", string(debug.Stack())).
				Error("Panic in handler")
			err = HandleErrorResponse(c, common.NewError(
				common.ErrCodeInternalServer,
				common.MsgInternalError,
				common.StatusInternalServerError,
				fmt.Sprintf("%v", r),
			))
		}
	}()

	if err := fn(); err != nil {
		return HandleErrorResponse(c, err)
	}
	return nil
}

// RequestContext trả về context của request kèm request id cho service và event handlers
func RequestContext(c fiber.Ctx) context.Context {
	ctx := c.Context()
	requestID := requestid.FromContext(c)
	if requestID == "" {
		requestID = c.Get(fiber.HeaderXRequestID)
	}
	if requestID == "" {
		return ctx
	}
	return context.WithValue(ctx, logger.RequestIDKey, requestID)
}

// ParsePagination đọc page (mặc định 1) và per_page (mặc định 10) từ query.
// Giá trị không phải số nguyên hoặc nhỏ hơn 1 trả về lỗi 422.
func ParsePagination(c fiber.Ctx) (page, perPage int64, err error) {
	page, err = parsePositiveQuery(c, "page", 1)
	if err != nil {
		return 0, 0, err
	}
	perPage, err = parsePositiveQuery(c, "per_page", 10)
	if err != nil {
		return 0, 0, err
	}
	return page, perPage, nil
}

func parsePositiveQuery(c fiber.Ctx, key string, def int64) (int64, error) {
	s := c.Query(key)
	if s == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 1 {
		return 0, common.NewValidationError([]global.FieldError{{Field: key, Tag: "min", Param: "1"}})
	}
	return n, nil
}
