package basehdl

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"touch_crm/internal/common"
	"touch_crm/internal/logger"
)

// SystemHandler xử lý các route liên quan đến system operations
type SystemHandler struct {
	client *mongo.Client
}

// NewSystemHandler tạo SystemHandler; client nil được báo là not_initialized
func NewSystemHandler(client *mongo.Client) *SystemHandler {
	return &SystemHandler{client: client}
}

// HandleHealth kiểm tra tình trạng hệ thống
// @Summary Kiểm tra tình trạng hệ thống
// @Description Kiểm tra trạng thái của API và kết nối MongoDB
// @Tags system
// @Produce json
// @Success 200 {object} map[string]interface{} "Hệ thống hoạt động bình thường"
// @Failure 503 {object} map[string]interface{} "Hệ thống đang gặp sự cố"
// @Router /system/health [get]
func (h *SystemHandler) HandleHealth(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	services := fiber.Map{"api": "ok"}
	healthData := fiber.Map{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"services":  services,
	}

	if h.client == nil {
		healthData["status"] = "degraded"
		services["database"] = "not_initialized"
		return JSONResponse(c, common.StatusServiceUnavailable, fiber.Map{
			"code":    common.StatusServiceUnavailable,
			"message": common.MsgServiceUnavailable,
			"data":    healthData,
			"status":  "error",
		})
	}

	if err := h.client.Ping(ctx, readpref.Primary()); err != nil {
		healthData["status"] = "degraded"
		services["database"] = "error"
		logger.WithRequest(c).WithError(err).Error("MongoDB ping failed")
		return JSONResponse(c, common.StatusServiceUnavailable, fiber.Map{
			"code":    common.StatusServiceUnavailable,
			"message": common.MsgServiceUnavailable,
			"data":    healthData,
			"status":  "error",
		})
	}
	services["database"] = "ok"

	return HandleSuccessResponse(c, common.StatusOK, common.MsgSuccess, healthData)
}
