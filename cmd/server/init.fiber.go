package main

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/google/uuid"

	"touch_crm/config"
	"touch_crm/docs"
	basehdl "touch_crm/internal/api/base/handler"
	crmrouter "touch_crm/internal/api/crm/router"
	"touch_crm/internal/api/router"
	"touch_crm/internal/common"
	"touch_crm/internal/global"
	"touch_crm/internal/logger"
)

// InitFiberApp khởi tạo ứng dụng Fiber với các middleware cần thiết (chưa có route)
func InitFiberApp(cfg *config.Configuration) *fiber.App {
	app := fiber.New(fiber.Config{
		// =========================================
		// 1. CẤU HÌNH CƠ BẢN
		// =========================================
		AppName:      "touch_crm",
		ServerHeader: "touch_crm",
		UnescapePath: true, // /customer/%EA%B9%80 -> tìm theo "김"

		// =========================================
		// 2. CẤU HÌNH PERFORMANCE
		// =========================================
		BodyLimit: 10 * 1024 * 1024, // File CSV tối đa 10MB

		// =========================================
		// 3. CẤU HÌNH TIMEOUT
		// =========================================
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,

		// =========================================
		// 4. CẤU HÌNH ERROR HANDLING
		// =========================================
		ErrorHandler: errorHandler,
	})

	// =========================================
	// MIDDLEWARE STACK
	// =========================================

	// 1. Request ID Middleware - tạo ID cho mỗi request để trace (log, audit, AMQP message)
	app.Use(requestid.New(requestid.Config{
		Header:    fiber.HeaderXRequestID,
		Generator: uuid.NewString,
	}))

	// 2. CORS Middleware - đặt sớm để xử lý preflight trước các middleware khác
	app.Use(cors.New(corsConfig(cfg)))

	// 3. Rate Limiting Middleware
	log := logger.GetAppLogger()
	if cfg.RateLimit_Enabled && cfg.RateLimit_Max > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        cfg.RateLimit_Max,
			Expiration: time.Duration(cfg.RateLimit_Window) * time.Second,
			KeyGenerator: func(c fiber.Ctx) string {
				return c.IP()
			},
			LimitReached: func(c fiber.Ctx) error {
				return basehdl.JSONResponse(c, common.StatusTooManyRequests, fiber.Map{
					"code":    common.ErrCodeBusinessOperation.Code,
					"message": common.MsgTooManyRequests,
					"status":  "error",
				})
			},
			Next: func(c fiber.Ctx) bool {
				// Bỏ qua health check và preflight
				return c.Path() == "/system/health" || c.Method() == fiber.MethodOptions
			},
		}))
		log.Infof("Rate limiting enabled: %d requests per %d seconds", cfg.RateLimit_Max, cfg.RateLimit_Window)
	} else {
		log.Info("Rate limiting disabled")
	}

	// 4. Recover Middleware - panic ngoài SafeHandlerWrapper đi tới errorHandler
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c fiber.Ctx, e interface{}) {
			logger.WithRequest(c).WithField("panic", e).Error("Panic recovered")
		},
	}))

	return app
}

// SetupRoutes đăng ký route hệ thống, tài liệu và domain CRM
func SetupRoutes(app *fiber.App) error {
	return router.SetupRoutes(app, router.Options{
		System: basehdl.NewSystemHandler(global.MongoDB_Session),
		Docs:   basehdl.NewDocsHandler(docs.SwaggerInfo.InstanceName(), "/openapi.json"),
	}, crmrouter.Register)
}

// corsConfig đọc CORS_ORIGINS (phân cách bởi dấu phẩy, * = tất cả)
func corsConfig(cfg *config.Configuration) cors.Config {
	allowOrigins := []string{"*"}
	allowCredentials := false
	if cfg.CORS_Origins != "" && cfg.CORS_Origins != "*" {
		allowOrigins = strings.Split(cfg.CORS_Origins, ",")
		for i, origin := range allowOrigins {
			allowOrigins[i] = strings.TrimSpace(origin)
		}
		// Fiber từ chối AllowCredentials cùng wildcard origin
		allowCredentials = cfg.CORS_AllowCredentials
	}

	return cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID", "X-Requested-With"},
		AllowCredentials: allowCredentials,
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		MaxAge:           24 * 60 * 60, // Cache preflight 24 giờ
	}
}

// errorHandler trả về envelope lỗi cho các lỗi không đi qua SafeHandlerWrapper
// (route không tồn tại, sai method, body quá lớn, panic trong middleware)
func errorHandler(c fiber.Ctx, err error) error {
	var appErr *common.Error
	if errors.As(err, &appErr) {
		return basehdl.HandleErrorResponse(c, err)
	}

	code := fiber.StatusInternalServerError
	message := common.MsgInternalError
	errorCode := common.ErrCodeInternalServer.Code

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		message = e.Message
		switch code {
		case fiber.StatusBadRequest, fiber.StatusRequestEntityTooLarge:
			errorCode = common.ErrCodeValidationFormat.Code
		case fiber.StatusNotFound:
			errorCode = common.ErrCodeNotFound.Code
			message = common.MsgNotFound
		case fiber.StatusMethodNotAllowed:
			errorCode = common.ErrCodeValidationInput.Code
		}
	}

	if code >= fiber.StatusInternalServerError {
		logger.WithRequest(c).WithError(err).WithField("code", code).Error("Request error")
	}

	return basehdl.JSONResponse(c, code, fiber.Map{
		"code":    errorCode,
		"message": message,
		"status":  "error",
	})
}
