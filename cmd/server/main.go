package main

//go:generate swag init -g cmd/server/main.go -d ../../ -o ../../docs

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v3"

	"touch_crm/internal/api/events"
	"touch_crm/internal/database"
	"touch_crm/internal/global"
	"touch_crm/internal/logger"
)

// @title touch_crm API
// @version 1.0
// @description 고객 및 고객 터치 관리 API
// @BasePath /

// shutdownTimeout là thời gian chờ các request đang chạy khi tắt server
const shutdownTimeout = 10 * time.Second

// initLogger khởi tạo và cấu hình logger cho toàn bộ ứng dụng
func initLogger() {
	// Logger tự đọc biến môi trường LOG_* để cấu hình
	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	logger.GetAppLogger().Info("Logger system initialized successfully")
}

// main_thread chạy Fiber server tới khi nhận SIGINT/SIGTERM
func main_thread(ctx context.Context, app *fiber.App) {
	cfg := global.ServerConfig
	log := logger.GetAppLogger()

	log.WithFields(map[string]interface{}{
		"address":  cfg.Address,
		"protocol": "HTTP",
	}).Info("Starting server with HTTP")

	listenConfig := fiber.ListenConfig{
		GracefulContext:       ctx,
		ShutdownTimeout:       shutdownTimeout,
		DisableStartupMessage: true,
	}
	if err := app.Listen(cfg.Address, listenConfig); err != nil {
		log.Fatalf("Error in Fiber Listen: %v", err)
	}
	log.Info("Fiber server stopped")
}

// Hàm main
func main() {
	initLogger()
	defer logger.Close()

	// Khởi tạo các biến toàn cục (config, validator, MongoDB, index)
	InitGlobal()

	// Đăng ký collections vào registry
	InitRegistry()

	// Đăng ký subscriber cho sự kiện thay đổi dữ liệu
	publisher := InitEvents(global.ServerConfig)

	app := InitFiberApp(global.ServerConfig)
	if err := SetupRoutes(app); err != nil {
		logger.GetAppLogger().Fatalf("Failed to setup routes: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	main_thread(ctx, app)

	// Dọn dẹp sau khi server đã ngừng nhận request
	if publisher != nil {
		if err := publisher.Close(); err != nil {
			logger.GetAppLogger().WithError(err).Warn("Failed to close AMQP publisher")
		}
	}
	events.ResetHandlers()
	if _, err := global.RegistryCollections.ClearAll(nil); err != nil {
		logger.GetAppLogger().WithError(err).Warn("Failed to clear collection registry")
	}

	closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	_ = database.CloseInstance(closeCtx, global.MongoDB_Session)
}
