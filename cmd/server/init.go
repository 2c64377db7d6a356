package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"touch_crm/config"
	crmmodels "touch_crm/internal/api/crm/models"
	"touch_crm/internal/database"
	"touch_crm/internal/global"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// Hàm khởi tạo tên các collection trong database (giữ tên của dữ liệu cũ)
func initColNames() {
	global.MongoDB_ColNames.Customers = "customers"
	global.MongoDB_ColNames.Touchs = "touchs"

	logrus.Info("Initialized collection names")
}

// Hàm khởi tạo validator (đăng ký custom validators: enum, not_blank)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("Failed to initialize config: %v", err)
	}
	global.ServerConfig = cfg
	logrus.Info("Initialized server config")
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	ctx := context.Background()

	var err error
	global.MongoDB_Session, err = database.GetInstance(ctx, global.ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err)
	}
	logrus.Info("Connected to MongoDB")

	db := global.MongoDB_Session.Database(global.ServerConfig.MongoDB_DBName)

	// Khởi tạo các collections nếu chưa có
	if err := database.EnsureCollections(ctx, db, global.MongoDB_ColNames.Customers, global.MongoDB_ColNames.Touchs); err != nil {
		logrus.Fatalf("Failed to ensure collections: %v", err)
	}
	logrus.Info("Ensured database and collections")

	// Khởi tạo các index cho các collection
	if err := database.CreateIndexes(ctx, db.Collection(global.MongoDB_ColNames.Customers), crmmodels.Customer{}); err != nil {
		logrus.Errorf("Failed to create indexes for %s: %v", global.MongoDB_ColNames.Customers, err)
	}
	if err := database.CreateIndexes(ctx, db.Collection(global.MongoDB_ColNames.Touchs), crmmodels.Touch{}); err != nil {
		logrus.Errorf("Failed to create indexes for %s: %v", global.MongoDB_ColNames.Touchs, err)
	}
	logrus.Info("Created indexes")
}
