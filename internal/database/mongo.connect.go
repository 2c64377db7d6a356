package database

import (
	"context"
	"fmt"
	"time"

	"touch_crm/config"
	"touch_crm/internal/logger"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// GetInstance tạo *mongo.Client dùng chung cho toàn bộ process từ MONGODB_URL.
// Client được ping trước khi trả về; lỗi kết nối hoặc ping đều trả về error.
func GetInstance(ctx context.Context, c *config.Configuration) (*mongo.Client, error) {
	if c == nil || c.MongoDB_ConnectionURI == "" {
		return nil, fmt.Errorf("database connection URL is empty")
	}

	timeout := time.Duration(c.MongoDB_ConnectTimeout) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	clientOptions := options.Client().ApplyURI(c.MongoDB_ConnectionURI).
		SetAppName("touch_crm").
		SetMaxPoolSize(50).                // Giới hạn tối đa 50 connections
		SetMinPoolSize(5).                 // Giữ tối thiểu 5 connections trong pool
		SetConnectTimeout(timeout).        // Timeout khi kết nối
		SetServerSelectionTimeout(timeout) // Timeout chọn server khi store không phản hồi

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	logger.GetAppLogger().WithField("database", c.MongoDB_DBName).Info("Successfully connected to MongoDB")
	return client, nil
}

// CloseInstance đóng kết nối của client, gọi khi tắt server
func CloseInstance(ctx context.Context, client *mongo.Client) error {
	if client == nil {
		return nil
	}
	if err := client.Disconnect(ctx); err != nil {
		logger.GetAppLogger().WithError(err).Error("Failed to disconnect MongoDB client")
		return err
	}
	logger.GetAppLogger().Info("Successfully disconnected from MongoDB")
	return nil
}
