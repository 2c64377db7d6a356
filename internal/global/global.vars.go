package global

import (
	"touch_crm/config"
	"touch_crm/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	Customers string // Tên collection cho khách hàng
	Touchs    string // Tên collection cho lịch sử tiếp xúc (touch) của khách hàng
}

// Các biến toàn cục, khởi tạo một lần trong cmd/server rồi chỉ đọc
var (
	Validate         *validator.Validate    // Biến để xác thực dữ liệu
	MongoDB_Session  *mongo.Client          // Phiên kết nối tới MongoDB, dùng chung cho mọi request
	ServerConfig     *config.Configuration  // Cấu hình của server
	MongoDB_ColNames MongoDB_CollectionName // Tên các collection, gán trong initColNames
)

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
