package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration chứa thông tin tĩnh cần thiết để chạy ứng dụng.
// Đọc một lần lúc khởi động, sau đó chỉ đọc (global.ServerConfig).
type Configuration struct {
	Address                string `env:"ADDRESS" envDefault:":8000"`                         // Địa chỉ server
	MongoDB_ConnectionURI  string `env:"MONGODB_URL,required"`                               // URL kết nối MongoDB
	MongoDB_DBName         string `env:"MONGODB_DBNAME" envDefault:"test"`                   // Tên database chứa customers/touchs
	MongoDB_ConnectTimeout int    `env:"MONGODB_CONNECT_TIMEOUT" envDefault:"10"`            // Timeout kết nối (giây)
	DefaultVar             string `env:"DEFAULT_VAR" envDefault:"some default string value"` // Giữ tương thích file .env cũ, không dùng trong logic
	CORS_Origins           string `env:"CORS_ORIGINS" envDefault:"*"`                        // Các origins được phép (phân cách bởi dấu phẩy, * = tất cả)
	CORS_AllowCredentials  bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"`          // Cho phép gửi credentials
	RateLimit_Max          int    `env:"RATE_LIMIT_MAX" envDefault:"100"`                    // Số request tối đa trong window (0 = tắt)
	RateLimit_Window       int    `env:"RATE_LIMIT_WINDOW" envDefault:"60"`                  // Thời gian window (giây)
	RateLimit_Enabled      bool   `env:"RATE_LIMIT_ENABLED" envDefault:"true"`               // Bật/tắt rate limiting
	AMQP_URL               string `env:"AMQP_URL"`                                           // RabbitMQ, để trống = không publish sự kiện
	AMQP_Exchange          string `env:"AMQP_EXCHANGE" envDefault:"touch_crm.events"`        // Topic exchange cho sự kiện thay đổi dữ liệu
}

// ErrMissingMongoURL trả về khi không có MONGODB_URL trong env lẫn file .env
var ErrMissingMongoURL = errors.New("MONGODB_URL is required")

// getEnvPath tìm file env (mặc định .env, đổi bằng ENV_FILE) từ thư mục hiện tại đi lên.
// Trả về "" nếu không thấy; file .env là tùy chọn.
func getEnvPath() string {
	name := os.Getenv("ENV_FILE")
	if name == "" {
		name = ".env"
	}
	if filepath.IsAbs(name) {
		if _, err := os.Stat(name); err == nil {
			return name
		}
		return ""
	}

	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}
	for {
		envPath := filepath.Join(currentDir, name)
		if info, err := os.Stat(envPath); err == nil && !info.IsDir() {
			return envPath
		}

		// Đi lên thư mục cha
		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig đọc file env (nếu có) rồi parse biến môi trường vào Configuration.
// Biến môi trường thật luôn thắng giá trị trong file (godotenv.Load không ghi đè).
func NewConfig() (*Configuration, error) {
	if envPath := getEnvPath(); envPath != "" {
		if err := godotenv.Load(envPath); err != nil {
			return nil, fmt.Errorf("load env file %s: %w", envPath, err)
		}
	}

	cfg := Configuration{}
	if err := env.Parse(&cfg); err != nil {
		if _, ok := os.LookupEnv("MONGODB_URL"); !ok {
			return nil, fmt.Errorf("%w: %v", ErrMissingMongoURL, err)
		}
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.MongoDB_ConnectionURI == "" {
		return nil, ErrMissingMongoURL
	}

	return &cfg, nil
}
