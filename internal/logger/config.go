package logger

import (
	"strings"

	"github.com/caarlos0/env"
)

// LogConfig chứa cấu hình cho hệ thống logging
type LogConfig struct {
	// Log Level: trace, debug, info, warn, error, fatal
	Level string `env:"LOG_LEVEL" envDefault:"info"`

	// Log Format: json, text
	Format string `env:"LOG_FORMAT" envDefault:"text"`

	// Log Output: file, stdout, both
	Output string `env:"LOG_OUTPUT" envDefault:"both"`

	// Log Rotation (lumberjack)
	MaxSize    int  `env:"LOG_MAX_SIZE" envDefault:"100"`  // MB
	MaxBackups int  `env:"LOG_MAX_BACKUPS" envDefault:"7"` // Số file cũ giữ lại
	MaxAge     int  `env:"LOG_MAX_AGE" envDefault:"7"`     // Số ngày giữ lại
	Compress   bool `env:"LOG_COMPRESS" envDefault:"true"` // Nén file cũ

	// Async writer
	AsyncBuffer int `env:"LOG_ASYNC_BUFFER" envDefault:"1000"`

	// Log Paths
	LogPath   string `env:"LOG_PATH" envDefault:"./logs"`
	AppFile   string `env:"LOG_APP_FILE" envDefault:"app.log"`
	AuditFile string `env:"LOG_AUDIT_FILE" envDefault:"audit.log"`
	ErrorFile string `env:"LOG_ERROR_FILE" envDefault:"error.log"`

	// Filters, dạng "a,b,c" hoặc "*"
	FilterModules     string `env:"LOG_FILTER_MODULES" envDefault:"*"`
	FilterCollections string `env:"LOG_FILTER_COLLECTIONS" envDefault:"*"`
	FilterEndpoints   string `env:"LOG_FILTER_ENDPOINTS" envDefault:"*"`
	FilterMethods     string `env:"LOG_FILTER_METHODS" envDefault:"*"`
	FilterLogTypes    string `env:"LOG_FILTER_LOG_TYPES" envDefault:"*"`

	// Các key bị che giá trị khi ghi log
	MaskFields string `env:"LOG_MASK_FIELDS" envDefault:"password,token,authorization,mongodb_url,amqp_url"`
}

// DefaultConfig trả về cấu hình mặc định, override bằng biến môi trường LOG_*.
func DefaultConfig() *LogConfig {
	cfg := &LogConfig{}
	if err := env.Parse(cfg); err != nil {
		// Giá trị env sai kiểu (ví dụ LOG_MAX_SIZE=abc): giữ mặc định cứng
		cfg = &LogConfig{
			Level: "info", Format: "text", Output: "both",
			MaxSize: 100, MaxBackups: 7, MaxAge: 7, Compress: true, AsyncBuffer: 1000,
			LogPath: "./logs", AppFile: "app.log", AuditFile: "audit.log", ErrorFile: "error.log",
			FilterModules: "*", FilterCollections: "*", FilterEndpoints: "*", FilterMethods: "*", FilterLogTypes: "*",
		}
	}

	cfg.Level = strings.ToLower(cfg.Level)
	cfg.Format = strings.ToLower(cfg.Format)
	cfg.Output = strings.ToLower(cfg.Output)
	return cfg
}
