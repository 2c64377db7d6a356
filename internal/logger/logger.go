package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	// loggers map lưu các logger instances theo tên
	loggers   = make(map[string]*logrus.Logger)
	hooks     []*AsyncHook
	loggersMu sync.Mutex

	// config chứa cấu hình logging
	config *LogConfig
)

// Init khởi tạo hệ thống logging với cấu hình, nil = DefaultConfig()
func Init(cfg *LogConfig) error {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	if cfg.Output == "file" || cfg.Output == "both" {
		if err := os.MkdirAll(resolveLogPath(cfg), 0o755); err != nil {
			return fmt.Errorf("failed to create logs directory: %w", err)
		}
	}

	loggersMu.Lock()
	config = cfg
	loggersMu.Unlock()
	return nil
}

// resolveLogPath trả về thư mục logs; đường dẫn tương đối tính từ LOG_ROOT_DIR hoặc working directory
func resolveLogPath(cfg *LogConfig) string {
	if filepath.IsAbs(cfg.LogPath) {
		return cfg.LogPath
	}
	root := os.Getenv("LOG_ROOT_DIR")
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return cfg.LogPath
		}
		root = wd
	}
	return filepath.Join(root, cfg.LogPath)
}

// GetLogger trả về logger theo tên (app, audit, error, ...)
func GetLogger(name string) *logrus.Logger {
	loggersMu.Lock()
	initialized := config != nil
	loggersMu.Unlock()
	if !initialized {
		if err := Init(nil); err != nil {
			panic(fmt.Sprintf("Failed to initialize logger: %v", err))
		}
	}

	loggersMu.Lock()
	defer loggersMu.Unlock()

	if logger, ok := loggers[name]; ok {
		return logger
	}

	var writers []io.Writer
	if config.Output == "file" || config.Output == "both" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   getLogFilePath(config, name),
			MaxSize:    config.MaxSize,    // MB
			MaxBackups: config.MaxBackups, // Số file cũ giữ lại
			MaxAge:     config.MaxAge,     // Số ngày
			Compress:   config.Compress,   // Nén file cũ
		})
	}
	if config.Output == "stdout" || config.Output == "both" {
		writers = append(writers, os.Stdout)
	}

	logger, hook := newLogger(name, config, writers)
	if hook != nil {
		hooks = append(hooks, hook)
	}
	loggers[name] = logger
	return logger
}

// newLogger tạo logger với FilterHook và AsyncHook; output gốc bị discard, mọi ghi đi qua hook
func newLogger(name string, cfg *LogConfig, writers []io.Writer) (*logrus.Logger, *AsyncHook) {
	logger := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if cfg.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05.000",
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyLevel: "level",
				logrus.FieldKeyMsg:   "message",
				logrus.FieldKeyFunc:  "function",
				logrus.FieldKeyFile:  "file",
			},
		})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05.000",
			CallerPrettyfier: func(f *runtime.Frame) (string, string) {
				s := strings.Split(f.Function, ".")
				return s[len(s)-1], fmt.Sprintf("%s:%d", filepath.Base(f.File), f.Line)
			},
		})
	}

	// FilterHook phải đứng trước AsyncHook để đánh dấu entry trước khi vào hàng đợi
	logger.AddHook(&serviceHook{name: name})
	logger.AddHook(NewFilterHook(cfg))

	var hook *AsyncHook
	if len(writers) > 0 {
		hook = NewAsyncHookWithWriters(writers, cfg.AsyncBuffer)
		logger.AddHook(hook)
	}
	logger.SetOutput(io.Discard)
	logger.SetReportCaller(true)

	return logger, hook
}

// getLogFilePath trả về đường dẫn file log cho logger name
func getLogFilePath(cfg *LogConfig, name string) string {
	var filename string
	switch name {
	case "app":
		filename = cfg.AppFile
	case "audit":
		filename = cfg.AuditFile
	case "error":
		filename = cfg.ErrorFile
	default:
		filename = fmt.Sprintf("%s.log", name)
	}
	return filepath.Join(resolveLogPath(cfg), filename)
}

// Close flush và đóng tất cả async hooks, gọi khi tắt server
func Close() {
	loggersMu.Lock()
	pending := hooks
	hooks = nil
	loggersMu.Unlock()

	for _, h := range pending {
		_ = h.Close()
	}
}

// serviceHook gắn field "service" = tên logger vào mọi entry
type serviceHook struct {
	name string
}

func (h *serviceHook) Levels() []logrus.Level { return logrus.AllLevels }

func (h *serviceHook) Fire(entry *logrus.Entry) error {
	entry.Data["service"] = h.name
	return nil
}

// GetAppLogger trả về logger chính của ứng dụng
func GetAppLogger() *logrus.Logger {
	return GetLogger("app")
}

// GetAuditLogger trả về logger cho audit
func GetAuditLogger() *logrus.Logger {
	return GetLogger("audit")
}

// GetErrorLogger trả về logger cho errors
func GetErrorLogger() *logrus.Logger {
	return GetLogger("error")
}
