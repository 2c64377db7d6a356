package utility

import (
	"runtime/debug"
	"time"

	"touch_crm/internal/logger"
)

// GoProtect chạy f và bắt panic nếu có, ghi log thay vì làm chương trình dừng hẳn.
func GoProtect(f func()) {
	defer func() {
		if err := recover(); err != nil {
			logger.GetErrorLogger().WithField("panic", err).
				WithField("stack", string(debug.Stack())).
				Error("Đã bắt lỗi panic")
		}
	}()

	f()
}

// CurrentTimeString trả về thời điểm hiện tại dạng RFC3339 UTC, dùng cho modified_date
func CurrentTimeString() string {
	return time.Now().UTC().Format(time.RFC3339)
}
