package logger

import (
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

const maskedValue = "***"

// fieldFilter là một bộ lọc theo field của entry; rỗng hoặc "*" = cho phép tất cả
type fieldFilter struct {
	fields  []string // field được đọc, lấy field đầu tiên có giá trị
	allowed map[string]bool
	prefix  bool // so khớp tiền tố (endpoint)
}

// FilterHook lọc log entries theo level, module, collection, endpoint, method
// và che giá trị các field nhạy cảm (connection string, token...).
type FilterHook struct {
	mu       sync.RWMutex
	levels   map[string]bool
	filters  []fieldFilter
	maskKeys map[string]bool
}

// NewFilterHook tạo filter hook từ cấu hình
func NewFilterHook(cfg *LogConfig) *FilterHook {
	hook := &FilterHook{}
	hook.UpdateFilters(cfg)
	return hook
}

// UpdateFilters cập nhật filters từ config mới (có thể gọi runtime)
func (h *FilterHook) UpdateFilters(cfg *LogConfig) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.levels = parseFilter(cfg.FilterLogTypes)
	h.filters = h.filters[:0]
	for _, f := range []fieldFilter{
		{fields: []string{"module"}, allowed: parseFilter(cfg.FilterModules)},
		{fields: []string{"collection"}, allowed: parseFilter(cfg.FilterCollections)},
		{fields: []string{"endpoint", "path"}, allowed: parseFilter(cfg.FilterEndpoints), prefix: true},
		{fields: []string{"method"}, allowed: parseFilter(cfg.FilterMethods)},
	} {
		if f.allowed != nil {
			h.filters = append(h.filters, f)
		}
	}
	h.maskKeys = parseFilter(cfg.MaskFields)
}

// parseFilter parse "a,b,c" thành set (lowercase); "" hoặc "*" trả về nil = không lọc
func parseFilter(filterStr string) map[string]bool {
	filterStr = strings.TrimSpace(filterStr)
	if filterStr == "" || filterStr == "*" {
		return nil
	}

	result := make(map[string]bool)
	for _, v := range strings.Split(filterStr, ",") {
		if v = strings.ToLower(strings.TrimSpace(v)); v != "" {
			result[v] = true
		}
	}
	return result
}

// Levels trả về các log levels mà hook này xử lý
func (h *FilterHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire đánh dấu entry bị lọc bằng field "_filtered" và che các field nhạy cảm.
// Entry không có field tương ứng thì không bị lọc bởi filter đó.
func (h *FilterHook) Fire(entry *logrus.Entry) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for key := range entry.Data {
		if h.maskKeys[strings.ToLower(key)] {
			entry.Data[key] = maskedValue
		}
	}

	if h.levels != nil && !h.levels[entry.Level.String()] {
		entry.Data[filteredKey] = true
		return nil
	}

	for _, f := range h.filters {
		value := ""
		for _, field := range f.fields {
			if v, ok := entry.Data[field].(string); ok && v != "" {
				value = strings.ToLower(v)
				break
			}
		}
		if value == "" {
			continue
		}
		if !f.match(value) {
			entry.Data[filteredKey] = true
			return nil
		}
	}
	return nil
}

func (f fieldFilter) match(value string) bool {
	if f.allowed[value] {
		return true
	}
	if f.prefix {
		for allowed := range f.allowed {
			if strings.HasPrefix(value, allowed) {
				return true
			}
		}
	}
	return false
}
