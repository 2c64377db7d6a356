package logger

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"

	"github.com/sirupsen/logrus"
)

// filteredKey đánh dấu entry bị FilterHook loại, AsyncHook sẽ bỏ qua
const filteredKey = "_filtered"

// AsyncHook ghi log bất đồng bộ để request handling không bị block bởi file I/O.
// Entry được đưa vào channel và một goroutine riêng ghi ra các writers.
type AsyncHook struct {
	writers []io.Writer
	entries chan *logrus.Entry
	wg      sync.WaitGroup
	mu      sync.RWMutex
	closed  bool
}

// NewAsyncHookWithWriters tạo async hook với nhiều writers, bufferSize <= 0 dùng 1000
func NewAsyncHookWithWriters(writers []io.Writer, bufferSize int) *AsyncHook {
	if bufferSize <= 0 {
		bufferSize = 1000
	}

	hook := &AsyncHook{
		writers: writers,
		entries: make(chan *logrus.Entry, bufferSize),
	}

	hook.wg.Add(1)
	go hook.processEntries()

	return hook
}

// Levels trả về các log levels mà hook này xử lý
func (h *AsyncHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire không block: channel đầy thì bỏ entry, hook đã đóng thì ghi trực tiếp
func (h *AsyncHook) Fire(entry *logrus.Entry) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.closed {
		h.write(entry)
		return nil
	}

	select {
	case h.entries <- entry:
	default:
		// Channel đầy, không log ở đây vì sẽ tạo vòng lặp
	}
	return nil
}

// processEntries chạy trong goroutine riêng, có recover để logger không làm crash server
func (h *AsyncHook) processEntries() {
	defer h.wg.Done()

	for entry := range h.entries {
		func() {
			defer func() {
				if r := recover(); r != nil {
					fmt.Fprintf(os.Stderr, "[LOGGER PANIC] Logger goroutine panic recovered: %v\n", r)
					debug.PrintStack()
				}
			}()
			h.write(entry)
		}()
	}
}

// write format entry bằng formatter của logger rồi ghi ra tất cả writers
func (h *AsyncHook) write(entry *logrus.Entry) {
	if filtered, ok := entry.Data[filteredKey].(bool); ok && filtered {
		return
	}
	if _, ok := entry.Data[filteredKey]; ok {
		entry = entry.Dup()
		delete(entry.Data, filteredKey)
	}

	data, err := entry.Logger.Formatter.Format(entry)
	if err != nil {
		return
	}
	for _, writer := range h.writers {
		// Một writer lỗi không chặn các writer còn lại
		_, _ = writer.Write(data)
	}
}

// Close đóng hook và đợi tất cả entries trong hàng đợi được ghi xong
func (h *AsyncHook) Close() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil
	}
	h.closed = true
	close(h.entries)
	h.mu.Unlock()

	h.wg.Wait()
	return nil
}
