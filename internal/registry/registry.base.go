// Package registry cung cấp registry generic, thread-safe cho các singleton của ứng dụng
// (hiện dùng để giữ *mongo.Collection theo tên collection).
package registry

import (
	"fmt"
	"sort"
	"sync"

	"touch_crm/internal/common"
)

// Registry là một thread-safe generic registry.
//
// Example:
//
//	reg := NewRegistry[*mongo.Collection]()
//	reg.Register("customers", db.Collection("customers"))
//	if coll, ok := reg.Get("customers"); ok {
//	    ...
//	}
type Registry[T any] struct {
	items map[string]T
	mu    sync.RWMutex
}

// NewRegistry tạo và trả về một registry mới.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{
		items: make(map[string]T),
	}
}

// Register đăng ký item, ghi đè nếu name đã tồn tại.
// isNew = false khi ghi đè item cũ.
func (r *Registry[T]) Register(name string, item T) (isNew bool, err error) {
	if name == "" {
		return false, fmt.Errorf("name cannot be empty: %w", common.ErrInvalidInput)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	_, exists := r.items[name]
	r.items[name] = item
	return !exists, nil
}

// Get lấy item theo tên.
func (r *Registry[T]) Get(name string) (item T, exists bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, exists = r.items[name]
	return item, exists
}

// MustGet giống Get nhưng trả lỗi NotFound khi chưa đăng ký.
func (r *Registry[T]) MustGet(name string) (T, error) {
	item, exists := r.Get(name)
	if !exists {
		return item, fmt.Errorf("registry item %q: %w", name, common.ErrNotFound)
	}
	return item, nil
}

// Names trả về danh sách tên đã đăng ký, đã sắp xếp.
func (r *Registry[T]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.items))
	for name := range r.items {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ClearAll xóa tất cả items; cleanup (nếu có) được gọi cho từng item trước khi xóa.
// Lỗi cleanup không giữ lại item: registry luôn rỗng sau khi gọi.
func (r *Registry[T]) ClearAll(cleanup func(T) error) (count int, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	count = len(r.items)
	var errs []error
	if cleanup != nil {
		for name, item := range r.items {
			if err := cleanup(item); err != nil {
				errs = append(errs, fmt.Errorf("failed to cleanup %s: %w", name, err))
			}
		}
	}

	r.items = make(map[string]T)
	if len(errs) > 0 {
		return count, fmt.Errorf("cleanup errors occurred: %v", errs)
	}
	return count, nil
}
