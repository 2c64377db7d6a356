// Package events cung cấp cơ chế event trung tâm khi dữ liệu thay đổi qua CRUD.
// BaseServiceMongoImpl và importer phát event, audit log và AMQP publisher đăng ký qua OnDataChanged.
package events

import (
	"context"
	"reflect"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"touch_crm/internal/logger"
	"touch_crm/internal/utility"
)

// OpInsert, OpUpdate, OpDelete, OpImport là các loại thao tác.
const (
	OpInsert = "insert"
	OpUpdate = "update"
	OpDelete = "delete"
	OpImport = "import"
)

// DataChangeEvent mô tả sự kiện thay đổi dữ liệu.
// Document là bản ghi sau khi thay đổi (bản ghi cũ nếu delete, ImportResult nếu import).
type DataChangeEvent struct {
	CollectionName string
	Operation      string
	DocumentID     string
	Document       interface{}
}

// DataChangeHandler xử lý sự kiện thay đổi dữ liệu.
type DataChangeHandler func(ctx context.Context, e DataChangeEvent)

var (
	handlers   []DataChangeHandler
	handlersMu sync.RWMutex
)

// OnDataChanged đăng ký handler. Gọi khi khởi động server.
func OnDataChanged(h DataChangeHandler) {
	handlersMu.Lock()
	defer handlersMu.Unlock()
	handlers = append(handlers, h)
}

// ResetHandlers xóa mọi handler đã đăng ký (dùng khi tắt server và trong test)
func ResetHandlers() {
	handlersMu.Lock()
	defer handlersMu.Unlock()
	handlers = nil
}

// EmitDataChanged phát sự kiện. Mỗi handler chạy trong goroutine riêng, panic được recover.
// Context của request bị cancel khi response xong nên handler nhận context đã tách khỏi cancel.
func EmitDataChanged(ctx context.Context, e DataChangeEvent) {
	handlersMu.RLock()
	list := make([]DataChangeHandler, len(handlers))
	copy(list, handlers)
	handlersMu.RUnlock()

	if len(list) == 0 {
		return
	}
	if e.DocumentID == "" {
		e.DocumentID = GetIDFromDocument(e.Document)
	}
	detached := context.WithoutCancel(ctx)

	for _, h := range list {
		fn := h
		go utility.GoProtect(func() { fn(detached, e) })
	}
}

// GetIDFromDocument lấy _id (field ID kiểu ObjectID) từ document dưới dạng hex.
// Trả về "" nếu document không có field ID.
func GetIDFromDocument(doc interface{}) string {
	if doc == nil {
		return ""
	}
	val := reflect.ValueOf(doc)
	if val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return ""
		}
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return ""
	}
	f := val.FieldByName("ID")
	if !f.IsValid() || !f.CanInterface() {
		return ""
	}
	if obj, ok := f.Interface().(primitive.ObjectID); ok && !obj.IsZero() {
		return utility.ObjectID2String(obj)
	}
	return ""
}

// RequestIDFromContext lấy request id do handler gắn vào context
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	requestID, _ := ctx.Value(logger.RequestIDKey).(string)
	return requestID
}
