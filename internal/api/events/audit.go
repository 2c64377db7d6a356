package events

import (
	"context"

	"touch_crm/internal/logger"
)

// AuditHandler ghi mọi thay đổi dữ liệu vào audit log
func AuditHandler(ctx context.Context, e DataChangeEvent) {
	var details map[string]interface{}
	if e.Operation == OpImport {
		details = map[string]interface{}{"result": e.Document}
	}
	logger.LogCRUD(e.Operation, e.CollectionName, e.DocumentID, RequestIDFromContext(ctx), details)
}
