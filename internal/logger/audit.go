package logger

import (
	"time"

	"github.com/sirupsen/logrus"
)

// AuditAction là một bản ghi audit cho thao tác ghi dữ liệu
type AuditAction struct {
	Action       string                 `json:"action"`        // Ví dụ: "customer_insert", "touch_update"
	ResourceID   string                 `json:"resource_id"`   // ID tài nguyên bị ảnh hưởng
	ResourceType string                 `json:"resource_type"` // Collection: customers, touchs
	RequestID    string                 `json:"request_id"`
	Details      map[string]interface{} `json:"details"`
	Timestamp    time.Time              `json:"timestamp"`
}

// LogAction ghi một hành động audit vào audit logger
func LogAction(audit AuditAction) {
	if audit.Timestamp.IsZero() {
		audit.Timestamp = time.Now()
	}

	fields := logrus.Fields{
		"action":        audit.Action,
		"resource_id":   audit.ResourceID,
		"resource_type": audit.ResourceType,
		"timestamp":     audit.Timestamp,
	}
	if audit.RequestID != "" {
		fields["request_id"] = audit.RequestID
	}
	if len(audit.Details) > 0 {
		fields["details"] = audit.Details
	}

	GetAuditLogger().WithFields(fields).Info("Audit log")
}

// LogCRUD log các thao tác CRUD trên một collection
func LogCRUD(operation, resourceType, resourceID, requestID string, details map[string]interface{}) {
	LogAction(AuditAction{
		Action:       resourceType + "_" + operation,
		ResourceID:   resourceID,
		ResourceType: resourceType,
		RequestID:    requestID,
		Details:      details,
	})
}
