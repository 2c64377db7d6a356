package main

import (
	"touch_crm/config"
	"touch_crm/internal/api/events"
	"touch_crm/internal/logger"
)

// InitEvents đăng ký audit log cho mọi thay đổi dữ liệu; có AMQP_URL thì publish thêm lên RabbitMQ.
// Trả về publisher (nil nếu không bật) để đóng khi tắt server.
func InitEvents(cfg *config.Configuration) *events.AMQPPublisher {
	log := logger.WithModule("events")
	events.OnDataChanged(events.AuditHandler)

	if cfg.AMQP_URL == "" {
		log.Info("AMQP publishing disabled")
		return nil
	}

	publisher, err := events.NewAMQPPublisher(cfg.AMQP_URL, cfg.AMQP_Exchange)
	if err != nil {
		// Không có broker vẫn phục vụ API, chỉ mất phần publish
		log.WithError(err).Error("Failed to connect AMQP, continuing without event publishing")
		return nil
	}
	events.OnDataChanged(publisher.Handle)
	log.WithField("exchange", cfg.AMQP_Exchange).Info("AMQP publishing enabled")
	return publisher
}
