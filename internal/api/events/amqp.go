package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/streadway/amqp"

	"touch_crm/internal/logger"
)

// amqpChannel là phần của *amqp.Channel mà publisher sử dụng
type amqpChannel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Message là payload JSON gửi lên exchange
type Message struct {
	Collection string      `json:"collection"`
	Operation  string      `json:"operation"`
	ID         string      `json:"id,omitempty"`
	RequestID  string      `json:"request_id,omitempty"`
	Document   interface{} `json:"document,omitempty"`
	Timestamp  time.Time   `json:"timestamp"`
}

// AMQPPublisher đẩy DataChangeEvent lên topic exchange, routing key "<collection>.<operation>"
type AMQPPublisher struct {
	conn     *amqp.Connection
	ch       amqpChannel
	exchange string
	mu       sync.Mutex
}

// NewAMQPPublisher kết nối RabbitMQ và khai báo topic exchange (durable)
func NewAMQPPublisher(url, exchange string) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to AMQP: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open AMQP channel: %w", err)
	}

	p, err := newAMQPPublisher(ch, exchange)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	p.conn = conn
	return p, nil
}

func newAMQPPublisher(ch amqpChannel, exchange string) (*AMQPPublisher, error) {
	if err := ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("failed to declare exchange %s: %w", exchange, err)
	}
	return &AMQPPublisher{ch: ch, exchange: exchange}, nil
}

// Publish gửi một event; lỗi được trả về cho caller
func (p *AMQPPublisher) Publish(ctx context.Context, e DataChangeEvent) error {
	msg := Message{
		Collection: e.CollectionName,
		Operation:  e.Operation,
		ID:         e.DocumentID,
		RequestID:  RequestIDFromContext(ctx),
		Document:   e.Document,
		Timestamp:  time.Now().UTC(),
	}
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ch.Publish(p.exchange, e.CollectionName+"."+e.Operation, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    uuid.NewString(), // mỗi message một id, id document nằm trong body
		Timestamp:    msg.Timestamp,
		Body:         body,
	})
}

// Handle dùng làm DataChangeHandler, lỗi publish chỉ được ghi log
func (p *AMQPPublisher) Handle(ctx context.Context, e DataChangeEvent) {
	if err := p.Publish(ctx, e); err != nil {
		logger.WithContext(ctx).WithField("module", "events").WithError(err).
			WithField("collection", e.CollectionName).
			WithField("operation", e.Operation).
			Warn("Failed to publish data change event")
	}
}

// Close đóng channel và connection
func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	err := p.ch.Close()
	if p.conn != nil {
		if cerr := p.conn.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}
