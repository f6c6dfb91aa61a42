package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"catalog-go/internal/config"
	"catalog-go/internal/domain"
	"catalog-go/internal/infra/metrics"
	"catalog-go/pkg/logger"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// EventEnvelope 领域事件消息体
type EventEnvelope struct {
	EventID    string          `json:"event_id"`
	Name       string          `json:"name"`
	VideoID    string          `json:"video_id"`
	OccurredAt time.Time       `json:"occurred_at"`
	Payload    json.RawMessage `json:"payload"`
}

// Publisher 把提交后的领域事件写入 Kafka，按视频 ID 分区保证同一视频的事件有序
type Publisher struct {
	writer *kafka.Writer
	cfg    *config.KafkaConfig
}

// NewPublisher 初始化 Kafka 生产者
func NewPublisher(cfg *config.KafkaConfig) *Publisher {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Balancer:               &kafka.Hash{},
		BatchTimeout:           10 * time.Millisecond,
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}

	logger.Info("Kafka producer initialized",
		zap.Strings("brokers", cfg.Brokers),
	)

	return &Publisher{writer: writer, cfg: cfg}
}

func (p *Publisher) messages(events []domain.Event) ([]kafka.Message, error) {
	msgs := make([]kafka.Message, 0, len(events))
	for _, e := range events {
		payload, err := json.Marshal(e)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal %s: %w", e.EventName(), err)
		}
		value, err := json.Marshal(EventEnvelope{
			EventID:    uuid.NewString(),
			Name:       e.EventName(),
			VideoID:    e.AggregateID().String(),
			OccurredAt: e.OccurredAt(),
			Payload:    payload,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to marshal envelope: %w", err)
		}
		msgs = append(msgs, kafka.Message{
			Topic: p.cfg.Topic(e.EventName()),
			Key:   []byte(e.AggregateID().String()),
			Value: value,
			Headers: []kafka.Header{
				{Key: "event_name", Value: []byte(e.EventName())},
			},
		})
	}
	return msgs, nil
}

// Publish 批量发送事件
func (p *Publisher) Publish(ctx context.Context, events []domain.Event) error {
	if len(events) == 0 {
		return nil
	}
	msgs, err := p.messages(events)
	if err != nil {
		return err
	}

	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		for _, e := range events {
			metrics.EventsPublishedTotal.WithLabelValues(e.EventName(), "failed").Inc()
		}
		return fmt.Errorf("failed to send kafka messages: %w", err)
	}

	for _, e := range events {
		metrics.EventsPublishedTotal.WithLabelValues(e.EventName(), "ok").Inc()
		logger.Debug("Event published",
			zap.String("event", e.EventName()),
			zap.String("video_id", e.AggregateID().String()),
		)
	}
	return nil
}

// Close 关闭生产者
func (p *Publisher) Close() error {
	logger.Info("Kafka producer closed")
	return p.writer.Close()
}
