package kafka

import (
	"context"
	"encoding/json"
	"time"

	"catalog-go/pkg/logger"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Handler 处理一条消息；返回错误只记录日志，不会阻塞后续消息
type Handler func(ctx context.Context, msg kafka.Message) error

// ConsumerConfig 消费者配置
type ConsumerConfig struct {
	Brokers []string
	Topics  []string
	GroupID string
	Name    string
}

// StartConsumer 启动消费者（阻塞，需在 goroutine 中运行）
// ctx 取消后会自动停止
func StartConsumer(ctx context.Context, cfg ConsumerConfig, handler Handler) {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        cfg.Brokers,
		GroupTopics:    cfg.Topics,
		GroupID:        cfg.GroupID,
		MinBytes:       1,
		MaxBytes:       10e6,
		CommitInterval: time.Second,
		StartOffset:    kafka.LastOffset,
	})

	defer func() {
		if err := reader.Close(); err != nil {
			logger.Error("Failed to close kafka consumer", zap.String("consumer", cfg.Name), zap.Error(err))
		}
		logger.Info("Kafka consumer stopped", zap.String("consumer", cfg.Name))
	}()

	logger.Info("Kafka consumer started",
		zap.String("consumer", cfg.Name),
		zap.Strings("topics", cfg.Topics),
		zap.String("group", cfg.GroupID),
	)

	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logger.Error("Failed to read kafka message", zap.String("consumer", cfg.Name), zap.Error(err))
			time.Sleep(time.Second)
			continue
		}

		if err := handler(ctx, msg); err != nil {
			logger.Error("Failed to handle kafka message",
				zap.String("consumer", cfg.Name),
				zap.String("topic", msg.Topic),
				zap.ByteString("key", msg.Key),
				zap.Error(err),
			)
		}
	}
}

// JSON 把消息体解码为 T 后交给 fn；无法解码的消息记录后跳过
func JSON[T any](fn func(ctx context.Context, v *T) error) Handler {
	return func(ctx context.Context, msg kafka.Message) error {
		var v T
		if err := json.Unmarshal(msg.Value, &v); err != nil {
			logger.Error("Failed to unmarshal kafka message",
				zap.String("topic", msg.Topic),
				zap.Error(err),
				zap.ByteString("value", msg.Value),
			)
			return nil
		}
		return fn(ctx, &v)
	}
}
