package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"catalog-go/internal/config"
	"catalog-go/internal/domain"
	"catalog-go/internal/infra/database"
	infraES "catalog-go/internal/infra/elasticsearch"
	infraKafka "catalog-go/internal/infra/kafka"
	infraMinio "catalog-go/internal/infra/minio"
	infraRedis "catalog-go/internal/infra/redis"
	infraS3 "catalog-go/internal/infra/s3"
	"catalog-go/internal/repository"
	"catalog-go/internal/service"
	"catalog-go/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// worker 消费编码结果与视频事件：
//  1. video_encoded -> 推进主视频的编码状态
//  2. video.* 事件 -> 维护 Elasticsearch 索引
func main() {
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.Output, cfg.Log.FilePath, zap.String("service", cfg.App.Name+"-worker")); err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer logger.Sync()

	if !cfg.Kafka.Enabled {
		logger.Fatal("Worker requires kafka.enabled")
	}
	if cfg.Database.Driver != "postgres" {
		logger.Fatal("Worker requires the postgres database driver", zap.String("driver", cfg.Database.Driver))
	}

	// 监听系统信号，优雅退出
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.Init(&cfg.Database)
	if err != nil {
		logger.Fatal("Failed to init database", zap.Error(err))
	}
	defer database.Close()

	var storage repository.BlobDeleter
	switch cfg.Storage.Driver {
	case "s3":
		storage, err = infraS3.New(ctx, &cfg.S3, cfg.Storage.Bucket)
	default:
		storage, err = infraMinio.Init(&cfg.MinIO, cfg.Storage.Bucket)
	}
	if err != nil {
		logger.Fatal("Failed to init blob storage", zap.Error(err))
	}

	publisher := infraKafka.NewPublisher(&cfg.Kafka)
	defer publisher.Close()

	videos := repository.NewVideoRepository(db)
	uow := repository.NewUnitOfWork(db, storage, publisher)

	// 去重（可选）
	var dedupe service.ResultDeduper
	if cfg.Redis.Enabled {
		client, err := infraRedis.Init(&cfg.Redis)
		if err != nil {
			logger.Fatal("Failed to init redis", zap.Error(err))
		}
		defer infraRedis.Close()
		dedupe = infraRedis.NewDeduper(client, cfg.Redis.DedupTTLDuration())
	}
	encoding := service.NewEncodingService(videos, uow, dedupe)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		infraKafka.StartConsumer(ctx, infraKafka.ConsumerConfig{
			Brokers: cfg.Kafka.Brokers,
			Topics:  []string{cfg.Kafka.Topic("video_encoded")},
			GroupID: cfg.Kafka.GroupID + "-encoding",
			Name:    "encoding-result",
		}, infraKafka.JSON(encoding.HandleResult))
		return nil
	})

	if cfg.Elasticsearch.Enabled {
		client, err := infraES.NewClient(&cfg.Elasticsearch)
		if err != nil {
			logger.Fatal("Failed to init elasticsearch", zap.Error(err))
		}
		index := infraES.NewVideoIndex(client, cfg.Elasticsearch.VideosIndex())
		if err := index.EnsureIndex(ctx); err != nil {
			logger.Fatal("Failed to ensure video index", zap.Error(err))
		}
		indexer := service.NewIndexerService(videos, index)

		g.Go(func() error {
			infraKafka.StartConsumer(ctx, infraKafka.ConsumerConfig{
				Brokers: cfg.Kafka.Brokers,
				Topics:  eventTopics(&cfg.Kafka),
				GroupID: cfg.Kafka.GroupID + "-indexer",
				Name:    "search-indexer",
			}, infraKafka.JSON(func(ctx context.Context, e *infraKafka.EventEnvelope) error {
				id, err := uuid.Parse(e.VideoID)
				if err != nil {
					return fmt.Errorf("event %s: invalid video id %q: %w", e.EventID, e.VideoID, err)
				}
				return indexer.HandleEvent(ctx, e.Name, id)
			}))
			return nil
		})
	}

	logger.Info("Worker started",
		zap.Strings("brokers", cfg.Kafka.Brokers),
		zap.Bool("dedupe", dedupe != nil),
		zap.Bool("indexer", cfg.Elasticsearch.Enabled),
	)

	if err := g.Wait(); err != nil {
		logger.Error("Worker stopped with error", zap.Error(err))
		return
	}
	logger.Info("Worker stopped")
}

func eventTopics(cfg *config.KafkaConfig) []string {
	names := []string{
		domain.EventVideoCreated,
		domain.EventVideoUpdated,
		domain.EventVideoDeleted,
		domain.EventVideoMediaUploaded,
	}
	seen := make(map[string]bool, len(names))
	topics := make([]string, 0, len(names))
	for _, name := range names {
		t := cfg.Topic(name)
		if !seen[t] {
			seen[t] = true
			topics = append(topics, t)
		}
	}
	return topics
}
