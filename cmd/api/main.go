package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"catalog-go/internal/api/handler"
	"catalog-go/internal/api/middleware"
	"catalog-go/internal/api/router"
	"catalog-go/internal/config"
	"catalog-go/internal/infra/database"
	infraES "catalog-go/internal/infra/elasticsearch"
	infraKafka "catalog-go/internal/infra/kafka"
	infraMinio "catalog-go/internal/infra/minio"
	infraS3 "catalog-go/internal/infra/s3"
	"catalog-go/internal/repository"
	"catalog-go/internal/repository/memory"
	"catalog-go/internal/service"
	"catalog-go/pkg/logger"

	_ "catalog-go/api/openapi"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// @title Catalog API
// @version 1.0
// @description 媒体目录服务 API：分类、类型、演职人员与视频

// @host 127.0.0.1:8080
// @BasePath /api/v1

// blobStore 对象存储驱动
type blobStore interface {
	service.BlobStorage
	Health(ctx context.Context) error
}

// stores 仓储与工作单元
type stores struct {
	videos      service.VideoRepository
	relations   service.RelationRepository
	categories  service.CategoryRepository
	genres      service.GenreRepository
	castMembers service.CastMemberRepository
	uow         service.UnitOfWork
	ping        func(ctx context.Context) error
}

func main() {
	// 加载配置文件
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 初始化日志系统
	if err := logger.Init(
		cfg.Log.Level,
		cfg.Log.Format,
		cfg.Log.Output,
		cfg.Log.FilePath,
		zap.String("service", cfg.App.Name),
	); err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 对象存储
	storage, err := newBlobStore(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to init blob storage", zap.String("driver", cfg.Storage.Driver), zap.Error(err))
	}

	// 事件发布：Kafka 未启用时只记录日志
	var publisher repository.EventPublisher = repository.LogPublisher{}
	if cfg.Kafka.Enabled {
		p := infraKafka.NewPublisher(&cfg.Kafka)
		defer p.Close()
		publisher = p
	}

	st, err := newStores(cfg, storage, publisher)
	if err != nil {
		logger.Fatal("Failed to init database", zap.Error(err))
	}
	defer database.Close()

	// Elasticsearch（可选，失败则搜索降级到 DB）
	var index service.SearchIndex
	if cfg.Elasticsearch.Enabled {
		if client, err := infraES.NewClient(&cfg.Elasticsearch); err != nil {
			logger.Warn("Elasticsearch init failed, search will fallback to DB", zap.Error(err))
		} else {
			x := infraES.NewVideoIndex(client, cfg.Elasticsearch.VideosIndex())
			if err := x.EnsureIndex(ctx); err != nil {
				logger.Warn("Elasticsearch index init failed", zap.Error(err))
			}
			index = x
		}
	}

	// 初始化依赖（Repository -> Service -> Handler）
	saga := service.NewUploadSaga(storage, cfg.Upload.Concurrency).
		WithCompensationTimeout(cfg.Upload.CompensationTimeoutDuration())
	videoService := service.NewVideoService(st.videos, st.relations, st.uow, saga)
	catalogService := service.NewCatalogService(st.categories, st.genres, st.castMembers, st.relations)
	indexer := service.NewIndexerService(st.videos, index)

	handlers := router.Handlers{
		Video:   handler.NewVideoHandler(videoService, cfg.Upload.MaxFileSize),
		Catalog: handler.NewCatalogHandler(catalogService),
		Search:  handler.NewSearchHandler(indexer),
	}

	gin.SetMode(cfg.App.Mode)
	r := gin.New()
	r.MaxMultipartMemory = 32 << 20
	r.Use(middleware.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.Metrics())

	// 注册基础路由
	r.GET("/healthz", healthCheckHandler(cfg, st.ping, storage))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 注册业务路由
	router.Setup(r, handlers)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	srv := &http.Server{Addr: addr, Handler: r, ReadHeaderTimeout: 10 * time.Second}

	logger.Info("Starting application",
		zap.String("name", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("mode", cfg.App.Mode),
		zap.String("addr", addr),
		zap.String("database", cfg.Database.Driver),
		zap.String("storage", cfg.Storage.Driver),
		zap.Bool("kafka", cfg.Kafka.Enabled),
		zap.Bool("elasticsearch", index != nil),
	)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}
}

func newBlobStore(ctx context.Context, cfg *config.Config) (blobStore, error) {
	switch cfg.Storage.Driver {
	case "s3":
		return infraS3.New(ctx, &cfg.S3, cfg.Storage.Bucket)
	default:
		return infraMinio.Init(&cfg.MinIO, cfg.Storage.Bucket)
	}
}

func newStores(cfg *config.Config, storage repository.BlobDeleter, publisher repository.EventPublisher) (*stores, error) {
	if cfg.Database.Driver == "memory" {
		logger.Warn("Using in-memory store, data is lost on restart")
		s := memory.NewStore()
		return &stores{
			videos:      memory.NewVideoRepository(s),
			relations:   memory.NewRelationRepository(s),
			categories:  memory.NewCategoryRepository(s),
			genres:      memory.NewGenreRepository(s),
			castMembers: memory.NewCastMemberRepository(s),
			uow:         memory.NewUnitOfWork(s, storage, publisher),
			ping:        func(context.Context) error { return nil },
		}, nil
	}

	db, err := database.Init(&cfg.Database)
	if err != nil {
		return nil, err
	}
	if cfg.Database.AutoMigrate {
		if err := database.AutoMigrate(db); err != nil {
			return nil, err
		}
	}
	return &stores{
		videos:      repository.NewVideoRepository(db),
		relations:   repository.NewRelationRepository(db),
		categories:  repository.NewCategoryRepository(db),
		genres:      repository.NewGenreRepository(db),
		castMembers: repository.NewCastMemberRepository(db),
		uow:         repository.NewUnitOfWork(db, storage, publisher),
		ping: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}, nil
}

// healthCheckHandler 健康检查接口
func healthCheckHandler(cfg *config.Config, ping func(context.Context) error, storage blobStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		checks := gin.H{"database": "ok", "storage": "ok"}
		status := http.StatusOK
		if err := ping(ctx); err != nil {
			checks["database"] = err.Error()
			status = http.StatusServiceUnavailable
		}
		if err := storage.Health(ctx); err != nil {
			checks["storage"] = err.Error()
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, gin.H{
			"status":    http.StatusText(status),
			"checks":    checks,
			"timestamp": time.Now().Format(time.RFC3339),
			"service":   cfg.App.Name,
			"version":   cfg.App.Version,
		})
	}
}
