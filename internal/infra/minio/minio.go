package minio

import (
	"context"
	"fmt"
	"io"
	"time"

	"catalog-go/internal/config"
	"catalog-go/internal/infra/metrics"
	"catalog-go/pkg/logger"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// Storage 基于 MinIO 的对象存储，所有附件放在同一个 bucket 下
type Storage struct {
	client *minio.Client
	bucket string
}

// Init 初始化 MinIO 客户端并确保 Bucket 存在
func Init(cfg *config.MinIOConfig, bucket string) (*Storage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %s: %w", bucket, err)
		}
		logger.Info("MinIO bucket created", zap.String("bucket", bucket))
	}

	logger.Info("MinIO connected",
		zap.String("endpoint", cfg.Endpoint),
		zap.String("bucket", bucket),
	)

	return &Storage{client: client, bucket: bucket}, nil
}

// Upload 上传文件，返回对象名
func (s *Storage) Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err := s.client.PutObject(ctx, s.bucket, key, body, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		metrics.BlobOperationsTotal.WithLabelValues("minio", "upload", "failed").Inc()
		return "", fmt.Errorf("failed to upload to minio: %w", err)
	}
	metrics.BlobOperationsTotal.WithLabelValues("minio", "upload", "ok").Inc()
	return key, nil
}

// Delete 删除对象；对象不存在不算错误
func (s *Storage) Delete(ctx context.Context, path string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, path, minio.RemoveObjectOptions{}); err != nil {
		metrics.BlobOperationsTotal.WithLabelValues("minio", "delete", "failed").Inc()
		return fmt.Errorf("failed to delete from minio: %w", err)
	}
	metrics.BlobOperationsTotal.WithLabelValues("minio", "delete", "ok").Inc()
	return nil
}

// Health 检查 bucket 可访问
func (s *Storage) Health(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("bucket %s not found", s.bucket)
	}
	return nil
}
