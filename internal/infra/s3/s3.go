package s3

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"catalog-go/internal/config"
	"catalog-go/internal/infra/metrics"
	"catalog-go/pkg/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"
)

var ErrMissingBucket = errors.New("s3 bucket is not configured")

// Storage 兼容 S3 的对象存储
type Storage struct {
	client *s3.Client
	bucket string
}

// New 创建 S3 客户端；未配置 access key 时使用默认凭证链
func New(ctx context.Context, cfg *config.S3Config, bucket string) (*Storage, error) {
	bucket = strings.TrimSpace(bucket)
	if bucket == "" {
		return nil, ErrMissingBucket
	}

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	logger.Info("S3 storage initialized",
		zap.String("region", cfg.Region),
		zap.String("endpoint", cfg.Endpoint),
		zap.String("bucket", bucket),
	)
	return &Storage{client: client, bucket: bucket}, nil
}

// Upload 上传对象，返回 key
func (s *Storage) Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error) {
	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if size > 0 {
		input.ContentLength = aws.Int64(size)
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}
	if _, err := s.client.PutObject(ctx, input); err != nil {
		metrics.BlobOperationsTotal.WithLabelValues("s3", "upload", "failed").Inc()
		return "", fmt.Errorf("put object %s: %w", key, err)
	}
	metrics.BlobOperationsTotal.WithLabelValues("s3", "upload", "ok").Inc()
	return key, nil
}

func (s *Storage) Delete(ctx context.Context, path string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(path),
	})
	if err != nil {
		metrics.BlobOperationsTotal.WithLabelValues("s3", "delete", "failed").Inc()
		return fmt.Errorf("delete object %s: %w", path, err)
	}
	metrics.BlobOperationsTotal.WithLabelValues("s3", "delete", "ok").Inc()
	return nil
}

// Health 检查 bucket 可访问
func (s *Storage) Health(ctx context.Context) error {
	_, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(s.bucket)})
	return err
}
