package service

import (
	"context"
	"errors"
	"fmt"

	"catalog-go/internal/domain"
	"catalog-go/internal/infra/metrics"
	"catalog-go/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// 编码结果状态
const (
	EncodingStatusProcessing = "processing"
	EncodingStatusCompleted  = "completed"
	EncodingStatusError      = "error"
)

// EncodingResult 编码服务回传的处理结果。FilePath 为编码请求中的源文件路径
type EncodingResult struct {
	MessageID   string `json:"message_id"`
	VideoID     string `json:"video_id"`
	FilePath    string `json:"file_path"`
	Status      string `json:"status"`
	EncodedPath string `json:"encoded_path,omitempty"`
	Error       string `json:"error,omitempty"`
}

type EncodingService struct {
	videos VideoRepository
	uow    UnitOfWork
	dedupe ResultDeduper
}

// NewEncodingService dedupe 可为 nil，此时不做消息去重
func NewEncodingService(videos VideoRepository, uow UnitOfWork, dedupe ResultDeduper) *EncodingService {
	return &EncodingService{videos: videos, uow: uow, dedupe: dedupe}
}

// HandleResult 根据编码结果推进主视频的编码状态
func (s *EncodingService) HandleResult(ctx context.Context, r *EncodingResult) error {
	videoID, err := uuid.Parse(r.VideoID)
	if err != nil {
		metrics.EncodingResultsTotal.WithLabelValues(r.Status, "invalid").Inc()
		return fmt.Errorf("invalid video id %q: %w", r.VideoID, err)
	}
	if r.FilePath == "" {
		metrics.EncodingResultsTotal.WithLabelValues(r.Status, "invalid").Inc()
		return fmt.Errorf("%w: missing file_path", ErrInvalidEncodingResult)
	}

	claimed, key, err := s.claim(ctx, r)
	if err != nil {
		return err
	}
	if !claimed {
		metrics.EncodingResultsTotal.WithLabelValues(r.Status, "duplicate").Inc()
		logger.Info("Duplicate encoding result skipped",
			zap.String("message_id", r.MessageID),
			zap.String("video_id", r.VideoID),
		)
		return nil
	}

	err = s.apply(ctx, videoID, r)
	if errors.Is(err, errStaleResult) {
		metrics.EncodingResultsTotal.WithLabelValues(r.Status, "stale").Inc()
		logger.Info("Stale encoding result skipped",
			zap.String("video_id", r.VideoID),
			zap.String("file_path", r.FilePath),
		)
		return nil
	}
	if err != nil {
		metrics.EncodingResultsTotal.WithLabelValues(r.Status, "failed").Inc()
		s.release(ctx, key)
		return err
	}

	metrics.EncodingResultsTotal.WithLabelValues(r.Status, "ok").Inc()
	logger.Info("Encoding result processed",
		zap.String("video_id", r.VideoID),
		zap.String("status", r.Status),
	)
	return nil
}

// 结果对应的源文件已被替换
var errStaleResult = errors.New("stale encoding result")

func (s *EncodingService) apply(ctx context.Context, videoID uuid.UUID, r *EncodingResult) error {
	video, err := s.videos.Get(ctx, videoID)
	if err != nil {
		return notFound(err, ErrVideoNotFound)
	}
	if m := video.Media(); m == nil || m.FilePath != r.FilePath {
		return errStaleResult
	}

	switch r.Status {
	case EncodingStatusProcessing:
		err = video.UpdateAsSentToEncode()
	case EncodingStatusCompleted:
		if r.EncodedPath == "" {
			return fmt.Errorf("%w: completed result without encoded path", domain.ErrInvalidMediaTransition)
		}
		err = video.UpdateAsEncoded(r.EncodedPath)
	case EncodingStatusError:
		logger.Warn("Encoding failed", zap.String("video_id", r.VideoID), zap.String("error", r.Error))
		err = video.UpdateAsEncodingError()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownEncodingStatus, r.Status)
	}
	if err != nil {
		return err
	}

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin unit of work: %w", err)
	}
	if err := s.videos.Update(txCtx, video); err != nil {
		_ = s.uow.Rollback(txCtx)
		return err
	}
	if err := s.uow.Commit(txCtx); err != nil {
		return &CommitError{Err: err}
	}
	return nil
}

func (s *EncodingService) claim(ctx context.Context, r *EncodingResult) (bool, string, error) {
	if s.dedupe == nil || r.MessageID == "" {
		return true, "", nil
	}
	key := "encoding:result:" + r.MessageID
	ok, err := s.dedupe.Claim(ctx, key)
	if err != nil {
		// 去重存储不可用时继续处理，状态迁移本身可重复执行
		logger.Warn("Dedupe claim failed, processing anyway", zap.String("message_id", r.MessageID), zap.Error(err))
		return true, "", nil
	}
	return ok, key, nil
}

func (s *EncodingService) release(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := s.dedupe.Release(context.WithoutCancel(ctx), key); err != nil && !errors.Is(err, context.Canceled) {
		logger.Warn("Dedupe release failed", zap.String("key", key), zap.Error(err))
	}
}
