package service

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"catalog-go/internal/domain"
	"catalog-go/internal/infra/metrics"
	"catalog-go/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Attachment 视频附件槽位
type Attachment string

const (
	AttachmentThumb     Attachment = "thumb"
	AttachmentBanner    Attachment = "banner"
	AttachmentThumbHalf Attachment = "thumb_half"
	AttachmentMedia     Attachment = "media"
	AttachmentTrailer   Attachment = "trailer"
)

// 上传与回填顺序固定，与请求中的文件顺序无关
var attachmentOrder = []Attachment{
	AttachmentThumb,
	AttachmentBanner,
	AttachmentThumbHalf,
	AttachmentMedia,
	AttachmentTrailer,
}

func ParseAttachment(s string) (Attachment, bool) {
	for _, a := range attachmentOrder {
		if string(a) == s {
			return a, true
		}
	}
	return "", false
}

// Attachments 全部附件槽位，按上传顺序
func Attachments() []Attachment {
	out := make([]Attachment, len(attachmentOrder))
	copy(out, attachmentOrder)
	return out
}

// FileInput 一个待上传附件
type FileInput struct {
	Attachment  Attachment
	Body        io.Reader
	Size        int64
	Extension   string
	ContentType string
}

// StorageKey 返回附件的存储 key：<video-id>/<attachment>-<token>.<ext>。
// 每次上传使用新的 token，新文件不会覆盖当前记录仍引用的对象。
func StorageKey(videoID uuid.UUID, a Attachment, token, ext string) string {
	ext = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(ext)), ".")
	if ext == "" {
		return fmt.Sprintf("%s/%s-%s", videoID, a, token)
	}
	return fmt.Sprintf("%s/%s-%s.%s", videoID, a, token, ext)
}

func newUploadToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

const defaultCompensationTimeout = 30 * time.Second

// Compensation 已完成上传的撤销列表
type Compensation struct {
	mu      sync.Mutex
	paths   []string
	undo    func(ctx context.Context, path string) error
	timeout time.Duration
}

func (c *Compensation) add(path string) {
	c.mu.Lock()
	c.paths = append(c.paths, path)
	c.mu.Unlock()
}

// Len 待撤销的上传数
func (c *Compensation) Len() int {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.paths)
}

// Compensate 逆序删除所有已上传文件。每个删除相互独立，不受调用方取消影响；
// 删除失败只汇总返回，调用方仍应返回原始错误。
func (c *Compensation) Compensate(ctx context.Context) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	paths := c.paths
	c.paths = nil
	c.mu.Unlock()
	if len(paths) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.timeout)
	defer cancel()

	var errs error
	for i := len(paths) - 1; i >= 0; i-- {
		if err := c.undo(ctx, paths[i]); err != nil {
			metrics.CompensationsTotal.WithLabelValues("failed").Inc()
			logger.Error("Compensating delete failed", zap.String("path", paths[i]), zap.Error(err))
			errs = multierr.Append(errs, fmt.Errorf("delete %s: %w", paths[i], err))
			continue
		}
		metrics.CompensationsTotal.WithLabelValues("ok").Inc()
	}
	return errs
}

// UploadSaga 上传一组附件并在失败时撤销已完成的上传
type UploadSaga struct {
	storage     BlobStorage
	concurrency int
	timeout     time.Duration
}

func NewUploadSaga(storage BlobStorage, concurrency int) *UploadSaga {
	if concurrency < 1 {
		concurrency = 1
	}
	return &UploadSaga{
		storage:     storage,
		concurrency: concurrency,
		timeout:     defaultCompensationTimeout,
	}
}

// WithCompensationTimeout 设置补偿删除的总超时
func (s *UploadSaga) WithCompensationTimeout(d time.Duration) *UploadSaga {
	if d > 0 {
		s.timeout = d
	}
	return s
}

func (s *UploadSaga) newCompensation() *Compensation {
	return &Compensation{undo: s.storage.Delete, timeout: s.timeout}
}

// Run 上传 files 并在全部成功后回填到 video。
// 任一上传失败时先撤销已完成的上传再返回该失败；成功时返回的 Compensation 供提交失败时使用。
func (s *UploadSaga) Run(ctx context.Context, video *domain.Video, files []FileInput) (*Compensation, error) {
	ordered, err := orderFiles(files)
	if err != nil {
		return nil, err
	}
	comp := s.newCompensation()
	if len(ordered) == 0 {
		return comp, nil
	}

	paths := make([]string, len(ordered))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, f := range ordered {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			key := StorageKey(video.ID(), f.Attachment, newUploadToken(), f.Extension)
			path, err := s.storage.Upload(gctx, key, f.Body, f.Size, f.ContentType)
			if err != nil {
				metrics.UploadsTotal.WithLabelValues(string(f.Attachment), "failed").Inc()
				return &StorageError{Op: "upload", Key: key, Err: err}
			}
			metrics.UploadsTotal.WithLabelValues(string(f.Attachment), "ok").Inc()
			comp.add(path)
			paths[i] = path
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logger.Warn("Upload failed, compensating",
			zap.String("video_id", video.ID().String()),
			zap.Int("uploaded", comp.Len()),
			zap.Error(err),
		)
		if cerr := comp.Compensate(ctx); cerr != nil {
			logger.Error("Compensation incomplete",
				zap.String("video_id", video.ID().String()),
				zap.Errors("errors", multierr.Errors(cerr)),
			)
		}
		return nil, err
	}

	for i, f := range ordered {
		applyAttachment(video, f.Attachment, paths[i])
	}
	return comp, nil
}

func orderFiles(files []FileInput) ([]FileInput, error) {
	bySlot := make(map[Attachment]FileInput, len(files))
	for _, f := range files {
		if _, ok := ParseAttachment(string(f.Attachment)); !ok {
			return nil, fmt.Errorf("%w: unknown attachment %q", ErrInvalidUpload, f.Attachment)
		}
		if f.Body == nil {
			return nil, fmt.Errorf("%w: %s has no content", ErrInvalidUpload, f.Attachment)
		}
		if _, dup := bySlot[f.Attachment]; dup {
			return nil, fmt.Errorf("%w: duplicate %s", ErrInvalidUpload, f.Attachment)
		}
		bySlot[f.Attachment] = f
	}

	ordered := make([]FileInput, 0, len(bySlot))
	for _, a := range attachmentOrder {
		if f, ok := bySlot[a]; ok {
			ordered = append(ordered, f)
		}
	}
	return ordered, nil
}

func applyAttachment(video *domain.Video, a Attachment, path string) {
	switch a {
	case AttachmentThumb:
		video.UpdateThumb(path)
	case AttachmentBanner:
		video.UpdateBanner(path)
	case AttachmentThumbHalf:
		video.UpdateThumbHalf(path)
	case AttachmentMedia:
		video.UpdateMedia(path)
	case AttachmentTrailer:
		video.UpdateTrailer(path)
	}
}
