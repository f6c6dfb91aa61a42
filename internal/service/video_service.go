package service

import (
	"context"
	"fmt"

	"catalog-go/internal/api/dto"
	"catalog-go/internal/domain"
	"catalog-go/internal/domain/search"
	"catalog-go/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// CreateVideoInput 创建视频；Files 可为空
type CreateVideoInput struct {
	Title        string
	Description  string
	YearLaunched int
	Opened       bool
	Published    bool
	Duration     int
	Rating       domain.Rating
	Relations    RelationIDs
	Files        []FileInput
}

// UpdateVideoInput 更新视频；nil 字段不修改
type UpdateVideoInput struct {
	ID           uuid.UUID
	Title        *string
	Description  *string
	YearLaunched *int
	Opened       *bool
	Published    *bool
	Duration     *int
	Rating       *domain.Rating
	Relations    RelationIDs
	Files        []FileInput
}

// UploadMediasInput 只上传附件
type UploadMediasInput struct {
	VideoID uuid.UUID
	Files   []FileInput
}

type VideoService struct {
	videos    VideoRepository
	relations *RelationValidator
	uow       UnitOfWork
	saga      *UploadSaga
}

func NewVideoService(videos VideoRepository, relations RelationRepository, uow UnitOfWork, saga *UploadSaga) *VideoService {
	return &VideoService{
		videos:    videos,
		relations: NewRelationValidator(relations),
		uow:       uow,
		saga:      saga,
	}
}

// Create 创建视频：校验字段与关联，上传附件，插入并提交
func (s *VideoService) Create(ctx context.Context, in *CreateVideoInput) (*dto.VideoInfo, error) {
	video, err := domain.NewVideo(in.Title, in.Description, in.YearLaunched, in.Opened, in.Published, in.Duration, in.Rating)
	if err != nil {
		return nil, err
	}
	if err := s.relations.Sync(ctx, video, in.Relations); err != nil {
		return nil, err
	}

	comp, err := s.saga.Run(ctx, video, in.Files)
	if err != nil {
		return nil, err
	}
	if err := s.persist(ctx, video, comp, s.videos.Insert); err != nil {
		return nil, err
	}

	logger.Info("Video created",
		zap.String("video_id", video.ID().String()),
		zap.Int("files", len(in.Files)),
	)
	return ToVideoInfo(video), nil
}

// Update 更新字段、关联与附件
func (s *VideoService) Update(ctx context.Context, in *UpdateVideoInput) (*dto.VideoInfo, error) {
	video, err := s.load(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	if err := video.Update(domain.VideoUpdate{
		Title:        in.Title,
		Description:  in.Description,
		YearLaunched: in.YearLaunched,
		Opened:       in.Opened,
		Published:    in.Published,
		Duration:     in.Duration,
		Rating:       in.Rating,
	}); err != nil {
		return nil, err
	}
	if err := s.relations.Sync(ctx, video, in.Relations); err != nil {
		return nil, err
	}

	comp, err := s.saga.Run(ctx, video, in.Files)
	if err != nil {
		return nil, err
	}
	if err := s.persist(ctx, video, comp, s.videos.Update); err != nil {
		return nil, err
	}

	logger.Info("Video updated", zap.String("video_id", video.ID().String()))
	return ToVideoInfo(video), nil
}

// UploadMedias 为已有视频上传附件
func (s *VideoService) UploadMedias(ctx context.Context, in *UploadMediasInput) error {
	video, err := s.load(ctx, in.VideoID)
	if err != nil {
		return err
	}

	comp, err := s.saga.Run(ctx, video, in.Files)
	if err != nil {
		return err
	}
	if err := s.persist(ctx, video, comp, s.videos.Update); err != nil {
		return err
	}

	logger.Info("Video medias uploaded",
		zap.String("video_id", video.ID().String()),
		zap.Int("files", len(in.Files)),
	)
	return nil
}

// Get 获取视频详情
func (s *VideoService) Get(ctx context.Context, id uuid.UUID) (*dto.VideoInfo, error) {
	video, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToVideoInfo(video), nil
}

// Delete 删除视频；附件在提交后从对象存储清理
func (s *VideoService) Delete(ctx context.Context, id uuid.UUID) error {
	video, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	if err := s.persist(ctx, video, nil, s.videos.Delete); err != nil {
		return notFound(err, ErrVideoNotFound)
	}

	logger.Info("Video deleted", zap.String("video_id", id.String()))
	return nil
}

// List 分页列表
func (s *VideoService) List(ctx context.Context, in search.Input) (*dto.VideoListData, error) {
	out, err := s.videos.Search(ctx, in.Normalize())
	if err != nil {
		return nil, err
	}
	return toListData(search.Map(out, func(v *domain.Video) dto.VideoInfo { return *ToVideoInfo(v) })), nil
}

func (s *VideoService) load(ctx context.Context, id uuid.UUID) (*domain.Video, error) {
	video, err := s.videos.Get(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrVideoNotFound)
	}
	return video, nil
}

// persist 在工作单元内执行 write 并提交；任一步失败都撤销本次上传
func (s *VideoService) persist(ctx context.Context, video *domain.Video, comp *Compensation, write func(context.Context, *domain.Video) error) error {
	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		s.compensate(ctx, video, comp)
		return fmt.Errorf("begin unit of work: %w", err)
	}

	if err := write(txCtx, video); err != nil {
		if rbErr := s.uow.Rollback(txCtx); rbErr != nil {
			logger.Warn("Rollback failed", zap.String("video_id", video.ID().String()), zap.Error(rbErr))
		}
		s.compensate(ctx, video, comp)
		return err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		s.compensate(ctx, video, comp)
		return &CommitError{Err: err}
	}
	return nil
}

func (s *VideoService) compensate(ctx context.Context, video *domain.Video, comp *Compensation) {
	if comp.Len() == 0 {
		return
	}
	if err := comp.Compensate(ctx); err != nil {
		logger.Error("Compensation incomplete",
			zap.String("video_id", video.ID().String()),
			zap.Errors("errors", multierr.Errors(err)),
		)
	}
}

// ToVideoInfo 聚合转响应结构
func ToVideoInfo(v *domain.Video) *dto.VideoInfo {
	info := &dto.VideoInfo{
		ID:             v.ID().String(),
		Title:          v.Title(),
		Description:    v.Description(),
		YearLaunched:   v.YearLaunched(),
		Opened:         v.Opened(),
		Published:      v.Published(),
		Duration:       v.Duration(),
		Rating:         string(v.Rating()),
		CreatedAt:      v.CreatedAt(),
		CategoriesIDs:  idStrings(v.Categories()),
		GenresIDs:      idStrings(v.Genres()),
		CastMembersIDs: idStrings(v.CastMembers()),
		Thumb:          toImageInfo(v.Thumb()),
		Banner:         toImageInfo(v.Banner()),
		ThumbHalf:      toImageInfo(v.ThumbHalf()),
		Media:          toMediaInfo(v.Media()),
		Trailer:        toMediaInfo(v.Trailer()),
	}
	return info
}

func toImageInfo(img *domain.Image) *dto.ImageInfo {
	if img == nil {
		return nil
	}
	return &dto.ImageInfo{Path: img.Path}
}

func toMediaInfo(m *domain.Media) *dto.MediaInfo {
	if m == nil {
		return nil
	}
	return &dto.MediaInfo{
		FilePath:    m.FilePath,
		EncodedPath: m.EncodedPath,
		Status:      string(m.Status),
	}
}

func idStrings(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}

func toListData[T any](out *search.Output[T]) *dto.ListData[T] {
	var totalPages int64
	if out.PerPage > 0 {
		totalPages = (out.Total + int64(out.PerPage) - 1) / int64(out.PerPage)
	}
	items := out.Items
	if items == nil {
		items = []T{}
	}
	return &dto.ListData[T]{
		Items:       items,
		Total:       out.Total,
		CurrentPage: out.CurrentPage,
		PerPage:     out.PerPage,
		TotalPages:  totalPages,
	}
}
