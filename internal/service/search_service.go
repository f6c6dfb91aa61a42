package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"catalog-go/internal/api/dto"
	"catalog-go/internal/domain"
	"catalog-go/internal/domain/search"
	"catalog-go/internal/model"
	"catalog-go/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const reindexBatchSize = 100

// ErrIndexDisabled 未配置搜索索引
var ErrIndexDisabled = errors.New("search index disabled")

// IndexerService 维护视频搜索索引，并提供全文搜索（索引不可用时降级到数据库）。index 可为 nil
type IndexerService struct {
	videos VideoRepository
	index  SearchIndex
}

func NewIndexerService(videos VideoRepository, index SearchIndex) *IndexerService {
	return &IndexerService{videos: videos, index: index}
}

// HandleEvent 处理已发布的视频事件
func (s *IndexerService) HandleEvent(ctx context.Context, name string, videoID uuid.UUID) error {
	if s.index == nil {
		return ErrIndexDisabled
	}
	switch name {
	case domain.EventVideoDeleted:
		if err := s.index.Delete(ctx, videoID.String()); err != nil {
			return fmt.Errorf("delete video %s from index: %w", videoID, err)
		}
		logger.Debug("Video removed from index", zap.String("video_id", videoID.String()))
		return nil
	case domain.EventVideoCreated, domain.EventVideoUpdated, domain.EventVideoMediaUploaded:
		video, err := s.videos.Get(ctx, videoID)
		if err != nil {
			if IsNotFound(err) {
				// 事件到达前视频已被删除
				logger.Info("Indexed video no longer exists", zap.String("video_id", videoID.String()))
				return nil
			}
			return err
		}
		return s.index.Upsert(ctx, ToVideoDocument(video))
	default:
		logger.Debug("Ignoring event", zap.String("event", name))
		return nil
	}
}

// Search 全文搜索视频；索引查询失败时按标题在数据库中过滤
func (s *IndexerService) Search(ctx context.Context, q string, page, perPage int) (*dto.VideoListData, error) {
	in := search.Input{Page: page, PerPage: perPage, Search: q}.Normalize()

	data, err := s.searchFromIndex(ctx, in)
	if err != nil {
		if !errors.Is(err, ErrIndexDisabled) {
			logger.Warn("Index search failed, fallback to DB", zap.Error(err))
		}
		out, err := s.videos.Search(ctx, in)
		if err != nil {
			return nil, err
		}
		return toListData(search.Map(out, func(v *domain.Video) dto.VideoInfo { return *ToVideoInfo(v) })), nil
	}
	return data, nil
}

func (s *IndexerService) searchFromIndex(ctx context.Context, in search.Input) (*dto.VideoListData, error) {
	if s.index == nil {
		return nil, ErrIndexDisabled
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	q, _ := in.Text()
	hits, err := s.index.Search(ctx, q, in.Skip(), in.PerPage)
	if err != nil {
		return nil, err
	}

	items := make([]dto.VideoInfo, 0, len(hits.IDs))
	for _, raw := range hits.IDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			continue
		}
		video, err := s.videos.Get(ctx, id)
		if err != nil {
			if IsNotFound(err) {
				continue
			}
			return nil, err
		}
		items = append(items, *ToVideoInfo(video))
	}

	return toListData(&search.Output[dto.VideoInfo]{
		CurrentPage: in.Page,
		PerPage:     in.PerPage,
		Total:       hits.Total,
		Items:       items,
	}), nil
}

// Reindex 全量重建索引
func (s *IndexerService) Reindex(ctx context.Context) (success, failed int, err error) {
	if s.index == nil {
		return 0, 0, ErrIndexDisabled
	}
	for page := 1; ; page++ {
		out, err := s.videos.Search(ctx, search.Input{Page: page, PerPage: reindexBatchSize, OrderBy: search.FieldID})
		if err != nil {
			return success, failed, err
		}
		if len(out.Items) == 0 {
			break
		}

		docs := make([]*model.VideoDocument, 0, len(out.Items))
		for _, v := range out.Items {
			docs = append(docs, ToVideoDocument(v))
		}
		ok, bad, err := s.index.BulkUpsert(ctx, docs)
		success += ok
		failed += bad
		if err != nil {
			return success, failed, err
		}
		if int64(page*reindexBatchSize) >= out.Total {
			break
		}
	}

	logger.Info("Reindex completed", zap.Int("success", success), zap.Int("failed", failed))
	return success, failed, nil
}

// ToVideoDocument 聚合转搜索文档
func ToVideoDocument(v *domain.Video) *model.VideoDocument {
	doc := &model.VideoDocument{
		ID:             v.ID().String(),
		Title:          v.Title(),
		Description:    v.Description(),
		YearLaunched:   v.YearLaunched(),
		Opened:         v.Opened(),
		Published:      v.Published(),
		Duration:       v.Duration(),
		Rating:         string(v.Rating()),
		CategoriesIDs:  idStrings(v.Categories()),
		GenresIDs:      idStrings(v.Genres()),
		CastMembersIDs: idStrings(v.CastMembers()),
		CreatedAt:      v.CreatedAt().Format(time.RFC3339),
	}
	if m := v.Media(); m != nil {
		doc.MediaStatus = string(m.Status)
	}
	return doc
}
