package repository

import (
	"context"
	"fmt"

	"catalog-go/internal/domain"
	"catalog-go/internal/domain/search"
	"catalog-go/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VideoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) *VideoRepository {
	return &VideoRepository{db: db}
}

// Insert 插入视频及全部关联行
func (r *VideoRepository) Insert(ctx context.Context, v *domain.Video) error {
	st, err := activeTx(ctx)
	if err != nil {
		return err
	}

	row := toVideoRow(v)
	row.Version = 1
	if err := st.tx.Create(row).Error; err != nil {
		return fmt.Errorf("insert video: %w", err)
	}
	for _, kind := range domain.RelationKinds {
		if err := insertRelations(st.tx, v.ID(), kind, v.Relation(kind)); err != nil {
			return err
		}
	}

	v.SetVersion(1)
	v.ClearDirtyRelations()
	st.Collect(v)
	return nil
}

// Update 按版本号更新视频，只重写被修改过的关系
func (r *VideoRepository) Update(ctx context.Context, v *domain.Video) error {
	st, err := activeTx(ctx)
	if err != nil {
		return err
	}

	next := v.Version() + 1
	result := st.tx.Model(&model.Video{}).
		Where("id = ? AND version = ?", v.ID().String(), v.Version()).
		Updates(videoColumns(toVideoRow(v), next))
	if result.Error != nil {
		return fmt.Errorf("update video: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := st.tx.Model(&model.Video{}).Where("id = ?", v.ID().String()).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return fmt.Errorf("video %s: %w", v.ID(), domain.ErrNotFound)
		}
		return ErrConcurrentUpdate
	}

	for _, kind := range v.DirtyRelations() {
		if err := deleteRelations(st.tx, v.ID(), kind); err != nil {
			return err
		}
		if err := insertRelations(st.tx, v.ID(), kind, v.Relation(kind)); err != nil {
			return err
		}
	}

	v.SetVersion(next)
	v.ClearDirtyRelations()
	st.Collect(v, domain.NewVideoUpdated(v.ID()))
	return nil
}

// Delete 删除视频与关联行，附件在提交后清理
func (r *VideoRepository) Delete(ctx context.Context, v *domain.Video) error {
	st, err := activeTx(ctx)
	if err != nil {
		return err
	}

	for _, kind := range domain.RelationKinds {
		if err := deleteRelations(st.tx, v.ID(), kind); err != nil {
			return err
		}
	}
	result := st.tx.Where("id = ?", v.ID().String()).Delete(&model.Video{})
	if result.Error != nil {
		return fmt.Errorf("delete video: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("video %s: %w", v.ID(), domain.ErrNotFound)
	}

	st.AddOrphans(v.AttachmentPaths()...)
	st.Collect(v, domain.NewVideoDeleted(v.ID()))
	return nil
}

// Get 根据 ID 获取视频（含关联）
func (r *VideoRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Video, error) {
	var row model.Video
	err := conn(ctx, r.db).
		Preload("Categories").Preload("Genres").Preload("CastMembers").
		Where("id = ?", id.String()).
		First(&row).Error
	if err != nil {
		return nil, wrapNotFound(err, "video", id)
	}
	return toVideo(&row)
}

// Search 视频列表查询（分页、标题过滤、排序）
func (r *VideoRepository) Search(ctx context.Context, in search.Input) (*search.Output[*domain.Video], error) {
	in = in.Normalize()
	query, total, err := paginate(conn(ctx, r.db).Model(&model.Video{}), in, search.VideoSchema)
	if err != nil {
		return nil, err
	}

	var rows []model.Video
	if err := query.Preload("Categories").Preload("Genres").Preload("CastMembers").Find(&rows).Error; err != nil {
		return nil, err
	}

	return collect(rows, in, total, toVideo)
}

func insertRelations(tx *gorm.DB, videoID uuid.UUID, kind domain.RelationKind, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	vid := videoID.String()
	var rows interface{}
	switch kind {
	case domain.RelationCategories:
		out := make([]model.VideoCategory, 0, len(ids))
		for _, id := range ids {
			out = append(out, model.VideoCategory{VideoID: vid, CategoryID: id.String()})
		}
		rows = out
	case domain.RelationGenres:
		out := make([]model.VideoGenre, 0, len(ids))
		for _, id := range ids {
			out = append(out, model.VideoGenre{VideoID: vid, GenreID: id.String()})
		}
		rows = out
	case domain.RelationCastMembers:
		out := make([]model.VideoCastMember, 0, len(ids))
		for _, id := range ids {
			out = append(out, model.VideoCastMember{VideoID: vid, CastMemberID: id.String()})
		}
		rows = out
	default:
		return fmt.Errorf("unknown relation kind %q", kind)
	}
	if err := tx.Create(rows).Error; err != nil {
		return fmt.Errorf("insert %s rows: %w", kind, err)
	}
	return nil
}

func deleteRelations(tx *gorm.DB, videoID uuid.UUID, kind domain.RelationKind) error {
	var target interface{}
	switch kind {
	case domain.RelationCategories:
		target = &model.VideoCategory{}
	case domain.RelationGenres:
		target = &model.VideoGenre{}
	case domain.RelationCastMembers:
		target = &model.VideoCastMember{}
	default:
		return fmt.Errorf("unknown relation kind %q", kind)
	}
	if err := tx.Where("video_id = ?", videoID.String()).Delete(target).Error; err != nil {
		return fmt.Errorf("delete %s rows: %w", kind, err)
	}
	return nil
}
