package service

import (
	"context"
	"fmt"

	"catalog-go/internal/domain"

	"github.com/google/uuid"
)

// RelationIDs 请求中的关联 id。nil 表示不修改，空切片表示清空
type RelationIDs struct {
	Categories  []uuid.UUID
	Genres      []uuid.UUID
	CastMembers []uuid.UUID
}

func (r RelationIDs) For(kind domain.RelationKind) []uuid.UUID {
	switch kind {
	case domain.RelationCategories:
		return r.Categories
	case domain.RelationGenres:
		return r.Genres
	case domain.RelationCastMembers:
		return r.CastMembers
	}
	return nil
}

// RelationValidator 检查关联聚合是否存在
type RelationValidator struct {
	repo RelationRepository
}

func NewRelationValidator(repo RelationRepository) *RelationValidator {
	return &RelationValidator{repo: repo}
}

// Validate 空列表直接通过；否则一次查询，缺失的 id 按输入顺序报告
func (v *RelationValidator) Validate(ctx context.Context, kind domain.RelationKind, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	candidates := make([]uuid.UUID, 0, len(ids))
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		candidates = append(candidates, id)
	}

	existing, err := v.repo.GetIDsByIDs(ctx, kind, candidates)
	if err != nil {
		return fmt.Errorf("look up %s: %w", kind, err)
	}
	if len(existing) >= len(candidates) {
		return nil
	}

	found := make(map[uuid.UUID]struct{}, len(existing))
	for _, id := range existing {
		found[id] = struct{}{}
	}
	var missing []uuid.UUID
	for _, id := range candidates {
		if _, ok := found[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return &domain.RelatedNotFoundError{Kind: kind, Missing: missing}
}

// Sync 对 ids 非 nil 的每种关系做存在性校验并整体替换
func (v *RelationValidator) Sync(ctx context.Context, video *domain.Video, ids RelationIDs) error {
	for _, kind := range domain.RelationKinds {
		list := ids.For(kind)
		if list == nil {
			continue
		}
		if err := v.Validate(ctx, kind, list); err != nil {
			return err
		}
	}
	for _, kind := range domain.RelationKinds {
		if list := ids.For(kind); list != nil {
			video.ReplaceRelations(kind, list)
		}
	}
	return nil
}
