package repository

import (
	"context"
	"fmt"

	"catalog-go/internal/domain"
	"catalog-go/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RelationRepository 查询分类、类型、演职人员是否存在
type RelationRepository struct {
	db *gorm.DB
}

func NewRelationRepository(db *gorm.DB) *RelationRepository {
	return &RelationRepository{db: db}
}

func relationModel(kind domain.RelationKind) (interface{}, error) {
	switch kind {
	case domain.RelationCategories:
		return &model.Category{}, nil
	case domain.RelationGenres:
		return &model.Genre{}, nil
	case domain.RelationCastMembers:
		return &model.CastMember{}, nil
	}
	return nil, fmt.Errorf("unknown relation kind %q", kind)
}

// GetIDsByIDs 返回 ids 中实际存在的那部分
func (r *RelationRepository) GetIDsByIDs(ctx context.Context, kind domain.RelationKind, ids []uuid.UUID) ([]uuid.UUID, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	target, err := relationModel(kind)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, id.String())
	}

	var found []string
	if err := conn(ctx, r.db).Model(target).Where("id IN ?", keys).Pluck("id", &found).Error; err != nil {
		return nil, err
	}
	return parseIDs(found, func(s string) string { return s })
}
