package service

import (
	"context"

	"catalog-go/internal/api/dto"
	"catalog-go/internal/domain"
	"catalog-go/internal/domain/search"
	"catalog-go/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CatalogService struct {
	categories  CategoryRepository
	genres      GenreRepository
	castMembers CastMemberRepository
	relations   *RelationValidator
}

func NewCatalogService(categories CategoryRepository, genres GenreRepository, castMembers CastMemberRepository, relations RelationRepository) *CatalogService {
	return &CatalogService{
		categories:  categories,
		genres:      genres,
		castMembers: castMembers,
		relations:   NewRelationValidator(relations),
	}
}

// CreateCategory 创建分类
func (s *CatalogService) CreateCategory(ctx context.Context, req *dto.CategoryCreateRequest) (*dto.CategoryInfo, error) {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	c, err := domain.NewCategory(req.Name, req.Description, isActive)
	if err != nil {
		return nil, err
	}
	if err := s.categories.Insert(ctx, c); err != nil {
		return nil, err
	}
	logger.Info("Category created", zap.String("category_id", c.ID.String()))
	return toCategoryInfo(c), nil
}

func (s *CatalogService) GetCategory(ctx context.Context, id uuid.UUID) (*dto.CategoryInfo, error) {
	c, err := s.categories.Get(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrCategoryNotFound)
	}
	return toCategoryInfo(c), nil
}

func (s *CatalogService) ListCategories(ctx context.Context, in search.Input) (*dto.ListData[dto.CategoryInfo], error) {
	out, err := s.categories.Search(ctx, in.Normalize())
	if err != nil {
		return nil, err
	}
	return toListData(search.Map(out, func(c *domain.Category) dto.CategoryInfo { return *toCategoryInfo(c) })), nil
}

// CreateGenre 创建类型；引用的分类必须存在
func (s *CatalogService) CreateGenre(ctx context.Context, req *dto.GenreCreateRequest) (*dto.GenreInfo, error) {
	categoryIDs, err := ParseIDs(req.CategoriesIDs)
	if err != nil {
		return nil, err
	}
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	g, err := domain.NewGenre(req.Name, isActive, categoryIDs...)
	if err != nil {
		return nil, err
	}
	if err := s.relations.Validate(ctx, domain.RelationCategories, g.Categories.IDs()); err != nil {
		return nil, err
	}
	if err := s.genres.Insert(ctx, g); err != nil {
		return nil, err
	}
	logger.Info("Genre created", zap.String("genre_id", g.ID.String()))
	return toGenreInfo(g), nil
}

func (s *CatalogService) GetGenre(ctx context.Context, id uuid.UUID) (*dto.GenreInfo, error) {
	g, err := s.genres.Get(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrGenreNotFound)
	}
	return toGenreInfo(g), nil
}

func (s *CatalogService) ListGenres(ctx context.Context, in search.Input) (*dto.ListData[dto.GenreInfo], error) {
	out, err := s.genres.Search(ctx, in.Normalize())
	if err != nil {
		return nil, err
	}
	return toListData(search.Map(out, func(g *domain.Genre) dto.GenreInfo { return *toGenreInfo(g) })), nil
}

// CreateCastMember 创建演职人员
func (s *CatalogService) CreateCastMember(ctx context.Context, req *dto.CastMemberCreateRequest) (*dto.CastMemberInfo, error) {
	m, err := domain.NewCastMember(req.Name, domain.CastMemberType(req.Type))
	if err != nil {
		return nil, err
	}
	if err := s.castMembers.Insert(ctx, m); err != nil {
		return nil, err
	}
	logger.Info("Cast member created", zap.String("cast_member_id", m.ID.String()))
	return toCastMemberInfo(m), nil
}

func (s *CatalogService) GetCastMember(ctx context.Context, id uuid.UUID) (*dto.CastMemberInfo, error) {
	m, err := s.castMembers.Get(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrCastMemberNotFound)
	}
	return toCastMemberInfo(m), nil
}

func (s *CatalogService) ListCastMembers(ctx context.Context, in search.Input) (*dto.ListData[dto.CastMemberInfo], error) {
	out, err := s.castMembers.Search(ctx, in.Normalize())
	if err != nil {
		return nil, err
	}
	return toListData(search.Map(out, func(m *domain.CastMember) dto.CastMemberInfo { return *toCastMemberInfo(m) })), nil
}

// ParseIDs 解析字符串 id 列表；nil 保持为 nil
func ParseIDs(raw []string) ([]uuid.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	ids := make([]uuid.UUID, 0, len(raw))
	var n domain.Notification
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			n.Addf("%q is not a valid id", s)
			continue
		}
		ids = append(ids, id)
	}
	if err := n.Err("request"); err != nil {
		return nil, err
	}
	return ids, nil
}

func toCategoryInfo(c *domain.Category) *dto.CategoryInfo {
	return &dto.CategoryInfo{
		ID:          c.ID.String(),
		Name:        c.Name,
		Description: c.Description,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
	}
}

func toGenreInfo(g *domain.Genre) *dto.GenreInfo {
	return &dto.GenreInfo{
		ID:            g.ID.String(),
		Name:          g.Name,
		IsActive:      g.IsActive,
		CategoriesIDs: idStrings(g.Categories.IDs()),
		CreatedAt:     g.CreatedAt,
	}
}

func toCastMemberInfo(m *domain.CastMember) *dto.CastMemberInfo {
	return &dto.CastMemberInfo{
		ID:        m.ID.String(),
		Name:      m.Name,
		Type:      string(m.Type),
		CreatedAt: m.CreatedAt,
	}
}
