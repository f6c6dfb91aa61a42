package repository

import (
	"context"
	"errors"
	"fmt"

	"catalog-go/internal/domain"
	"catalog-go/internal/domain/search"
	"catalog-go/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Insert(ctx context.Context, c *domain.Category) error {
	row := &model.Category{
		ID:          c.ID.String(),
		Name:        c.Name,
		Description: c.Description,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
	}
	return conn(ctx, r.db).Create(row).Error
}

func (r *CategoryRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	var row model.Category
	if err := conn(ctx, r.db).Where("id = ?", id.String()).First(&row).Error; err != nil {
		return nil, wrapNotFound(err, "category", id)
	}
	return toCategory(&row)
}

func (r *CategoryRepository) Search(ctx context.Context, in search.Input) (*search.Output[*domain.Category], error) {
	in = in.Normalize()
	query, total, err := paginate(conn(ctx, r.db).Model(&model.Category{}), in, search.CatalogSchema)
	if err != nil {
		return nil, err
	}
	var rows []model.Category
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return collect(rows, in, total, toCategory)
}

func toCategory(row *model.Category) (*domain.Category, error) {
	id, err := uuid.Parse(row.ID)
	if err != nil {
		return nil, err
	}
	return &domain.Category{ID: id, Name: row.Name, Description: row.Description, IsActive: row.IsActive, CreatedAt: row.CreatedAt}, nil
}

type GenreRepository struct {
	db *gorm.DB
}

func NewGenreRepository(db *gorm.DB) *GenreRepository {
	return &GenreRepository{db: db}
}

// Insert 插入类型及其分类关联
func (r *GenreRepository) Insert(ctx context.Context, g *domain.Genre) error {
	row := &model.Genre{
		ID:        g.ID.String(),
		Name:      g.Name,
		IsActive:  g.IsActive,
		CreatedAt: g.CreatedAt,
	}
	for _, id := range g.Categories.IDs() {
		row.Categories = append(row.Categories, model.GenreCategory{GenreID: row.ID, CategoryID: id.String()})
	}
	return conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		return tx.Create(row).Error
	})
}

func (r *GenreRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Genre, error) {
	var row model.Genre
	if err := conn(ctx, r.db).Preload("Categories").Where("id = ?", id.String()).First(&row).Error; err != nil {
		return nil, wrapNotFound(err, "genre", id)
	}
	return toGenre(&row)
}

func (r *GenreRepository) Search(ctx context.Context, in search.Input) (*search.Output[*domain.Genre], error) {
	in = in.Normalize()
	query, total, err := paginate(conn(ctx, r.db).Model(&model.Genre{}), in, search.CatalogSchema)
	if err != nil {
		return nil, err
	}
	var rows []model.Genre
	if err := query.Preload("Categories").Find(&rows).Error; err != nil {
		return nil, err
	}
	return collect(rows, in, total, toGenre)
}

func toGenre(row *model.Genre) (*domain.Genre, error) {
	id, err := uuid.Parse(row.ID)
	if err != nil {
		return nil, err
	}
	categories, err := parseIDs(row.Categories, func(r model.GenreCategory) string { return r.CategoryID })
	if err != nil {
		return nil, err
	}
	return &domain.Genre{ID: id, Name: row.Name, IsActive: row.IsActive, Categories: domain.NewIDSet(categories...), CreatedAt: row.CreatedAt}, nil
}

type CastMemberRepository struct {
	db *gorm.DB
}

func NewCastMemberRepository(db *gorm.DB) *CastMemberRepository {
	return &CastMemberRepository{db: db}
}

func (r *CastMemberRepository) Insert(ctx context.Context, m *domain.CastMember) error {
	row := &model.CastMember{
		ID:        m.ID.String(),
		Name:      m.Name,
		Type:      string(m.Type),
		CreatedAt: m.CreatedAt,
	}
	return conn(ctx, r.db).Create(row).Error
}

func (r *CastMemberRepository) Get(ctx context.Context, id uuid.UUID) (*domain.CastMember, error) {
	var row model.CastMember
	if err := conn(ctx, r.db).Where("id = ?", id.String()).First(&row).Error; err != nil {
		return nil, wrapNotFound(err, "cast member", id)
	}
	return toCastMember(&row)
}

func (r *CastMemberRepository) Search(ctx context.Context, in search.Input) (*search.Output[*domain.CastMember], error) {
	in = in.Normalize()
	query, total, err := paginate(conn(ctx, r.db).Model(&model.CastMember{}), in, search.CatalogSchema)
	if err != nil {
		return nil, err
	}
	var rows []model.CastMember
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return collect(rows, in, total, toCastMember)
}

func toCastMember(row *model.CastMember) (*domain.CastMember, error) {
	id, err := uuid.Parse(row.ID)
	if err != nil {
		return nil, err
	}
	return &domain.CastMember{ID: id, Name: row.Name, Type: domain.CastMemberType(row.Type), CreatedAt: row.CreatedAt}, nil
}

func wrapNotFound(err error, entity string, id uuid.UUID) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}
	return err
}

func collect[R, T any](rows []R, in search.Input, total int64, conv func(*R) (T, error)) (*search.Output[T], error) {
	items := make([]T, 0, len(rows))
	for i := range rows {
		item, err := conv(&rows[i])
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return &search.Output[T]{CurrentPage: in.Page, PerPage: in.PerPage, Total: total, Items: items}, nil
}
