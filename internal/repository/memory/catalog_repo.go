package memory

import (
	"context"
	"fmt"
	"time"

	"catalog-go/internal/domain"
	"catalog-go/internal/domain/search"

	"github.com/google/uuid"
)

type CategoryRepository struct {
	store *Store
}

func NewCategoryRepository(store *Store) *CategoryRepository {
	return &CategoryRepository{store: store}
}

func (r *CategoryRepository) Insert(_ context.Context, c *domain.Category) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.categories[c.ID]; ok {
		return fmt.Errorf("category %s already exists", c.ID)
	}
	r.store.categories[c.ID] = *c
	return nil
}

func (r *CategoryRepository) Get(_ context.Context, id uuid.UUID) (*domain.Category, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	c, ok := r.store.categories[id]
	if !ok {
		return nil, notFound("category", id)
	}
	return &c, nil
}

func (r *CategoryRepository) Search(_ context.Context, in search.Input) (*search.Output[*domain.Category], error) {
	r.store.mu.RLock()
	all := make([]*domain.Category, 0, len(r.store.categories))
	for _, c := range r.store.categories {
		c := c
		all = append(all, &c)
	}
	r.store.mu.RUnlock()
	return search.Apply(all, in, search.CatalogSchema, search.Accessor[*domain.Category]{
		Text:      func(c *domain.Category) string { return c.Name },
		ID:        func(c *domain.Category) string { return c.ID.String() },
		CreatedAt: func(c *domain.Category) time.Time { return c.CreatedAt },
	}), nil
}

type GenreRepository struct {
	store *Store
}

func NewGenreRepository(store *Store) *GenreRepository {
	return &GenreRepository{store: store}
}

func cloneGenre(g domain.Genre) *domain.Genre {
	g.Categories = domain.NewIDSet(g.Categories.IDs()...)
	return &g
}

func (r *GenreRepository) Insert(_ context.Context, g *domain.Genre) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.genres[g.ID]; ok {
		return fmt.Errorf("genre %s already exists", g.ID)
	}
	r.store.genres[g.ID] = *cloneGenre(*g)
	return nil
}

func (r *GenreRepository) Get(_ context.Context, id uuid.UUID) (*domain.Genre, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	g, ok := r.store.genres[id]
	if !ok {
		return nil, notFound("genre", id)
	}
	return cloneGenre(g), nil
}

func (r *GenreRepository) Search(_ context.Context, in search.Input) (*search.Output[*domain.Genre], error) {
	r.store.mu.RLock()
	all := make([]*domain.Genre, 0, len(r.store.genres))
	for _, g := range r.store.genres {
		all = append(all, cloneGenre(g))
	}
	r.store.mu.RUnlock()
	return search.Apply(all, in, search.CatalogSchema, search.Accessor[*domain.Genre]{
		Text:      func(g *domain.Genre) string { return g.Name },
		ID:        func(g *domain.Genre) string { return g.ID.String() },
		CreatedAt: func(g *domain.Genre) time.Time { return g.CreatedAt },
	}), nil
}

type CastMemberRepository struct {
	store *Store
}

func NewCastMemberRepository(store *Store) *CastMemberRepository {
	return &CastMemberRepository{store: store}
}

func (r *CastMemberRepository) Insert(_ context.Context, m *domain.CastMember) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.castMembers[m.ID]; ok {
		return fmt.Errorf("cast member %s already exists", m.ID)
	}
	r.store.castMembers[m.ID] = *m
	return nil
}

func (r *CastMemberRepository) Get(_ context.Context, id uuid.UUID) (*domain.CastMember, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	m, ok := r.store.castMembers[id]
	if !ok {
		return nil, notFound("cast member", id)
	}
	return &m, nil
}

func (r *CastMemberRepository) Search(_ context.Context, in search.Input) (*search.Output[*domain.CastMember], error) {
	r.store.mu.RLock()
	all := make([]*domain.CastMember, 0, len(r.store.castMembers))
	for _, m := range r.store.castMembers {
		m := m
		all = append(all, &m)
	}
	r.store.mu.RUnlock()
	return search.Apply(all, in, search.CatalogSchema, search.Accessor[*domain.CastMember]{
		Text:      func(m *domain.CastMember) string { return m.Name },
		ID:        func(m *domain.CastMember) string { return m.ID.String() },
		CreatedAt: func(m *domain.CastMember) time.Time { return m.CreatedAt },
	}), nil
}

// RelationRepository 按种类查询已存在的 ID
type RelationRepository struct {
	store *Store
}

func NewRelationRepository(store *Store) *RelationRepository {
	return &RelationRepository{store: store}
}

func (r *RelationRepository) GetIDsByIDs(_ context.Context, kind domain.RelationKind, ids []uuid.UUID) ([]uuid.UUID, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var exists func(uuid.UUID) bool
	switch kind {
	case domain.RelationCategories:
		exists = func(id uuid.UUID) bool { _, ok := r.store.categories[id]; return ok }
	case domain.RelationGenres:
		exists = func(id uuid.UUID) bool { _, ok := r.store.genres[id]; return ok }
	case domain.RelationCastMembers:
		exists = func(id uuid.UUID) bool { _, ok := r.store.castMembers[id]; return ok }
	default:
		return nil, fmt.Errorf("unknown relation kind %q", kind)
	}

	var out []uuid.UUID
	for _, id := range ids {
		if exists(id) {
			out = append(out, id)
		}
	}
	return out, nil
}
