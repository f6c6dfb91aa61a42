package memory

import (
	"context"
	"fmt"
	"time"

	"catalog-go/internal/domain"
	"catalog-go/internal/domain/search"
	"catalog-go/internal/repository"

	"github.com/google/uuid"
)

type VideoRepository struct {
	store *Store
}

func NewVideoRepository(store *Store) *VideoRepository {
	return &VideoRepository{store: store}
}

func cloneImage(img *domain.Image) *domain.Image {
	if img == nil {
		return nil
	}
	c := *img
	return &c
}

func cloneMedia(m *domain.Media) *domain.Media {
	if m == nil {
		return nil
	}
	c := *m
	return &c
}

func snapshot(v *domain.Video, version int64) domain.VideoState {
	return domain.VideoState{
		ID:           v.ID(),
		Title:        v.Title(),
		Description:  v.Description(),
		YearLaunched: v.YearLaunched(),
		Opened:       v.Opened(),
		Published:    v.Published(),
		Duration:     v.Duration(),
		Rating:       v.Rating(),
		CreatedAt:    v.CreatedAt(),
		Version:      version,
		Categories:   v.Categories(),
		Genres:       v.Genres(),
		CastMembers:  v.CastMembers(),
		Thumb:        cloneImage(v.Thumb()),
		Banner:       cloneImage(v.Banner()),
		ThumbHalf:    cloneImage(v.ThumbHalf()),
		Media:        cloneMedia(v.Media()),
		Trailer:      cloneMedia(v.Trailer()),
	}
}

func restore(s domain.VideoState) *domain.Video {
	s.Thumb = cloneImage(s.Thumb)
	s.Banner = cloneImage(s.Banner)
	s.ThumbHalf = cloneImage(s.ThumbHalf)
	s.Media = cloneMedia(s.Media)
	s.Trailer = cloneMedia(s.Trailer)
	return domain.RestoreVideo(s)
}

func (r *VideoRepository) current(id uuid.UUID) (domain.VideoState, bool) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	s, ok := r.store.videos[id]
	return s, ok
}

func (r *VideoRepository) Insert(ctx context.Context, v *domain.Video) error {
	st, err := activeTx(ctx)
	if err != nil {
		return err
	}
	state := snapshot(v, 1)
	st.ops = append(st.ops, func(videos map[uuid.UUID]domain.VideoState) error {
		if _, ok := videos[state.ID]; ok {
			return fmt.Errorf("video %s already exists", state.ID)
		}
		videos[state.ID] = state
		return nil
	})

	v.SetVersion(1)
	v.ClearDirtyRelations()
	st.Collect(v)
	return nil
}

// Update 暂存时和提交时都会检查版本号
func (r *VideoRepository) Update(ctx context.Context, v *domain.Video) error {
	st, err := activeTx(ctx)
	if err != nil {
		return err
	}
	stored, ok := r.current(v.ID())
	if !ok {
		return notFound("video", v.ID())
	}
	expected := v.Version()
	if stored.Version != expected {
		return repository.ErrConcurrentUpdate
	}

	state := snapshot(v, expected+1)
	st.ops = append(st.ops, func(videos map[uuid.UUID]domain.VideoState) error {
		cur, ok := videos[state.ID]
		if !ok {
			return notFound("video", state.ID)
		}
		if cur.Version != expected {
			return repository.ErrConcurrentUpdate
		}
		videos[state.ID] = state
		return nil
	})

	v.SetVersion(expected + 1)
	v.ClearDirtyRelations()
	st.Collect(v, domain.NewVideoUpdated(v.ID()))
	return nil
}

func (r *VideoRepository) Delete(ctx context.Context, v *domain.Video) error {
	st, err := activeTx(ctx)
	if err != nil {
		return err
	}
	if _, ok := r.current(v.ID()); !ok {
		return notFound("video", v.ID())
	}
	id := v.ID()
	st.ops = append(st.ops, func(videos map[uuid.UUID]domain.VideoState) error {
		if _, ok := videos[id]; !ok {
			return notFound("video", id)
		}
		delete(videos, id)
		return nil
	})

	st.AddOrphans(v.AttachmentPaths()...)
	st.Collect(v, domain.NewVideoDeleted(id))
	return nil
}

func (r *VideoRepository) Get(_ context.Context, id uuid.UUID) (*domain.Video, error) {
	s, ok := r.current(id)
	if !ok {
		return nil, notFound("video", id)
	}
	return restore(s), nil
}

var videoAccessor = search.Accessor[*domain.Video]{
	Text:      func(v *domain.Video) string { return v.Title() },
	ID:        func(v *domain.Video) string { return v.ID().String() },
	CreatedAt: func(v *domain.Video) time.Time { return v.CreatedAt() },
}

func (r *VideoRepository) Search(_ context.Context, in search.Input) (*search.Output[*domain.Video], error) {
	r.store.mu.RLock()
	all := make([]*domain.Video, 0, len(r.store.videos))
	for _, s := range r.store.videos {
		all = append(all, restore(s))
	}
	r.store.mu.RUnlock()
	return search.Apply(all, in, search.VideoSchema, videoAccessor), nil
}
