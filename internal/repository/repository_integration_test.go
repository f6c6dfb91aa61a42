package repository_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"catalog-go/internal/domain"
	"catalog-go/internal/domain/search"
	"catalog-go/internal/infra/database"
	"catalog-go/internal/repository"

	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type capturePublisher struct {
	mu     sync.Mutex
	events []domain.Event
}

func (p *capturePublisher) Publish(_ context.Context, events []domain.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, events...)
	return nil
}

func (p *capturePublisher) names() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.EventName())
	}
	return out
}

type captureStorage struct {
	mu      sync.Mutex
	deleted []string
}

func (s *captureStorage) Delete(_ context.Context, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleted = append(s.deleted, path)
	return nil
}

func startPostgres(ctx context.Context, t *testing.T) *gorm.DB {
	t.Helper()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_PASSWORD": "postgres",
			"POSTGRES_USER":     "postgres",
			"POSTGRES_DB":       "catalog",
		},
		WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
			return fmt.Sprintf("postgres://postgres:postgres@%s:%s/catalog?sslmode=disable", host, port.Port())
		}).WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Skipf("skip repository integration test: cannot start postgres container: %v", err)
	}
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	dsn := fmt.Sprintf("host=%s port=%s user=postgres password=postgres dbname=catalog sslmode=disable", host, port.Port())
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: gormlogger.Discard})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	return db
}

func newVideo(t *testing.T, title string) *domain.Video {
	t.Helper()
	v, err := domain.NewVideo(title, "desc", 2024, false, false, 90, domain.Rating14)
	require.NoError(t, err)
	return v
}

func inTx(ctx context.Context, t *testing.T, uow *repository.UnitOfWork, fn func(ctx context.Context) error) error {
	t.Helper()
	txCtx, err := uow.Begin(ctx)
	require.NoError(t, err)
	if err := fn(txCtx); err != nil {
		require.NoError(t, uow.Rollback(txCtx))
		return err
	}
	return uow.Commit(txCtx)
}

func TestRepositoriesPostgres(t *testing.T) {
	ctx := context.Background()
	db := startPostgres(ctx, t)

	publisher := &capturePublisher{}
	storage := &captureStorage{}
	uow := repository.NewUnitOfWork(db, storage, publisher)
	videos := repository.NewVideoRepository(db)
	relations := repository.NewRelationRepository(db)
	categories := repository.NewCategoryRepository(db)
	genres := repository.NewGenreRepository(db)
	castMembers := repository.NewCastMemberRepository(db)

	cat, err := domain.NewCategory("Drama", "", true)
	require.NoError(t, err)
	require.NoError(t, categories.Insert(ctx, cat))
	genre, err := domain.NewGenre("Thriller", true, cat.ID)
	require.NoError(t, err)
	require.NoError(t, genres.Insert(ctx, genre))
	member, err := domain.NewCastMember("Ann", domain.CastMemberActor)
	require.NoError(t, err)
	require.NoError(t, castMembers.Insert(ctx, member))

	t.Run("relation lookup returns existing ids only", func(t *testing.T) {
		found, err := relations.GetIDsByIDs(ctx, domain.RelationCategories, []uuid.UUID{cat.ID, uuid.New()})
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{cat.ID}, found)

		storedGenre, err := genres.Get(ctx, genre.ID)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{cat.ID}, storedGenre.Categories.IDs())
	})

	t.Run("insert update delete round trip", func(t *testing.T) {
		v := newVideo(t, "Round Trip")
		v.AddCategory(cat.ID)
		v.AddGenre(genre.ID)
		v.UpdateThumb(v.ID().String() + "/thumb.png")
		v.UpdateMedia(v.ID().String() + "/media.mp4")

		require.NoError(t, inTx(ctx, t, uow, func(ctx context.Context) error { return videos.Insert(ctx, v) }))
		assert.Equal(t, int64(1), v.Version())

		got, err := videos.Get(ctx, v.ID())
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{cat.ID}, got.Categories())
		assert.Equal(t, []uuid.UUID{genre.ID}, got.Genres())
		assert.Empty(t, got.CastMembers())
		require.NotNil(t, got.Media())
		assert.Equal(t, domain.MediaPending, got.Media().Status)
		assert.Nil(t, got.Banner())

		got.ReplaceRelations(domain.RelationCastMembers, []uuid.UUID{member.ID})
		got.UpdateThumb(got.ID().String() + "/thumb.jpg")
		require.NoError(t, inTx(ctx, t, uow, func(ctx context.Context) error { return videos.Update(ctx, got) }))
		assert.Equal(t, int64(2), got.Version())
		assert.Contains(t, storage.deleted, v.ID().String()+"/thumb.png")

		again, err := videos.Get(ctx, v.ID())
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{member.ID}, again.CastMembers())
		assert.Equal(t, []uuid.UUID{cat.ID}, again.Categories())
		assert.Equal(t, v.ID().String()+"/thumb.jpg", again.Thumb().Path)

		require.NoError(t, inTx(ctx, t, uow, func(ctx context.Context) error { return videos.Delete(ctx, again) }))
		_, err = videos.Get(ctx, v.ID())
		assert.True(t, errors.Is(err, domain.ErrNotFound))
		assert.Contains(t, storage.deleted, v.ID().String()+"/media.mp4")
		assert.Contains(t, publisher.names(), domain.EventVideoDeleted)
	})

	t.Run("stale version is rejected", func(t *testing.T) {
		v := newVideo(t, "Stale")
		require.NoError(t, inTx(ctx, t, uow, func(ctx context.Context) error { return videos.Insert(ctx, v) }))

		first, err := videos.Get(ctx, v.ID())
		require.NoError(t, err)
		second, err := videos.Get(ctx, v.ID())
		require.NoError(t, err)

		require.NoError(t, inTx(ctx, t, uow, func(ctx context.Context) error { return videos.Update(ctx, first) }))
		err = inTx(ctx, t, uow, func(ctx context.Context) error { return videos.Update(ctx, second) })
		assert.ErrorIs(t, err, repository.ErrConcurrentUpdate)
	})

	t.Run("rollback discards writes and events", func(t *testing.T) {
		before := len(publisher.names())
		v := newVideo(t, "Rolled Back")
		txCtx, err := uow.Begin(ctx)
		require.NoError(t, err)
		require.NoError(t, videos.Insert(txCtx, v))
		require.NoError(t, uow.Rollback(txCtx))

		_, err = videos.Get(ctx, v.ID())
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Len(t, publisher.names(), before)
	})

	t.Run("write outside unit of work fails", func(t *testing.T) {
		err := videos.Insert(ctx, newVideo(t, "No Tx"))
		assert.ErrorIs(t, err, repository.ErrNoTransaction)
	})

	t.Run("search filters and orders by title", func(t *testing.T) {
		for _, title := range []string{"Search B", "Search A", "search c", "Other"} {
			v := newVideo(t, title)
			require.NoError(t, inTx(ctx, t, uow, func(ctx context.Context) error { return videos.Insert(ctx, v) }))
		}

		out, err := videos.Search(ctx, search.Input{Search: "search", PerPage: 2, OrderBy: "title"})
		require.NoError(t, err)
		assert.Equal(t, int64(3), out.Total)
		require.Len(t, out.Items, 2)
		assert.Equal(t, "Search A", out.Items[0].Title())
		assert.Equal(t, "Search B", out.Items[1].Title())

		out, err = videos.Search(ctx, search.Input{Search: "search", Page: 2, PerPage: 2, OrderBy: "title"})
		require.NoError(t, err)
		require.Len(t, out.Items, 1)
		assert.Equal(t, "search c", out.Items[0].Title())
	})
}
