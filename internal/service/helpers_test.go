package service_test

import (
	"context"
	"io"
	"path"
	"strings"
	"sync"
	"time"

	"catalog-go/internal/domain"
	"catalog-go/internal/service"
	"catalog-go/internal/service/mocks"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	videos    *mocks.MockVideoRepository
	relations *mocks.MockRelationRepository
	storage   *mocks.MockBlobStorage
	uow       *mocks.MockUnitOfWork
	svc       *service.VideoService
}

func newFixture(ctrl *gomock.Controller, concurrency int) *fixture {
	f := &fixture{
		videos:    mocks.NewMockVideoRepository(ctrl),
		relations: mocks.NewMockRelationRepository(ctrl),
		storage:   mocks.NewMockBlobStorage(ctrl),
		uow:       mocks.NewMockUnitOfWork(ctrl),
	}
	saga := service.NewUploadSaga(f.storage, concurrency).WithCompensationTimeout(time.Second)
	f.svc = service.NewVideoService(f.videos, f.relations, f.uow, saga)
	return f
}

// expectCommit 期望一次成功的 Begin/Commit
func (f *fixture) expectCommit() {
	f.uow.EXPECT().Begin(gomock.Any()).DoAndReturn(func(ctx context.Context) (context.Context, error) { return ctx, nil })
	f.uow.EXPECT().Commit(gomock.Any()).Return(nil)
}

// recorder 记录上传与删除的路径
type recorder struct {
	mu       sync.Mutex
	uploaded []string
	deleted  []string
}

func (r *recorder) upload(_ context.Context, key string, body io.Reader, _ int64, _ string) (string, error) {
	_, _ = io.Copy(io.Discard, body)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.uploaded = append(r.uploaded, key)
	return key, nil
}

func (r *recorder) delete(_ context.Context, path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deleted = append(r.deleted, path)
	return nil
}

func (r *recorder) snapshot() (uploaded, deleted []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.uploaded...), append([]string(nil), r.deleted...)
}

func file(a service.Attachment, ext string) service.FileInput {
	return service.FileInput{
		Attachment:  a,
		Body:        strings.NewReader("content of " + string(a)),
		Size:        int64(len("content of " + string(a))),
		Extension:   ext,
		ContentType: "application/octet-stream",
	}
}

func allFiles() []service.FileInput {
	return []service.FileInput{
		file(service.AttachmentTrailer, "mp4"),
		file(service.AttachmentMedia, "mp4"),
		file(service.AttachmentThumbHalf, "png"),
		file(service.AttachmentBanner, "png"),
		file(service.AttachmentThumb, "png"),
	}
}

func createInput(files ...service.FileInput) *service.CreateVideoInput {
	return &service.CreateVideoInput{
		Title:        "The Matrix",
		Description:  "A hacker learns the truth",
		YearLaunched: 1999,
		Duration:     136,
		Rating:       domain.Rating14,
		Files:        files,
	}
}

func storedVideo(categories, genres, castMembers []uuid.UUID) *domain.Video {
	return domain.RestoreVideo(domain.VideoState{
		ID:           uuid.New(),
		Title:        "Stored",
		Description:  "Stored video",
		YearLaunched: 2010,
		Duration:     90,
		Rating:       domain.RatingL,
		CreatedAt:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Version:      3,
		Categories:   categories,
		Genres:       genres,
		CastMembers:  castMembers,
	})
}

// keyName 去掉存储 key 中的视频 id 与上传 token：<id>/media-<token>.mp4 -> media.mp4
func keyName(key string) string {
	name := path.Base(key)
	ext := path.Ext(name)
	base := strings.TrimSuffix(name, ext)
	if i := strings.LastIndex(base, "-"); i >= 0 {
		base = base[:i]
	}
	return base + ext
}

func suffixes(paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		out = append(out, keyName(p))
	}
	return out
}
