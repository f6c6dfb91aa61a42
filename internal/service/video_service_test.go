package service_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"catalog-go/internal/domain"
	"catalog-go/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestVideoService_Create_UploadFailureCompensatesAndPersistsNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newFixture(ctrl, 1)
	rec := &recorder{}
	uploadErr := errors.New("bucket unavailable")

	gomock.InOrder(
		f.storage.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(rec.upload),
		f.storage.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(rec.upload),
		f.storage.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("", uploadErr),
	)
	f.storage.EXPECT().Delete(gomock.Any(), gomock.Any()).DoAndReturn(rec.delete).Times(2)

	// 输入顺序与规范顺序不同
	in := createInput(
		file(service.AttachmentMedia, "mp4"),
		file(service.AttachmentBanner, "png"),
		file(service.AttachmentThumb, "png"),
	)
	_, err := f.svc.Create(context.Background(), in)

	require.ErrorIs(t, err, uploadErr)
	require.ErrorIs(t, err, service.ErrStorage)
	var serr *service.StorageError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "upload", serr.Op)

	uploaded, deleted := rec.snapshot()
	assert.Equal(t, []string{"thumb.png", "banner.png"}, suffixes(uploaded))
	assert.Equal(t, []string{uploaded[1], uploaded[0]}, deleted)
}

func TestVideoService_Create_CommitFailureCompensatesEveryUpload(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newFixture(ctrl, 1)
	rec := &recorder{}
	commitErr := errors.New("connection reset")

	f.storage.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(rec.upload).Times(5)
	f.storage.EXPECT().Delete(gomock.Any(), gomock.Any()).DoAndReturn(rec.delete).Times(5)
	f.uow.EXPECT().Begin(gomock.Any()).DoAndReturn(func(ctx context.Context) (context.Context, error) { return ctx, nil })
	f.videos.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
	f.uow.EXPECT().Commit(gomock.Any()).Return(commitErr)

	_, err := f.svc.Create(context.Background(), createInput(allFiles()...))

	require.ErrorIs(t, err, commitErr)
	require.ErrorIs(t, err, service.ErrCommit)
	uploaded, deleted := rec.snapshot()
	assert.Equal(t,
		[]string{"thumb.png", "banner.png", "thumb_half.png", "media.mp4", "trailer.mp4"},
		suffixes(uploaded))
	assert.ElementsMatch(t, uploaded, deleted)
}

func TestVideoService_Create_Succeeds(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newFixture(ctrl, 1)
	rec := &recorder{}
	cat := uuid.New()

	f.relations.EXPECT().GetIDsByIDs(gomock.Any(), domain.RelationCategories, []uuid.UUID{cat}).Return([]uuid.UUID{cat}, nil)
	f.storage.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(rec.upload).Times(2)
	f.expectCommit()

	var inserted *domain.Video
	f.videos.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, v *domain.Video) error {
		inserted = v
		return nil
	})

	in := createInput(file(service.AttachmentMedia, ".MP4"), file(service.AttachmentThumb, "png"))
	in.Relations = service.RelationIDs{Categories: []uuid.UUID{cat}}
	info, err := f.svc.Create(context.Background(), in)
	require.NoError(t, err)

	require.NotNil(t, inserted)
	assert.Equal(t, inserted.ID().String(), info.ID)
	assert.Equal(t, []string{cat.String()}, info.CategoriesIDs)
	assert.Empty(t, info.GenresIDs)
	require.NotNil(t, info.Media)
	assert.True(t, strings.HasPrefix(info.Media.FilePath, inserted.ID().String()+"/"))
	assert.Equal(t, "media.mp4", keyName(info.Media.FilePath))
	assert.Equal(t, string(domain.MediaPending), info.Media.Status)
	require.NotNil(t, info.Thumb)
	assert.Nil(t, info.Banner)

	names := make([]string, 0)
	for _, e := range inserted.Events() {
		names = append(names, e.EventName())
	}
	assert.Equal(t, []string{domain.EventVideoCreated, domain.EventVideoMediaUploaded}, names)
}

func TestVideoService_Create_MissingRelationsNamesOnlyMissingIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newFixture(ctrl, 1)
	c1, c2, c3 := uuid.New(), uuid.New(), uuid.New()

	f.relations.EXPECT().
		GetIDsByIDs(gomock.Any(), domain.RelationCategories, []uuid.UUID{c1, c2, c3}).
		Return([]uuid.UUID{c3, c1}, nil)

	in := createInput(file(service.AttachmentThumb, "png"))
	in.Relations = service.RelationIDs{Categories: []uuid.UUID{c1, c2, c3}}
	_, err := f.svc.Create(context.Background(), in)

	require.ErrorIs(t, err, domain.ErrRelatedAggregateNotFound)
	var rerr *domain.RelatedNotFoundError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, []uuid.UUID{c2}, rerr.Missing)
	assert.Contains(t, err.Error(), c2.String())
	assert.NotContains(t, err.Error(), c1.String())
	assert.NotContains(t, err.Error(), c3.String())
}

func TestVideoService_Create_ValidationFailsBeforeAnyIO(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newFixture(ctrl, 1)

	in := createInput(file(service.AttachmentThumb, "png"))
	in.Title = ""
	in.Duration = 0
	_, err := f.svc.Create(context.Background(), in)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Errors, 2)
}

func TestVideoService_Create_CancelledMidUploadCompensates(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newFixture(ctrl, 1)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	rec := &recorder{}

	gomock.InOrder(
		f.storage.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(rec.upload),
		f.storage.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, _ string, _ io.Reader, _ int64, _ string) (string, error) {
				cancel()
				<-ctx.Done()
				return "", ctx.Err()
			}),
	)
	f.storage.EXPECT().Delete(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, path string) error {
		require.NoError(t, ctx.Err(), "compensation must not observe the caller's cancellation")
		return rec.delete(ctx, path)
	})

	_, err := f.svc.Create(ctx, createInput(allFiles()...))

	require.ErrorIs(t, err, context.Canceled)
	uploaded, deleted := rec.snapshot()
	assert.Equal(t, uploaded, deleted)
}

func TestVideoService_Update_RelationBranches(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newFixture(ctrl, 1)
	c1, g1, m1, m2 := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	video := storedVideo([]uuid.UUID{c1}, []uuid.UUID{g1}, []uuid.UUID{m1})

	f.videos.EXPECT().Get(gomock.Any(), video.ID()).Return(video, nil)
	// 只有非空列表会触发存在性查询
	f.relations.EXPECT().GetIDsByIDs(gomock.Any(), domain.RelationCastMembers, []uuid.UUID{m2}).Return([]uuid.UUID{m2}, nil)
	f.expectCommit()

	var saved *domain.Video
	f.videos.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, v *domain.Video) error {
		saved = v
		return nil
	})

	title := "Renamed"
	info, err := f.svc.Update(context.Background(), &service.UpdateVideoInput{
		ID:    video.ID(),
		Title: &title,
		Relations: service.RelationIDs{
			Categories:  nil,
			Genres:      []uuid.UUID{},
			CastMembers: []uuid.UUID{m2},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "Renamed", info.Title)
	assert.Equal(t, "Stored video", info.Description)
	assert.Equal(t, []string{c1.String()}, info.CategoriesIDs)
	assert.Empty(t, info.GenresIDs)
	assert.Equal(t, []string{m2.String()}, info.CastMembersIDs)
	require.NotNil(t, saved)
	assert.Equal(t, []domain.RelationKind{domain.RelationGenres, domain.RelationCastMembers}, saved.DirtyRelations())
}

func TestVideoService_Update_ValidationLeavesStoreUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newFixture(ctrl, 1)
	video := storedVideo(nil, nil, nil)
	f.videos.EXPECT().Get(gomock.Any(), video.ID()).Return(video, nil)

	empty := ""
	_, err := f.svc.Update(context.Background(), &service.UpdateVideoInput{ID: video.ID(), Title: &empty})

	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, "Stored", video.Title())
}

func TestVideoService_Update_PersistFailureRollsBackAndCompensates(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newFixture(ctrl, 1)
	video := storedVideo(nil, nil, nil)
	rec := &recorder{}
	conflict := errors.New("concurrent update")

	f.videos.EXPECT().Get(gomock.Any(), video.ID()).Return(video, nil)
	f.storage.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(rec.upload)
	f.uow.EXPECT().Begin(gomock.Any()).DoAndReturn(func(ctx context.Context) (context.Context, error) { return ctx, nil })
	f.videos.EXPECT().Update(gomock.Any(), video).Return(conflict)
	f.uow.EXPECT().Rollback(gomock.Any()).Return(nil)
	f.storage.EXPECT().Delete(gomock.Any(), gomock.Any()).DoAndReturn(rec.delete)

	_, err := f.svc.Update(context.Background(), &service.UpdateVideoInput{
		ID:    video.ID(),
		Files: []service.FileInput{file(service.AttachmentBanner, "jpg")},
	})
	require.ErrorIs(t, err, conflict)
	uploaded, deleted := rec.snapshot()
	assert.Equal(t, []string{"banner.jpg"}, suffixes(uploaded))
	assert.Equal(t, uploaded, deleted)
}

func TestVideoService_UploadMedias(t *testing.T) {
	t.Run("视频不存在", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newFixture(ctrl, 1)
		id := uuid.New()
		f.videos.EXPECT().Get(gomock.Any(), id).Return(nil, fmt.Errorf("video %s: %w", id, domain.ErrNotFound))

		err := f.svc.UploadMedias(context.Background(), &service.UploadMediasInput{
			VideoID: id,
			Files:   []service.FileInput{file(service.AttachmentTrailer, "mp4")},
		})
		require.ErrorIs(t, err, service.ErrVideoNotFound)
	})

	t.Run("上传预告片", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newFixture(ctrl, 1)
		rec := &recorder{}
		video := storedVideo(nil, nil, nil)

		f.videos.EXPECT().Get(gomock.Any(), video.ID()).Return(video, nil)
		f.storage.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(rec.upload)
		f.expectCommit()
		f.videos.EXPECT().Update(gomock.Any(), video).Return(nil)

		err := f.svc.UploadMedias(context.Background(), &service.UploadMediasInput{
			VideoID: video.ID(),
			Files:   []service.FileInput{file(service.AttachmentTrailer, "mp4")},
		})
		require.NoError(t, err)
		require.NotNil(t, video.Trailer())
		assert.Equal(t, "trailer.mp4", keyName(video.Trailer().FilePath))
		assert.Equal(t, domain.MediaPending, video.Trailer().Status)
		assert.Nil(t, video.Media())
		assert.Empty(t, video.Events(), "trailer uploads do not request encoding")
	})

	t.Run("重复附件", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newFixture(ctrl, 1)
		video := storedVideo(nil, nil, nil)
		f.videos.EXPECT().Get(gomock.Any(), video.ID()).Return(video, nil)

		err := f.svc.UploadMedias(context.Background(), &service.UploadMediasInput{
			VideoID: video.ID(),
			Files:   []service.FileInput{file(service.AttachmentThumb, "png"), file(service.AttachmentThumb, "jpg")},
		})
		require.ErrorIs(t, err, service.ErrInvalidUpload)
	})
}

func TestVideoService_UploadMedias_CommitFailureKeepsStoredMedia(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newFixture(ctrl, 1)
	rec := &recorder{}
	commitErr := errors.New("connection reset")

	id := uuid.New()
	stored := id.String() + "/media.mp4"
	video := domain.RestoreVideo(domain.VideoState{
		ID:           id,
		Title:        "Stored",
		Description:  "Stored video",
		YearLaunched: 2010,
		Duration:     90,
		Rating:       domain.RatingL,
		Version:      1,
		Media:        &domain.Media{FilePath: stored, Status: domain.MediaCompleted, EncodedPath: id.String() + "/encoded/media.mp4"},
	})

	f.videos.EXPECT().Get(gomock.Any(), id).Return(video, nil)
	f.storage.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(rec.upload)
	f.uow.EXPECT().Begin(gomock.Any()).DoAndReturn(func(ctx context.Context) (context.Context, error) { return ctx, nil })
	f.videos.EXPECT().Update(gomock.Any(), video).Return(nil)
	f.uow.EXPECT().Commit(gomock.Any()).Return(commitErr)
	f.storage.EXPECT().Delete(gomock.Any(), gomock.Any()).DoAndReturn(rec.delete)

	err := f.svc.UploadMedias(context.Background(), &service.UploadMediasInput{
		VideoID: id,
		Files:   []service.FileInput{file(service.AttachmentMedia, "mp4")},
	})
	require.ErrorIs(t, err, commitErr)

	uploaded, deleted := rec.snapshot()
	require.Len(t, uploaded, 1)
	assert.NotEqual(t, stored, uploaded[0])
	assert.Equal(t, uploaded, deleted)
	assert.NotContains(t, deleted, stored)
}

func TestVideoService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newFixture(ctrl, 1)
	video := storedVideo(nil, nil, nil)

	f.videos.EXPECT().Get(gomock.Any(), video.ID()).Return(video, nil)
	f.expectCommit()
	f.videos.EXPECT().Delete(gomock.Any(), video).Return(nil)

	require.NoError(t, f.svc.Delete(context.Background(), video.ID()))
}

func TestVideoService_Get_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newFixture(ctrl, 1)
	id := uuid.New()
	f.videos.EXPECT().Get(gomock.Any(), id).Return(nil, domain.ErrNotFound)

	_, err := f.svc.Get(context.Background(), id)
	require.ErrorIs(t, err, service.ErrVideoNotFound)
	require.ErrorIs(t, err, domain.ErrNotFound)
}
