package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"catalog-go/internal/domain"
	"catalog-go/internal/service"
	"catalog-go/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/multierr"
)

func TestStorageKey(t *testing.T) {
	id := uuid.MustParse("6f1c2a7e-0000-4000-8000-000000000001")
	tests := []struct {
		name string
		a    service.Attachment
		ext  string
		want string
	}{
		{"普通扩展名", service.AttachmentThumb, "png", id.String() + "/thumb-t1.png"},
		{"带点且大写", service.AttachmentMedia, ".MP4", id.String() + "/media-t1.mp4"},
		{"半幅缩略图", service.AttachmentThumbHalf, "jpg", id.String() + "/thumb_half-t1.jpg"},
		{"无扩展名", service.AttachmentTrailer, "  ", id.String() + "/trailer-t1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, service.StorageKey(id, tt.a, "t1", tt.ext))
		})
	}
}

func TestUploadSaga_ReuploadUsesNewKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := mocks.NewMockBlobStorage(ctrl)
	rec := &recorder{}
	storage.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(rec.upload).Times(2)

	video := storedVideo(nil, nil, nil)
	saga := service.NewUploadSaga(storage, 1)

	_, err := saga.Run(context.Background(), video, []service.FileInput{file(service.AttachmentMedia, "mp4")})
	require.NoError(t, err)
	first := video.Media().FilePath

	_, err = saga.Run(context.Background(), video, []service.FileInput{file(service.AttachmentMedia, "mp4")})
	require.NoError(t, err)
	second := video.Media().FilePath

	assert.NotEqual(t, first, second)
	assert.Equal(t, "media.mp4", keyName(second))
	assert.Equal(t, []string{first}, video.Orphans())
}

func TestUploadSaga_ConcurrentUploadsApplyInCanonicalOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := mocks.NewMockBlobStorage(ctrl)
	rec := &recorder{}
	storage.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(rec.upload).Times(5)

	video := storedVideo(nil, nil, nil)
	video.UpdateThumb("old/thumb.gif")

	comp, err := service.NewUploadSaga(storage, 3).Run(context.Background(), video, allFiles())
	require.NoError(t, err)
	assert.Equal(t, 5, comp.Len())

	prefix := video.ID().String() + "/"
	got := []string{video.Thumb().Path, video.Banner().Path, video.ThumbHalf().Path, video.Media().FilePath, video.Trailer().FilePath}
	for _, p := range got {
		assert.True(t, strings.HasPrefix(p, prefix), p)
	}
	assert.Equal(t, []string{"thumb.png", "banner.png", "thumb_half.png", "media.mp4", "trailer.mp4"}, suffixes(got))
	assert.Equal(t, []string{"old/thumb.gif"}, video.Orphans())
}

func TestUploadSaga_NoFiles(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := mocks.NewMockBlobStorage(ctrl)

	comp, err := service.NewUploadSaga(storage, 0).Run(context.Background(), storedVideo(nil, nil, nil), nil)
	require.NoError(t, err)
	assert.Zero(t, comp.Len())
	require.NoError(t, comp.Compensate(context.Background()))
}

func TestUploadSaga_MutatorsNotAppliedOnFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := mocks.NewMockBlobStorage(ctrl)
	rec := &recorder{}

	gomock.InOrder(
		storage.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(rec.upload),
		storage.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("quota exceeded")),
	)
	storage.EXPECT().Delete(gomock.Any(), gomock.Any()).DoAndReturn(rec.delete)

	video := storedVideo(nil, nil, nil)
	_, err := service.NewUploadSaga(storage, 1).Run(context.Background(), video, []service.FileInput{
		file(service.AttachmentMedia, "mp4"),
		file(service.AttachmentThumb, "png"),
	})
	require.ErrorIs(t, err, service.ErrStorage)
	assert.Nil(t, video.Thumb())
	assert.Nil(t, video.Media())
	assert.Empty(t, video.Events())
}

func TestCompensation_ContinuesPastDeleteFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := mocks.NewMockBlobStorage(ctrl)
	rec := &recorder{}
	storage.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(rec.upload).Times(3)

	video := storedVideo(nil, nil, nil)
	comp, err := service.NewUploadSaga(storage, 1).Run(context.Background(), video, []service.FileInput{
		file(service.AttachmentThumb, "png"),
		file(service.AttachmentBanner, "png"),
		file(service.AttachmentMedia, "mp4"),
	})
	require.NoError(t, err)

	uploaded, _ := rec.snapshot()
	require.Equal(t, []string{"thumb.png", "banner.png", "media.mp4"}, suffixes(uploaded))
	gomock.InOrder(
		storage.EXPECT().Delete(gomock.Any(), uploaded[2]).Return(errors.New("timeout")),
		storage.EXPECT().Delete(gomock.Any(), uploaded[1]).Return(nil),
		storage.EXPECT().Delete(gomock.Any(), uploaded[0]).Return(errors.New("forbidden")),
	)

	err = comp.Compensate(context.Background())
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 2)
	assert.Zero(t, comp.Len())

	// 已执行过的补偿不会重复执行
	require.NoError(t, comp.Compensate(context.Background()))
}

func TestRelationValidator(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()

	t.Run("空列表不查询", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockRelationRepository(ctrl)
		v := service.NewRelationValidator(repo)
		require.NoError(t, v.Validate(context.Background(), domain.RelationGenres, nil))
		require.NoError(t, v.Validate(context.Background(), domain.RelationGenres, []uuid.UUID{}))
	})

	t.Run("重复 id 只查一次", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockRelationRepository(ctrl)
		repo.EXPECT().GetIDsByIDs(gomock.Any(), domain.RelationGenres, []uuid.UUID{a, b}).Return([]uuid.UUID{b, a}, nil)
		v := service.NewRelationValidator(repo)
		require.NoError(t, v.Validate(context.Background(), domain.RelationGenres, []uuid.UUID{a, b, a}))
	})

	t.Run("缺失 id 保持输入顺序", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockRelationRepository(ctrl)
		repo.EXPECT().GetIDsByIDs(gomock.Any(), domain.RelationCastMembers, []uuid.UUID{c, a, b}).Return([]uuid.UUID{a}, nil)
		v := service.NewRelationValidator(repo)

		err := v.Validate(context.Background(), domain.RelationCastMembers, []uuid.UUID{c, a, b})
		var rerr *domain.RelatedNotFoundError
		require.ErrorAs(t, err, &rerr)
		assert.Equal(t, domain.RelationCastMembers, rerr.Kind)
		assert.Equal(t, []uuid.UUID{c, b}, rerr.Missing)
	})

	t.Run("查询失败", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockRelationRepository(ctrl)
		dbErr := errors.New("db down")
		repo.EXPECT().GetIDsByIDs(gomock.Any(), domain.RelationCategories, gomock.Any()).Return(nil, dbErr)
		v := service.NewRelationValidator(repo)
		require.ErrorIs(t, v.Validate(context.Background(), domain.RelationCategories, []uuid.UUID{a}), dbErr)
	})
}
