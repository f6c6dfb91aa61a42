package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"catalog-go/internal/api/dto"
	"catalog-go/internal/api/handler"
	"catalog-go/internal/api/response"
	"catalog-go/internal/api/router"
	"catalog-go/internal/domain"
	"catalog-go/internal/repository/memory"
	"catalog-go/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type blobs struct {
	mu      sync.Mutex
	objects map[string]int
	failOn  string
}

func (b *blobs) Upload(_ context.Context, key string, body io.Reader, _ int64, _ string) (string, error) {
	if b.failOn != "" && strings.Contains(key, b.failOn) {
		return "", errors.New("bucket unavailable")
	}
	n, err := io.Copy(io.Discard, body)
	if err != nil {
		return "", err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.objects[key] = int(n)
	return key, nil
}

func (b *blobs) Delete(_ context.Context, path string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.objects, path)
	return nil
}

func (b *blobs) count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.objects)
}

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, []domain.Event) error { return nil }

func newServer(t *testing.T) (*gin.Engine, *blobs) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := memory.NewStore()
	storage := &blobs{objects: make(map[string]int)}
	uow := memory.NewUnitOfWork(store, storage, nopPublisher{})
	videos := memory.NewVideoRepository(store)
	relations := memory.NewRelationRepository(store)

	saga := service.NewUploadSaga(storage, 2)
	videoService := service.NewVideoService(videos, relations, uow, saga)
	catalogService := service.NewCatalogService(
		memory.NewCategoryRepository(store),
		memory.NewGenreRepository(store),
		memory.NewCastMemberRepository(store),
		relations,
	)

	r := gin.New()
	router.Setup(r, router.Handlers{
		Video:   handler.NewVideoHandler(videoService, 1<<20),
		Catalog: handler.NewCatalogHandler(catalogService),
		Search:  handler.NewSearchHandler(service.NewIndexerService(videos, nil)),
	})
	return r, storage
}

func do(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func jsonRequest(method, path string, body any) *http.Request {
	data, _ := json.Marshal(body)
	req := httptest.NewRequest(method, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func multipartRequest(t *testing.T, method, path string, fields map[string][]string, files map[string]string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, vs := range fields {
		for _, v := range vs {
			require.NoError(t, mw.WriteField(k, v))
		}
	}
	for field, name := range files {
		fw, err := mw.CreateFormFile(field, name)
		require.NoError(t, err)
		_, err = fw.Write([]byte("content of " + name))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out struct {
		Data T `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out.Data
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) response.ErrorInfo {
	t.Helper()
	var out response.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out.Error
}

func createCategory(t *testing.T, r http.Handler, name string) string {
	t.Helper()
	w := do(r, jsonRequest(http.MethodPost, "/api/v1/categories", gin.H{"name": name}))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[dto.CategoryInfo](t, w).ID
}

func videoFields(categories ...string) map[string][]string {
	return map[string][]string{
		"title":          {"Space Odyssey"},
		"description":    {"A journey"},
		"year_launched":  {"1968"},
		"duration":       {"149"},
		"rating":         {"L"},
		"categories_ids": categories,
	}
}

func TestVideoEndpoints(t *testing.T) {
	r, storage := newServer(t)
	cat := createCategory(t, r, "Sci-Fi")

	w := do(r, multipartRequest(t, http.MethodPost, "/api/v1/videos", videoFields(cat), map[string]string{
		"media_file": "movie.mp4",
		"thumb_file": "cover.PNG",
	}))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[dto.VideoInfo](t, w)
	assert.Equal(t, []string{cat}, created.CategoriesIDs)
	require.NotNil(t, created.Media)
	assert.Regexp(t, "^"+created.ID+`/media-[0-9a-f]{32}\.mp4$`, created.Media.FilePath)
	assert.Equal(t, "pending", created.Media.Status)
	require.NotNil(t, created.Thumb)
	assert.Regexp(t, "^"+created.ID+`/thumb-[0-9a-f]{32}\.png$`, created.Thumb.Path)
	assert.Equal(t, 2, storage.count())

	t.Run("更新清空分类", func(t *testing.T) {
		w := do(r, jsonRequest(http.MethodPut, "/api/v1/videos/"+created.ID, gin.H{
			"title":          "Space Odyssey (Remastered)",
			"categories_ids": []string{},
		}))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		got := decode[dto.VideoInfo](t, w)
		assert.Equal(t, "Space Odyssey (Remastered)", got.Title)
		assert.Empty(t, got.CategoriesIDs)
		assert.Equal(t, "A journey", got.Description)
	})

	t.Run("上传预告片", func(t *testing.T) {
		w := do(r, multipartRequest(t, http.MethodPatch, "/api/v1/videos/"+created.ID+"/medias", nil, map[string]string{
			"trailer_file": "teaser.mp4",
		}))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		got := decode[dto.VideoInfo](t, w)
		require.NotNil(t, got.Trailer)
		assert.Regexp(t, "^"+created.ID+`/trailer-[0-9a-f]{32}\.mp4$`, got.Trailer.FilePath)
		require.NotNil(t, got.Media)
	})

	t.Run("列表与搜索", func(t *testing.T) {
		w := do(r, httptest.NewRequest(http.MethodGet, "/api/v1/videos?search=odyssey&sort=title&dir=asc", nil))
		require.Equal(t, http.StatusOK, w.Code)
		list := decode[dto.VideoListData](t, w)
		assert.EqualValues(t, 1, list.Total)
		require.Len(t, list.Items, 1)
		assert.Equal(t, created.ID, list.Items[0].ID)

		w = do(r, httptest.NewRequest(http.MethodGet, "/api/v1/search/videos?q=space", nil))
		require.Equal(t, http.StatusOK, w.Code)
		assert.EqualValues(t, 1, decode[dto.VideoListData](t, w).Total)
	})

	t.Run("删除后不可见", func(t *testing.T) {
		w := do(r, httptest.NewRequest(http.MethodDelete, "/api/v1/videos/"+created.ID, nil))
		require.Equal(t, http.StatusNoContent, w.Code)
		assert.Zero(t, storage.count())

		w = do(r, httptest.NewRequest(http.MethodGet, "/api/v1/videos/"+created.ID, nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestUpdateVideoMultipart(t *testing.T) {
	r, storage := newServer(t)
	cat := createCategory(t, r, "Drama")

	w := do(r, multipartRequest(t, http.MethodPost, "/api/v1/videos", videoFields(cat), map[string]string{
		"media_file": "movie.mp4",
		"thumb_file": "cover.png",
	}))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[dto.VideoInfo](t, w)

	// 字段与附件一起提交；未提交的关系保持不变
	w = do(r, multipartRequest(t, http.MethodPut, "/api/v1/videos/"+created.ID,
		map[string][]string{"title": {"Renamed"}},
		map[string]string{"thumb_file": "cover.png", "banner_file": "banner.jpg"}))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	got := decode[dto.VideoInfo](t, w)
	assert.Equal(t, "Renamed", got.Title)
	assert.Equal(t, "A journey", got.Description)
	assert.Equal(t, []string{cat}, got.CategoriesIDs)
	require.NotNil(t, got.Thumb)
	assert.NotEqual(t, created.Thumb.Path, got.Thumb.Path)
	require.NotNil(t, got.Banner)
	assert.Regexp(t, "^"+created.ID+`/banner-[0-9a-f]{32}\.jpg$`, got.Banner.Path)
	assert.Equal(t, created.Media.FilePath, got.Media.FilePath)
	assert.Equal(t, 3, storage.count(), "replaced thumb is removed after commit")

	// 空值表示清空
	w = do(r, multipartRequest(t, http.MethodPut, "/api/v1/videos/"+created.ID,
		map[string][]string{"categories_ids": {""}}, nil))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Empty(t, decode[dto.VideoInfo](t, w).CategoriesIDs)

	w = do(r, multipartRequest(t, http.MethodPut, "/api/v1/videos/"+created.ID,
		map[string][]string{"rating": {"99"}}, map[string]string{"trailer_file": "teaser.mp4"}))
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	assert.Equal(t, 3, storage.count())
}

func TestCreateVideoErrors(t *testing.T) {
	t.Run("关联分类不存在", func(t *testing.T) {
		r, storage := newServer(t)
		w := do(r, multipartRequest(t, http.MethodPost, "/api/v1/videos",
			videoFields("5b1f3a8e-9c1e-4a43-8d7b-3f7e6f1a2b3c"), map[string]string{"media_file": "movie.mp4"}))
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
		assert.Contains(t, decodeError(t, w).Message, "5b1f3a8e-9c1e-4a43-8d7b-3f7e6f1a2b3c")
		assert.Zero(t, storage.count())
	})

	t.Run("非法分级与ID", func(t *testing.T) {
		r, _ := newServer(t)
		fields := videoFields("not-a-uuid")
		fields["rating"] = []string{"99"}
		w := do(r, multipartRequest(t, http.MethodPost, "/api/v1/videos", fields, nil))
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		assert.Equal(t, "ValidationError", decodeError(t, w).Type)
	})

	t.Run("上传失败回滚已上传文件", func(t *testing.T) {
		r, storage := newServer(t)
		storage.failOn = "trailer"
		w := do(r, multipartRequest(t, http.MethodPost, "/api/v1/videos", videoFields(), map[string]string{
			"media_file":   "movie.mp4",
			"banner_file":  "banner.jpg",
			"trailer_file": "teaser.mp4",
		}))
		assert.Equal(t, http.StatusBadGateway, w.Code, w.Body.String())
		assert.Zero(t, storage.count())

		w = do(r, httptest.NewRequest(http.MethodGet, "/api/v1/videos", nil))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Zero(t, decode[dto.VideoListData](t, w).Total)
	})

	t.Run("文件超过大小限制", func(t *testing.T) {
		r, _ := newServer(t)
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		for k, vs := range videoFields() {
			for _, v := range vs {
				require.NoError(t, mw.WriteField(k, v))
			}
		}
		fw, err := mw.CreateFormFile("media_file", "huge.mp4")
		require.NoError(t, err)
		_, err = fw.Write(bytes.Repeat([]byte{0}, 1<<20+1))
		require.NoError(t, err)
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/v1/videos", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		w := do(r, req)
		assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})
}

func TestCatalogEndpoints(t *testing.T) {
	r, _ := newServer(t)
	cat := createCategory(t, r, "Drama")

	w := do(r, jsonRequest(http.MethodPost, "/api/v1/genres", gin.H{"name": "Thriller", "categories_ids": []string{cat}}))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	genre := decode[dto.GenreInfo](t, w)
	assert.Equal(t, []string{cat}, genre.CategoriesIDs)
	assert.True(t, genre.IsActive)

	w = do(r, jsonRequest(http.MethodPost, "/api/v1/cast_members", gin.H{"name": "Jane", "type": "writer"}))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, jsonRequest(http.MethodPost, "/api/v1/cast_members", gin.H{"name": "Jane", "type": "actor"}))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	member := decode[dto.CastMemberInfo](t, w)

	w = do(r, httptest.NewRequest(http.MethodGet, "/api/v1/cast_members/"+member.ID, nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "actor", decode[dto.CastMemberInfo](t, w).Type)

	w = do(r, httptest.NewRequest(http.MethodGet, "/api/v1/categories/bad-id", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, httptest.NewRequest(http.MethodGet, "/api/v1/genres/"+cat, nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(r, httptest.NewRequest(http.MethodGet, "/api/v1/categories?per_page=1", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, decode[dto.ListData[dto.CategoryInfo]](t, w).Total)
}

func TestReindexWithoutIndex(t *testing.T) {
	r, _ := newServer(t)
	w := do(r, httptest.NewRequest(http.MethodPost, "/api/v1/search/reindex", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
