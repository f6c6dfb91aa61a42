package handler

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"catalog-go/internal/api/dto"
	"catalog-go/internal/api/response"
	"catalog-go/internal/domain"
	"catalog-go/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/multierr"
)

type VideoHandler struct {
	videoService *service.VideoService
	maxFileSize  int64
}

func NewVideoHandler(videoService *service.VideoService, maxFileSize int64) *VideoHandler {
	return &VideoHandler{videoService: videoService, maxFileSize: maxFileSize}
}

// formFiles 读取 <attachment>_file 字段；返回的 closer 需在请求结束前调用
func (h *VideoHandler) formFiles(c *gin.Context) ([]service.FileInput, func(), error) {
	var (
		files   []service.FileInput
		opened  []multipart.File
		closeAll = func() {
			for _, f := range opened {
				_ = f.Close()
			}
		}
	)

	for _, a := range service.Attachments() {
		header, err := c.FormFile(string(a) + "_file")
		if err != nil {
			if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
				continue
			}
			closeAll()
			return nil, nil, fmt.Errorf("%w: %s_file: %v", service.ErrInvalidUpload, a, err)
		}
		if header.Size == 0 || (h.maxFileSize > 0 && header.Size > h.maxFileSize) {
			closeAll()
			return nil, nil, fmt.Errorf("%w: %s_file size %d out of range", service.ErrInvalidUpload, a, header.Size)
		}

		f, err := header.Open()
		if err != nil {
			closeAll()
			return nil, nil, err
		}
		opened = append(opened, f)
		files = append(files, service.FileInput{
			Attachment:  a,
			Body:        io.Reader(f),
			Size:        header.Size,
			Extension:   filepath.Ext(header.Filename),
			ContentType: header.Header.Get("Content-Type"),
		})
	}
	return files, closeAll, nil
}

func parseRating(s string) (domain.Rating, error) {
	r, err := domain.ParseRating(s)
	if err != nil {
		return "", &domain.ValidationError{Entity: "video", Errors: []string{err.Error()}}
	}
	return r, nil
}

func relationIDs(categories, genres, castMembers []string) (service.RelationIDs, error) {
	var (
		out  service.RelationIDs
		errs error
		err  error
	)
	out.Categories, err = service.ParseIDs(categories)
	errs = multierr.Append(errs, err)
	out.Genres, err = service.ParseIDs(genres)
	errs = multierr.Append(errs, err)
	out.CastMembers, err = service.ParseIDs(castMembers)
	errs = multierr.Append(errs, err)
	if errs != nil {
		return out, mergeValidation(errs)
	}
	return out, nil
}

// mergeValidation 把多个 ValidationError 合并成一个
func mergeValidation(err error) error {
	merged := &domain.ValidationError{Entity: "request"}
	for _, e := range multierr.Errors(err) {
		var v *domain.ValidationError
		if !errors.As(e, &v) {
			return err
		}
		merged.Errors = append(merged.Errors, v.Errors...)
	}
	return merged
}

// formIDs 读取 multipart 关系字段：缺省返回 nil；字段存在但只含空值表示清空
func formIDs(c *gin.Context, key string) *[]string {
	values, ok := c.GetPostFormArray(key)
	if !ok {
		return nil
	}
	ids := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			ids = append(ids, v)
		}
	}
	return &ids
}

func deref(p *[]string) []string {
	if p == nil {
		return nil
	}
	if *p == nil {
		return []string{}
	}
	return *p
}

// Create 创建视频
// @Summary 创建视频
// @Description multipart/form-data 提交字段与附件（thumb_file, banner_file, thumb_half_file, media_file, trailer_file）
// @Tags 视频
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "标题"
// @Param description formData string true "描述"
// @Param year_launched formData int false "上映年份"
// @Param duration formData int true "时长"
// @Param rating formData string true "分级" Enums(ER, L, 10, 12, 14, 16, 18)
// @Param categories_ids formData []string false "分类ID"
// @Param genres_ids formData []string false "类型ID"
// @Param cast_members_ids formData []string false "演职人员ID"
// @Param media_file formData file false "视频文件"
// @Success 201 {object} response.Response{data=dto.VideoInfo} "创建成功"
// @Failure 400 {object} response.ErrorResponse "请求参数无效"
// @Failure 422 {object} response.ErrorResponse "关联不存在"
// @Failure 502 {object} response.ErrorResponse "对象存储失败"
// @Router /videos [post]
func (h *VideoHandler) Create(c *gin.Context) {
	var req dto.VideoCreateRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	rating, err := parseRating(req.Rating)
	if err != nil {
		handleError(c, "Create video", err)
		return
	}
	relations, err := relationIDs(req.CategoriesIDs, req.GenresIDs, req.CastMembersIDs)
	if err != nil {
		handleError(c, "Create video", err)
		return
	}
	files, closeFiles, err := h.formFiles(c)
	if err != nil {
		handleError(c, "Create video", err)
		return
	}
	defer closeFiles()

	info, err := h.videoService.Create(c.Request.Context(), &service.CreateVideoInput{
		Title:        req.Title,
		Description:  req.Description,
		YearLaunched: req.YearLaunched,
		Opened:       req.Opened,
		Published:    req.Published,
		Duration:     req.Duration,
		Rating:       rating,
		Relations:    relations,
		Files:        files,
	})
	if err != nil {
		handleError(c, "Create video", err)
		return
	}

	response.Created(c, "创建视频成功", info)
}

// Update 更新视频
// @Summary 更新视频
// @Description JSON 只更新字段；multipart/form-data 可同时上传附件（thumb_file, banner_file, thumb_half_file, media_file, trailer_file）。
// @Description 关系字段缺省表示不变，空数组（multipart 下为空值）表示清空
// @Tags 视频
// @Accept json,mpfd
// @Produce json
// @Param id path string true "视频ID"
// @Param body body dto.VideoUpdateRequest false "更新内容（JSON）"
// @Success 200 {object} response.Response{data=dto.VideoInfo} "更新成功"
// @Failure 400 {object} response.ErrorResponse "请求参数无效"
// @Failure 404 {object} response.ErrorResponse "视频不存在"
// @Failure 409 {object} response.ErrorResponse "并发修改"
// @Failure 502 {object} response.ErrorResponse "对象存储失败"
// @Router /videos/{id} [put]
func (h *VideoHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.VideoUpdateRequest
	withFiles := c.ContentType() == binding.MIMEMultipartPOSTForm
	if withFiles {
		if err := c.ShouldBindWith(&req, binding.FormMultipart); err != nil {
			response.BadRequest(c, "请求参数无效: "+err.Error())
			return
		}
		req.CategoriesIDs = formIDs(c, "categories_ids")
		req.GenresIDs = formIDs(c, "genres_ids")
		req.CastMembersIDs = formIDs(c, "cast_members_ids")
	} else if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	in := &service.UpdateVideoInput{
		ID:           id,
		Title:        req.Title,
		Description:  req.Description,
		YearLaunched: req.YearLaunched,
		Opened:       req.Opened,
		Published:    req.Published,
		Duration:     req.Duration,
	}
	if req.Rating != nil {
		rating, err := parseRating(*req.Rating)
		if err != nil {
			handleError(c, "Update video", err)
			return
		}
		in.Rating = &rating
	}
	relations, err := relationIDs(deref(req.CategoriesIDs), deref(req.GenresIDs), deref(req.CastMembersIDs))
	if err != nil {
		handleError(c, "Update video", err)
		return
	}
	in.Relations = relations

	if withFiles {
		files, closeFiles, err := h.formFiles(c)
		if err != nil {
			handleError(c, "Update video", err)
			return
		}
		defer closeFiles()
		in.Files = files
	}

	info, err := h.videoService.Update(c.Request.Context(), in)
	if err != nil {
		handleError(c, "Update video", err)
		return
	}

	response.OK(c, "更新视频成功", info)
}

// UploadMedias 上传附件
// @Summary 上传视频附件
// @Tags 视频
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "视频ID"
// @Param media_file formData file false "视频文件"
// @Param trailer_file formData file false "预告片"
// @Param thumb_file formData file false "缩略图"
// @Success 200 {object} response.Response{data=dto.VideoInfo} "上传成功"
// @Failure 502 {object} response.ErrorResponse "对象存储失败"
// @Router /videos/{id}/medias [patch]
func (h *VideoHandler) UploadMedias(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	files, closeFiles, err := h.formFiles(c)
	if err != nil {
		handleError(c, "Upload medias", err)
		return
	}
	defer closeFiles()
	if len(files) == 0 {
		response.BadRequest(c, "请至少上传一个文件")
		return
	}

	ctx := c.Request.Context()
	if err := h.videoService.UploadMedias(ctx, &service.UploadMediasInput{VideoID: id, Files: files}); err != nil {
		handleError(c, "Upload medias", err)
		return
	}
	info, err := h.videoService.Get(ctx, id)
	if err != nil {
		handleError(c, "Upload medias", err)
		return
	}

	response.OK(c, "上传附件成功", info)
}

// Get 视频详情
// @Summary 视频详情
// @Tags 视频
// @Produce json
// @Param id path string true "视频ID"
// @Success 200 {object} response.Response{data=dto.VideoInfo} "获取成功"
// @Failure 404 {object} response.ErrorResponse "视频不存在"
// @Router /videos/{id} [get]
func (h *VideoHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	info, err := h.videoService.Get(c.Request.Context(), id)
	if err != nil {
		handleError(c, "Get video", err)
		return
	}

	response.OK(c, "获取视频详情成功", info)
}

// List 视频列表
// @Summary 视频列表
// @Tags 视频
// @Produce json
// @Param page query int false "页码" default(1)
// @Param per_page query int false "每页数量" default(15)
// @Param search query string false "标题过滤"
// @Param sort query string false "排序字段: title, id, createdAt"
// @Param dir query string false "排序方向: asc, desc"
// @Success 200 {object} response.Response{data=dto.VideoListData} "获取成功"
// @Router /videos [get]
func (h *VideoHandler) List(c *gin.Context) {
	data, err := h.videoService.List(c.Request.Context(), listInput(c))
	if err != nil {
		handleError(c, "List videos", err)
		return
	}

	response.OK(c, "获取视频列表成功", data)
}

// Delete 删除视频
// @Summary 删除视频
// @Tags 视频
// @Param id path string true "视频ID"
// @Success 204 "删除成功"
// @Failure 404 {object} response.ErrorResponse "视频不存在"
// @Router /videos/{id} [delete]
func (h *VideoHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.videoService.Delete(c.Request.Context(), id); err != nil {
		handleError(c, "Delete video", err)
		return
	}

	response.NoContent(c)
}
