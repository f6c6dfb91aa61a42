package handler

import (
	"catalog-go/internal/api/dto"
	"catalog-go/internal/api/response"
	"catalog-go/internal/service"

	"github.com/gin-gonic/gin"
)

// CatalogHandler 分类、类型与演职人员
type CatalogHandler struct {
	catalogService *service.CatalogService
}

func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// CreateCategory 创建分类
// @Summary 创建分类
// @Tags 分类
// @Accept json
// @Produce json
// @Param body body dto.CategoryCreateRequest true "分类"
// @Success 201 {object} response.Response{data=dto.CategoryInfo} "创建成功"
// @Failure 400 {object} response.ErrorResponse "请求参数无效"
// @Router /categories [post]
func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req dto.CategoryCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	info, err := h.catalogService.CreateCategory(c.Request.Context(), &req)
	if err != nil {
		handleError(c, "Create category", err)
		return
	}

	response.Created(c, "创建分类成功", info)
}

// GetCategory 分类详情
// @Summary 分类详情
// @Tags 分类
// @Produce json
// @Param id path string true "分类ID"
// @Success 200 {object} response.Response{data=dto.CategoryInfo} "获取成功"
// @Failure 404 {object} response.ErrorResponse "分类不存在"
// @Router /categories/{id} [get]
func (h *CatalogHandler) GetCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	info, err := h.catalogService.GetCategory(c.Request.Context(), id)
	if err != nil {
		handleError(c, "Get category", err)
		return
	}

	response.OK(c, "获取分类成功", info)
}

// ListCategories 分类列表
// @Summary 分类列表
// @Tags 分类
// @Produce json
// @Param page query int false "页码" default(1)
// @Param per_page query int false "每页数量" default(15)
// @Param search query string false "名称过滤"
// @Success 200 {object} response.Response "获取成功"
// @Router /categories [get]
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	data, err := h.catalogService.ListCategories(c.Request.Context(), listInput(c))
	if err != nil {
		handleError(c, "List categories", err)
		return
	}

	response.OK(c, "获取分类列表成功", data)
}

// CreateGenre 创建类型
// @Summary 创建类型
// @Tags 类型
// @Accept json
// @Produce json
// @Param body body dto.GenreCreateRequest true "类型"
// @Success 201 {object} response.Response{data=dto.GenreInfo} "创建成功"
// @Failure 422 {object} response.ErrorResponse "分类不存在"
// @Router /genres [post]
func (h *CatalogHandler) CreateGenre(c *gin.Context) {
	var req dto.GenreCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	info, err := h.catalogService.CreateGenre(c.Request.Context(), &req)
	if err != nil {
		handleError(c, "Create genre", err)
		return
	}

	response.Created(c, "创建类型成功", info)
}

// GetGenre 类型详情
// @Summary 类型详情
// @Tags 类型
// @Produce json
// @Param id path string true "类型ID"
// @Success 200 {object} response.Response{data=dto.GenreInfo} "获取成功"
// @Failure 404 {object} response.ErrorResponse "类型不存在"
// @Router /genres/{id} [get]
func (h *CatalogHandler) GetGenre(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	info, err := h.catalogService.GetGenre(c.Request.Context(), id)
	if err != nil {
		handleError(c, "Get genre", err)
		return
	}

	response.OK(c, "获取类型成功", info)
}

// ListGenres 类型列表
// @Summary 类型列表
// @Tags 类型
// @Produce json
// @Param page query int false "页码" default(1)
// @Param per_page query int false "每页数量" default(15)
// @Success 200 {object} response.Response "获取成功"
// @Router /genres [get]
func (h *CatalogHandler) ListGenres(c *gin.Context) {
	data, err := h.catalogService.ListGenres(c.Request.Context(), listInput(c))
	if err != nil {
		handleError(c, "List genres", err)
		return
	}

	response.OK(c, "获取类型列表成功", data)
}

// CreateCastMember 创建演职人员
// @Summary 创建演职人员
// @Tags 演职人员
// @Accept json
// @Produce json
// @Param body body dto.CastMemberCreateRequest true "演职人员"
// @Success 201 {object} response.Response{data=dto.CastMemberInfo} "创建成功"
// @Failure 400 {object} response.ErrorResponse "请求参数无效"
// @Router /cast_members [post]
func (h *CatalogHandler) CreateCastMember(c *gin.Context) {
	var req dto.CastMemberCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	info, err := h.catalogService.CreateCastMember(c.Request.Context(), &req)
	if err != nil {
		handleError(c, "Create cast member", err)
		return
	}

	response.Created(c, "创建演职人员成功", info)
}

// GetCastMember 演职人员详情
// @Summary 演职人员详情
// @Tags 演职人员
// @Produce json
// @Param id path string true "演职人员ID"
// @Success 200 {object} response.Response{data=dto.CastMemberInfo} "获取成功"
// @Failure 404 {object} response.ErrorResponse "演职人员不存在"
// @Router /cast_members/{id} [get]
func (h *CatalogHandler) GetCastMember(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	info, err := h.catalogService.GetCastMember(c.Request.Context(), id)
	if err != nil {
		handleError(c, "Get cast member", err)
		return
	}

	response.OK(c, "获取演职人员成功", info)
}

// ListCastMembers 演职人员列表
// @Summary 演职人员列表
// @Tags 演职人员
// @Produce json
// @Param page query int false "页码" default(1)
// @Param per_page query int false "每页数量" default(15)
// @Success 200 {object} response.Response "获取成功"
// @Router /cast_members [get]
func (h *CatalogHandler) ListCastMembers(c *gin.Context) {
	data, err := h.catalogService.ListCastMembers(c.Request.Context(), listInput(c))
	if err != nil {
		handleError(c, "List cast members", err)
		return
	}

	response.OK(c, "获取演职人员列表成功", data)
}
