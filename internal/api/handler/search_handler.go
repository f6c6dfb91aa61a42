package handler

import (
	"strconv"
	"strings"

	"catalog-go/internal/api/response"
	"catalog-go/internal/service"
	"catalog-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SearchHandler struct {
	indexer *service.IndexerService
}

func NewSearchHandler(indexer *service.IndexerService) *SearchHandler {
	return &SearchHandler{indexer: indexer}
}

// SearchVideos 搜索视频
// @Summary 搜索视频
// @Description 按标题与描述全文搜索，索引不可用时按标题过滤
// @Tags 搜索
// @Produce json
// @Param q query string false "搜索关键词"
// @Param page query int false "页码" default(1)
// @Param per_page query int false "每页数量" default(15)
// @Success 200 {object} response.Response{data=dto.VideoListData} "搜索成功"
// @Router /search/videos [get]
func (h *SearchHandler) SearchVideos(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	perPage, _ := strconv.Atoi(c.Query("per_page"))

	data, err := h.indexer.Search(c.Request.Context(), strings.TrimSpace(c.Query("q")), page, perPage)
	if err != nil {
		handleError(c, "Search videos", err)
		return
	}

	response.OK(c, "搜索成功", data)
}

// Reindex 重建搜索索引
// @Summary 重建搜索索引
// @Description 将存储中的全部视频写入 Elasticsearch
// @Tags 搜索
// @Produce json
// @Success 200 {object} response.Response "同步成功"
// @Failure 503 {object} response.ErrorResponse "索引未启用"
// @Router /search/reindex [post]
func (h *SearchHandler) Reindex(c *gin.Context) {
	success, failed, err := h.indexer.Reindex(c.Request.Context())
	if err != nil {
		logger.Warn("Reindex aborted", zap.Int("success", success), zap.Int("failed", failed))
		handleError(c, "Reindex videos", err)
		return
	}

	response.OK(c, "同步完成", gin.H{
		"success": success,
		"failed":  failed,
	})
}
