package handler

import (
	"errors"
	"strconv"
	"strings"

	"catalog-go/internal/api/response"
	"catalog-go/internal/domain"
	"catalog-go/internal/domain/search"
	"catalog-go/internal/repository"
	"catalog-go/internal/service"
	"catalog-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// handleError 把业务错误映射为 HTTP 响应
func handleError(c *gin.Context, op string, err error) {
	var validation *domain.ValidationError
	switch {
	case errors.As(err, &validation):
		response.FailWithDetails(c, 400, "ValidationError", validation.Error(), validation.Errors)
	case errors.Is(err, service.ErrInvalidUpload):
		response.BadRequest(c, err.Error())
	case errors.Is(err, domain.ErrRelatedAggregateNotFound):
		response.UnprocessableEntity(c, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, repository.ErrConcurrentUpdate), errors.Is(err, domain.ErrInvalidMediaTransition):
		response.Conflict(c, err.Error())
	case errors.Is(err, service.ErrIndexDisabled):
		response.Fail(c, 503, "ServiceUnavailable", "搜索索引未启用")
	case errors.Is(err, service.ErrStorage):
		logger.Error(op+" failed", zap.Error(err))
		response.BadGateway(c, "对象存储不可用，请稍后重试")
	default:
		logger.Error(op+" failed", zap.Error(err))
		response.InternalError(c, "操作失败，请稍后重试")
	}
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "无效的ID")
		return uuid.Nil, false
	}
	return id, true
}

// listInput 读取分页、搜索与排序参数；非法数字按缺省处理
func listInput(c *gin.Context) search.Input {
	page, _ := strconv.Atoi(c.Query("page"))
	perPage, _ := strconv.Atoi(c.Query("per_page"))
	return search.Input{
		Page:    page,
		PerPage: perPage,
		Search:  strings.TrimSpace(c.Query("search")),
		OrderBy: c.Query("sort"),
		Order:   search.ParseDirection(c.Query("dir")),
	}.Normalize()
}
