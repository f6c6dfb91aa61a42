package router

import (
	"catalog-go/internal/api/handler"

	"github.com/gin-gonic/gin"
)

// Handlers 业务路由依赖；Search 为 nil 时不注册搜索路由
type Handlers struct {
	Video   *handler.VideoHandler
	Catalog *handler.CatalogHandler
	Search  *handler.SearchHandler
}

// Setup 注册所有业务路由
func Setup(r *gin.Engine, h Handlers) {
	v1 := r.Group("/api/v1")

	// --- 分类 ---
	categories := v1.Group("/categories")
	{
		categories.POST("", h.Catalog.CreateCategory)
		categories.GET("", h.Catalog.ListCategories)
		categories.GET("/:id", h.Catalog.GetCategory)
	}

	// --- 类型 ---
	genres := v1.Group("/genres")
	{
		genres.POST("", h.Catalog.CreateGenre)
		genres.GET("", h.Catalog.ListGenres)
		genres.GET("/:id", h.Catalog.GetGenre)
	}

	// --- 演职人员 ---
	castMembers := v1.Group("/cast_members")
	{
		castMembers.POST("", h.Catalog.CreateCastMember)
		castMembers.GET("", h.Catalog.ListCastMembers)
		castMembers.GET("/:id", h.Catalog.GetCastMember)
	}

	// --- 视频 ---
	videos := v1.Group("/videos")
	{
		videos.POST("", h.Video.Create)
		videos.GET("", h.Video.List)
		videos.GET("/:id", h.Video.Get)
		videos.PUT("/:id", h.Video.Update)
		videos.PATCH("/:id/medias", h.Video.UploadMedias)
		videos.DELETE("/:id", h.Video.Delete)
	}

	// --- 搜索 ---
	if h.Search != nil {
		search := v1.Group("/search")
		{
			search.GET("/videos", h.Search.SearchVideos)
			search.POST("/reindex", h.Search.Reindex)
		}
	}
}
