package dto

import "time"

// VideoCreateRequest 视频创建请求（multipart/form-data，附件以文件字段提交）
type VideoCreateRequest struct {
	Title          string   `form:"title" binding:"required"`
	Description    string   `form:"description" binding:"required"`
	YearLaunched   int      `form:"year_launched"`
	Opened         bool     `form:"opened"`
	Published      bool     `form:"published"`
	Duration       int      `form:"duration" binding:"required"`
	Rating         string   `form:"rating" binding:"required"`
	CategoriesIDs  []string `form:"categories_ids"`
	GenresIDs      []string `form:"genres_ids"`
	CastMembersIDs []string `form:"cast_members_ids"`
}

// VideoUpdateRequest 视频更新请求（JSON 或 multipart/form-data）。
// 关系字段：缺省表示不变，空数组表示清空；multipart 下由 handler 单独读取
type VideoUpdateRequest struct {
	Title          *string   `json:"title" form:"title"`
	Description    *string   `json:"description" form:"description"`
	YearLaunched   *int      `json:"year_launched" form:"year_launched"`
	Opened         *bool     `json:"opened" form:"opened"`
	Published      *bool     `json:"published" form:"published"`
	Duration       *int      `json:"duration" form:"duration"`
	Rating         *string   `json:"rating" form:"rating"`
	CategoriesIDs  *[]string `json:"categories_ids" form:"-"`
	GenresIDs      *[]string `json:"genres_ids" form:"-"`
	CastMembersIDs *[]string `json:"cast_members_ids" form:"-"`
}

// ImageInfo 图片附件
type ImageInfo struct {
	Path string `json:"path"`
}

// MediaInfo 视频/预告片附件
type MediaInfo struct {
	FilePath    string `json:"file_path"`
	EncodedPath string `json:"encoded_path,omitempty"`
	Status      string `json:"status"`
}

// VideoInfo 视频详情
type VideoInfo struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	YearLaunched   int        `json:"year_launched"`
	Opened         bool       `json:"opened"`
	Published      bool       `json:"published"`
	Duration       int        `json:"duration"`
	Rating         string     `json:"rating"`
	CreatedAt      time.Time  `json:"created_at"`
	CategoriesIDs  []string   `json:"categories_ids"`
	GenresIDs      []string   `json:"genres_ids"`
	CastMembersIDs []string   `json:"cast_members_ids"`
	Thumb          *ImageInfo `json:"thumb,omitempty"`
	Banner         *ImageInfo `json:"banner,omitempty"`
	ThumbHalf      *ImageInfo `json:"thumb_half,omitempty"`
	Media          *MediaInfo `json:"media,omitempty"`
	Trailer        *MediaInfo `json:"trailer,omitempty"`
}

// ListData 分页列表响应数据
type ListData[T any] struct {
	Items       []T   `json:"items"`
	Total       int64 `json:"total"`
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	TotalPages  int64 `json:"total_pages"`
}

// VideoListData 视频列表响应数据
type VideoListData = ListData[VideoInfo]
