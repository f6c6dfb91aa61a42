package model

// VideoDocument 视频搜索文档
type VideoDocument struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	YearLaunched   int      `json:"year_launched"`
	Opened         bool     `json:"opened"`
	Published      bool     `json:"published"`
	Duration       int      `json:"duration"`
	Rating         string   `json:"rating"`
	CategoriesIDs  []string `json:"categories_ids"`
	GenresIDs      []string `json:"genres_ids"`
	CastMembersIDs []string `json:"cast_members_ids"`
	MediaStatus    string   `json:"media_status,omitempty"`
	CreatedAt      string   `json:"created_at"`
}

// VideoSearchHits 搜索命中的视频 id（按相关度排序）及总数
type VideoSearchHits struct {
	IDs        []string
	Total      int64
	Highlights map[string]map[string][]string
}
