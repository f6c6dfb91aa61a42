package model

// VideoCategory 视频-分类关联
type VideoCategory struct {
	VideoID    string `gorm:"primaryKey;type:uuid;comment:视频ID" json:"video_id"`
	CategoryID string `gorm:"primaryKey;type:uuid;index:idx_videos_categories_category;comment:分类ID" json:"category_id"`
}

func (VideoCategory) TableName() string {
	return "videos_categories"
}

// VideoGenre 视频-类型关联
type VideoGenre struct {
	VideoID string `gorm:"primaryKey;type:uuid;comment:视频ID" json:"video_id"`
	GenreID string `gorm:"primaryKey;type:uuid;index:idx_videos_genres_genre;comment:类型ID" json:"genre_id"`
}

func (VideoGenre) TableName() string {
	return "videos_genres"
}

// VideoCastMember 视频-演职人员关联
type VideoCastMember struct {
	VideoID      string `gorm:"primaryKey;type:uuid;comment:视频ID" json:"video_id"`
	CastMemberID string `gorm:"primaryKey;type:uuid;index:idx_videos_cast_members_member;comment:演职人员ID" json:"cast_member_id"`
}

func (VideoCastMember) TableName() string {
	return "videos_cast_members"
}

// GenreCategory 类型-分类关联
type GenreCategory struct {
	GenreID    string `gorm:"primaryKey;type:uuid;comment:类型ID" json:"genre_id"`
	CategoryID string `gorm:"primaryKey;type:uuid;comment:分类ID" json:"category_id"`
}

func (GenreCategory) TableName() string {
	return "genres_categories"
}
