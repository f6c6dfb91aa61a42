package model

import "time"

// Video 视频模型
type Video struct {
	ID           string    `gorm:"primaryKey;type:uuid;comment:视频标识" json:"id"`
	Title        string    `gorm:"size:400;not null;index:idx_videos_title;comment:视频标题" json:"title"`
	Description  string    `gorm:"size:4000;not null;comment:视频描述" json:"description"`
	YearLaunched int       `gorm:"comment:上映年份" json:"year_launched"`
	Opened       bool      `gorm:"default:false;comment:是否公开" json:"opened"`
	Published    bool      `gorm:"default:false;comment:是否已发布" json:"published"`
	Duration     int       `gorm:"not null;comment:视频时长（分钟）" json:"duration"`
	Rating       string    `gorm:"size:4;not null;comment:分级" json:"rating"`
	Version      int64     `gorm:"not null;default:1;comment:乐观锁版本" json:"version"`
	CreatedAt    time.Time `gorm:"index:idx_videos_created_at;comment:创建时间" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime;comment:更新时间" json:"updated_at"`

	ThumbPath     *string `gorm:"size:500;comment:缩略图路径" json:"thumb_path"`
	BannerPath    *string `gorm:"size:500;comment:横幅路径" json:"banner_path"`
	ThumbHalfPath *string `gorm:"size:500;comment:半幅缩略图路径" json:"thumb_half_path"`

	MediaFilePath    *string `gorm:"size:500;comment:视频文件路径" json:"media_file_path"`
	MediaEncodedPath *string `gorm:"size:500;comment:编码后视频路径" json:"media_encoded_path"`
	MediaStatus      *string `gorm:"size:20;comment:视频编码状态" json:"media_status"`

	TrailerFilePath    *string `gorm:"size:500;comment:预告片文件路径" json:"trailer_file_path"`
	TrailerEncodedPath *string `gorm:"size:500;comment:编码后预告片路径" json:"trailer_encoded_path"`
	TrailerStatus      *string `gorm:"size:20;comment:预告片编码状态" json:"trailer_status"`

	// 关联关系
	Categories  []VideoCategory   `gorm:"foreignKey:VideoID" json:"categories,omitempty"`
	Genres      []VideoGenre      `gorm:"foreignKey:VideoID" json:"genres,omitempty"`
	CastMembers []VideoCastMember `gorm:"foreignKey:VideoID" json:"cast_members,omitempty"`
}

func (Video) TableName() string {
	return "videos"
}
