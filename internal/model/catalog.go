package model

import "time"

// Category 分类模型
type Category struct {
	ID          string    `gorm:"primaryKey;type:uuid;comment:分类标识" json:"id"`
	Name        string    `gorm:"size:255;not null;index:idx_categories_name;comment:名称" json:"name"`
	Description string    `gorm:"type:text;comment:描述" json:"description"`
	IsActive    bool      `gorm:"default:true;comment:是否启用" json:"is_active"`
	CreatedAt   time.Time `gorm:"index:idx_categories_created_at;comment:创建时间" json:"created_at"`
}

func (Category) TableName() string {
	return "categories"
}

// Genre 类型模型
type Genre struct {
	ID         string          `gorm:"primaryKey;type:uuid;comment:类型标识" json:"id"`
	Name       string          `gorm:"size:255;not null;index:idx_genres_name;comment:名称" json:"name"`
	IsActive   bool            `gorm:"default:true;comment:是否启用" json:"is_active"`
	CreatedAt  time.Time       `gorm:"index:idx_genres_created_at;comment:创建时间" json:"created_at"`
	Categories []GenreCategory `gorm:"foreignKey:GenreID" json:"categories,omitempty"`
}

func (Genre) TableName() string {
	return "genres"
}

// CastMember 演职人员模型
type CastMember struct {
	ID        string    `gorm:"primaryKey;type:uuid;comment:演职人员标识" json:"id"`
	Name      string    `gorm:"size:255;not null;index:idx_cast_members_name;comment:姓名" json:"name"`
	Type      string    `gorm:"size:20;not null;comment:类型 director/actor" json:"type"`
	CreatedAt time.Time `gorm:"index:idx_cast_members_created_at;comment:创建时间" json:"created_at"`
}

func (CastMember) TableName() string {
	return "cast_members"
}
