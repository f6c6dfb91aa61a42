package dto

import "time"

// CategoryCreateRequest 分类创建请求
type CategoryCreateRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	IsActive    *bool  `json:"is_active"`
}

// CategoryInfo 分类
type CategoryInfo struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// GenreCreateRequest 类型创建请求
type GenreCreateRequest struct {
	Name          string   `json:"name" binding:"required"`
	IsActive      *bool    `json:"is_active"`
	CategoriesIDs []string `json:"categories_ids"`
}

// GenreInfo 类型
type GenreInfo struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	IsActive      bool      `json:"is_active"`
	CategoriesIDs []string  `json:"categories_ids"`
	CreatedAt     time.Time `json:"created_at"`
}

// CastMemberCreateRequest 演职人员创建请求
type CastMemberCreateRequest struct {
	Name string `json:"name" binding:"required"`
	Type string `json:"type" binding:"required,oneof=director actor"`
}

// CastMemberInfo 演职人员
type CastMemberInfo struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}
