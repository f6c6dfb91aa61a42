package service

import (
	"context"
	"io"

	"catalog-go/internal/domain"
	"catalog-go/internal/domain/search"
	"catalog-go/internal/model"

	"github.com/google/uuid"
)

// VideoRepository 视频聚合持久化。未找到时返回包装了 domain.ErrNotFound 的错误。
type VideoRepository interface {
	Insert(ctx context.Context, video *domain.Video) error
	Update(ctx context.Context, video *domain.Video) error
	Delete(ctx context.Context, video *domain.Video) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Video, error)
	Search(ctx context.Context, in search.Input) (*search.Output[*domain.Video], error)
}

// RelationRepository 返回 ids 中实际存在的那部分
type RelationRepository interface {
	GetIDsByIDs(ctx context.Context, kind domain.RelationKind, ids []uuid.UUID) ([]uuid.UUID, error)
}

// BlobStorage 对象存储；Upload 返回之后可用于 Delete 的存储路径
type BlobStorage interface {
	Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, path string) error
}

// UnitOfWork 事务边界。Begin 返回携带事务的 ctx，仓储在该 ctx 上的写入在 Commit 时一并生效，
// 提交成功后发布期间产生的领域事件。
type UnitOfWork interface {
	Begin(ctx context.Context) (context.Context, error)
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

type CategoryRepository interface {
	Insert(ctx context.Context, category *domain.Category) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	Search(ctx context.Context, in search.Input) (*search.Output[*domain.Category], error)
}

type GenreRepository interface {
	Insert(ctx context.Context, genre *domain.Genre) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Genre, error)
	Search(ctx context.Context, in search.Input) (*search.Output[*domain.Genre], error)
}

type CastMemberRepository interface {
	Insert(ctx context.Context, member *domain.CastMember) error
	Get(ctx context.Context, id uuid.UUID) (*domain.CastMember, error)
	Search(ctx context.Context, in search.Input) (*search.Output[*domain.CastMember], error)
}

// ResultDeduper 消息去重：Claim 返回 false 表示已被处理过
type ResultDeduper interface {
	Claim(ctx context.Context, key string) (bool, error)
	Release(ctx context.Context, key string) error
}

// SearchIndex 视频搜索索引
type SearchIndex interface {
	Upsert(ctx context.Context, doc *model.VideoDocument) error
	BulkUpsert(ctx context.Context, docs []*model.VideoDocument) (success, failed int, err error)
	Delete(ctx context.Context, videoID string) error
	Search(ctx context.Context, query string, from, size int) (*model.VideoSearchHits, error)
}
