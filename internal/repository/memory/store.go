// Package memory 进程内存储，database.driver 为 memory 时替代 PostgreSQL，用于本地调试与测试。
// 写操作在工作单元内暂存，Commit 时在副本上整体应用后替换。
package memory

import (
	"context"
	"fmt"
	"sync"

	"catalog-go/internal/domain"
	"catalog-go/internal/infra/metrics"
	"catalog-go/internal/repository"

	"github.com/google/uuid"
)

// Store 全部聚合的内存数据
type Store struct {
	mu          sync.RWMutex
	videos      map[uuid.UUID]domain.VideoState
	categories  map[uuid.UUID]domain.Category
	genres      map[uuid.UUID]domain.Genre
	castMembers map[uuid.UUID]domain.CastMember
}

func NewStore() *Store {
	return &Store{
		videos:      make(map[uuid.UUID]domain.VideoState),
		categories:  make(map[uuid.UUID]domain.Category),
		genres:      make(map[uuid.UUID]domain.Genre),
		castMembers: make(map[uuid.UUID]domain.CastMember),
	}
}

type op func(videos map[uuid.UUID]domain.VideoState) error

type txKey struct{}

type txState struct {
	repository.Pending
	ops  []op
	done bool
}

func stateFrom(ctx context.Context) (*txState, bool) {
	st, ok := ctx.Value(txKey{}).(*txState)
	return st, ok
}

func activeTx(ctx context.Context) (*txState, error) {
	st, ok := stateFrom(ctx)
	if !ok {
		return nil, repository.ErrNoTransaction
	}
	if st.done {
		return nil, repository.ErrTransactionDone
	}
	return st, nil
}

// UnitOfWork 内存工作单元，语义与 gorm 版本一致
type UnitOfWork struct {
	store *Store
	after *repository.AfterCommit
}

func NewUnitOfWork(store *Store, storage repository.BlobDeleter, publisher repository.EventPublisher) *UnitOfWork {
	return &UnitOfWork{store: store, after: &repository.AfterCommit{Storage: storage, Publisher: publisher}}
}

func (u *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	if _, ok := stateFrom(ctx); ok {
		return nil, repository.ErrTransactionActive
	}
	return context.WithValue(ctx, txKey{}, &txState{}), nil
}

// Commit 在副本上依次应用暂存操作，全部成功才替换
func (u *UnitOfWork) Commit(ctx context.Context) error {
	st, ok := stateFrom(ctx)
	if !ok {
		return repository.ErrNoTransaction
	}
	if st.done {
		return repository.ErrTransactionDone
	}
	st.done = true

	if err := u.store.apply(st.ops); err != nil {
		metrics.CommitsTotal.WithLabelValues("failed").Inc()
		return err
	}
	metrics.CommitsTotal.WithLabelValues("ok").Inc()

	u.after.Run(ctx, &st.Pending)
	return nil
}

func (u *UnitOfWork) Rollback(ctx context.Context) error {
	st, ok := stateFrom(ctx)
	if !ok {
		return repository.ErrNoTransaction
	}
	if st.done {
		return nil
	}
	st.done = true
	st.ops = nil
	metrics.CommitsTotal.WithLabelValues("rolled_back").Inc()
	return nil
}

func (s *Store) apply(ops []op) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make(map[uuid.UUID]domain.VideoState, len(s.videos))
	for id, v := range s.videos {
		next[id] = v
	}
	for _, o := range ops {
		if err := o(next); err != nil {
			return err
		}
	}
	s.videos = next
	return nil
}

func notFound(entity string, id uuid.UUID) error {
	return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
}
