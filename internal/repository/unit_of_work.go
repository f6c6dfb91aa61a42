package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"catalog-go/internal/domain"
	"catalog-go/internal/infra/metrics"
	"catalog-go/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrNoTransaction     = errors.New("no active unit of work")
	ErrTransactionActive = errors.New("unit of work already active")
	ErrTransactionDone   = errors.New("unit of work already finished")
	ErrConcurrentUpdate  = errors.New("video was modified concurrently")
)

// EventPublisher 提交成功后发布领域事件
type EventPublisher interface {
	Publish(ctx context.Context, events []domain.Event) error
}

// BlobDeleter 删除对象存储中的文件
type BlobDeleter interface {
	Delete(ctx context.Context, path string) error
}

// Pending 事务内累积、提交后处理的事件与孤儿文件
type Pending struct {
	mu      sync.Mutex
	events  []domain.Event
	orphans []string
}

// Collect 取走聚合上的事件与孤儿文件，extra 追加在聚合事件之后
func (p *Pending) Collect(v *domain.Video, extra ...domain.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, v.Events()...)
	p.events = append(p.events, extra...)
	p.orphans = append(p.orphans, v.Orphans()...)
	v.ClearEvents()
	v.ClearOrphans()
}

// AddOrphans 追加提交后要删除的文件
func (p *Pending) AddOrphans(paths ...string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.orphans = append(p.orphans, paths...)
}

func (p *Pending) drain() ([]domain.Event, []string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	events, orphans := p.events, p.orphans
	p.events, p.orphans = nil, nil
	return events, orphans
}

// AfterCommit 提交后的清理与事件发布，失败只记录日志
type AfterCommit struct {
	Storage   BlobDeleter
	Publisher EventPublisher
}

func (a *AfterCommit) Run(ctx context.Context, p *Pending) {
	events, orphans := p.drain()
	ctx = context.WithoutCancel(ctx)

	if a.Storage != nil {
		for _, path := range orphans {
			if err := a.Storage.Delete(ctx, path); err != nil {
				metrics.OrphanDeletesTotal.WithLabelValues("failed").Inc()
				logger.Warn("Orphan delete failed", zap.String("path", path), zap.Error(err))
				continue
			}
			metrics.OrphanDeletesTotal.WithLabelValues("ok").Inc()
		}
	}

	if a.Publisher != nil && len(events) > 0 {
		if err := a.Publisher.Publish(ctx, events); err != nil {
			logger.Error("Publish events failed", zap.Int("events", len(events)), zap.Error(err))
		}
	}
}

type txKey struct{}

type txState struct {
	Pending
	tx   *gorm.DB
	done bool
}

func stateFrom(ctx context.Context) (*txState, bool) {
	st, ok := ctx.Value(txKey{}).(*txState)
	return st, ok
}

// UnitOfWork 基于 gorm 事务的工作单元，事务保存在 ctx 中供仓储使用
type UnitOfWork struct {
	db    *gorm.DB
	after *AfterCommit
}

func NewUnitOfWork(db *gorm.DB, storage BlobDeleter, publisher EventPublisher) *UnitOfWork {
	return &UnitOfWork{db: db, after: &AfterCommit{Storage: storage, Publisher: publisher}}
}

func (u *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	if _, ok := stateFrom(ctx); ok {
		return nil, ErrTransactionActive
	}
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("begin transaction: %w", tx.Error)
	}
	return context.WithValue(ctx, txKey{}, &txState{tx: tx}), nil
}

// Commit 提交事务；成功后删除孤儿文件并发布事件
func (u *UnitOfWork) Commit(ctx context.Context) error {
	st, ok := stateFrom(ctx)
	if !ok {
		return ErrNoTransaction
	}
	if st.done {
		return ErrTransactionDone
	}
	st.done = true

	if err := st.tx.Commit().Error; err != nil {
		metrics.CommitsTotal.WithLabelValues("failed").Inc()
		_ = st.tx.Rollback()
		return err
	}
	metrics.CommitsTotal.WithLabelValues("ok").Inc()

	u.after.Run(ctx, &st.Pending)
	return nil
}

// Rollback 回滚事务；已结束的工作单元直接返回
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	st, ok := stateFrom(ctx)
	if !ok {
		return ErrNoTransaction
	}
	if st.done {
		return nil
	}
	st.done = true
	metrics.CommitsTotal.WithLabelValues("rolled_back").Inc()
	return st.tx.Rollback().Error
}

// conn 返回 ctx 中的事务，没有时返回普通连接
func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if st, ok := stateFrom(ctx); ok {
		return st.tx
	}
	return db.WithContext(ctx)
}

// activeTx 写聚合必须在工作单元内
func activeTx(ctx context.Context) (*txState, error) {
	st, ok := stateFrom(ctx)
	if !ok {
		return nil, ErrNoTransaction
	}
	if st.done {
		return nil, ErrTransactionDone
	}
	return st, nil
}

// LogPublisher 未启用消息队列时只把事件写入日志
type LogPublisher struct{}

func (LogPublisher) Publish(_ context.Context, events []domain.Event) error {
	for _, e := range events {
		logger.Info("Domain event",
			zap.String("event", e.EventName()),
			zap.String("video_id", e.AggregateID().String()),
		)
	}
	return nil
}
