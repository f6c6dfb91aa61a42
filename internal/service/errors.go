package service

import (
	"errors"
	"fmt"

	"catalog-go/internal/domain"
)

var (
	ErrVideoNotFound      = fmt.Errorf("video %w", domain.ErrNotFound)
	ErrCategoryNotFound   = fmt.Errorf("category %w", domain.ErrNotFound)
	ErrGenreNotFound      = fmt.Errorf("genre %w", domain.ErrNotFound)
	ErrCastMemberNotFound = fmt.Errorf("cast member %w", domain.ErrNotFound)

	ErrStorage       = errors.New("storage operation failed")
	ErrCommit        = errors.New("commit failed")
	ErrInvalidUpload = errors.New("invalid upload")

	ErrUnknownEncodingStatus = errors.New("unknown encoding status")
	ErrInvalidEncodingResult = errors.New("invalid encoding result")
)

// StorageError 对象存储上传/删除失败，errors.Is 同时匹配 ErrStorage 与底层原因
type StorageError struct {
	Op  string
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() []error { return []error{ErrStorage, e.Err} }

// CommitError 事务提交失败，errors.Is 同时匹配 ErrCommit 与底层原因
type CommitError struct {
	Err error
}

func (e *CommitError) Error() string {
	return fmt.Sprintf("commit unit of work: %v", e.Err)
}

func (e *CommitError) Unwrap() []error { return []error{ErrCommit, e.Err} }

func IsNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}

func notFound(err, sentinel error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return sentinel
	}
	return err
}
