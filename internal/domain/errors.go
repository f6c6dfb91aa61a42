package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrValidation               = errors.New("validation failed")
	ErrNotFound                 = errors.New("not found")
	ErrRelatedAggregateNotFound = errors.New("related aggregate not found")
	ErrInvalidMediaTransition   = errors.New("invalid media status transition")
)

// ValidationError 一次构造/更新收集到的全部字段违规
type ValidationError struct {
	Entity string
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s validation failed: %s", e.Entity, strings.Join(e.Errors, "; "))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// RelatedNotFoundError 引用的分类/类型/演职人员 ID 不存在
type RelatedNotFoundError struct {
	Kind    RelationKind
	Missing []uuid.UUID
}

func (e *RelatedNotFoundError) Error() string {
	ids := make([]string, 0, len(e.Missing))
	for _, id := range e.Missing {
		ids = append(ids, id.String())
	}
	return fmt.Sprintf("related %s id(s) not found: %s", e.Kind.Label(), strings.Join(ids, ", "))
}

func (e *RelatedNotFoundError) Unwrap() error { return ErrRelatedAggregateNotFound }
