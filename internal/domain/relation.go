package domain

import (
	"bytes"
	"sort"

	"github.com/google/uuid"
)

// RelationKind 视频引用的外部聚合种类
type RelationKind string

const (
	RelationCategories  RelationKind = "categories"
	RelationGenres      RelationKind = "genres"
	RelationCastMembers RelationKind = "cast_members"
)

// RelationKinds 固定顺序的全部关系种类
var RelationKinds = []RelationKind{RelationCategories, RelationGenres, RelationCastMembers}

// Label 用于错误信息的可读名称
func (k RelationKind) Label() string {
	switch k {
	case RelationCategories:
		return "category"
	case RelationGenres:
		return "genre"
	case RelationCastMembers:
		return "cast member"
	default:
		return string(k)
	}
}

// IDSet 去重、无序的外部聚合 ID 集合
type IDSet struct {
	ids map[uuid.UUID]struct{}
}

func NewIDSet(ids ...uuid.UUID) IDSet {
	s := IDSet{}
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Add 幂等插入，返回是否新增
func (s *IDSet) Add(id uuid.UUID) bool {
	if s.ids == nil {
		s.ids = make(map[uuid.UUID]struct{})
	}
	if _, ok := s.ids[id]; ok {
		return false
	}
	s.ids[id] = struct{}{}
	return true
}

func (s *IDSet) Remove(id uuid.UUID) bool {
	if _, ok := s.ids[id]; !ok {
		return false
	}
	delete(s.ids, id)
	return true
}

func (s *IDSet) Clear() {
	s.ids = nil
}

// ReplaceAll 清空后重新填充
func (s *IDSet) ReplaceAll(ids []uuid.UUID) {
	s.Clear()
	for _, id := range ids {
		s.Add(id)
	}
}

func (s IDSet) Contains(id uuid.UUID) bool {
	_, ok := s.ids[id]
	return ok
}

func (s IDSet) Len() int {
	return len(s.ids)
}

// IDs 按字节序排序后的副本
func (s IDSet) IDs() []uuid.UUID {
	out := make([]uuid.UUID, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool {
		return bytes.Compare(out[i][:], out[j][:]) < 0
	})
	return out
}
