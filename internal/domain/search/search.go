// Package search 定义所有列表接口共用的分页、过滤与排序约定。
package search

import (
	"sort"
	"strings"
	"time"
)

// Direction 排序方向
type Direction string

const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"
)

// ParseDirection 只有 desc（不区分大小写）视为降序
func ParseDirection(s string) Direction {
	if strings.EqualFold(strings.TrimSpace(s), "desc") {
		return Desc
	}
	return Asc
}

const (
	DefaultPerPage = 15
	MaxPerPage     = 100
	// MaxPage 页码上限，保证 (MaxPage-1)*MaxPerPage 不溢出
	MaxPage = 1_000_000

	FieldID        = "id"
	FieldCreatedAt = "createdAt"
)

// Input 列表查询参数
type Input struct {
	Page    int
	PerPage int
	Search  string
	OrderBy string
	Order   Direction
}

// Normalize 页码限制在 [1, MaxPage]，每页数量非正取默认值并限制上限
func (in Input) Normalize() Input {
	if in.Page < 1 {
		in.Page = 1
	}
	if in.Page > MaxPage {
		in.Page = MaxPage
	}
	if in.PerPage <= 0 {
		in.PerPage = DefaultPerPage
	}
	if in.PerPage > MaxPerPage {
		in.PerPage = MaxPerPage
	}
	if in.Order != Desc {
		in.Order = Asc
	}
	return in
}

// Skip (page-1) * perPage
func (in Input) Skip() int {
	n := in.Normalize()
	return (n.Page - 1) * n.PerPage
}

// Text 去除首尾空白后的搜索词；空白搜索返回 false 表示不过滤
func (in Input) Text() (string, bool) {
	q := strings.TrimSpace(in.Search)
	return q, q != ""
}

// Output 一页结果；Total 为过滤后、分页前的总数
type Output[T any] struct {
	CurrentPage int
	PerPage     int
	Total       int64
	Items       []T
}

// Map 转换 Items 类型，分页信息保持不变
func Map[T, U any](o *Output[T], fn func(T) U) *Output[U] {
	items := make([]U, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, fn(it))
	}
	return &Output[U]{CurrentPage: o.CurrentPage, PerPage: o.PerPage, Total: o.Total, Items: items}
}

// Schema 聚合的排序字段表：主文本字段（name/title）+ id + createdAt
type Schema struct {
	TextField string
}

var (
	VideoSchema   = Schema{TextField: "title"}
	CatalogSchema = Schema{TextField: "name"}
)

// OrderKey 一个排序键
type OrderKey struct {
	Field string
	Desc  bool
}

// Resolve 把 orderBy/direction 解析为完整排序键序列。
// 主文本字段与 createdAt 追加同方向的 id 作为次级键；
// 未识别字段回退到默认顺序：主文本字段升序、id 升序。
func (s Schema) Resolve(orderBy string, dir Direction) []OrderKey {
	desc := dir == Desc
	switch field := strings.TrimSpace(orderBy); {
	case strings.EqualFold(field, s.TextField):
		return []OrderKey{{Field: s.TextField, Desc: desc}, {Field: FieldID, Desc: desc}}
	case strings.EqualFold(field, FieldID):
		return []OrderKey{{Field: FieldID, Desc: desc}}
	case strings.EqualFold(field, FieldCreatedAt):
		return []OrderKey{{Field: FieldCreatedAt, Desc: desc}, {Field: FieldID, Desc: desc}}
	default:
		return []OrderKey{{Field: s.TextField}, {Field: FieldID}}
	}
}

// Accessor 内存实现取排序/过滤字段的方法
type Accessor[T any] struct {
	Text      func(T) string
	ID        func(T) string
	CreatedAt func(T) time.Time
}

func (a Accessor[T]) compare(field string, x, y T) int {
	switch field {
	case FieldID:
		return strings.Compare(a.ID(x), a.ID(y))
	case FieldCreatedAt:
		return compareTime(a.CreatedAt(x), a.CreatedAt(y))
	default:
		return strings.Compare(a.Text(x), a.Text(y))
	}
}

func compareTime(a, b time.Time) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	}
	return 0
}

// Apply 对内存切片执行过滤、排序与分页，语义与 SQL 实现一致
func Apply[T any](items []T, in Input, s Schema, acc Accessor[T]) *Output[T] {
	in = in.Normalize()

	filtered := make([]T, 0, len(items))
	q, ok := in.Text()
	q = strings.ToLower(q)
	for _, it := range items {
		if ok && !strings.Contains(strings.ToLower(acc.Text(it)), q) {
			continue
		}
		filtered = append(filtered, it)
	}

	keys := s.Resolve(in.OrderBy, in.Order)
	sort.SliceStable(filtered, func(i, j int) bool {
		for _, k := range keys {
			c := acc.compare(k.Field, filtered[i], filtered[j])
			if c == 0 {
				continue
			}
			if k.Desc {
				return c > 0
			}
			return c < 0
		}
		return false
	})

	total := int64(len(filtered))
	start := in.Skip()
	if start > len(filtered) {
		start = len(filtered)
	}
	end := start + in.PerPage
	if end > len(filtered) {
		end = len(filtered)
	}

	return &Output[T]{
		CurrentPage: in.Page,
		PerPage:     in.PerPage,
		Total:       total,
		Items:       filtered[start:end],
	}
}
