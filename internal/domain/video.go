package domain

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	TitleMaxLength       = 400
	DescriptionMaxLength = 4000
)

// Video 视频聚合根：标量字段、三组关系 ID 集合与五个附件
type Video struct {
	id           uuid.UUID
	title        string
	description  string
	yearLaunched int
	opened       bool
	published    bool
	duration     int
	rating       Rating
	createdAt    time.Time
	version      int64

	relations map[RelationKind]*IDSet
	dirty     map[RelationKind]bool

	thumb     *Image
	banner    *Image
	thumbHalf *Image
	media     *Media
	trailer   *Media

	orphans []string
	events  []Event
}

// NewVideo 构造新视频；任何字段违规都会一次性返回全部违规
func NewVideo(title, description string, yearLaunched int, opened, published bool, duration int, rating Rating) (*Video, error) {
	var n Notification
	validateVideo(&n, title, description, duration, rating)
	if err := n.Err("video"); err != nil {
		return nil, err
	}

	v := &Video{
		id:           uuid.New(),
		title:        title,
		description:  description,
		yearLaunched: yearLaunched,
		opened:       opened,
		published:    published,
		duration:     duration,
		rating:       rating,
		createdAt:    time.Now(),
	}
	v.initRelations()
	v.raise(VideoCreated{baseEvent: newBase(v.id), Title: title})
	return v, nil
}

func validateVideo(n *Notification, title, description string, duration int, rating Rating) {
	if strings.TrimSpace(title) == "" {
		n.Add("title is required")
	} else if utf8.RuneCountInString(title) > TitleMaxLength {
		n.Addf("title should be at most %d characters long", TitleMaxLength)
	}
	if strings.TrimSpace(description) == "" {
		n.Add("description is required")
	} else if utf8.RuneCountInString(description) > DescriptionMaxLength {
		n.Addf("description should be at most %d characters long", DescriptionMaxLength)
	}
	if duration <= 0 {
		n.Add("duration should be greater than zero")
	}
	if !rating.Valid() {
		n.Addf("rating %q is not a valid rating", string(rating))
	}
}

// VideoUpdate 部分更新，nil 字段保持原值
type VideoUpdate struct {
	Title        *string
	Description  *string
	YearLaunched *int
	Opened       *bool
	Published    *bool
	Duration     *int
	Rating       *Rating
}

// Update 校验全部字段后整体替换；校验失败时聚合保持不变
func (v *Video) Update(u VideoUpdate) error {
	title, description, year := v.title, v.description, v.yearLaunched
	opened, published, duration, rating := v.opened, v.published, v.duration, v.rating
	if u.Title != nil {
		title = *u.Title
	}
	if u.Description != nil {
		description = *u.Description
	}
	if u.YearLaunched != nil {
		year = *u.YearLaunched
	}
	if u.Opened != nil {
		opened = *u.Opened
	}
	if u.Published != nil {
		published = *u.Published
	}
	if u.Duration != nil {
		duration = *u.Duration
	}
	if u.Rating != nil {
		rating = *u.Rating
	}

	var n Notification
	validateVideo(&n, title, description, duration, rating)
	if err := n.Err("video"); err != nil {
		return err
	}

	v.title, v.description, v.yearLaunched = title, description, year
	v.opened, v.published, v.duration, v.rating = opened, published, duration, rating
	return nil
}

func (v *Video) initRelations() {
	v.relations = make(map[RelationKind]*IDSet, len(RelationKinds))
	for _, k := range RelationKinds {
		v.relations[k] = &IDSet{}
	}
	v.dirty = make(map[RelationKind]bool)
}

func (v *Video) set(kind RelationKind) *IDSet {
	if v.relations == nil {
		v.initRelations()
	}
	s, ok := v.relations[kind]
	if !ok {
		s = &IDSet{}
		v.relations[kind] = s
	}
	return s
}

func (v *Video) addRelation(kind RelationKind, id uuid.UUID) {
	if v.set(kind).Add(id) {
		v.dirty[kind] = true
	}
}

func (v *Video) removeRelation(kind RelationKind, id uuid.UUID) {
	if v.set(kind).Remove(id) {
		v.dirty[kind] = true
	}
}

func (v *Video) clearRelation(kind RelationKind) {
	s := v.set(kind)
	s.Clear()
	v.dirty[kind] = true
}

func (v *Video) AddCategory(id uuid.UUID)   { v.addRelation(RelationCategories, id) }
func (v *Video) AddGenre(id uuid.UUID)      { v.addRelation(RelationGenres, id) }
func (v *Video) AddCastMember(id uuid.UUID) { v.addRelation(RelationCastMembers, id) }

func (v *Video) RemoveCategory(id uuid.UUID)   { v.removeRelation(RelationCategories, id) }
func (v *Video) RemoveGenre(id uuid.UUID)      { v.removeRelation(RelationGenres, id) }
func (v *Video) RemoveCastMember(id uuid.UUID) { v.removeRelation(RelationCastMembers, id) }

func (v *Video) RemoveAllCategories()  { v.clearRelation(RelationCategories) }
func (v *Video) RemoveAllGenres()      { v.clearRelation(RelationGenres) }
func (v *Video) RemoveAllCastMembers() { v.clearRelation(RelationCastMembers) }

// ReplaceRelations 清空某类关系后用 ids 重新填充，对调用方是一次操作
func (v *Video) ReplaceRelations(kind RelationKind, ids []uuid.UUID) {
	v.clearRelation(kind)
	for _, id := range ids {
		v.set(kind).Add(id)
	}
}

// Relation 返回某类关系的 ID（已排序）
func (v *Video) Relation(kind RelationKind) []uuid.UUID {
	return v.set(kind).IDs()
}

func (v *Video) Categories() []uuid.UUID  { return v.Relation(RelationCategories) }
func (v *Video) Genres() []uuid.UUID      { return v.Relation(RelationGenres) }
func (v *Video) CastMembers() []uuid.UUID { return v.Relation(RelationCastMembers) }

// DirtyRelations 自加载/上次持久化以来被修改过的关系种类
func (v *Video) DirtyRelations() []RelationKind {
	var out []RelationKind
	for _, k := range RelationKinds {
		if v.dirty[k] {
			out = append(out, k)
		}
	}
	return out
}

// ClearDirtyRelations 持久化后由仓储调用
func (v *Video) ClearDirtyRelations() {
	v.dirty = make(map[RelationKind]bool)
}

func (v *Video) orphan(paths ...string) {
	for _, p := range paths {
		if p != "" {
			v.orphans = append(v.orphans, p)
		}
	}
}

func (v *Video) replaceImage(slot **Image, path string) {
	if *slot != nil && (*slot).Path != path {
		v.orphan((*slot).Path)
	}
	*slot = NewImage(path)
}

func (v *Video) replaceMedia(slot **Media, path string) {
	if old := *slot; old != nil {
		if old.FilePath != path {
			v.orphan(old.FilePath)
		}
		if old.EncodedPath != path {
			v.orphan(old.EncodedPath)
		}
	}
	*slot = NewMedia(path)
}

func (v *Video) UpdateThumb(path string)     { v.replaceImage(&v.thumb, path) }
func (v *Video) UpdateBanner(path string)    { v.replaceImage(&v.banner, path) }
func (v *Video) UpdateThumbHalf(path string) { v.replaceImage(&v.thumbHalf, path) }

// UpdateMedia 替换主视频文件，状态重置为 Pending 并发出编码请求事件
func (v *Video) UpdateMedia(path string) {
	v.replaceMedia(&v.media, path)
	v.raise(VideoMediaUploaded{baseEvent: newBase(v.id), FilePath: path})
}

// UpdateTrailer 替换预告片文件，状态重置为 Pending
func (v *Video) UpdateTrailer(path string) {
	v.replaceMedia(&v.trailer, path)
}

// UpdateAsSentToEncode 主视频进入编码；没有主视频时忽略
func (v *Video) UpdateAsSentToEncode() error {
	if v.media == nil {
		return nil
	}
	m, err := v.media.SentToEncode()
	if err != nil {
		return err
	}
	v.media = m
	return nil
}

// UpdateAsEncoded 主视频编码完成；只作用于 Media，不影响 Trailer。没有主视频时忽略
func (v *Video) UpdateAsEncoded(encodedPath string) error {
	if v.media == nil {
		return nil
	}
	m, err := v.media.Encoded(encodedPath)
	if err != nil {
		return err
	}
	v.media = m
	return nil
}

// UpdateAsEncodingError 主视频编码失败；没有主视频时忽略
func (v *Video) UpdateAsEncodingError() error {
	if v.media == nil {
		return nil
	}
	m, err := v.media.Failed()
	if err != nil {
		return err
	}
	v.media = m
	return nil
}

// Orphans 被替换掉、需在提交后从对象存储删除的旧文件路径
func (v *Video) Orphans() []string {
	out := make([]string, len(v.orphans))
	copy(out, v.orphans)
	return out
}

func (v *Video) ClearOrphans() { v.orphans = nil }

// AttachmentPaths 当前引用的全部文件路径（删除视频时清理）
func (v *Video) AttachmentPaths() []string {
	var out []string
	for _, img := range []*Image{v.thumb, v.banner, v.thumbHalf} {
		if img != nil && img.Path != "" {
			out = append(out, img.Path)
		}
	}
	for _, m := range []*Media{v.media, v.trailer} {
		if m == nil {
			continue
		}
		if m.FilePath != "" {
			out = append(out, m.FilePath)
		}
		if m.EncodedPath != "" {
			out = append(out, m.EncodedPath)
		}
	}
	return out
}

func (v *Video) raise(e Event) {
	v.events = append(v.events, e)
}

// Events 尚未发布的领域事件
func (v *Video) Events() []Event {
	out := make([]Event, len(v.events))
	copy(out, v.events)
	return out
}

func (v *Video) ClearEvents() { v.events = nil }

func (v *Video) ID() uuid.UUID        { return v.id }
func (v *Video) Title() string        { return v.title }
func (v *Video) Description() string  { return v.description }
func (v *Video) YearLaunched() int    { return v.yearLaunched }
func (v *Video) Opened() bool         { return v.opened }
func (v *Video) Published() bool      { return v.published }
func (v *Video) Duration() int        { return v.duration }
func (v *Video) Rating() Rating       { return v.rating }
func (v *Video) CreatedAt() time.Time { return v.createdAt }
func (v *Video) Version() int64       { return v.version }
func (v *Video) Thumb() *Image        { return v.thumb }
func (v *Video) Banner() *Image       { return v.banner }
func (v *Video) ThumbHalf() *Image    { return v.thumbHalf }
func (v *Video) Media() *Media        { return v.media }
func (v *Video) Trailer() *Media      { return v.trailer }

// SetVersion 由仓储在写入成功后回填乐观锁版本
func (v *Video) SetVersion(version int64) { v.version = version }

// VideoState 从存储重建聚合所需的完整状态
type VideoState struct {
	ID           uuid.UUID
	Title        string
	Description  string
	YearLaunched int
	Opened       bool
	Published    bool
	Duration     int
	Rating       Rating
	CreatedAt    time.Time
	Version      int64
	Categories   []uuid.UUID
	Genres       []uuid.UUID
	CastMembers  []uuid.UUID
	Thumb        *Image
	Banner       *Image
	ThumbHalf    *Image
	Media        *Media
	Trailer      *Media
}

// RestoreVideo 重建已持久化的聚合，不做校验也不产生事件
func RestoreVideo(s VideoState) *Video {
	v := &Video{
		id:           s.ID,
		title:        s.Title,
		description:  s.Description,
		yearLaunched: s.YearLaunched,
		opened:       s.Opened,
		published:    s.Published,
		duration:     s.Duration,
		rating:       s.Rating,
		createdAt:    s.CreatedAt,
		version:      s.Version,
		thumb:        s.Thumb,
		banner:       s.Banner,
		thumbHalf:    s.ThumbHalf,
		media:        s.Media,
		trailer:      s.Trailer,
	}
	v.initRelations()
	v.relations[RelationCategories].ReplaceAll(s.Categories)
	v.relations[RelationGenres].ReplaceAll(s.Genres)
	v.relations[RelationCastMembers].ReplaceAll(s.CastMembers)
	return v
}
