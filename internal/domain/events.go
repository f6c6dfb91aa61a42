package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventVideoCreated       = "video.created"
	EventVideoUpdated       = "video.updated"
	EventVideoDeleted       = "video.deleted"
	EventVideoMediaUploaded = "video.media_uploaded"
)

// Event 聚合产生的领域事件，提交成功后才对外发布
type Event interface {
	EventName() string
	AggregateID() uuid.UUID
	OccurredAt() time.Time
}

type baseEvent struct {
	VideoID    uuid.UUID `json:"video_id"`
	OccurredOn time.Time `json:"occurred_at"`
}

func (e baseEvent) AggregateID() uuid.UUID { return e.VideoID }
func (e baseEvent) OccurredAt() time.Time  { return e.OccurredOn }

// VideoCreated 视频创建
type VideoCreated struct {
	baseEvent
	Title string `json:"title"`
}

func (VideoCreated) EventName() string { return EventVideoCreated }

// VideoUpdated 视频提交了修改
type VideoUpdated struct {
	baseEvent
}

func (VideoUpdated) EventName() string { return EventVideoUpdated }

// VideoDeleted 视频删除
type VideoDeleted struct {
	baseEvent
}

func (VideoDeleted) EventName() string { return EventVideoDeleted }

// VideoMediaUploaded 主视频文件已上传，等待编码服务处理
type VideoMediaUploaded struct {
	baseEvent
	FilePath string `json:"file_path"`
}

func (VideoMediaUploaded) EventName() string { return EventVideoMediaUploaded }

func newBase(id uuid.UUID) baseEvent {
	return baseEvent{VideoID: id, OccurredOn: time.Now().UTC()}
}

func NewVideoUpdated(id uuid.UUID) VideoUpdated { return VideoUpdated{baseEvent: newBase(id)} }

func NewVideoDeleted(id uuid.UUID) VideoDeleted { return VideoDeleted{baseEvent: newBase(id)} }
