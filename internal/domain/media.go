package domain

import "fmt"

// MediaStatus 媒体文件编码状态
type MediaStatus string

const (
	MediaPending    MediaStatus = "pending"
	MediaProcessing MediaStatus = "processing"
	MediaCompleted  MediaStatus = "completed"
	MediaError      MediaStatus = "error"
)

func (s MediaStatus) Valid() bool {
	switch s {
	case MediaPending, MediaProcessing, MediaCompleted, MediaError:
		return true
	}
	return false
}

// Terminal 已完成或失败
func (s MediaStatus) Terminal() bool {
	return s == MediaCompleted || s == MediaError
}

// Media 带编码状态的媒体文件（主视频 / 预告片）。值对象，变更时返回新实例。
type Media struct {
	FilePath    string
	EncodedPath string
	Status      MediaStatus
}

// NewMedia 新上传的文件，状态为 Pending
func NewMedia(filePath string) *Media {
	return &Media{FilePath: filePath, Status: MediaPending}
}

// SentToEncode Pending -> Processing
func (m Media) SentToEncode() (*Media, error) {
	switch m.Status {
	case MediaPending:
		m.Status = MediaProcessing
		return &m, nil
	case MediaProcessing:
		return &m, nil
	}
	return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidMediaTransition, m.Status, MediaProcessing)
}

// Encoded Pending/Processing -> Completed；已完成且路径相同视为重复通知
func (m Media) Encoded(encodedPath string) (*Media, error) {
	switch {
	case m.Status == MediaPending || m.Status == MediaProcessing:
		m.Status = MediaCompleted
		m.EncodedPath = encodedPath
		return &m, nil
	case m.Status == MediaCompleted && m.EncodedPath == encodedPath:
		return &m, nil
	}
	return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidMediaTransition, m.Status, MediaCompleted)
}

// Failed Processing -> Error
func (m Media) Failed() (*Media, error) {
	switch m.Status {
	case MediaProcessing, MediaError:
		m.Status = MediaError
		return &m, nil
	}
	return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidMediaTransition, m.Status, MediaError)
}

// Image 无编码状态的图片附件
type Image struct {
	Path string
}

func NewImage(path string) *Image {
	return &Image{Path: path}
}
