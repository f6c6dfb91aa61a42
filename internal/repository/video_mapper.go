package repository

import (
	"fmt"

	"catalog-go/internal/domain"
	"catalog-go/internal/model"

	"github.com/google/uuid"
)

func strPtr(s string) *string {
	return &s
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func imagePath(img *domain.Image) *string {
	if img == nil {
		return nil
	}
	return strPtr(img.Path)
}

func mediaColumns(m *domain.Media) (filePath, encodedPath, status *string) {
	if m == nil {
		return nil, nil, nil
	}
	return strPtr(m.FilePath), strPtr(m.EncodedPath), strPtr(string(m.Status))
}

func toVideoRow(v *domain.Video) *model.Video {
	row := &model.Video{
		ID:            v.ID().String(),
		Title:         v.Title(),
		Description:   v.Description(),
		YearLaunched:  v.YearLaunched(),
		Opened:        v.Opened(),
		Published:     v.Published(),
		Duration:      v.Duration(),
		Rating:        string(v.Rating()),
		Version:       v.Version(),
		CreatedAt:     v.CreatedAt(),
		ThumbPath:     imagePath(v.Thumb()),
		BannerPath:    imagePath(v.Banner()),
		ThumbHalfPath: imagePath(v.ThumbHalf()),
	}
	row.MediaFilePath, row.MediaEncodedPath, row.MediaStatus = mediaColumns(v.Media())
	row.TrailerFilePath, row.TrailerEncodedPath, row.TrailerStatus = mediaColumns(v.Trailer())
	return row
}

// videoColumns 更新用的列集合；map 形式保证 nil 附件写成 NULL
func videoColumns(row *model.Video, version int64) map[string]interface{} {
	return map[string]interface{}{
		"title":                row.Title,
		"description":          row.Description,
		"year_launched":        row.YearLaunched,
		"opened":               row.Opened,
		"published":            row.Published,
		"duration":             row.Duration,
		"rating":               row.Rating,
		"version":              version,
		"thumb_path":           row.ThumbPath,
		"banner_path":          row.BannerPath,
		"thumb_half_path":      row.ThumbHalfPath,
		"media_file_path":      row.MediaFilePath,
		"media_encoded_path":   row.MediaEncodedPath,
		"media_status":         row.MediaStatus,
		"trailer_file_path":    row.TrailerFilePath,
		"trailer_encoded_path": row.TrailerEncodedPath,
		"trailer_status":       row.TrailerStatus,
	}
}

func toImage(p *string) *domain.Image {
	if p == nil {
		return nil
	}
	return domain.NewImage(*p)
}

func toMedia(filePath, encodedPath, status *string) *domain.Media {
	if filePath == nil {
		return nil
	}
	m := &domain.Media{FilePath: *filePath, EncodedPath: deref(encodedPath), Status: domain.MediaStatus(deref(status))}
	if !m.Status.Valid() {
		m.Status = domain.MediaPending
	}
	return m
}

func parseIDs[T any](rows []T, id func(T) string) ([]uuid.UUID, error) {
	out := make([]uuid.UUID, 0, len(rows))
	for _, r := range rows {
		parsed, err := uuid.Parse(id(r))
		if err != nil {
			return nil, fmt.Errorf("parse relation id: %w", err)
		}
		out = append(out, parsed)
	}
	return out, nil
}

func toVideo(row *model.Video) (*domain.Video, error) {
	id, err := uuid.Parse(row.ID)
	if err != nil {
		return nil, fmt.Errorf("parse video id %q: %w", row.ID, err)
	}
	categories, err := parseIDs(row.Categories, func(r model.VideoCategory) string { return r.CategoryID })
	if err != nil {
		return nil, err
	}
	genres, err := parseIDs(row.Genres, func(r model.VideoGenre) string { return r.GenreID })
	if err != nil {
		return nil, err
	}
	castMembers, err := parseIDs(row.CastMembers, func(r model.VideoCastMember) string { return r.CastMemberID })
	if err != nil {
		return nil, err
	}

	return domain.RestoreVideo(domain.VideoState{
		ID:           id,
		Title:        row.Title,
		Description:  row.Description,
		YearLaunched: row.YearLaunched,
		Opened:       row.Opened,
		Published:    row.Published,
		Duration:     row.Duration,
		Rating:       domain.Rating(row.Rating),
		CreatedAt:    row.CreatedAt,
		Version:      row.Version,
		Categories:   categories,
		Genres:       genres,
		CastMembers:  castMembers,
		Thumb:        toImage(row.ThumbPath),
		Banner:       toImage(row.BannerPath),
		ThumbHalf:    toImage(row.ThumbHalfPath),
		Media:        toMedia(row.MediaFilePath, row.MediaEncodedPath, row.MediaStatus),
		Trailer:      toMedia(row.TrailerFilePath, row.TrailerEncodedPath, row.TrailerStatus),
	}), nil
}
