package content

import (
	"time"

	"mediacatalog/internal/pkg/neparse"
)

// Content is one page/frame/segment of an episode. Its file lives under
// data/{album_uuid}/{episode_uuid}/{uuid}.{ext}.
type Content struct {
	ID          int32      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	EpisodeID   int32      `gorm:"column:episode_id;index" json:"episode_id"`
	UUID        string     `gorm:"column:uuid;uniqueIndex" json:"uuid"`
	IndexNo     int32      `gorm:"column:index_no" json:"index_no"`
	URL         string     `gorm:"column:url" json:"url"`
	AdsURL      *string    `gorm:"column:ads_url" json:"ads_url,omitempty"`
	ContentType string     `gorm:"column:content_type" json:"content_type"`
	Width       int32      `gorm:"column:width" json:"width"`
	Height      int32      `gorm:"column:height" json:"height"`
	Bytes       int32      `gorm:"column:bytes" json:"bytes"`
	BrokenAt    *time.Time `gorm:"column:broken_at" json:"broken_at,omitempty"`
	CreatedAt   *time.Time `gorm:"column:created_at" json:"created_at,omitempty"`
	UpdatedAt   *time.Time `gorm:"column:updated_at" json:"updated_at,omitempty"`
}

func (Content) TableName() string { return "contents" }

type ContentResponse struct {
	ID          int32   `json:"id"`
	EpisodeID   int32   `json:"episode_id"`
	UUID        string  `json:"uuid"`
	IndexNo     int32   `json:"index_no"`
	URL         string  `json:"url"`
	AdsURL      *string `json:"ads_url"`
	ContentType string  `json:"content_type"`
	Width       int32   `json:"width"`
	Height      int32   `json:"height"`
	Bytes       int32   `json:"bytes"`
	BrokenAt    *string `json:"broken_at"`
}

func FromContent(c Content) ContentResponse {
	return ContentResponse{
		ID:          c.ID,
		EpisodeID:   c.EpisodeID,
		UUID:        c.UUID,
		IndexNo:     c.IndexNo,
		URL:         c.URL,
		AdsURL:      c.AdsURL,
		ContentType: c.ContentType,
		Width:       c.Width,
		Height:      c.Height,
		Bytes:       c.Bytes,
		BrokenAt:    neparse.FormatTime(c.BrokenAt),
	}
}

func FromContents(cs []Content) []ContentResponse {
	out := make([]ContentResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, FromContent(c))
	}
	return out
}
