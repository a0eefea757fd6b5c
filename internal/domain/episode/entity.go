package episode

import (
	"time"

	"mediacatalog/internal/pkg/neparse"
)

// Episode belongs to an album; its optional media file lives under
// data/{album_uuid}/{episode_uuid}/.
type Episode struct {
	ID          int32      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	AlbumID     int32      `gorm:"column:album_id;index" json:"album_id"`
	UUID        string     `gorm:"column:uuid;uniqueIndex" json:"uuid"`
	Title       string     `gorm:"column:title" json:"title"`
	URL         *string    `gorm:"column:url" json:"url,omitempty"`
	ContentType *string    `gorm:"column:content_type" json:"content_type,omitempty"`
	Width       int32      `gorm:"column:width" json:"width"`
	Height      int32      `gorm:"column:height" json:"height"`
	Bytes       int32      `gorm:"column:bytes" json:"bytes"`
	BrokenAt    *time.Time `gorm:"column:broken_at" json:"broken_at,omitempty"`
	CreatedAt   *time.Time `gorm:"column:created_at" json:"created_at,omitempty"`
	UpdatedAt   *time.Time `gorm:"column:updated_at" json:"updated_at,omitempty"`
}

func (Episode) TableName() string { return "episodes" }

type EpisodeResponse struct {
	ID          int32   `json:"id"`
	AlbumID     int32   `json:"album_id"`
	UUID        string  `json:"uuid"`
	Title       string  `json:"title"`
	URL         *string `json:"url"`
	ContentType *string `json:"content_type"`
	Width       int32   `json:"width"`
	Height      int32   `json:"height"`
	Bytes       int32   `json:"bytes"`
	BrokenAt    *string `json:"broken_at"`
	CreatedAt   *string `json:"created_at"`
	UpdatedAt   *string `json:"updated_at"`
}

func FromEpisode(e Episode) EpisodeResponse {
	return EpisodeResponse{
		ID:          e.ID,
		AlbumID:     e.AlbumID,
		UUID:        e.UUID,
		Title:       e.Title,
		URL:         e.URL,
		ContentType: e.ContentType,
		Width:       e.Width,
		Height:      e.Height,
		Bytes:       e.Bytes,
		BrokenAt:    neparse.FormatTime(e.BrokenAt),
		CreatedAt:   neparse.FormatTime(e.CreatedAt),
		UpdatedAt:   neparse.FormatTime(e.UpdatedAt),
	}
}

func FromEpisodes(eps []Episode) []EpisodeResponse {
	out := make([]EpisodeResponse, 0, len(eps))
	for _, e := range eps {
		out = append(out, FromEpisode(e))
	}
	return out
}
