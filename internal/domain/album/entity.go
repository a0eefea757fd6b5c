package album

import (
	"strings"
	"time"

	"mediacatalog/internal/pkg/neparse"
)

// Album is the top-level catalog entity. Asset paths stored in url and
// images are relative to the project root and always live under the
// album's own UUID directory, so deleting the album means deleting
// data/{uuid} plus this row.
type Album struct {
	ID          int32      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UUID        string     `gorm:"column:uuid;uniqueIndex" json:"uuid"`
	Title       string     `gorm:"column:title" json:"title"`
	Description string     `gorm:"column:description" json:"description"`
	Completed   bool       `gorm:"column:completed" json:"completed"`
	Images      string     `gorm:"column:images" json:"images"`
	Tags        *string    `gorm:"column:tags" json:"tags,omitempty"`
	Enable      bool       `gorm:"column:enable" json:"enable"`
	MinAge      int32      `gorm:"column:min_age" json:"min_age"`
	URL         string     `gorm:"column:url" json:"url"`
	ContentType string     `gorm:"column:content_type" json:"content_type"`
	Width       int32      `gorm:"column:width" json:"width"`
	Height      int32      `gorm:"column:height" json:"height"`
	Bytes       int32      `gorm:"column:bytes" json:"bytes"`
	ReleasedAt  *time.Time `gorm:"column:released_at" json:"released_at,omitempty"`
	BrokenAt    *time.Time `gorm:"column:broken_at" json:"broken_at,omitempty"`
	CreatedAt   *time.Time `gorm:"column:created_at" json:"created_at,omitempty"`
	UpdatedAt   *time.Time `gorm:"column:updated_at" json:"updated_at,omitempty"`
}

func (Album) TableName() string { return "albums" }

// imagesSeparator joins the multi-valued images column. split(join(x)) == x
// for any list whose entries avoid the separator; empty entries are always
// filtered on read.
const imagesSeparator = ","

func JoinImages(images []string) string {
	kept := make([]string, 0, len(images))
	for _, img := range images {
		if strings.TrimSpace(img) != "" {
			kept = append(kept, img)
		}
	}
	return strings.Join(kept, imagesSeparator)
}

func SplitImages(joined string) []string {
	out := []string{}
	for _, img := range strings.Split(joined, imagesSeparator) {
		if img != "" {
			out = append(out, img)
		}
	}
	return out
}

// AlbumResponse is the outbound projection: images exploded into a list,
// timestamps rendered as RFC3339 UTC truncated to seconds.
type AlbumResponse struct {
	ID          int32    `json:"id"`
	UUID        string   `json:"uuid"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Completed   bool     `json:"completed"`
	Images      []string `json:"images"`
	Tags        *string  `json:"tags"`
	Enable      bool     `json:"enable"`
	MinAge      int32    `json:"min_age"`
	URL         string   `json:"url"`
	ContentType string   `json:"content_type"`
	Width       int32    `json:"width"`
	Height      int32    `json:"height"`
	Bytes       int32    `json:"bytes"`
	ReleasedAt  *string  `json:"released_at"`
	BrokenAt    *string  `json:"broken_at"`
	CreatedAt   *string  `json:"created_at"`
	UpdatedAt   *string  `json:"updated_at"`
}

func FromAlbum(a Album) AlbumResponse {
	return AlbumResponse{
		ID:          a.ID,
		UUID:        a.UUID,
		Title:       a.Title,
		Description: a.Description,
		Completed:   a.Completed,
		Images:      SplitImages(a.Images),
		Tags:        a.Tags,
		Enable:      a.Enable,
		MinAge:      a.MinAge,
		URL:         a.URL,
		ContentType: a.ContentType,
		Width:       a.Width,
		Height:      a.Height,
		Bytes:       a.Bytes,
		ReleasedAt:  neparse.FormatTime(a.ReleasedAt),
		BrokenAt:    neparse.FormatTime(a.BrokenAt),
		CreatedAt:   neparse.FormatTime(a.CreatedAt),
		UpdatedAt:   neparse.FormatTime(a.UpdatedAt),
	}
}

func FromAlbums(albums []Album) []AlbumResponse {
	out := make([]AlbumResponse, 0, len(albums))
	for _, a := range albums {
		out = append(out, FromAlbum(a))
	}
	return out
}
