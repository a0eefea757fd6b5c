package album

import (
	"time"

	"mediacatalog/internal/ingest"
)

// CreateAlbumRequest is bound from a multipart form. Cover is a single
// required upload; Images is an explicit list field regardless of how many
// parts arrived.
type CreateAlbumRequest struct {
	Title       string
	Description string
	Cover       string
	Images      []string
	Completed   *bool
	Tags        *string
	Enable      *bool
	MinAge      *int32
	ReleasedAt  *time.Time
}

func (r *CreateAlbumRequest) BindForm(f *ingest.Form) error {
	title, err := f.String("title")
	if err != nil {
		return err
	}
	description, err := f.String("description")
	if err != nil {
		return err
	}
	cover, ok := f.File("cover")
	if !ok {
		return ErrCoverRequired
	}

	r.Title = title
	r.Description = description
	r.Cover = cover
	r.Images = f.Files("images")
	r.Completed = f.OptBool("completed")
	r.Tags = f.OptString("tags")
	r.Enable = f.OptBool("enable")
	r.MinAge = f.OptInt32("min_age")
	r.ReleasedAt = f.OptTime("released_at")
	return nil
}

// UpdateAlbumRequest replaces the cover only when a new file arrives;
// absent scalar fields keep the stored values.
type UpdateAlbumRequest struct {
	Title       string
	Description string
	Cover       *string
	Completed   *bool
	Tags        *string
	Enable      *bool
	MinAge      *int32
	ReleasedAt  *time.Time
	BrokenAt    *time.Time
}

func (r *UpdateAlbumRequest) BindForm(f *ingest.Form) error {
	title, err := f.String("title")
	if err != nil {
		return err
	}
	description, err := f.String("description")
	if err != nil {
		return err
	}

	r.Title = title
	r.Description = description
	if cover, ok := f.File("cover"); ok {
		r.Cover = &cover
	}
	r.Completed = f.OptBool("completed")
	r.Tags = f.OptString("tags")
	r.Enable = f.OptBool("enable")
	r.MinAge = f.OptInt32("min_age")
	r.ReleasedAt = f.OptTime("released_at")
	r.BrokenAt = f.OptTime("broken_at")
	return nil
}

type AddAlbumImagesRequest struct {
	Images []string
}

func (r *AddAlbumImagesRequest) BindForm(f *ingest.Form) error {
	images := f.Files("images")
	if len(images) == 0 {
		return ErrImagesRequired
	}
	r.Images = images
	return nil
}

// RemoveAlbumImagesRequest carries stored image URLs, not uploads.
type RemoveAlbumImagesRequest struct {
	Images []string `json:"images" binding:"required"`
}

// ListAlbumsRequest filters the album list. Zero/empty values mean "no
// filter"; Limit 0 returns everything.
type ListAlbumsRequest struct {
	ID        *int32  `json:"id"`
	UUID      *string `json:"uuid"`
	Title     *string `json:"title"`
	Completed *bool   `json:"completed"`
	Tags      *string `json:"tags"`
	Enable    *bool   `json:"enable"`
	Broken    *bool   `json:"broken"`
	MinAge    *int32  `json:"min_age"`
	Offset    *int64  `json:"offset"`
	Limit     *int64  `json:"limit"`
}
