package episode

import "mediacatalog/internal/ingest"

// CreateEpisodeRequest is bound from a multipart form; the media file is
// optional at creation time.
type CreateEpisodeRequest struct {
	AlbumID int32
	Title   string
	File    *string
}

func (r *CreateEpisodeRequest) BindForm(f *ingest.Form) error {
	albumID, err := f.Int32("album_id")
	if err != nil {
		return err
	}
	title, err := f.String("title")
	if err != nil {
		return err
	}

	r.AlbumID = albumID
	r.Title = title
	if path, ok := f.File("file"); ok {
		r.File = &path
	}
	return nil
}

type UpdateEpisodeRequest struct {
	Title *string
	File  *string
}

func (r *UpdateEpisodeRequest) BindForm(f *ingest.Form) error {
	r.Title = f.OptString("title")
	if path, ok := f.File("file"); ok {
		r.File = &path
	}
	return nil
}

// FilterEpisodesRequest narrows an album's episode list by title.
type FilterEpisodesRequest struct {
	Title string `json:"title"`
}
