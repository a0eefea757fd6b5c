package content

import "mediacatalog/internal/ingest"

// AddEpisodeContentsRequest carries one or more uploads that become one
// content row each, ordered by submission.
type AddEpisodeContentsRequest struct {
	EpisodeID int32
	Files     []string
}

func (r *AddEpisodeContentsRequest) BindForm(f *ingest.Form) error {
	episodeID, err := f.Int32("episode_id")
	if err != nil {
		return err
	}
	files := f.Files("files")
	if len(files) == 0 {
		return ErrFilesRequired
	}
	r.EpisodeID = episodeID
	r.Files = files
	return nil
}

type UpdateContentRequest struct {
	File    *string
	AdsURL  *string
	IndexNo *int32
}

func (r *UpdateContentRequest) BindForm(f *ingest.Form) error {
	if path, ok := f.File("file"); ok {
		r.File = &path
	}
	r.AdsURL = f.OptString("ads_url")
	r.IndexNo = f.OptInt32("index_no")
	return nil
}
