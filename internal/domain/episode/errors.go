package episode

import "errors"

var (
	ErrEpisodeNotFound = errors.New("episode not found")
	ErrAlbumNotFound   = errors.New("album not found")
	ErrFilesLost       = errors.New("some files lost on data exchanging")
)
