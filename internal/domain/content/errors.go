package content

import "errors"

var (
	ErrContentNotFound = errors.New("content not found")
	ErrEpisodeNotFound = errors.New("episode not found")
	ErrAlbumNotFound   = errors.New("album not found")
	ErrFilesRequired   = errors.New("files cannot be empty")
	ErrFilesLost       = errors.New("some files lost on data exchanging")
)
