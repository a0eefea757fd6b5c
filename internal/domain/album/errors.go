package album

import "errors"

var (
	ErrAlbumNotFound = errors.New("album not found")
	// ErrFilesLost signals a partial commit: the row is already written
	// but one or more staged files never reached their destination.
	ErrFilesLost      = errors.New("some files lost on data exchanging")
	ErrCoverRequired  = errors.New("cover file is required")
	ErrImagesRequired = errors.New("images cannot be empty")
	ErrNoImageRemoved = errors.New("no image was removed")
)
