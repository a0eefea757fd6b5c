// Package storage knows where committed media assets live on disk.
// Stored URLs are always relative to the project root; the filesystem is a
// derived cache of "where the bytes for this row currently live".
package storage

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Layout computes asset paths under the permanent data directory.
// Every entity owns the namespace directory keyed by its UUID, which makes
// entity deletion equivalent to deleting that directory plus the row.
type Layout struct {
	projectRoot string
	dataDir     string
}

func NewLayout(projectRoot, dataDir string) *Layout {
	return &Layout{projectRoot: projectRoot, dataDir: dataDir}
}

// AlbumAssetURL returns the relative URL for an album-level asset, e.g.
// data/{album_uuid}/{asset_id}.{ext}.
func (l *Layout) AlbumAssetURL(albumUUID, assetID, srcPath string) string {
	return fmt.Sprintf("%s/%s/%s.%s", l.dataDir, albumUUID, assetID, Ext(srcPath))
}

// EpisodeAssetURL returns the relative URL for an episode-level asset, e.g.
// data/{album_uuid}/{episode_uuid}/{asset_id}.{ext}.
func (l *Layout) EpisodeAssetURL(albumUUID, episodeUUID, assetID, srcPath string) string {
	return fmt.Sprintf("%s/%s/%s/%s.%s", l.dataDir, albumUUID, episodeUUID, assetID, Ext(srcPath))
}

// AlbumDir returns the relative namespace directory of an album.
func (l *Layout) AlbumDir(albumUUID string) string {
	return fmt.Sprintf("%s/%s", l.dataDir, albumUUID)
}

// EpisodeDir returns the relative namespace directory of an episode.
func (l *Layout) EpisodeDir(albumUUID, episodeUUID string) string {
	return fmt.Sprintf("%s/%s/%s", l.dataDir, albumUUID, episodeUUID)
}

// Abs anchors a stored relative URL at the project root.
func (l *Layout) Abs(relURL string) string {
	return filepath.Join(l.projectRoot, filepath.FromSlash(relURL))
}

// Ext extracts the extension of a path without the leading dot, falling
// back to "bin" for extensionless files.
func Ext(path string) string {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "bin"
	}
	return ext
}
