package storage

import (
	"log"

	"mediacatalog/internal/pkg/fsutil"
)

// MovePair maps one staged source file to its committed relative URL.
type MovePair struct {
	Src  string // absolute staged path
	Dest string // relative URL under the data dir
}

// CommitMoves relocates staged files to their final destinations. It runs
// only after the owning row write has committed, so a lost or unmovable
// source cannot be rolled back; it is counted and left to the caller to
// surface. Files moved before a loss stay in place.
func (l *Layout) CommitMoves(pairs []MovePair) (moved, lost int) {
	for _, pair := range pairs {
		if !fsutil.FileExists(pair.Src) {
			log.Printf("file_commit_missing src=%s dest=%s", pair.Src, pair.Dest)
			lost++
			continue
		}
		if err := fsutil.MoveAndReplace(pair.Src, l.Abs(pair.Dest)); err != nil {
			log.Printf("file_commit_failed src=%s dest=%s error=%q", pair.Src, pair.Dest, err)
			lost++
			continue
		}
		moved++
	}
	return moved, lost
}

// DiscardOld deletes a superseded asset after an update. Best effort: the
// row is already authoritative, so failures are logged, never surfaced.
func (l *Layout) DiscardOld(relURL string) {
	if relURL == "" {
		return
	}
	if err := fsutil.DeleteFileIfExists(l.Abs(relURL)); err != nil {
		log.Printf("old_asset_delete_failed url=%s error=%q", relURL, err)
	}
}

// DiscardNamespace deletes an entity's whole asset directory. Best effort,
// used by delete flows before the row goes away.
func (l *Layout) DiscardNamespace(relDir string) {
	if err := fsutil.DeleteDirIfExists(l.Abs(relDir)); err != nil {
		log.Printf("namespace_delete_failed dir=%s error=%q", relDir, err)
	}
}
