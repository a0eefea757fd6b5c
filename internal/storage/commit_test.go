package storage

import (
	"os"
	"path/filepath"
	"testing"

	"mediacatalog/internal/pkg/fsutil"
)

func TestCommitMovesCountsLostFiles(t *testing.T) {
	root := t.TempDir()
	l := NewLayout(root, "data")

	staged := filepath.Join(root, "tmp", "req")
	first := filepath.Join(staged, "a.jpg")
	missing := filepath.Join(staged, "b.jpg")
	third := filepath.Join(staged, "c.jpg")
	if err := fsutil.SaveFile(first, []byte("a")); err != nil {
		t.Fatalf("stage first: %v", err)
	}
	if err := fsutil.SaveFile(third, []byte("c")); err != nil {
		t.Fatalf("stage third: %v", err)
	}

	pairs := []MovePair{
		{Src: first, Dest: "data/u/1.jpg"},
		{Src: missing, Dest: "data/u/2.jpg"},
		{Src: third, Dest: "data/u/3.jpg"},
	}
	moved, lost := l.CommitMoves(pairs)
	if moved != 2 || lost != 1 {
		t.Fatalf("expected moved=2 lost=1, got moved=%d lost=%d", moved, lost)
	}

	// the surviving files are at their destinations, the lost one is not
	if !fsutil.FileExists(l.Abs("data/u/1.jpg")) || !fsutil.FileExists(l.Abs("data/u/3.jpg")) {
		t.Fatal("expected surviving files at their destinations")
	}
	if fsutil.FileExists(l.Abs("data/u/2.jpg")) {
		t.Fatal("expected no destination for the lost file")
	}
	if fsutil.FileExists(first) || fsutil.FileExists(third) {
		t.Fatal("expected staged sources to be gone after move")
	}
}

func TestDiscardOldAbsentIsFine(t *testing.T) {
	l := NewLayout(t.TempDir(), "data")
	l.DiscardOld("data/u/never.jpg")
	l.DiscardOld("")
}

func TestDiscardNamespaceRemovesTree(t *testing.T) {
	root := t.TempDir()
	l := NewLayout(root, "data")
	if err := fsutil.SaveFile(l.Abs("data/u/ep/1.jpg"), []byte("x")); err != nil {
		t.Fatalf("save: %v", err)
	}

	l.DiscardNamespace("data/u")
	if _, err := os.Stat(l.Abs("data/u")); !os.IsNotExist(err) {
		t.Fatal("expected namespace directory to be gone")
	}
}
