package mediameta

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create png: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("encode png: %v", err)
	}
}

func TestInspectImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pic.png")
	writePNG(t, path, 320, 200)

	meta, err := Inspect(path)
	if err != nil {
		t.Fatalf("Inspect returned error: %v", err)
	}
	if meta.ContentType != "image/png" {
		t.Fatalf("expected image/png, got %s", meta.ContentType)
	}
	if meta.OriginalName != "pic.png" {
		t.Fatalf("expected original name pic.png, got %s", meta.OriginalName)
	}
	if meta.Size == 0 {
		t.Fatal("expected non-zero size")
	}
	if meta.Image == nil {
		t.Fatal("expected image metadata")
	}
	if meta.Image.Width != 320 || meta.Image.Height != 200 {
		t.Fatalf("expected 320x200, got %dx%d", meta.Image.Width, meta.Image.Height)
	}
}

func TestInspectCorruptImageDegradesGracefully(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.jpg")
	if err := os.WriteFile(path, []byte("not a jpeg"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	meta, err := Inspect(path)
	if err != nil {
		t.Fatalf("Inspect returned error: %v", err)
	}
	if meta.ContentType != "image/jpeg" {
		t.Fatalf("expected extension-derived image/jpeg, got %s", meta.ContentType)
	}
	if meta.Image != nil {
		t.Fatal("expected no image metadata for undecodable file")
	}
}

func TestInspectUnknownExtensionSniffsContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blob.zzz9")
	if err := os.WriteFile(path, []byte{0x00, 0x01, 0x02, 0x03}, 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	meta, err := Inspect(path)
	if err != nil {
		t.Fatalf("Inspect returned error: %v", err)
	}
	if meta.ContentType == "" {
		t.Fatal("expected a detected content type")
	}
}

func TestInspectMissingFileIsFatal(t *testing.T) {
	if _, err := Inspect(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
