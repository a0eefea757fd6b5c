// Package mediameta inspects staged files: content type, byte size and,
// for images, pixel dimensions. It is only ever called on files the caller
// just staged itself, so a missing file is an error rather than a soft nil.
package mediameta

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/dhowden/tag"
	"github.com/gabriel-vasile/mimetype"
)

const fallbackContentType = "application/octet-stream"

type ImageMetadata struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type AudioMetadata struct {
	Format string `json:"format"`
	Title  string `json:"title"`
	Artist string `json:"artist"`
}

type Metadata struct {
	ContentType  string         `json:"content_type"`
	OriginalName string         `json:"original_name"`
	Size         int64          `json:"size"`
	Image        *ImageMetadata `json:"image,omitempty"`
	Audio        *AudioMetadata `json:"audio,omitempty"`
}

// Inspect reads filesystem metadata and content-specific details for the
// file at path. Image decode failures degrade to "no image metadata";
// video files carry no extra metadata (thumbnailing is not implemented).
func Inspect(path string) (*Metadata, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("inspect %s: %w", path, err)
	}

	meta := &Metadata{
		ContentType:  detectContentType(path),
		OriginalName: filepath.Base(path),
		Size:         info.Size(),
	}

	switch {
	case strings.HasPrefix(meta.ContentType, "image/"):
		meta.Image = imageMetadata(path, meta.ContentType)
	case strings.HasPrefix(meta.ContentType, "audio/"):
		meta.Audio = audioMetadata(path)
	}
	return meta, nil
}

// detectContentType resolves the MIME type by extension first and falls
// back to content sniffing for unknown extensions.
func detectContentType(path string) string {
	if ct := mime.TypeByExtension(filepath.Ext(path)); ct != "" {
		if i := strings.IndexByte(ct, ';'); i >= 0 {
			ct = ct[:i]
		}
		return ct
	}
	if mt, err := mimetype.DetectFile(path); err == nil {
		return mt.String()
	}
	return fallbackContentType
}

func imageMetadata(path, contentType string) *ImageMetadata {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	var cfg image.Config
	if contentType == "image/webp" {
		cfg, err = webp.DecodeConfig(f)
	} else {
		cfg, _, err = image.DecodeConfig(f)
	}
	if err != nil {
		return nil
	}
	return &ImageMetadata{Width: cfg.Width, Height: cfg.Height}
}

func audioMetadata(path string) *AudioMetadata {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return nil
	}
	return &AudioMetadata{
		Format: string(m.Format()),
		Title:  m.Title(),
		Artist: m.Artist(),
	}
}
