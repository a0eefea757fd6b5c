package album

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"mediacatalog/internal/auth"
	"mediacatalog/internal/events"
	"mediacatalog/internal/pkg/mediameta"
	"mediacatalog/internal/storage"
)

// Service orchestrates the file/row co-commit protocol for albums. The
// row write always runs first; staged files move only after it commits,
// and delete flows go file-first, row-second.
type Service struct {
	repo   Repository
	layout *storage.Layout
	pub    events.Publisher
}

func NewService(repo Repository, layout *storage.Layout, pub events.Publisher) *Service {
	if pub == nil {
		pub = events.Noop{}
	}
	return &Service{repo: repo, layout: layout, pub: pub}
}

// Create validates the bound request, writes the album row with its final
// asset URLs, and only then relocates the staged cover and images.
func (s *Service) Create(ctx context.Context, ac auth.AuthContext, req *CreateAlbumRequest) (*AlbumResponse, error) {
	if err := ac.RequireAdmin(); err != nil {
		return nil, err
	}

	meta, err := mediameta.Inspect(req.Cover)
	if err != nil {
		return nil, fmt.Errorf("inspect cover: %w", err)
	}

	albumUUID := uuid.New().String()
	coverURL := s.layout.AlbumAssetURL(albumUUID, uuid.New().String(), req.Cover)
	imageURLs := make([]string, 0, len(req.Images))
	for _, src := range req.Images {
		imageURLs = append(imageURLs, s.layout.AlbumAssetURL(albumUUID, uuid.New().String(), src))
	}

	now := time.Now().UTC()
	row := &Album{
		UUID:        albumUUID,
		Title:       req.Title,
		Description: req.Description,
		Completed:   boolOr(req.Completed, false),
		Images:      JoinImages(imageURLs),
		Tags:        stringOrEmpty(req.Tags),
		Enable:      boolOr(req.Enable, true),
		MinAge:      int32Or(req.MinAge, 0),
		URL:         coverURL,
		ContentType: meta.ContentType,
		Width:       imageWidth(meta),
		Height:      imageHeight(meta),
		Bytes:       int32(meta.Size),
		ReleasedAt:  req.ReleasedAt,
		CreatedAt:   &now,
		UpdatedAt:   &now,
	}

	if err := s.repo.Create(ctx, row); err != nil {
		return nil, fmt.Errorf("create album: %w", err)
	}

	pairs := make([]storage.MovePair, 0, 1+len(req.Images))
	pairs = append(pairs, storage.MovePair{Src: req.Cover, Dest: coverURL})
	for i, src := range req.Images {
		pairs = append(pairs, storage.MovePair{Src: src, Dest: imageURLs[i]})
	}
	if moved, lost := s.layout.CommitMoves(pairs); lost > 0 {
		log.Printf("album_commit_incomplete uuid=%s expected=%d moved=%d", albumUUID, len(pairs), moved)
		return nil, ErrFilesLost
	}

	s.pub.Publish("album", "created", albumUUID)
	resp := FromAlbum(*row)
	return &resp, nil
}

func (s *Service) List(ctx context.Context, filter ListAlbumsRequest) ([]AlbumResponse, int64, error) {
	albums, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list albums: %w", err)
	}
	return FromAlbums(albums), total, nil
}

func (s *Service) GetByUUID(ctx context.Context, albumUUID string) (*AlbumResponse, error) {
	a, err := s.repo.GetByUUID(ctx, albumUUID)
	if err != nil {
		return nil, err
	}
	resp := FromAlbum(*a)
	return &resp, nil
}

// Update rewrites scalar fields and, when a new cover arrived, swaps the
// cover asset: row first, then the old file is discarded and the staged
// file moved in. Supplying no cover leaves url/width/height/bytes alone.
func (s *Service) Update(ctx context.Context, ac auth.AuthContext, albumUUID string, req *UpdateAlbumRequest) (*AlbumResponse, error) {
	if err := ac.RequireAdmin(); err != nil {
		return nil, err
	}

	a, err := s.repo.GetByUUID(ctx, albumUUID)
	if err != nil {
		return nil, err
	}

	oldURL := a.URL
	a.Title = req.Title
	a.Description = req.Description
	a.Completed = boolOr(req.Completed, a.Completed)
	a.Tags = req.Tags
	a.Enable = boolOr(req.Enable, a.Enable)
	a.MinAge = int32Or(req.MinAge, a.MinAge)
	a.ReleasedAt = req.ReleasedAt
	a.BrokenAt = req.BrokenAt

	if req.Cover != nil {
		meta, err := mediameta.Inspect(*req.Cover)
		if err != nil {
			return nil, fmt.Errorf("inspect cover: %w", err)
		}
		a.URL = s.layout.AlbumAssetURL(a.UUID, uuid.New().String(), *req.Cover)
		a.ContentType = meta.ContentType
		a.Width = imageWidth(meta)
		a.Height = imageHeight(meta)
		a.Bytes = int32(meta.Size)
	}
	now := time.Now().UTC()
	a.UpdatedAt = &now

	rows, err := s.repo.Update(ctx, a)
	if err != nil {
		return nil, fmt.Errorf("update album: %w", err)
	}
	if rows == 0 {
		return nil, ErrAlbumNotFound
	}

	if a.URL != oldURL && req.Cover != nil {
		s.layout.DiscardOld(oldURL)
		if moved, lost := s.layout.CommitMoves([]storage.MovePair{{Src: *req.Cover, Dest: a.URL}}); lost > 0 {
			log.Printf("album_commit_incomplete uuid=%s expected=1 moved=%d", a.UUID, moved)
			return nil, ErrFilesLost
		}
	}

	s.pub.Publish("album", "updated", a.UUID)
	resp := FromAlbum(*a)
	return &resp, nil
}

// AddImages appends staged description images to the album, same protocol:
// row update first, file moves second.
func (s *Service) AddImages(ctx context.Context, ac auth.AuthContext, albumUUID string, req *AddAlbumImagesRequest) (*AlbumResponse, error) {
	if err := ac.RequireAdmin(); err != nil {
		return nil, err
	}

	a, err := s.repo.GetByUUID(ctx, albumUUID)
	if err != nil {
		return nil, err
	}

	newURLs := make([]string, 0, len(req.Images))
	for _, src := range req.Images {
		newURLs = append(newURLs, s.layout.AlbumAssetURL(a.UUID, uuid.New().String(), src))
	}
	a.Images = JoinImages(append(SplitImages(a.Images), newURLs...))
	now := time.Now().UTC()
	a.UpdatedAt = &now

	rows, err := s.repo.Update(ctx, a)
	if err != nil {
		return nil, fmt.Errorf("add album images: %w", err)
	}
	if rows == 0 {
		return nil, ErrAlbumNotFound
	}

	pairs := make([]storage.MovePair, 0, len(req.Images))
	for i, src := range req.Images {
		pairs = append(pairs, storage.MovePair{Src: src, Dest: newURLs[i]})
	}
	if moved, lost := s.layout.CommitMoves(pairs); lost > 0 {
		log.Printf("album_commit_incomplete uuid=%s expected=%d moved=%d", a.UUID, len(pairs), moved)
		return nil, ErrFilesLost
	}

	s.pub.Publish("album", "updated", a.UUID)
	resp := FromAlbum(*a)
	return &resp, nil
}

// RemoveImages drops stored image URLs from the album row, then deletes
// the corresponding files best-effort.
func (s *Service) RemoveImages(ctx context.Context, ac auth.AuthContext, albumUUID string, req *RemoveAlbumImagesRequest) (*AlbumResponse, error) {
	if err := ac.RequireAdmin(); err != nil {
		return nil, err
	}

	a, err := s.repo.GetByUUID(ctx, albumUUID)
	if err != nil {
		return nil, err
	}

	before := SplitImages(a.Images)
	kept := make([]string, 0, len(before))
	removed := make([]string, 0, len(req.Images))
	for _, img := range before {
		if contains(req.Images, img) {
			removed = append(removed, img)
			continue
		}
		kept = append(kept, img)
	}
	a.Images = JoinImages(kept)
	now := time.Now().UTC()
	a.UpdatedAt = &now

	rows, err := s.repo.Update(ctx, a)
	if err != nil {
		return nil, fmt.Errorf("remove album images: %w", err)
	}
	if rows == 0 {
		return nil, ErrAlbumNotFound
	}

	// Only URLs that were actually stored on the row get discarded; the
	// request list is client input and must never reach the filesystem
	// on its own.
	for _, img := range removed {
		s.layout.DiscardOld(img)
	}

	if len(removed) == 0 {
		return nil, ErrNoImageRemoved
	}

	s.pub.Publish("album", "updated", a.UUID)
	resp := FromAlbum(*a)
	return &resp, nil
}

// Delete removes the album's asset directory first (best effort), then the
// row. Zero affected rows is "not found", never an error.
func (s *Service) Delete(ctx context.Context, ac auth.AuthContext, albumUUID string) error {
	if err := ac.RequireAdmin(); err != nil {
		return err
	}

	s.layout.DiscardNamespace(s.layout.AlbumDir(albumUUID))

	rows, err := s.repo.Delete(ctx, albumUUID)
	if err != nil {
		return fmt.Errorf("delete album: %w", err)
	}
	if rows == 0 {
		return ErrAlbumNotFound
	}

	s.pub.Publish("album", "deleted", albumUUID)
	return nil
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}

func int32Or(v *int32, fallback int32) int32 {
	if v == nil {
		return fallback
	}
	return *v
}

func stringOrEmpty(v *string) *string {
	if v == nil {
		empty := ""
		return &empty
	}
	return v
}

func imageWidth(m *mediameta.Metadata) int32 {
	if m.Image == nil {
		return 0
	}
	return int32(m.Image.Width)
}

func imageHeight(m *mediameta.Metadata) int32 {
	if m.Image == nil {
		return 0
	}
	return int32(m.Image.Height)
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
