package content

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

// CreateForEpisode turns each staged file into one content row, writes all
// rows in one batch, then moves the files. A file that vanished between
// the row write and the move leaves the rows in place and surfaces
// ErrFilesLost; files moved before the loss stay at their destinations.
func (s *Service) CreateForEpisode(ctx context.Context, ac auth.AuthContext, req *AddEpisodeContentsRequest) ([]ContentResponse, error) {
	if err := ac.RequireAdmin(); err != nil {
		return nil, err
	}

	albumUUID, err := s.repo.GetAlbumUUIDByEpisodeID(ctx, req.EpisodeID)
	if err != nil {
		return nil, err
	}
	ep, err := s.repo.GetEpisodeByID(ctx, req.EpisodeID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	rows := make([]Content, 0, len(req.Files))
	pairs := make([]storage.MovePair, 0, len(req.Files))
	for i, src := range req.Files {
		meta, err := mediameta.Inspect(src)
		if err != nil {
			return nil, fmt.Errorf("inspect content file: %w", err)
		}
		contentUUID := uuid.New().String()
		url := s.layout.EpisodeAssetURL(albumUUID, ep.UUID, contentUUID, src)
		row := Content{
			EpisodeID:   req.EpisodeID,
			UUID:        contentUUID,
			IndexNo:     int32(i),
			URL:         url,
			ContentType: meta.ContentType,
			Bytes:       int32(meta.Size),
			CreatedAt:   &now,
			UpdatedAt:   &now,
		}
		if meta.Image != nil {
			row.Width = int32(meta.Image.Width)
			row.Height = int32(meta.Image.Height)
		}
		rows = append(rows, row)
		pairs = append(pairs, storage.MovePair{Src: src, Dest: url})
	}

	if err := s.repo.CreateBatch(ctx, rows); err != nil {
		return nil, fmt.Errorf("create episode contents: %w", err)
	}

	if moved, lost := s.layout.CommitMoves(pairs); lost > 0 {
		log.Printf("content_commit_incomplete episode_id=%d expected=%d moved=%d", req.EpisodeID, len(pairs), moved)
		return nil, ErrFilesLost
	}

	s.pub.Publish("content", "created", ep.UUID)

	created, err := s.repo.ListByEpisodeID(ctx, req.EpisodeID)
	if err != nil {
		return nil, fmt.Errorf("list created contents: %w", err)
	}
	return FromContents(created), nil
}

func (s *Service) ListByEpisodeUUID(ctx context.Context, episodeUUID string) ([]ContentResponse, int64, error) {
	ep, err := s.repo.GetEpisodeByUUID(ctx, episodeUUID)
	if err != nil {
		return nil, 0, err
	}
	contents, err := s.repo.ListByEpisodeID(ctx, ep.ID)
	if err != nil {
		return nil, 0, fmt.Errorf("list contents: %w", err)
	}
	return FromContents(contents), int64(len(contents)), nil
}

func (s *Service) Update(ctx context.Context, ac auth.AuthContext, contentUUID string, req *UpdateContentRequest) (*ContentResponse, error) {
	if err := ac.RequireAdmin(); err != nil {
		return nil, err
	}

	c, err := s.repo.GetByUUID(ctx, contentUUID)
	if err != nil {
		return nil, err
	}

	oldURL := c.URL
	if req.AdsURL != nil {
		c.AdsURL = req.AdsURL
	}
	if req.IndexNo != nil {
		c.IndexNo = *req.IndexNo
	}
	if req.File != nil {
		ep, err := s.repo.GetEpisodeByID(ctx, c.EpisodeID)
		if err != nil {
			return nil, err
		}
		albumUUID, err := s.repo.GetAlbumUUIDByEpisodeID(ctx, c.EpisodeID)
		if err != nil {
			return nil, err
		}
		meta, err := mediameta.Inspect(*req.File)
		if err != nil {
			return nil, fmt.Errorf("inspect content file: %w", err)
		}
		c.URL = s.layout.EpisodeAssetURL(albumUUID, ep.UUID, uuid.New().String(), *req.File)
		c.ContentType = meta.ContentType
		if meta.Image != nil {
			c.Width = int32(meta.Image.Width)
			c.Height = int32(meta.Image.Height)
		} else {
			c.Width = 0
			c.Height = 0
		}
		c.Bytes = int32(meta.Size)
	}
	now := time.Now().UTC()
	c.UpdatedAt = &now

	rows, err := s.repo.Update(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("update content: %w", err)
	}
	if rows == 0 {
		return nil, ErrContentNotFound
	}

	if req.File != nil && c.URL != oldURL {
		s.layout.DiscardOld(oldURL)
		if moved, lost := s.layout.CommitMoves([]storage.MovePair{{Src: *req.File, Dest: c.URL}}); lost > 0 {
			log.Printf("content_commit_incomplete uuid=%s expected=1 moved=%d", c.UUID, moved)
			return nil, ErrFilesLost
		}
	}

	s.pub.Publish("content", "updated", c.UUID)
	resp := FromContent(*c)
	return &resp, nil
}

// Delete removes the content's file first (best effort), then the row.
func (s *Service) Delete(ctx context.Context, ac auth.AuthContext, contentUUID string) error {
	if err := ac.RequireAdmin(); err != nil {
		return err
	}

	c, err := s.repo.GetByUUID(ctx, contentUUID)
	if err != nil {
		return err
	}

	s.layout.DiscardOld(c.URL)

	rows, err := s.repo.Delete(ctx, contentUUID)
	if err != nil {
		return fmt.Errorf("delete content: %w", err)
	}
	if rows == 0 {
		return ErrContentNotFound
	}

	s.pub.Publish("content", "deleted", contentUUID)
	return nil
}
