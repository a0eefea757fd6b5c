package episode

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

// Create verifies the parent album, writes the episode row with its final
// asset URL, then moves the staged file in.
func (s *Service) Create(ctx context.Context, ac auth.AuthContext, req *CreateEpisodeRequest) (*EpisodeResponse, error) {
	if err := ac.RequireAdmin(); err != nil {
		return nil, err
	}

	parent, err := s.repo.GetAlbumByID(ctx, req.AlbumID)
	if err != nil {
		return nil, err
	}

	episodeUUID := uuid.New().String()
	now := time.Now().UTC()
	row := &Episode{
		AlbumID:   req.AlbumID,
		UUID:      episodeUUID,
		Title:     req.Title,
		CreatedAt: &now,
		UpdatedAt: &now,
	}

	if req.File != nil {
		meta, err := mediameta.Inspect(*req.File)
		if err != nil {
			return nil, fmt.Errorf("inspect episode file: %w", err)
		}
		url := s.layout.EpisodeAssetURL(parent.UUID, episodeUUID, uuid.New().String(), *req.File)
		row.URL = &url
		row.ContentType = &meta.ContentType
		if meta.Image != nil {
			row.Width = int32(meta.Image.Width)
			row.Height = int32(meta.Image.Height)
		}
		row.Bytes = int32(meta.Size)
	}

	if err := s.repo.Create(ctx, row); err != nil {
		return nil, fmt.Errorf("create episode: %w", err)
	}

	if row.URL != nil {
		if moved, lost := s.layout.CommitMoves([]storage.MovePair{{Src: *req.File, Dest: *row.URL}}); lost > 0 {
			log.Printf("episode_commit_incomplete uuid=%s expected=1 moved=%d", episodeUUID, moved)
			return nil, ErrFilesLost
		}
	}

	s.pub.Publish("episode", "created", episodeUUID)
	resp := FromEpisode(*row)
	return &resp, nil
}

func (s *Service) ListByAlbumID(ctx context.Context, albumID int32, filter FilterEpisodesRequest) ([]EpisodeResponse, int64, error) {
	episodes, err := s.repo.ListByAlbumID(ctx, albumID, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list episodes: %w", err)
	}
	return FromEpisodes(episodes), int64(len(episodes)), nil
}

// Update replaces the media file only when a new one arrived; the old one
// is discarded best-effort after the row write commits.
func (s *Service) Update(ctx context.Context, ac auth.AuthContext, episodeUUID string, req *UpdateEpisodeRequest) (*EpisodeResponse, error) {
	if err := ac.RequireAdmin(); err != nil {
		return nil, err
	}

	e, err := s.repo.GetByUUID(ctx, episodeUUID)
	if err != nil {
		return nil, err
	}
	albumUUID, err := s.repo.GetAlbumUUIDByEpisodeUUID(ctx, episodeUUID)
	if err != nil {
		return nil, err
	}

	oldURL := e.URL
	if req.Title != nil {
		e.Title = *req.Title
	}
	if req.File != nil {
		meta, err := mediameta.Inspect(*req.File)
		if err != nil {
			return nil, fmt.Errorf("inspect episode file: %w", err)
		}
		url := s.layout.EpisodeAssetURL(albumUUID, e.UUID, uuid.New().String(), *req.File)
		e.URL = &url
		e.ContentType = &meta.ContentType
		if meta.Image != nil {
			e.Width = int32(meta.Image.Width)
			e.Height = int32(meta.Image.Height)
		} else {
			e.Width = 0
			e.Height = 0
		}
		e.Bytes = int32(meta.Size)
	}
	now := time.Now().UTC()
	e.UpdatedAt = &now

	rows, err := s.repo.Update(ctx, e)
	if err != nil {
		return nil, fmt.Errorf("update episode: %w", err)
	}
	if rows == 0 {
		return nil, ErrEpisodeNotFound
	}

	if req.File != nil && e.URL != nil && (oldURL == nil || *oldURL != *e.URL) {
		if oldURL != nil {
			s.layout.DiscardOld(*oldURL)
		}
		if moved, lost := s.layout.CommitMoves([]storage.MovePair{{Src: *req.File, Dest: *e.URL}}); lost > 0 {
			log.Printf("episode_commit_incomplete uuid=%s expected=1 moved=%d", e.UUID, moved)
			return nil, ErrFilesLost
		}
	}

	s.pub.Publish("episode", "updated", e.UUID)
	resp := FromEpisode(*e)
	return &resp, nil
}

// Delete removes the episode's asset directory first, then the row.
func (s *Service) Delete(ctx context.Context, ac auth.AuthContext, episodeUUID string) error {
	if err := ac.RequireAdmin(); err != nil {
		return err
	}

	albumUUID, err := s.repo.GetAlbumUUIDByEpisodeUUID(ctx, episodeUUID)
	if err != nil {
		return err
	}

	s.layout.DiscardNamespace(s.layout.EpisodeDir(albumUUID, episodeUUID))

	rows, err := s.repo.Delete(ctx, episodeUUID)
	if err != nil {
		return fmt.Errorf("delete episode: %w", err)
	}
	if rows == 0 {
		return ErrEpisodeNotFound
	}

	s.pub.Publish("episode", "deleted", episodeUUID)
	return nil
}
