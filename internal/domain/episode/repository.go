package episode

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"mediacatalog/internal/domain/album"
)

type Repository interface {
	Create(ctx context.Context, e *Episode) error
	GetByUUID(ctx context.Context, uuid string) (*Episode, error)
	ListByAlbumID(ctx context.Context, albumID int32, filter FilterEpisodesRequest) ([]Episode, error)
	Update(ctx context.Context, e *Episode) (int64, error)
	Delete(ctx context.Context, uuid string) (int64, error)

	// Parent lookups; the album row is the source of truth for the
	// namespace directory an episode's assets live under.
	GetAlbumByID(ctx context.Context, id int32) (*album.Album, error)
	GetAlbumUUIDByEpisodeUUID(ctx context.Context, episodeUUID string) (string, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, e *Episode) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) GetByUUID(ctx context.Context, uuid string) (*Episode, error) {
	var e Episode
	err := r.db.WithContext(ctx).Where("uuid = ?", uuid).First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEpisodeNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) ListByAlbumID(ctx context.Context, albumID int32, filter FilterEpisodesRequest) ([]Episode, error) {
	query := r.db.WithContext(ctx).Where("album_id = ?", albumID)
	if filter.Title != "" {
		query = query.Where("title LIKE ?", fmt.Sprintf("%%%s%%", filter.Title))
	}
	var episodes []Episode
	err := query.Order("id ASC").Find(&episodes).Error
	return episodes, err
}

func (r *repository) Update(ctx context.Context, e *Episode) (int64, error) {
	res := r.db.WithContext(ctx).Model(&Episode{}).Where("id = ?", e.ID).
		Select("*").Omit("id", "created_at").Updates(e)
	return res.RowsAffected, res.Error
}

func (r *repository) Delete(ctx context.Context, uuid string) (int64, error) {
	res := r.db.WithContext(ctx).Where("uuid = ?", uuid).Delete(&Episode{})
	return res.RowsAffected, res.Error
}

func (r *repository) GetAlbumByID(ctx context.Context, id int32) (*album.Album, error) {
	var a album.Album
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAlbumNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) GetAlbumUUIDByEpisodeUUID(ctx context.Context, episodeUUID string) (string, error) {
	var albumUUID string
	err := r.db.WithContext(ctx).Model(&Episode{}).
		Select("albums.uuid").
		Joins("JOIN albums ON albums.id = episodes.album_id").
		Where("episodes.uuid = ?", episodeUUID).
		Scan(&albumUUID).Error
	if err != nil {
		return "", err
	}
	if albumUUID == "" {
		return "", ErrAlbumNotFound
	}
	return albumUUID, nil
}
