package content

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"mediacatalog/internal/domain/episode"
)

type Repository interface {
	CreateBatch(ctx context.Context, cs []Content) error
	GetByUUID(ctx context.Context, uuid string) (*Content, error)
	ListByEpisodeID(ctx context.Context, episodeID int32) ([]Content, error)
	Update(ctx context.Context, c *Content) (int64, error)
	Delete(ctx context.Context, uuid string) (int64, error)

	GetEpisodeByID(ctx context.Context, id int32) (*episode.Episode, error)
	GetEpisodeByUUID(ctx context.Context, uuid string) (*episode.Episode, error)
	GetAlbumUUIDByEpisodeID(ctx context.Context, episodeID int32) (string, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateBatch(ctx context.Context, cs []Content) error {
	return r.db.WithContext(ctx).Create(&cs).Error
}

func (r *repository) GetByUUID(ctx context.Context, uuid string) (*Content, error) {
	var c Content
	err := r.db.WithContext(ctx).Where("uuid = ?", uuid).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrContentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) ListByEpisodeID(ctx context.Context, episodeID int32) ([]Content, error) {
	var contents []Content
	err := r.db.WithContext(ctx).Where("episode_id = ?", episodeID).
		Order("index_no ASC").Find(&contents).Error
	return contents, err
}

func (r *repository) Update(ctx context.Context, c *Content) (int64, error) {
	res := r.db.WithContext(ctx).Model(&Content{}).Where("id = ?", c.ID).
		Select("*").Omit("id", "created_at").Updates(c)
	return res.RowsAffected, res.Error
}

func (r *repository) Delete(ctx context.Context, uuid string) (int64, error) {
	res := r.db.WithContext(ctx).Where("uuid = ?", uuid).Delete(&Content{})
	return res.RowsAffected, res.Error
}

func (r *repository) GetEpisodeByID(ctx context.Context, id int32) (*episode.Episode, error) {
	var e episode.Episode
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEpisodeNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) GetEpisodeByUUID(ctx context.Context, uuid string) (*episode.Episode, error) {
	var e episode.Episode
	err := r.db.WithContext(ctx).Where("uuid = ?", uuid).First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEpisodeNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) GetAlbumUUIDByEpisodeID(ctx context.Context, episodeID int32) (string, error) {
	var albumUUID string
	err := r.db.WithContext(ctx).Model(&episode.Episode{}).
		Select("albums.uuid").
		Joins("JOIN albums ON albums.id = episodes.album_id").
		Where("episodes.id = ?", episodeID).
		Scan(&albumUUID).Error
	if err != nil {
		return "", err
	}
	if albumUUID == "" {
		return "", ErrAlbumNotFound
	}
	return albumUUID, nil
}
