package album

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// pgUniqueViolation is the PostgreSQL SQLSTATE for duplicate keys.
const pgUniqueViolation = "23505"

var ErrDuplicateAlbum = errors.New("album already exists")

type Repository interface {
	Create(ctx context.Context, a *Album) error
	List(ctx context.Context, filter ListAlbumsRequest) ([]Album, int64, error)
	GetByUUID(ctx context.Context, uuid string) (*Album, error)
	GetByID(ctx context.Context, id int32) (*Album, error)
	Update(ctx context.Context, a *Album) (int64, error)
	Delete(ctx context.Context, uuid string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, a *Album) error {
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return ErrDuplicateAlbum
		}
		return err
	}
	return nil
}

func (r *repository) List(ctx context.Context, filter ListAlbumsRequest) ([]Album, int64, error) {
	query := r.applyFilter(r.db.WithContext(ctx).Model(&Album{}), filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.Offset != nil && *filter.Offset > 0 {
		query = query.Offset(int(*filter.Offset))
	}
	if filter.Limit != nil && *filter.Limit > 0 {
		query = query.Limit(int(*filter.Limit))
	}

	var albums []Album
	if err := query.Order("id ASC").Find(&albums).Error; err != nil {
		return nil, 0, err
	}
	return albums, total, nil
}

func (r *repository) applyFilter(query *gorm.DB, filter ListAlbumsRequest) *gorm.DB {
	if filter.ID != nil && *filter.ID != 0 {
		query = query.Where("id = ?", *filter.ID)
	}
	if filter.UUID != nil && *filter.UUID != "" {
		query = query.Where("uuid = ?", *filter.UUID)
	}
	if filter.Title != nil && *filter.Title != "" {
		query = query.Where("title LIKE ?", fmt.Sprintf("%%%s%%", *filter.Title))
	}
	if filter.Completed != nil {
		query = query.Where("completed = ?", *filter.Completed)
	}
	if filter.Tags != nil && *filter.Tags != "" {
		query = query.Where("tags LIKE ?", fmt.Sprintf("%%%s%%", *filter.Tags))
	}
	if filter.Enable != nil {
		query = query.Where("enable = ?", *filter.Enable)
	}
	if filter.Broken != nil {
		if *filter.Broken {
			query = query.Where("broken_at IS NOT NULL")
		} else {
			query = query.Where("broken_at IS NULL")
		}
	}
	if filter.MinAge != nil && *filter.MinAge != 0 {
		query = query.Where("min_age >= ?", *filter.MinAge)
	}
	return query
}

func (r *repository) GetByUUID(ctx context.Context, uuid string) (*Album, error) {
	var a Album
	err := r.db.WithContext(ctx).Where("uuid = ?", uuid).First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAlbumNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) GetByID(ctx context.Context, id int32) (*Album, error) {
	var a Album
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAlbumNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) Update(ctx context.Context, a *Album) (int64, error) {
	res := r.db.WithContext(ctx).Model(&Album{}).Where("id = ?", a.ID).
		Select("*").Omit("id", "created_at").Updates(a)
	return res.RowsAffected, res.Error
}

func (r *repository) Delete(ctx context.Context, uuid string) (int64, error) {
	res := r.db.WithContext(ctx).Where("uuid = ?", uuid).Delete(&Album{})
	return res.RowsAffected, res.Error
}
