package category

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, c *Category) error
	List(ctx context.Context) ([]Category, error)
	Update(ctx context.Context, c *Category) (int64, error)
	Delete(ctx context.Context, id int32) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, c *Category) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *repository) List(ctx context.Context) ([]Category, error) {
	var categories []Category
	err := r.db.WithContext(ctx).Order("id ASC").Find(&categories).Error
	return categories, err
}

func (r *repository) Update(ctx context.Context, c *Category) (int64, error) {
	res := r.db.WithContext(ctx).Model(&Category{}).Where("id = ?", c.ID).Update("name", c.Name)
	if res.Error != nil && errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	return res.RowsAffected, res.Error
}

func (r *repository) Delete(ctx context.Context, id int32) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&Category{})
	return res.RowsAffected, res.Error
}
