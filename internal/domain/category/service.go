package category

import (
	"context"
	"fmt"

	"mediacatalog/internal/auth"
	"mediacatalog/internal/events"
)

type Service struct {
	repo Repository
	pub  events.Publisher
}

func NewService(repo Repository, pub events.Publisher) *Service {
	if pub == nil {
		pub = events.Noop{}
	}
	return &Service{repo: repo, pub: pub}
}

func (s *Service) Add(ctx context.Context, ac auth.AuthContext, req *AddCategoryRequest) error {
	if err := ac.RequireAdmin(); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, &Category{Name: req.Name}); err != nil {
		return fmt.Errorf("create category: %w", err)
	}
	s.pub.Publish("category", "created", "")
	return nil
}

func (s *Service) List(ctx context.Context, ac auth.AuthContext) ([]CategoryResponse, int64, error) {
	categories, err := s.repo.List(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("list categories: %w", err)
	}
	return FromCategories(categories), int64(len(categories)), nil
}

func (s *Service) Update(ctx context.Context, ac auth.AuthContext, req *UpdateCategoryRequest) (*CategoryResponse, error) {
	if err := ac.RequireAdmin(); err != nil {
		return nil, err
	}
	rows, err := s.repo.Update(ctx, &Category{ID: req.ID, Name: req.Name})
	if err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}
	if rows == 0 {
		return nil, ErrCategoryNotFound
	}
	s.pub.Publish("category", "updated", "")
	resp := FromCategory(Category{ID: req.ID, Name: req.Name})
	return &resp, nil
}

func (s *Service) Delete(ctx context.Context, ac auth.AuthContext, id int32) error {
	if err := ac.RequireAdmin(); err != nil {
		return err
	}
	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if rows == 0 {
		return ErrCategoryNotFound
	}
	s.pub.Publish("category", "deleted", "")
	return nil
}
