package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/artgallery/gallery-service/internal/core/domain"
	"github.com/artgallery/gallery-service/internal/core/ports"
)

type categoryService struct {
	repo ports.CategoryRepository
	log  zerolog.Logger
}

// NewCategoryService returns a CategoryService implementation.
func NewCategoryService(repo ports.CategoryRepository, log zerolog.Logger) ports.CategoryService {
	return &categoryService{repo: repo, log: log}
}

func (s *categoryService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.repo.List(ctx)
}

func (s *categoryService) GetCategory(ctx context.Context, id int) (*domain.Category, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *categoryService) CreateCategory(ctx context.Context, input ports.CategoryInput) (*domain.Category, error) {
	created, err := s.repo.Insert(ctx, &domain.Category{
		Name:        input.Name,
		Description: input.Description,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	s.log.Info().Int("id", created.ID).Str("name", created.Name).Msg("category created")
	return created, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, id int, input ports.CategoryInput) (*domain.Category, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}

	existing.Name = input.Name
	existing.Description = input.Description

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}
	return existing, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	s.log.Info().Int("id", id).Msg("category deleted")
	return nil
}
