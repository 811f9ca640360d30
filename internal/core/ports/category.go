package ports

import (
	"context"

	"github.com/artgallery/gallery-service/internal/core/domain"
)

// CategoryRepository defines persistence operations for categories.
type CategoryRepository interface {
	Insert(ctx context.Context, c *domain.Category) (*domain.Category, error)
	FindByID(ctx context.Context, id int) (*domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
	Update(ctx context.Context, c *domain.Category) error
	Delete(ctx context.Context, id int) error
}

// CategoryInput carries the caller-supplied fields of a category.
type CategoryInput struct {
	Name        string
	Description string
}

// CategoryService defines category use cases.
type CategoryService interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	GetCategory(ctx context.Context, id int) (*domain.Category, error)
	CreateCategory(ctx context.Context, input CategoryInput) (*domain.Category, error)
	UpdateCategory(ctx context.Context, id int, input CategoryInput) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id int) error
}
