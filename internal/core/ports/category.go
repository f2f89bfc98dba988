package ports

import (
	"context"

	"github.com/Lokeshnegi69/story-board-interior-backend/internal/core/domain"
)

// CategoryRepository defines persistence for project categories. Name and
// slug carry unique indexes; Create and Update return
// domain.ErrCategoryExists on a duplicate.
type CategoryRepository interface {
	Create(ctx context.Context, c *domain.Category) (*domain.Category, error)
	FindByID(ctx context.Context, id string) (*domain.Category, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Category, error)
	Update(ctx context.Context, c *domain.Category) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, activeOnly bool) ([]*domain.Category, error)
	Count(ctx context.Context, activeOnly bool) (int64, error)
}

// CreateCategoryInput carries a new category.
type CreateCategoryInput struct {
	Name         string
	Slug         string
	Description  string
	ImageURL     string
	DisplayOrder int
	IsActive     *bool
}

// UpdateCategoryInput holds optional field updates; nil means "leave as is".
type UpdateCategoryInput struct {
	Name         *string
	Slug         *string
	Description  *string
	ImageURL     *string
	DisplayOrder *int
	IsActive     *bool
}

// CategoryService defines use-case operations for categories.
type CategoryService interface {
	List(ctx context.Context, identity domain.Identity) ([]*domain.Category, error)
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Category, error)
	Create(ctx context.Context, input CreateCategoryInput) (*domain.Category, error)
	Update(ctx context.Context, id string, input UpdateCategoryInput) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
}
