package ports

import (
	"context"

	"github.com/Lokeshnegi69/story-board-interior-backend/internal/core/domain"
)

// HeroRepository defines persistence for hero sections.
type HeroRepository interface {
	Create(ctx context.Context, h *domain.HeroSection) (*domain.HeroSection, error)
	FindByID(ctx context.Context, id string) (*domain.HeroSection, error)
	Update(ctx context.Context, h *domain.HeroSection) (*domain.HeroSection, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, activeOnly bool) ([]*domain.HeroSection, error)
}

// CreateHeroInput carries a new hero section with an optional background
// image, uploaded to the image store before the document is persisted.
type CreateHeroInput struct {
	Page     string
	IsActive *bool
	Image    *ImageUpload
}

// UpdateHeroInput holds optional field updates; nil means "leave as is".
type UpdateHeroInput struct {
	Page            *string
	BackgroundImage *string
	IsActive        *bool
}

// HeroService defines use-case operations for hero sections.
type HeroService interface {
	List(ctx context.Context, identity domain.Identity) ([]*domain.HeroSection, error)
	GetByID(ctx context.Context, id string) (*domain.HeroSection, error)
	Create(ctx context.Context, input CreateHeroInput) (*domain.HeroSection, error)
	Update(ctx context.Context, id string, input UpdateHeroInput) (*domain.HeroSection, error)
	Delete(ctx context.Context, id string) error
}
