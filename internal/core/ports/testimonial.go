package ports

import (
	"context"

	"github.com/Lokeshnegi69/story-board-interior-backend/internal/core/domain"
)

// ListTestimonialsFilter carries query parameters for listing testimonials.
type ListTestimonialsFilter struct {
	Published *bool // nil = service decides based on caller role
	Featured  *bool
	Page      int
	Limit     int
}

// TestimonialRepository defines persistence for testimonials.
type TestimonialRepository interface {
	Create(ctx context.Context, t *domain.Testimonial) (*domain.Testimonial, error)
	FindByID(ctx context.Context, id string) (*domain.Testimonial, error)
	Update(ctx context.Context, t *domain.Testimonial) (*domain.Testimonial, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ListTestimonialsFilter) ([]*domain.Testimonial, int64, error)
	Count(ctx context.Context, filter ListTestimonialsFilter) (int64, error)
}

// CreateTestimonialInput carries a new testimonial.
type CreateTestimonialInput struct {
	ClientName     string
	ClientPosition string
	ClientCompany  string
	ClientAvatar   string
	Rating         int
	Text           string
	ProjectID      string
	IsFeatured     bool
	IsPublished    bool
	DisplayOrder   int
}

// UpdateTestimonialInput holds optional field updates; nil means "leave as is".
type UpdateTestimonialInput struct {
	ClientName     *string
	ClientPosition *string
	ClientCompany  *string
	ClientAvatar   *string
	Rating         *int
	Text           *string
	ProjectID      *string
	IsFeatured     *bool
	IsPublished    *bool
	DisplayOrder   *int
}

// TestimonialList is one page of testimonials.
type TestimonialList struct {
	Items      []*domain.Testimonial
	Pagination Pagination
}

// TestimonialService defines use-case operations for testimonials.
type TestimonialService interface {
	List(ctx context.Context, identity domain.Identity, filter ListTestimonialsFilter) (*TestimonialList, error)
	GetByID(ctx context.Context, identity domain.Identity, id string) (*domain.Testimonial, error)
	Create(ctx context.Context, input CreateTestimonialInput) (*domain.Testimonial, error)
	Update(ctx context.Context, id string, input UpdateTestimonialInput) (*domain.Testimonial, error)
	Delete(ctx context.Context, id string) error
}
