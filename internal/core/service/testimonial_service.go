package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Lokeshnegi69/story-board-interior-backend/internal/core/domain"
	"github.com/Lokeshnegi69/story-board-interior-backend/internal/core/ports"
)

// TestimonialService implements testimonial use-cases.
type TestimonialService struct {
	repo   ports.TestimonialRepository
	logger zerolog.Logger
}

func NewTestimonialService(repo ports.TestimonialRepository, logger zerolog.Logger) *TestimonialService {
	return &TestimonialService{repo: repo, logger: logger}
}

// List returns one page of testimonials. Non-admin callers are pinned to
// published entries; admins may filter on the published flag freely.
func (s *TestimonialService) List(ctx context.Context, identity domain.Identity, filter ports.ListTestimonialsFilter) (*ports.TestimonialList, error) {
	if !identity.IsAdmin() {
		published := true
		filter.Published = &published
	}
	filter.Page, filter.Limit = ports.NormalizePage(filter.Page, filter.Limit)

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &ports.TestimonialList{
		Items:      items,
		Pagination: ports.NewPagination(total, filter.Page, filter.Limit),
	}, nil
}

func (s *TestimonialService) GetByID(ctx context.Context, identity domain.Identity, id string) (*domain.Testimonial, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !t.IsPublished && !identity.IsAdmin() {
		return nil, domain.ErrTestimonialNotFound
	}
	return t, nil
}

func (s *TestimonialService) Create(ctx context.Context, input ports.CreateTestimonialInput) (*domain.Testimonial, error) {
	rating := input.Rating
	if rating == 0 {
		rating = 5
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.Testimonial{
		ClientName:     strings.TrimSpace(input.ClientName),
		ClientPosition: input.ClientPosition,
		ClientCompany:  input.ClientCompany,
		ClientAvatar:   input.ClientAvatar,
		Rating:         rating,
		Text:           strings.TrimSpace(input.Text),
		ProjectID:      input.ProjectID,
		IsFeatured:     input.IsFeatured,
		IsPublished:    input.IsPublished,
		DisplayOrder:   input.DisplayOrder,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("testimonial_id", created.ID).Msg("testimonial created")
	return created, nil
}

func (s *TestimonialService) Update(ctx context.Context, id string, input ports.UpdateTestimonialInput) (*domain.Testimonial, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.ClientName != nil {
		t.ClientName = strings.TrimSpace(*input.ClientName)
	}
	if input.ClientPosition != nil {
		t.ClientPosition = *input.ClientPosition
	}
	if input.ClientCompany != nil {
		t.ClientCompany = *input.ClientCompany
	}
	if input.ClientAvatar != nil {
		t.ClientAvatar = *input.ClientAvatar
	}
	if input.Rating != nil {
		t.Rating = *input.Rating
	}
	if input.Text != nil {
		t.Text = strings.TrimSpace(*input.Text)
	}
	if input.ProjectID != nil {
		t.ProjectID = *input.ProjectID
	}
	if input.IsFeatured != nil {
		t.IsFeatured = *input.IsFeatured
	}
	if input.IsPublished != nil {
		t.IsPublished = *input.IsPublished
	}
	if input.DisplayOrder != nil {
		t.DisplayOrder = *input.DisplayOrder
	}
	t.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, t)
}

func (s *TestimonialService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
