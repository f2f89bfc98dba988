package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Lokeshnegi69/story-board-interior-backend/internal/core/domain"
	"github.com/Lokeshnegi69/story-board-interior-backend/internal/core/ports"
)

// InquiryService implements contact-form inquiry use-cases. Create is the
// only public operation; the rest are admin-only and gated at the router.
type InquiryService struct {
	repo   ports.InquiryRepository
	logger zerolog.Logger
}

func NewInquiryService(repo ports.InquiryRepository, logger zerolog.Logger) *InquiryService {
	return &InquiryService{repo: repo, logger: logger}
}

func (s *InquiryService) Create(ctx context.Context, input ports.CreateInquiryInput) (*domain.Inquiry, error) {
	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.Inquiry{
		FullName:        strings.TrimSpace(input.FullName),
		Email:           normalizeEmail(input.Email),
		Phone:           strings.TrimSpace(input.Phone),
		Subject:         strings.TrimSpace(input.Subject),
		Message:         strings.TrimSpace(input.Message),
		ProjectInterest: input.ProjectInterest,
		BudgetRange:     input.BudgetRange,
		Status:          domain.InquiryNew,
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("inquiry_id", created.ID).Msg("inquiry received")
	return created, nil
}

func (s *InquiryService) List(ctx context.Context, filter ports.ListInquiriesFilter) (*ports.InquiryList, error) {
	filter.Page, filter.Limit = ports.NormalizePage(filter.Page, filter.Limit)

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &ports.InquiryList{
		Items:      items,
		Pagination: ports.NewPagination(total, filter.Page, filter.Limit),
	}, nil
}

func (s *InquiryService) GetByID(ctx context.Context, id string) (*domain.Inquiry, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *InquiryService) Update(ctx context.Context, id string, input ports.UpdateInquiryInput) (*domain.Inquiry, error) {
	i, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Status != nil {
		i.Status = domain.InquiryStatus(*input.Status)
	}
	if input.AssignedTo != nil {
		i.AssignedTo = *input.AssignedTo
	}
	if input.Notes != nil {
		i.Notes = *input.Notes
	}
	i.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, i)
}

func (s *InquiryService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *InquiryService) Stats(ctx context.Context) (*ports.InquiryStats, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	newCount, err := s.repo.CountByStatus(ctx, domain.InquiryNew)
	if err != nil {
		return nil, err
	}
	inProgress, err := s.repo.CountByStatus(ctx, domain.InquiryInProgress)
	if err != nil {
		return nil, err
	}
	resolved, err := s.repo.CountByStatus(ctx, domain.InquiryResolved)
	if err != nil {
		return nil, err
	}

	return &ports.InquiryStats{
		Total:      total,
		New:        newCount,
		InProgress: inProgress,
		Resolved:   resolved,
	}, nil
}
