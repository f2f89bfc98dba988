package ports

import (
	"context"

	"github.com/Lokeshnegi69/story-board-interior-backend/internal/core/domain"
)

// ListInquiriesFilter carries query parameters for the admin inquiry listing.
type ListInquiriesFilter struct {
	Status string // optional
	Page   int
	Limit  int
}

// InquiryRepository defines persistence for contact-form inquiries.
type InquiryRepository interface {
	Create(ctx context.Context, i *domain.Inquiry) (*domain.Inquiry, error)
	FindByID(ctx context.Context, id string) (*domain.Inquiry, error)
	Update(ctx context.Context, i *domain.Inquiry) (*domain.Inquiry, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ListInquiriesFilter) ([]*domain.Inquiry, int64, error)
	CountByStatus(ctx context.Context, status domain.InquiryStatus) (int64, error)
	Count(ctx context.Context) (int64, error)
	Recent(ctx context.Context, limit int) ([]*domain.Inquiry, error)
}

// CreateInquiryInput carries a public contact-form submission.
type CreateInquiryInput struct {
	FullName        string
	Email           string
	Phone           string
	Subject         string
	Message         string
	ProjectInterest string
	BudgetRange     string
}

// UpdateInquiryInput holds the admin-editable handling fields.
type UpdateInquiryInput struct {
	Status     *string
	AssignedTo *string
	Notes      *string
}

// InquiryStats is the by-status breakdown used by the admin panel.
type InquiryStats struct {
	Total      int64 `json:"total"`
	New        int64 `json:"new"`
	InProgress int64 `json:"in_progress"`
	Resolved   int64 `json:"resolved"`
}

// InquiryList is one page of inquiries.
type InquiryList struct {
	Items      []*domain.Inquiry
	Pagination Pagination
}

// InquiryService defines use-case operations for inquiries.
type InquiryService interface {
	Create(ctx context.Context, input CreateInquiryInput) (*domain.Inquiry, error)
	List(ctx context.Context, filter ListInquiriesFilter) (*InquiryList, error)
	GetByID(ctx context.Context, id string) (*domain.Inquiry, error)
	Update(ctx context.Context, id string, input UpdateInquiryInput) (*domain.Inquiry, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (*InquiryStats, error)
}
