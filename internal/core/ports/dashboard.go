package ports

import (
	"context"

	"github.com/Lokeshnegi69/story-board-interior-backend/internal/core/domain"
)

// DashboardStats aggregates counts across every collection plus the most
// recent projects and inquiries.
type DashboardStats struct {
	Projects struct {
		Total     int64 `json:"total"`
		Published int64 `json:"published"`
		Draft     int64 `json:"draft"`
	} `json:"projects"`
	Inquiries struct {
		Total int64 `json:"total"`
		New   int64 `json:"new"`
	} `json:"inquiries"`
	Testimonials struct {
		Total     int64 `json:"total"`
		Published int64 `json:"published"`
	} `json:"testimonials"`
	Categories struct {
		Total  int64 `json:"total"`
		Active int64 `json:"active"`
	} `json:"categories"`
	Users struct {
		Total int64 `json:"total"`
	} `json:"users"`

	RecentProjects  []*domain.Project `json:"recentProjects"`
	RecentInquiries []*domain.Inquiry `json:"recentInquiries"`
}

// CategoryProjectCount is one bar of the projects-by-category chart.
type CategoryProjectCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

// InquiryStatusCount is one slice of the inquiries-by-status chart.
type InquiryStatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// DashboardService produces the admin-panel aggregations.
type DashboardService interface {
	Stats(ctx context.Context) (*DashboardStats, error)
	ProjectsByCategory(ctx context.Context) ([]CategoryProjectCount, error)
	InquiriesByStatus(ctx context.Context) ([]InquiryStatusCount, error)
}
