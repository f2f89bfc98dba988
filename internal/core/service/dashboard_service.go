package service

import (
	"context"

	"github.com/Lokeshnegi69/story-board-interior-backend/internal/core/domain"
	"github.com/Lokeshnegi69/story-board-interior-backend/internal/core/ports"
)

const recentItems = 5

// DashboardService aggregates counts across the collections for the admin
// panel. Reads only; every method is a fan-out of repository counts.
type DashboardService struct {
	projects     ports.ProjectRepository
	inquiries    ports.InquiryRepository
	testimonials ports.TestimonialRepository
	categories   ports.CategoryRepository
	users        ports.UserRepository
}

func NewDashboardService(
	projects ports.ProjectRepository,
	inquiries ports.InquiryRepository,
	testimonials ports.TestimonialRepository,
	categories ports.CategoryRepository,
	users ports.UserRepository,
) *DashboardService {
	return &DashboardService{
		projects:     projects,
		inquiries:    inquiries,
		testimonials: testimonials,
		categories:   categories,
		users:        users,
	}
}

func (s *DashboardService) Stats(ctx context.Context) (*ports.DashboardStats, error) {
	var stats ports.DashboardStats
	var err error

	if stats.Projects.Total, err = s.projects.Count(ctx, ports.ListProjectsFilter{}); err != nil {
		return nil, err
	}
	if stats.Projects.Published, err = s.projects.Count(ctx, ports.ListProjectsFilter{Status: string(domain.ProjectPublished)}); err != nil {
		return nil, err
	}
	if stats.Projects.Draft, err = s.projects.Count(ctx, ports.ListProjectsFilter{Status: string(domain.ProjectDraft)}); err != nil {
		return nil, err
	}

	if stats.Inquiries.Total, err = s.inquiries.Count(ctx); err != nil {
		return nil, err
	}
	if stats.Inquiries.New, err = s.inquiries.CountByStatus(ctx, domain.InquiryNew); err != nil {
		return nil, err
	}

	published := true
	if stats.Testimonials.Total, err = s.testimonials.Count(ctx, ports.ListTestimonialsFilter{}); err != nil {
		return nil, err
	}
	if stats.Testimonials.Published, err = s.testimonials.Count(ctx, ports.ListTestimonialsFilter{Published: &published}); err != nil {
		return nil, err
	}

	if stats.Categories.Total, err = s.categories.Count(ctx, false); err != nil {
		return nil, err
	}
	if stats.Categories.Active, err = s.categories.Count(ctx, true); err != nil {
		return nil, err
	}

	if stats.Users.Total, err = s.users.Count(ctx, ports.ListUsersFilter{}); err != nil {
		return nil, err
	}

	if stats.RecentProjects, err = s.projects.Recent(ctx, recentItems); err != nil {
		return nil, err
	}
	if stats.RecentInquiries, err = s.inquiries.Recent(ctx, recentItems); err != nil {
		return nil, err
	}

	return &stats, nil
}

func (s *DashboardService) ProjectsByCategory(ctx context.Context) ([]ports.CategoryProjectCount, error) {
	categories, err := s.categories.List(ctx, false)
	if err != nil {
		return nil, err
	}

	out := make([]ports.CategoryProjectCount, 0, len(categories))
	for _, c := range categories {
		count, err := s.projects.Count(ctx, ports.ListProjectsFilter{
			CategoryID: c.ID,
			Status:     string(domain.ProjectPublished),
		})
		if err != nil {
			return nil, err
		}
		out = append(out, ports.CategoryProjectCount{Category: c.Name, Count: count})
	}
	return out, nil
}

func (s *DashboardService) InquiriesByStatus(ctx context.Context) ([]ports.InquiryStatusCount, error) {
	out := make([]ports.InquiryStatusCount, 0, len(domain.InquiryStatuses))
	for _, status := range domain.InquiryStatuses {
		count, err := s.inquiries.CountByStatus(ctx, status)
		if err != nil {
			return nil, err
		}
		out = append(out, ports.InquiryStatusCount{Status: string(status), Count: count})
	}
	return out, nil
}
