package ports

import (
	"context"
	"time"

	"github.com/Lokeshnegi69/story-board-interior-backend/internal/core/domain"
)

// ListProjectsFilter carries all query parameters for listing projects.
type ListProjectsFilter struct {
	Status     string // empty = service decides based on caller role
	CategoryID string
	Featured   *bool
	Page       int
	Limit      int
}

// ProjectRepository defines persistence for portfolio projects. Slug
// uniqueness is enforced by the store's unique index; Create and Update
// return domain.ErrSlugTaken on a duplicate.
type ProjectRepository interface {
	Create(ctx context.Context, p *domain.Project) (*domain.Project, error)
	FindByID(ctx context.Context, id string) (*domain.Project, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) (*domain.Project, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ListProjectsFilter) ([]*domain.Project, int64, error)
	Count(ctx context.Context, filter ListProjectsFilter) (int64, error)
	Recent(ctx context.Context, limit int) ([]*domain.Project, error)
}

// CreateProjectInput carries a new project. Slug is derived from the title.
type CreateProjectInput struct {
	Title          string
	Description    string
	ClientName     string
	Location       string
	AreaSqft       float64
	CompletionDate *time.Time
	CategoryID     string
	Status         string
	Featured       bool
	ThumbnailURL   string
	DisplayOrder   int
	CreatedBy      string
}

// UpdateProjectInput holds optional field updates; nil means "leave as is".
type UpdateProjectInput struct {
	Title          *string
	Description    *string
	ClientName     *string
	Location       *string
	AreaSqft       *float64
	CompletionDate *time.Time
	CategoryID     *string
	Status         *string
	Featured       *bool
	ThumbnailURL   *string
	DisplayOrder   *int
}

// AddProjectImageInput attaches one uploaded image to a project.
type AddProjectImageInput struct {
	ProjectID    string
	Caption      string
	DisplayOrder int
	IsPrimary    bool
	Image        ImageUpload
}

// ProjectList is one page of projects.
type ProjectList struct {
	Items      []*domain.Project
	Pagination Pagination
}

// ProjectService defines use-case operations for projects. The identity
// parameter drives visibility: anonymous and client callers only see
// published projects.
type ProjectService interface {
	List(ctx context.Context, identity domain.Identity, filter ListProjectsFilter) (*ProjectList, error)
	GetByID(ctx context.Context, identity domain.Identity, id string) (*domain.Project, error)
	GetBySlug(ctx context.Context, identity domain.Identity, slug string) (*domain.Project, error)
	Create(ctx context.Context, input CreateProjectInput) (*domain.Project, error)
	Update(ctx context.Context, id string, input UpdateProjectInput) (*domain.Project, error)
	Delete(ctx context.Context, id string) error
	AddImage(ctx context.Context, input AddProjectImageInput) (*domain.ProjectImage, error)
	RemoveImage(ctx context.Context, projectID, imageID string) error
}
