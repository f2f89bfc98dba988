package service

import (
	"context"
	"fmt"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Lokeshnegi69/story-board-interior-backend/internal/core/domain"
	"github.com/Lokeshnegi69/story-board-interior-backend/internal/core/ports"
)

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify converts a title to a URL-safe slug.
func Slugify(title string) string {
	slug := slugPattern.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(slug, "-")
}

// ProjectService implements portfolio project use-cases, including gallery
// image management backed by the object store.
type ProjectService struct {
	repo   ports.ProjectRepository
	images ports.ImageStore
	logger zerolog.Logger
}

func NewProjectService(repo ports.ProjectRepository, images ports.ImageStore, logger zerolog.Logger) *ProjectService {
	return &ProjectService{repo: repo, images: images, logger: logger}
}

// List returns one page of projects. Anonymous and client callers are
// pinned to published projects; admins may filter by any status.
func (s *ProjectService) List(ctx context.Context, identity domain.Identity, filter ports.ListProjectsFilter) (*ports.ProjectList, error) {
	if !identity.IsAdmin() {
		filter.Status = string(domain.ProjectPublished)
	}
	filter.Page, filter.Limit = ports.NormalizePage(filter.Page, filter.Limit)

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &ports.ProjectList{
		Items:      items,
		Pagination: ports.NewPagination(total, filter.Page, filter.Limit),
	}, nil
}

func (s *ProjectService) GetByID(ctx context.Context, identity domain.Identity, id string) (*domain.Project, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	// Unpublished projects look like 404 to everyone but admins.
	if !p.VisibleTo(identity) {
		return nil, domain.ErrProjectNotFound
	}
	return p, nil
}

func (s *ProjectService) GetBySlug(ctx context.Context, identity domain.Identity, slug string) (*domain.Project, error) {
	p, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !p.VisibleTo(identity) {
		return nil, domain.ErrProjectNotFound
	}
	return p, nil
}

func (s *ProjectService) Create(ctx context.Context, input ports.CreateProjectInput) (*domain.Project, error) {
	status := domain.ProjectStatus(input.Status)
	if status == "" {
		status = domain.ProjectDraft
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.Project{
		Title:          strings.TrimSpace(input.Title),
		Slug:           Slugify(input.Title),
		Description:    input.Description,
		ClientName:     input.ClientName,
		Location:       input.Location,
		AreaSqft:       input.AreaSqft,
		CompletionDate: input.CompletionDate,
		CategoryID:     input.CategoryID,
		Status:         status,
		Featured:       input.Featured,
		ThumbnailURL:   input.ThumbnailURL,
		Images:         []domain.ProjectImage{},
		DisplayOrder:   input.DisplayOrder,
		CreatedBy:      input.CreatedBy,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("project_id", created.ID).Str("slug", created.Slug).Msg("project created")
	return created, nil
}

func (s *ProjectService) Update(ctx context.Context, id string, input ports.UpdateProjectInput) (*domain.Project, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		p.Title = strings.TrimSpace(*input.Title)
		p.Slug = Slugify(p.Title)
	}
	if input.Description != nil {
		p.Description = *input.Description
	}
	if input.ClientName != nil {
		p.ClientName = *input.ClientName
	}
	if input.Location != nil {
		p.Location = *input.Location
	}
	if input.AreaSqft != nil {
		p.AreaSqft = *input.AreaSqft
	}
	if input.CompletionDate != nil {
		p.CompletionDate = input.CompletionDate
	}
	if input.CategoryID != nil {
		p.CategoryID = *input.CategoryID
	}
	if input.Status != nil {
		p.Status = domain.ProjectStatus(*input.Status)
	}
	if input.Featured != nil {
		p.Featured = *input.Featured
	}
	if input.ThumbnailURL != nil {
		p.ThumbnailURL = *input.ThumbnailURL
	}
	if input.DisplayOrder != nil {
		p.DisplayOrder = *input.DisplayOrder
	}
	p.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, p)
}

// Delete removes the project and its gallery objects. Object-store failures
// are logged but do not block the delete; orphans are preferable to
// undeletable projects.
func (s *ProjectService) Delete(ctx context.Context, id string) error {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	for _, img := range p.Images {
		if img.StorageKey == "" {
			continue
		}
		if err := s.images.Delete(ctx, img.StorageKey); err != nil {
			s.logger.Warn().Err(err).Str("key", img.StorageKey).Msg("failed to delete stored image")
		}
	}

	return s.repo.Delete(ctx, id)
}

// AddImage uploads the file to the object store and appends it to the
// project's gallery. If the project vanished between upload and persist,
// the freshly stored object is removed again.
func (s *ProjectService) AddImage(ctx context.Context, input ports.AddProjectImageInput) (*domain.ProjectImage, error) {
	key := objectKey("projects", input.Image.FileName)
	url, err := s.images.Upload(ctx, key, input.Image.Body, input.Image.ContentType)
	if err != nil {
		return nil, fmt.Errorf("upload image: %w", err)
	}

	p, err := s.repo.FindByID(ctx, input.ProjectID)
	if err != nil {
		if delErr := s.images.Delete(ctx, key); delErr != nil {
			s.logger.Warn().Err(delErr).Str("key", key).Msg("failed to roll back upload")
		}
		return nil, err
	}

	img := domain.ProjectImage{
		ID:           uuid.NewString(),
		ImageURL:     url,
		StorageKey:   key,
		Caption:      input.Caption,
		DisplayOrder: input.DisplayOrder,
		IsPrimary:    input.IsPrimary,
		CreatedAt:    time.Now().UTC(),
	}
	p.Images = append(p.Images, img)
	p.UpdatedAt = img.CreatedAt

	if _, err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	s.logger.Info().Str("project_id", p.ID).Str("image_id", img.ID).Msg("project image added")
	return &img, nil
}

func (s *ProjectService) RemoveImage(ctx context.Context, projectID, imageID string) error {
	p, err := s.repo.FindByID(ctx, projectID)
	if err != nil {
		return err
	}

	idx := -1
	for i, img := range p.Images {
		if img.ID == imageID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.ErrImageNotFound
	}

	if key := p.Images[idx].StorageKey; key != "" {
		if err := s.images.Delete(ctx, key); err != nil {
			s.logger.Warn().Err(err).Str("key", key).Msg("failed to delete stored image")
		}
	}

	p.Images = append(p.Images[:idx], p.Images[idx+1:]...)
	p.UpdatedAt = time.Now().UTC()

	_, err = s.repo.Update(ctx, p)
	return err
}

// objectKey builds a collision-free object-store key preserving the file
// extension.
func objectKey(folder, fileName string) string {
	return folder + "/" + uuid.NewString() + strings.ToLower(path.Ext(fileName))
}
