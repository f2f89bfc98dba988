package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Lokeshnegi69/story-board-interior-backend/internal/core/domain"
	"github.com/Lokeshnegi69/story-board-interior-backend/internal/core/ports"
)

// HeroService implements hero-section use-cases.
type HeroService struct {
	repo   ports.HeroRepository
	images ports.ImageStore
	logger zerolog.Logger
}

func NewHeroService(repo ports.HeroRepository, images ports.ImageStore, logger zerolog.Logger) *HeroService {
	return &HeroService{repo: repo, images: images, logger: logger}
}

// List returns hero sections; non-admin callers only see active ones.
func (s *HeroService) List(ctx context.Context, identity domain.Identity) ([]*domain.HeroSection, error) {
	return s.repo.List(ctx, !identity.IsAdmin())
}

func (s *HeroService) GetByID(ctx context.Context, id string) (*domain.HeroSection, error) {
	return s.repo.FindByID(ctx, id)
}

// Create persists a hero section, first uploading the background image to
// the object store when one is supplied.
func (s *HeroService) Create(ctx context.Context, input ports.CreateHeroInput) (*domain.HeroSection, error) {
	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}

	hero := &domain.HeroSection{
		Page:     strings.TrimSpace(input.Page),
		IsActive: active,
	}

	if input.Image != nil {
		key := objectKey("hero", input.Image.FileName)
		url, err := s.images.Upload(ctx, key, input.Image.Body, input.Image.ContentType)
		if err != nil {
			return nil, fmt.Errorf("upload hero image: %w", err)
		}
		hero.BackgroundImage = url
		hero.StorageKey = key
	}

	now := time.Now().UTC()
	hero.CreatedAt = now
	hero.UpdatedAt = now

	created, err := s.repo.Create(ctx, hero)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("hero_id", created.ID).Str("page", created.Page).Msg("hero section created")
	return created, nil
}

func (s *HeroService) Update(ctx context.Context, id string, input ports.UpdateHeroInput) (*domain.HeroSection, error) {
	h, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Page != nil {
		h.Page = strings.TrimSpace(*input.Page)
	}
	if input.BackgroundImage != nil {
		h.BackgroundImage = *input.BackgroundImage
	}
	if input.IsActive != nil {
		h.IsActive = *input.IsActive
	}
	h.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, h)
}

func (s *HeroService) Delete(ctx context.Context, id string) error {
	h, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if h.StorageKey != "" {
		if err := s.images.Delete(ctx, h.StorageKey); err != nil {
			s.logger.Warn().Err(err).Str("key", h.StorageKey).Msg("failed to delete stored image")
		}
	}

	return s.repo.Delete(ctx, id)
}
