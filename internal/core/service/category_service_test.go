package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/Lokeshnegi69/story-board-interior-backend/internal/core/domain"
	"github.com/Lokeshnegi69/story-board-interior-backend/internal/core/ports"
)

type stubCategoryRepo struct {
	categories map[string]*domain.Category
	nextID     int
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{categories: make(map[string]*domain.Category)}
}

func (r *stubCategoryRepo) Create(_ context.Context, c *domain.Category) (*domain.Category, error) {
	for _, existing := range r.categories {
		if existing.Name == c.Name || existing.Slug == c.Slug {
			return nil, domain.ErrCategoryExists
		}
	}
	clone := *c
	r.nextID++
	clone.ID = string(rune('0' + r.nextID))
	stored := clone
	r.categories[clone.ID] = &stored
	return &clone, nil
}

func (r *stubCategoryRepo) FindByID(_ context.Context, id string) (*domain.Category, error) {
	if c, ok := r.categories[id]; ok {
		clone := *c
		return &clone, nil
	}
	return nil, domain.ErrCategoryNotFound
}

func (r *stubCategoryRepo) FindBySlug(_ context.Context, slug string) (*domain.Category, error) {
	for _, c := range r.categories {
		if c.Slug == slug {
			clone := *c
			return &clone, nil
		}
	}
	return nil, domain.ErrCategoryNotFound
}

func (r *stubCategoryRepo) Update(_ context.Context, c *domain.Category) (*domain.Category, error) {
	if _, ok := r.categories[c.ID]; !ok {
		return nil, domain.ErrCategoryNotFound
	}
	clone := *c
	r.categories[c.ID] = &clone
	return c, nil
}

func (r *stubCategoryRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.categories[id]; !ok {
		return domain.ErrCategoryNotFound
	}
	delete(r.categories, id)
	return nil
}

func (r *stubCategoryRepo) List(_ context.Context, activeOnly bool) ([]*domain.Category, error) {
	var out []*domain.Category
	for _, c := range r.categories {
		if activeOnly && !c.IsActive {
			continue
		}
		clone := *c
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubCategoryRepo) Count(ctx context.Context, activeOnly bool) (int64, error) {
	items, err := r.List(ctx, activeOnly)
	return int64(len(items)), err
}

func TestCategoryService_Create_DerivesSlugFromName(t *testing.T) {
	svc := NewCategoryService(newStubCategoryRepo(), zerolog.Nop())

	c, err := svc.Create(context.Background(), ports.CreateCategoryInput{Name: "Living Rooms & Lounges"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if c.Slug != "living-rooms-lounges" {
		t.Fatalf("unexpected slug %q", c.Slug)
	}
	if !c.IsActive {
		t.Fatalf("categories default to active")
	}
}

func TestCategoryService_Create_Duplicate(t *testing.T) {
	svc := NewCategoryService(newStubCategoryRepo(), zerolog.Nop())

	if _, err := svc.Create(context.Background(), ports.CreateCategoryInput{Name: "Kitchens"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(context.Background(), ports.CreateCategoryInput{Name: "Kitchens"}); err != domain.ErrCategoryExists {
		t.Fatalf("expected ErrCategoryExists, got %v", err)
	}
}

func TestCategoryService_List_HidesInactiveFromNonAdmins(t *testing.T) {
	repo := newStubCategoryRepo()
	svc := NewCategoryService(repo, zerolog.Nop())

	inactive := false
	if _, err := svc.Create(context.Background(), ports.CreateCategoryInput{Name: "Hidden", IsActive: &inactive}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(context.Background(), ports.CreateCategoryInput{Name: "Visible"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	anon, err := svc.List(context.Background(), domain.Identity{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(anon) != 1 || anon[0].Name != "Visible" {
		t.Fatalf("anonymous listing must hide inactive categories: %+v", anon)
	}

	admin, err := svc.List(context.Background(), domain.Identity{UserID: "a", Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(admin) != 2 {
		t.Fatalf("admin should see all categories, got %d", len(admin))
	}
}
