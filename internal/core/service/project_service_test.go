package service

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/Lokeshnegi69/story-board-interior-backend/internal/core/domain"
	"github.com/Lokeshnegi69/story-board-interior-backend/internal/core/ports"
)

type stubProjectRepo struct {
	projects map[string]*domain.Project
	nextID   int
}

func newStubProjectRepo() *stubProjectRepo {
	return &stubProjectRepo{projects: make(map[string]*domain.Project)}
}

func cloneProject(p *domain.Project) *domain.Project {
	if p == nil {
		return nil
	}
	clone := *p
	clone.Images = append([]domain.ProjectImage(nil), p.Images...)
	return &clone
}

func (r *stubProjectRepo) Create(_ context.Context, p *domain.Project) (*domain.Project, error) {
	for _, existing := range r.projects {
		if existing.Slug == p.Slug {
			return nil, domain.ErrSlugTaken
		}
	}
	copy := cloneProject(p)
	r.nextID++
	copy.ID = string(rune('0' + r.nextID))
	r.projects[copy.ID] = cloneProject(copy)
	return cloneProject(copy), nil
}

func (r *stubProjectRepo) FindByID(_ context.Context, id string) (*domain.Project, error) {
	if p, ok := r.projects[id]; ok {
		return cloneProject(p), nil
	}
	return nil, domain.ErrProjectNotFound
}

func (r *stubProjectRepo) FindBySlug(_ context.Context, slug string) (*domain.Project, error) {
	for _, p := range r.projects {
		if p.Slug == slug {
			return cloneProject(p), nil
		}
	}
	return nil, domain.ErrProjectNotFound
}

func (r *stubProjectRepo) Update(_ context.Context, p *domain.Project) (*domain.Project, error) {
	if _, ok := r.projects[p.ID]; !ok {
		return nil, domain.ErrProjectNotFound
	}
	r.projects[p.ID] = cloneProject(p)
	return cloneProject(p), nil
}

func (r *stubProjectRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.projects[id]; !ok {
		return domain.ErrProjectNotFound
	}
	delete(r.projects, id)
	return nil
}

func (r *stubProjectRepo) List(_ context.Context, filter ports.ListProjectsFilter) ([]*domain.Project, int64, error) {
	var out []*domain.Project
	for _, p := range r.projects {
		if filter.Status != "" && string(p.Status) != filter.Status {
			continue
		}
		out = append(out, cloneProject(p))
	}
	return out, int64(len(out)), nil
}

func (r *stubProjectRepo) Count(ctx context.Context, filter ports.ListProjectsFilter) (int64, error) {
	items, _, err := r.List(ctx, filter)
	return int64(len(items)), err
}

func (r *stubProjectRepo) Recent(_ context.Context, limit int) ([]*domain.Project, error) {
	var out []*domain.Project
	for _, p := range r.projects {
		if len(out) == limit {
			break
		}
		out = append(out, cloneProject(p))
	}
	return out, nil
}

// stubImageStore records uploads and deletions in memory.
type stubImageStore struct {
	stored  map[string]bool
	deleted []string
	fail    bool
}

func newStubImageStore() *stubImageStore {
	return &stubImageStore{stored: make(map[string]bool)}
}

func (s *stubImageStore) Upload(_ context.Context, key string, _ io.Reader, _ string) (string, error) {
	if s.fail {
		return "", io.ErrUnexpectedEOF
	}
	s.stored[key] = true
	return "https://cdn.example.com/" + key, nil
}

func (s *stubImageStore) Delete(_ context.Context, key string) error {
	delete(s.stored, key)
	s.deleted = append(s.deleted, key)
	return nil
}

func newProjectService(repo ports.ProjectRepository, images ports.ImageStore) *ProjectService {
	return NewProjectService(repo, images, zerolog.Nop())
}

func adminIdentity() domain.Identity {
	return domain.Identity{UserID: "admin", Role: domain.RoleAdmin}
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Modern Loft":                "modern-loft",
		"  A  B  ":                   "a-b",
		"Café & Bar!":                "caf-bar",
		"already-slugged":            "already-slugged",
		"Scandinavian Villa, U.P. 3": "scandinavian-villa-u-p-3",
	}
	for title, want := range cases {
		if got := Slugify(title); got != want {
			t.Errorf("Slugify(%q) = %q, want %q", title, got, want)
		}
	}
}

func TestProjectService_Create_DerivesSlugAndDefaults(t *testing.T) {
	svc := newProjectService(newStubProjectRepo(), newStubImageStore())

	p, err := svc.Create(context.Background(), ports.CreateProjectInput{Title: "Modern Loft Redesign"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.Slug != "modern-loft-redesign" {
		t.Fatalf("unexpected slug %q", p.Slug)
	}
	if p.Status != domain.ProjectDraft {
		t.Fatalf("new projects default to draft, got %q", p.Status)
	}
	if p.Images == nil {
		t.Fatalf("images must be initialised to an empty slice")
	}
}

func TestProjectService_Create_DuplicateSlug(t *testing.T) {
	svc := newProjectService(newStubProjectRepo(), newStubImageStore())

	if _, err := svc.Create(context.Background(), ports.CreateProjectInput{Title: "Same Title"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(context.Background(), ports.CreateProjectInput{Title: "Same Title"}); err != domain.ErrSlugTaken {
		t.Fatalf("expected ErrSlugTaken, got %v", err)
	}
}

func TestProjectService_Visibility(t *testing.T) {
	repo := newStubProjectRepo()
	svc := newProjectService(repo, newStubImageStore())

	draft, err := svc.Create(context.Background(), ports.CreateProjectInput{Title: "Hidden Draft"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Anonymous callers see a 404 for drafts, by id and by slug alike.
	if _, err := svc.GetByID(context.Background(), domain.Identity{}, draft.ID); err != domain.ErrProjectNotFound {
		t.Fatalf("expected ErrProjectNotFound for anonymous, got %v", err)
	}
	if _, err := svc.GetBySlug(context.Background(), domain.Identity{}, draft.Slug); err != domain.ErrProjectNotFound {
		t.Fatalf("expected ErrProjectNotFound for anonymous by slug, got %v", err)
	}

	// Clients are treated the same as anonymous.
	client := domain.Identity{UserID: "c1", Role: domain.RoleClient}
	if _, err := svc.GetByID(context.Background(), client, draft.ID); err != domain.ErrProjectNotFound {
		t.Fatalf("expected ErrProjectNotFound for client, got %v", err)
	}

	// Admins see everything.
	if _, err := svc.GetByID(context.Background(), adminIdentity(), draft.ID); err != nil {
		t.Fatalf("admin should see draft: %v", err)
	}
}

func TestProjectService_List_PinsNonAdminsToPublished(t *testing.T) {
	repo := newStubProjectRepo()
	svc := newProjectService(repo, newStubImageStore())

	if _, err := svc.Create(context.Background(), ports.CreateProjectInput{Title: "Draft One"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(context.Background(), ports.CreateProjectInput{Title: "Live One", Status: string(domain.ProjectPublished)}); err != nil {
		t.Fatalf("create: %v", err)
	}

	// Even an explicit status filter is overridden for non-admins.
	list, err := svc.List(context.Background(), domain.Identity{}, ports.ListProjectsFilter{Status: string(domain.ProjectDraft)})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list.Items) != 1 || list.Items[0].Status != domain.ProjectPublished {
		t.Fatalf("anonymous listing must only contain published projects: %+v", list.Items)
	}

	adminList, err := svc.List(context.Background(), adminIdentity(), ports.ListProjectsFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(adminList.Items) != 2 {
		t.Fatalf("admin should see both projects, got %d", len(adminList.Items))
	}
}

func TestProjectService_UpdateTitle_RederivesSlug(t *testing.T) {
	svc := newProjectService(newStubProjectRepo(), newStubImageStore())

	p, err := svc.Create(context.Background(), ports.CreateProjectInput{Title: "Old Title"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	title := "Brand New Title"
	updated, err := svc.Update(context.Background(), p.ID, ports.UpdateProjectInput{Title: &title})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Slug != "brand-new-title" {
		t.Fatalf("slug not re-derived: %q", updated.Slug)
	}
}

func TestProjectService_AddAndRemoveImage(t *testing.T) {
	repo := newStubProjectRepo()
	store := newStubImageStore()
	svc := newProjectService(repo, store)

	p, err := svc.Create(context.Background(), ports.CreateProjectInput{Title: "Gallery Project"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	img, err := svc.AddImage(context.Background(), ports.AddProjectImageInput{
		ProjectID: p.ID,
		Caption:   "living room",
		IsPrimary: true,
		Image: ports.ImageUpload{
			FileName:    "Living Room.JPG",
			ContentType: "image/jpeg",
			Body:        strings.NewReader("fake-bytes"),
		},
	})
	if err != nil {
		t.Fatalf("add image: %v", err)
	}
	if img.ID == "" || img.StorageKey == "" {
		t.Fatalf("image not fully populated: %+v", img)
	}
	if !strings.HasPrefix(img.StorageKey, "projects/") || !strings.HasSuffix(img.StorageKey, ".jpg") {
		t.Fatalf("unexpected storage key %q", img.StorageKey)
	}
	if !store.stored[img.StorageKey] {
		t.Fatalf("object not uploaded")
	}

	stored, _ := repo.FindByID(context.Background(), p.ID)
	if len(stored.Images) != 1 {
		t.Fatalf("image not attached to project")
	}

	if err := svc.RemoveImage(context.Background(), p.ID, img.ID); err != nil {
		t.Fatalf("remove image: %v", err)
	}
	if store.stored[img.StorageKey] {
		t.Fatalf("stored object not deleted")
	}
	stored, _ = repo.FindByID(context.Background(), p.ID)
	if len(stored.Images) != 0 {
		t.Fatalf("image not detached")
	}
}

func TestProjectService_AddImage_RollsBackOnMissingProject(t *testing.T) {
	store := newStubImageStore()
	svc := newProjectService(newStubProjectRepo(), store)

	_, err := svc.AddImage(context.Background(), ports.AddProjectImageInput{
		ProjectID: "missing",
		Image: ports.ImageUpload{
			FileName:    "photo.png",
			ContentType: "image/png",
			Body:        strings.NewReader("fake-bytes"),
		},
	})
	if err != domain.ErrProjectNotFound {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
	if len(store.stored) != 0 {
		t.Fatalf("uploaded object must be rolled back")
	}
	if len(store.deleted) != 1 {
		t.Fatalf("expected one rollback deletion, got %d", len(store.deleted))
	}
}

func TestProjectService_RemoveImage_Unknown(t *testing.T) {
	repo := newStubProjectRepo()
	svc := newProjectService(repo, newStubImageStore())

	p, err := svc.Create(context.Background(), ports.CreateProjectInput{Title: "No Images"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.RemoveImage(context.Background(), p.ID, "nope"); err != domain.ErrImageNotFound {
		t.Fatalf("expected ErrImageNotFound, got %v", err)
	}
}

func TestProjectService_Delete_RemovesStoredObjects(t *testing.T) {
	repo := newStubProjectRepo()
	store := newStubImageStore()
	svc := newProjectService(repo, store)

	p, err := svc.Create(context.Background(), ports.CreateProjectInput{Title: "Doomed"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.AddImage(context.Background(), ports.AddProjectImageInput{
		ProjectID: p.ID,
		Image: ports.ImageUpload{
			FileName:    "a.jpg",
			ContentType: "image/jpeg",
			Body:        strings.NewReader("x"),
		},
	}); err != nil {
		t.Fatalf("add image: %v", err)
	}

	if err := svc.Delete(context.Background(), p.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(store.stored) != 0 {
		t.Fatalf("stored objects must be removed with the project")
	}
	if _, err := repo.FindByID(context.Background(), p.ID); err != domain.ErrProjectNotFound {
		t.Fatalf("project should be gone, got %v", err)
	}
}
