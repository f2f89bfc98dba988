package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/Lokeshnegi69/story-board-interior-backend/internal/core/domain"
	"github.com/Lokeshnegi69/story-board-interior-backend/internal/core/ports"
)

func seedUser(t *testing.T, repo *stubUserRepo, email, role string) *domain.User {
	t.Helper()
	u, err := repo.Create(context.Background(), &domain.User{
		Email:    email,
		Role:     role,
		IsActive: true,
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func TestUserService_Update_CanChangeRoleAndActivity(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, bcrypt.MinCost, zerolog.Nop())
	u := seedUser(t, repo, "client@example.com", domain.RoleClient)

	role := domain.RoleAdmin
	inactive := false
	updated, err := svc.Update(context.Background(), u.ID, ports.UpdateUserInput{
		Role:     &role,
		IsActive: &inactive,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Role != domain.RoleAdmin {
		t.Fatalf("role not changed: %q", updated.Role)
	}
	if updated.IsActive {
		t.Fatalf("activity flag not changed")
	}
}

func TestUserService_Update_RejectsUnknownRole(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, bcrypt.MinCost, zerolog.Nop())
	u := seedUser(t, repo, "client@example.com", domain.RoleClient)

	role := "superuser"
	if _, err := svc.Update(context.Background(), u.ID, ports.UpdateUserInput{Role: &role}); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden for unknown role, got %v", err)
	}
}

func TestUserService_Update_ResetsPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, bcrypt.MinCost, zerolog.Nop())
	u := seedUser(t, repo, "client@example.com", domain.RoleClient)

	pw := "replacement-pass"
	updated, err := svc.Update(context.Background(), u.ID, ports.UpdateUserInput{Password: &pw})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.PasswordHash == pw {
		t.Fatalf("password stored in plaintext")
	}
	if !CheckPassword(updated.PasswordHash, pw) {
		t.Fatalf("new password does not verify against stored hash")
	}
}

func TestUserService_Delete_RejectsSelf(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, bcrypt.MinCost, zerolog.Nop())
	admin := seedUser(t, repo, "admin@example.com", domain.RoleAdmin)

	if err := svc.Delete(context.Background(), admin.ID, admin.ID); err != domain.ErrSelfDeletion {
		t.Fatalf("expected ErrSelfDeletion, got %v", err)
	}
	if _, err := repo.FindByID(context.Background(), admin.ID); err != nil {
		t.Fatalf("account must still exist after rejected self-deletion")
	}
}

func TestUserService_Delete_OtherAccount(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, bcrypt.MinCost, zerolog.Nop())
	admin := seedUser(t, repo, "admin@example.com", domain.RoleAdmin)
	victim := seedUser(t, repo, "client@example.com", domain.RoleClient)

	if err := svc.Delete(context.Background(), admin.ID, victim.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.FindByID(context.Background(), victim.ID); err != domain.ErrUserNotFound {
		t.Fatalf("account should be gone, got %v", err)
	}
}

func TestUserService_Stats(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, bcrypt.MinCost, zerolog.Nop())
	seedUser(t, repo, "a@example.com", domain.RoleAdmin)
	seedUser(t, repo, "b@example.com", domain.RoleClient)

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Total != 2 {
		t.Fatalf("expected 2 accounts, got %d", stats.Total)
	}
}
