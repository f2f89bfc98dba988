package ports

import (
	"context"

	"github.com/Lokeshnegi69/story-board-interior-backend/internal/core/domain"
)

// ListUsersFilter carries the query parameters for the admin user listing.
type ListUsersFilter struct {
	Role     string // optional: "admin" or "client"
	IsActive *bool  // optional: filter by activity flag
	Page     int
	Limit    int
}

// UserRepository defines persistence for accounts. Email uniqueness is
// enforced by the store's unique index at write time; Create returns
// domain.ErrEmailTaken on a duplicate.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ListUsersFilter) ([]*domain.User, int64, error)
	Count(ctx context.Context, filter ListUsersFilter) (int64, error)
}

// RegisterInput carries a new account request. Role is not accepted here:
// registration always creates the lowest-privilege role.
type RegisterInput struct {
	Email    string
	Password string
	FullName string
	Phone    string
}

// LoginInput carries credentials presented at login.
type LoginInput struct {
	Email    string
	Password string
}

// ProfileUpdateInput holds the self-service profile fields. Role and activity
// flag are deliberately absent: this path cannot escalate privileges.
type ProfileUpdateInput struct {
	FullName  *string
	Phone     *string
	AvatarURL *string
}

// AuthResult bundles the public account view with a fresh token pair.
type AuthResult struct {
	User   *domain.User
	Tokens TokenPair
}

// AuthService implements the account lifecycle.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, input LoginInput) (*AuthResult, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	Profile(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID string, input ProfileUpdateInput) (*domain.User, error)
}
