package ports

import (
	"context"

	"github.com/Lokeshnegi69/story-board-interior-backend/internal/core/domain"
)

// UpdateUserInput holds the admin-editable account fields. Unlike the
// self-service profile path, role and activity flag are changeable here.
type UpdateUserInput struct {
	FullName  *string
	Phone     *string
	AvatarURL *string
	Role      *string
	IsActive  *bool
	// Password, when set, replaces the account's credential (hashed before storage).
	Password *string
}

// UserStats is the account breakdown for the admin panel.
type UserStats struct {
	Total   int64 `json:"total"`
	Admins  int64 `json:"admins"`
	Clients int64 `json:"clients"`
	Active  int64 `json:"active"`
}

// UserList is one page of accounts.
type UserList struct {
	Items      []*domain.User
	Pagination Pagination
}

// UserService defines the admin-only account management operations.
type UserService interface {
	List(ctx context.Context, filter ListUsersFilter) (*UserList, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error)
	// Delete removes an account; actorID guards against self-deletion.
	Delete(ctx context.Context, actorID, id string) error
	Stats(ctx context.Context) (*UserStats, error)
}
