package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Lokeshnegi69/story-board-interior-backend/internal/core/domain"
	"github.com/Lokeshnegi69/story-board-interior-backend/internal/core/ports"
)

// UserService implements admin-only account management. These operations
// sit behind the admin role gate at the router; this is the one path where
// role and activity flag are mutable.
type UserService struct {
	repo       ports.UserRepository
	bcryptCost int
	logger     zerolog.Logger
}

func NewUserService(repo ports.UserRepository, bcryptCost int, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, bcryptCost: bcryptCost, logger: logger}
}

func (s *UserService) List(ctx context.Context, filter ports.ListUsersFilter) (*ports.UserList, error) {
	filter.Page, filter.Limit = ports.NormalizePage(filter.Page, filter.Limit)

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &ports.UserList{
		Items:      items,
		Pagination: ports.NewPagination(total, filter.Page, filter.Limit),
	}, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) Update(ctx context.Context, id string, input ports.UpdateUserInput) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.FullName != nil {
		user.FullName = strings.TrimSpace(*input.FullName)
	}
	if input.Phone != nil {
		user.Phone = strings.TrimSpace(*input.Phone)
	}
	if input.AvatarURL != nil {
		user.AvatarURL = *input.AvatarURL
	}
	if input.Role != nil {
		if !domain.ValidRole(*input.Role) {
			return nil, domain.ErrForbidden
		}
		user.Role = *input.Role
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}
	if input.Password != nil {
		hash, err := HashPassword(*input.Password, s.bcryptCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	user.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", id).Msg("user updated by admin")
	return updated, nil
}

func (s *UserService) Delete(ctx context.Context, actorID, id string) error {
	if actorID == id {
		return domain.ErrSelfDeletion
	}
	return s.repo.Delete(ctx, id)
}

func (s *UserService) Stats(ctx context.Context) (*ports.UserStats, error) {
	active := true
	total, err := s.repo.Count(ctx, ports.ListUsersFilter{})
	if err != nil {
		return nil, err
	}
	admins, err := s.repo.Count(ctx, ports.ListUsersFilter{Role: domain.RoleAdmin})
	if err != nil {
		return nil, err
	}
	clients, err := s.repo.Count(ctx, ports.ListUsersFilter{Role: domain.RoleClient})
	if err != nil {
		return nil, err
	}
	activeCount, err := s.repo.Count(ctx, ports.ListUsersFilter{IsActive: &active})
	if err != nil {
		return nil, err
	}

	return &ports.UserStats{Total: total, Admins: admins, Clients: clients, Active: activeCount}, nil
}
