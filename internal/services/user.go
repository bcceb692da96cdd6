package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"campusevents/internal/domain"
)

type userService struct {
	userRepo domain.UserRepository
}

// NewUserService creates a UserService with the given repository.
func NewUserService(userRepo domain.UserRepository) domain.UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) PromoteToOrganizer(ctx context.Context, actor *domain.User, targetEmail string) error {
	if !actor.IsAdmin() {
		return domain.ErrForbidden
	}
	email := strings.TrimSpace(strings.ToLower(targetEmail))
	if !emailRegexp.MatchString(email) {
		return fmt.Errorf("%w: invalid email format", domain.ErrInvalidInput)
	}
	if err := s.userRepo.UpdateRoleByEmail(ctx, email, domain.RoleOrganizer); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("failed to update role: %w", err)
	}
	return nil
}
