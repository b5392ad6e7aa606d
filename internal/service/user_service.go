package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/balaios/fast-zero-madr/internal/auth"
	apperr "github.com/balaios/fast-zero-madr/internal/errors"
	"github.com/balaios/fast-zero-madr/internal/model"
	"github.com/balaios/fast-zero-madr/internal/repository"
)

// UserService handles account registration and self-service mutation.
type UserService interface {
	Register(ctx context.Context, username, email, password string) (*model.User, error)
	Update(ctx context.Context, current *model.User, targetID uint, username, email, password string) (*model.User, error)
	Delete(ctx context.Context, current *model.User, targetID uint) error
}

type userService struct {
	users repository.UserRepository
}

// NewUserService creates a new user service.
func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

// Register creates an account with a normalized username and hashed
// password. Duplicates are pre-checked, and the unique indexes back the
// check: when two concurrent registrations race, the loser's insert fails
// with a duplicate key and is reported the same way.
func (s *userService) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	username = model.NormalizeUsername(username)

	if err := s.checkTaken(ctx, username, email, 0); err != nil {
		return nil, err
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashed,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, s.takenError(ctx, username, email)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Update replaces the username, email and password of the caller's own
// record. Mutating any other record is forbidden.
func (s *userService) Update(ctx context.Context, current *model.User, targetID uint, username, email, password string) (*model.User, error) {
	if current.ID != targetID {
		return nil, apperr.ErrNotOwner
	}

	username = model.NormalizeUsername(username)

	if err := s.checkTaken(ctx, username, email, current.ID); err != nil {
		return nil, err
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	current.Username = username
	current.Email = email
	current.PasswordHash = hashed

	if err := s.users.Update(ctx, current); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, s.takenError(ctx, username, email)
		}
		return nil, fmt.Errorf("update user: %w", err)
	}

	return current, nil
}

// Delete removes the caller's own record. Tokens already issued for it keep
// their signature but stop resolving to a user.
func (s *userService) Delete(ctx context.Context, current *model.User, targetID uint) error {
	if current.ID != targetID {
		return apperr.ErrNotOwner
	}
	return s.users.Delete(ctx, current)
}

// checkTaken reports a conflict when username or email belongs to a user
// other than selfID. The username message wins when both collide, matching
// the registration contract.
func (s *userService) checkTaken(ctx context.Context, username, email string, selfID uint) error {
	existing, err := s.users.FindByUsernameOrEmail(ctx, username, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("check user existence: %w", err)
	}
	if existing.ID == selfID {
		return nil
	}
	if existing.Username == username {
		return apperr.ErrUsernameTaken
	}
	return apperr.ErrEmailTaken
}

// takenError disambiguates a duplicate-key failure after a lost race.
func (s *userService) takenError(ctx context.Context, username, email string) error {
	existing, err := s.users.FindByUsernameOrEmail(ctx, username, email)
	if err == nil && existing.Username == username {
		return apperr.ErrUsernameTaken
	}
	return apperr.ErrEmailTaken
}
