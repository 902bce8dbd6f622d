package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/jobdeck/jobdeck-api/internal/core/domain"
	"github.com/jobdeck/jobdeck-api/internal/core/ports"
)

// UserService implements user management on top of the repository.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// Update applies a partial update over the stored record. Empty input
// fields keep their stored values; the secret is re-hashed only when a new
// password is provided, so unrelated updates leave the hash untouched.
func (s *UserService) Update(ctx context.Context, id string, in ports.UpdateUserInput) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if username := strings.TrimSpace(in.Username); username != "" && username != user.Username {
		if other, err := s.repo.FindByUsername(ctx, username); err == nil && other.ID != user.ID {
			return nil, domain.ErrUserExists
		} else if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		user.Username = username
	}

	if email := strings.ToLower(strings.TrimSpace(in.Email)); email != "" && email != user.Email {
		if other, err := s.repo.FindByEmail(ctx, email); err == nil && other.ID != user.ID {
			return nil, domain.ErrEmailExists
		} else if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		user.Email = email
	}

	if in.Role != "" {
		if !domain.ValidRole(in.Role) {
			return nil, domain.ErrInvalidRole
		}
		user.Role = in.Role
	}

	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}

	user.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", updated.ID).Msg("user updated")
	return updated, nil
}

// Delete removes the user permanently. Outstanding tokens for the deleted
// user die at the middleware lookup, not here.
func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", id).Msg("user deleted")
	return nil
}
