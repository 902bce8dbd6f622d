package ports

import (
	"context"

	"github.com/jobdeck/jobdeck-api/internal/core/domain"
)

// RegisterInput carries the fields accepted at registration. Role is
// optional and defaults to domain.RoleUser.
type RegisterInput struct {
	Username string
	Password string
	Email    string
	Role     string
}

// AuthService implements registration and login with token issuance.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, string, error)
	Login(ctx context.Context, username, password string) (*domain.User, string, error)
}

// LoginLimiter throttles repeated login attempts for a username.
// Allow reports whether another attempt may proceed; Reset clears the
// counter after a successful login.
type LoginLimiter interface {
	Allow(ctx context.Context, username string) (bool, error)
	Reset(ctx context.Context, username string) error
}
