package ports

import (
	"context"

	"github.com/jobdeck/jobdeck-api/internal/core/domain"
)

// UpdateUserInput carries a partial user update. Empty fields keep their
// stored values; a non-empty Password is re-hashed before persisting.
type UpdateUserInput struct {
	Username string
	Email    string
	Password string
	Role     string
}

// UserService defines use-case operations over user records.
type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, id string, in UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
