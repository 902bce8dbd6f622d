package ports

import (
	"context"

	"github.com/jobdeck/jobdeck-api/internal/core/domain"
)

// UserRepository defines persistence for user records. Lookups that miss
// return domain.ErrUserNotFound; Create returns domain.ErrUserExists when
// the storage-level unique index on username rejects the insert.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
