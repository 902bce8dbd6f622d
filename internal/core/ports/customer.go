package ports

import (
	"context"

	"github.com/jobdeck/jobdeck-api/internal/core/domain"
)

// CustomerRepository defines persistence for customer records. Lookups that
// miss return domain.ErrCustomerNotFound.
type CustomerRepository interface {
	Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
	FindByID(ctx context.Context, id string) (*domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
	Update(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
	Delete(ctx context.Context, id string) error
}

// CreateCustomerInput carries the fields accepted when creating a customer.
type CreateCustomerInput struct {
	Name    string
	Email   string
	Phone   string
	Company string
	Notes   string
}

// UpdateCustomerInput is a partial update; empty fields keep stored values.
type UpdateCustomerInput struct {
	Name    string
	Email   string
	Phone   string
	Company string
	Notes   string
}

// CustomerService defines use-case operations over customer records.
type CustomerService interface {
	List(ctx context.Context) ([]domain.Customer, error)
	Get(ctx context.Context, id string) (*domain.Customer, error)
	Create(ctx context.Context, in CreateCustomerInput) (*domain.Customer, error)
	Update(ctx context.Context, id string, in UpdateCustomerInput) (*domain.Customer, error)
	Delete(ctx context.Context, id string) error
}
