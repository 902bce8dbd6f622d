package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/jobdeck/jobdeck-api/internal/core/domain"
	"github.com/jobdeck/jobdeck-api/internal/core/ports"
	"github.com/jobdeck/jobdeck-api/internal/metrics"
)

// CustomerService implements CRUD over customer contacts.
type CustomerService struct {
	repo   ports.CustomerRepository
	logger zerolog.Logger
}

func NewCustomerService(repo ports.CustomerRepository, logger zerolog.Logger) *CustomerService {
	return &CustomerService{repo: repo, logger: logger}
}

func (s *CustomerService) List(ctx context.Context) ([]domain.Customer, error) {
	return s.repo.List(ctx)
}

func (s *CustomerService) Get(ctx context.Context, id string) (*domain.Customer, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CustomerService) Create(ctx context.Context, in ports.CreateCustomerInput) (*domain.Customer, error) {
	if in.Name == "" {
		return nil, domain.ErrMissingFields
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.Customer{
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Company:   in.Company,
		Notes:     in.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordsCreatedTotal.WithLabelValues("customer").Inc()
	s.logger.Info().Str("customer_id", created.ID).Msg("customer created")
	return created, nil
}

func (s *CustomerService) Update(ctx context.Context, id string, in ports.UpdateCustomerInput) (*domain.Customer, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != "" {
		c.Name = in.Name
	}
	if in.Email != "" {
		c.Email = in.Email
	}
	if in.Phone != "" {
		c.Phone = in.Phone
	}
	if in.Company != "" {
		c.Company = in.Company
	}
	if in.Notes != "" {
		c.Notes = in.Notes
	}
	c.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, c)
}

func (s *CustomerService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("customer_id", id).Msg("customer deleted")
	return nil
}
