package ports

import (
	"context"

	"github.com/jobdeck/jobdeck-api/internal/core/domain"
)

// JobRepository defines persistence for job records. Lookups that miss
// return domain.ErrJobNotFound.
type JobRepository interface {
	Create(ctx context.Context, job *domain.Job) (*domain.Job, error)
	FindByID(ctx context.Context, id string) (*domain.Job, error)
	List(ctx context.Context) ([]domain.Job, error)
	Update(ctx context.Context, job *domain.Job) (*domain.Job, error)
	Delete(ctx context.Context, id string) error
}

// CreateJobInput carries the fields accepted when creating a job.
type CreateJobInput struct {
	Title       string
	Company     string
	Description string
	Location    string
	URL         string
	Salary      string
	Status      string
	PipelineID  string
	CustomerID  string
	Notes       string
}

// UpdateJobInput is a partial update; empty fields keep stored values.
type UpdateJobInput struct {
	Title       string
	Company     string
	Description string
	Location    string
	URL         string
	Salary      string
	Status      string
	PipelineID  string
	CustomerID  string
	Notes       string
}

// JobService defines use-case operations over job records.
type JobService interface {
	List(ctx context.Context) ([]domain.Job, error)
	Get(ctx context.Context, id string) (*domain.Job, error)
	Create(ctx context.Context, in CreateJobInput) (*domain.Job, error)
	Update(ctx context.Context, id string, in UpdateJobInput) (*domain.Job, error)
	Delete(ctx context.Context, id string) error
}
