package ports

import (
	"context"

	"github.com/jobdeck/jobdeck-api/internal/core/domain"
)

// PipelineRepository defines persistence for pipeline records. Lookups that
// miss return domain.ErrPipelineNotFound.
type PipelineRepository interface {
	Create(ctx context.Context, p *domain.Pipeline) (*domain.Pipeline, error)
	FindByID(ctx context.Context, id string) (*domain.Pipeline, error)
	List(ctx context.Context) ([]domain.Pipeline, error)
	Update(ctx context.Context, p *domain.Pipeline) (*domain.Pipeline, error)
	Delete(ctx context.Context, id string) error
}

// CreatePipelineInput carries the fields accepted when creating a pipeline.
type CreatePipelineInput struct {
	Name        string
	Description string
	Stages      []string
}

// UpdatePipelineInput is a partial update; empty fields keep stored values.
// A nil Stages slice keeps the stored stages, an empty one clears them.
type UpdatePipelineInput struct {
	Name        string
	Description string
	Stages      []string
}

// PipelineService defines use-case operations over pipeline records.
type PipelineService interface {
	List(ctx context.Context) ([]domain.Pipeline, error)
	Get(ctx context.Context, id string) (*domain.Pipeline, error)
	Create(ctx context.Context, in CreatePipelineInput) (*domain.Pipeline, error)
	Update(ctx context.Context, id string, in UpdatePipelineInput) (*domain.Pipeline, error)
	Delete(ctx context.Context, id string) error
}
