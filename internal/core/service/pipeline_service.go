package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/jobdeck/jobdeck-api/internal/core/domain"
	"github.com/jobdeck/jobdeck-api/internal/core/ports"
	"github.com/jobdeck/jobdeck-api/internal/metrics"
)

// PipelineService implements CRUD over pipelines. Deleting a pipeline does
// not touch jobs that reference it; their pipeline_id simply dangles.
type PipelineService struct {
	repo   ports.PipelineRepository
	logger zerolog.Logger
}

func NewPipelineService(repo ports.PipelineRepository, logger zerolog.Logger) *PipelineService {
	return &PipelineService{repo: repo, logger: logger}
}

func (s *PipelineService) List(ctx context.Context) ([]domain.Pipeline, error) {
	return s.repo.List(ctx)
}

func (s *PipelineService) Get(ctx context.Context, id string) (*domain.Pipeline, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *PipelineService) Create(ctx context.Context, in ports.CreatePipelineInput) (*domain.Pipeline, error) {
	if in.Name == "" {
		return nil, domain.ErrMissingFields
	}

	stages := in.Stages
	if stages == nil {
		stages = []string{}
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.Pipeline{
		Name:        in.Name,
		Description: in.Description,
		Stages:      stages,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordsCreatedTotal.WithLabelValues("pipeline").Inc()
	s.logger.Info().Str("pipeline_id", created.ID).Msg("pipeline created")
	return created, nil
}

func (s *PipelineService) Update(ctx context.Context, id string, in ports.UpdatePipelineInput) (*domain.Pipeline, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != "" {
		p.Name = in.Name
	}
	if in.Description != "" {
		p.Description = in.Description
	}
	if in.Stages != nil {
		p.Stages = in.Stages
	}
	p.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, p)
}

func (s *PipelineService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("pipeline_id", id).Msg("pipeline deleted")
	return nil
}
