package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/jobdeck/jobdeck-api/internal/core/domain"
	"github.com/jobdeck/jobdeck-api/internal/core/ports"
	"github.com/jobdeck/jobdeck-api/internal/metrics"
)

// JobService implements CRUD over job applications.
type JobService struct {
	repo   ports.JobRepository
	logger zerolog.Logger
}

func NewJobService(repo ports.JobRepository, logger zerolog.Logger) *JobService {
	return &JobService{repo: repo, logger: logger}
}

func (s *JobService) List(ctx context.Context) ([]domain.Job, error) {
	return s.repo.List(ctx)
}

func (s *JobService) Get(ctx context.Context, id string) (*domain.Job, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *JobService) Create(ctx context.Context, in ports.CreateJobInput) (*domain.Job, error) {
	if in.Title == "" || in.Company == "" {
		return nil, domain.ErrMissingFields
	}

	status := in.Status
	if status == "" {
		status = domain.DefaultJobStatus
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.Job{
		Title:       in.Title,
		Company:     in.Company,
		Description: in.Description,
		Location:    in.Location,
		URL:         in.URL,
		Salary:      in.Salary,
		Status:      status,
		PipelineID:  in.PipelineID,
		CustomerID:  in.CustomerID,
		Notes:       in.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordsCreatedTotal.WithLabelValues("job").Inc()
	s.logger.Info().Str("job_id", created.ID).Str("company", created.Company).Msg("job created")
	return created, nil
}

func (s *JobService) Update(ctx context.Context, id string, in ports.UpdateJobInput) (*domain.Job, error) {
	job, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Title != "" {
		job.Title = in.Title
	}
	if in.Company != "" {
		job.Company = in.Company
	}
	if in.Description != "" {
		job.Description = in.Description
	}
	if in.Location != "" {
		job.Location = in.Location
	}
	if in.URL != "" {
		job.URL = in.URL
	}
	if in.Salary != "" {
		job.Salary = in.Salary
	}
	if in.Status != "" {
		job.Status = in.Status
	}
	if in.PipelineID != "" {
		job.PipelineID = in.PipelineID
	}
	if in.CustomerID != "" {
		job.CustomerID = in.CustomerID
	}
	if in.Notes != "" {
		job.Notes = in.Notes
	}
	job.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, job)
}

func (s *JobService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("job_id", id).Msg("job deleted")
	return nil
}
