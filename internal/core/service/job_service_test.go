package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/jobdeck/jobdeck-api/internal/core/domain"
	"github.com/jobdeck/jobdeck-api/internal/core/ports"
)

type stubJobRepo struct {
	jobs map[string]*domain.Job
	seq  int
}

func newStubJobRepo() *stubJobRepo {
	return &stubJobRepo{jobs: make(map[string]*domain.Job)}
}

func cloneJob(j *domain.Job) *domain.Job {
	if j == nil {
		return nil
	}
	clone := *j
	return &clone
}

func (r *stubJobRepo) Create(_ context.Context, job *domain.Job) (*domain.Job, error) {
	copy := cloneJob(job)
	r.seq++
	copy.ID = fmt.Sprintf("job_%d", r.seq)
	r.jobs[copy.ID] = cloneJob(copy)
	return cloneJob(copy), nil
}

func (r *stubJobRepo) FindByID(_ context.Context, id string) (*domain.Job, error) {
	if j, ok := r.jobs[id]; ok {
		return cloneJob(j), nil
	}
	return nil, domain.ErrJobNotFound
}

func (r *stubJobRepo) List(_ context.Context) ([]domain.Job, error) {
	out := make([]domain.Job, 0, len(r.jobs))
	for _, j := range r.jobs {
		out = append(out, *cloneJob(j))
	}
	return out, nil
}

func (r *stubJobRepo) Update(_ context.Context, job *domain.Job) (*domain.Job, error) {
	if _, ok := r.jobs[job.ID]; !ok {
		return nil, domain.ErrJobNotFound
	}
	r.jobs[job.ID] = cloneJob(job)
	return cloneJob(job), nil
}

func (r *stubJobRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.jobs[id]; !ok {
		return domain.ErrJobNotFound
	}
	delete(r.jobs, id)
	return nil
}

func TestJobService_Create_DefaultStatus(t *testing.T) {
	svc := NewJobService(newStubJobRepo(), zerolog.Nop())

	job, err := svc.Create(context.Background(), ports.CreateJobInput{Title: "Backend Engineer", Company: "Acme"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if job.Status != domain.DefaultJobStatus {
		t.Fatalf("expected status %q, got %q", domain.DefaultJobStatus, job.Status)
	}
	if job.ID == "" {
		t.Fatalf("expected assigned id")
	}
	if job.CreatedAt.IsZero() || job.UpdatedAt.IsZero() {
		t.Fatalf("expected timestamps to be set")
	}
}

func TestJobService_Create_MissingFields(t *testing.T) {
	svc := NewJobService(newStubJobRepo(), zerolog.Nop())

	if _, err := svc.Create(context.Background(), ports.CreateJobInput{Company: "Acme"}); !errors.Is(err, domain.ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields for empty title, got %v", err)
	}
	if _, err := svc.Create(context.Background(), ports.CreateJobInput{Title: "Backend Engineer"}); !errors.Is(err, domain.ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields for empty company, got %v", err)
	}
}

func TestJobService_Update_PartialOverlay(t *testing.T) {
	repo := newStubJobRepo()
	svc := NewJobService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.CreateJobInput{
		Title:    "Backend Engineer",
		Company:  "Acme",
		Location: "Remote",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	updated, err := svc.Update(context.Background(), created.ID, ports.UpdateJobInput{Status: "interview"})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Status != "interview" {
		t.Fatalf("expected status interview, got %q", updated.Status)
	}
	if updated.Title != "Backend Engineer" || updated.Company != "Acme" || updated.Location != "Remote" {
		t.Fatalf("expected untouched fields to be kept: %+v", updated)
	}
}

func TestJobService_Update_NotFound(t *testing.T) {
	svc := NewJobService(newStubJobRepo(), zerolog.Nop())

	if _, err := svc.Update(context.Background(), "missing", ports.UpdateJobInput{Status: "offer"}); !errors.Is(err, domain.ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestJobService_Delete(t *testing.T) {
	repo := newStubJobRepo()
	svc := NewJobService(repo, zerolog.Nop())

	created, _ := svc.Create(context.Background(), ports.CreateJobInput{Title: "Backend Engineer", Company: "Acme"})
	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := svc.Get(context.Background(), created.ID); !errors.Is(err, domain.ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound after delete, got %v", err)
	}
}
