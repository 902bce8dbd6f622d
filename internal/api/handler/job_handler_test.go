package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/jobdeck/jobdeck-api/internal/core/domain"
	"github.com/jobdeck/jobdeck-api/internal/core/ports"
)

type stubJobService struct {
	listFn   func(ctx context.Context) ([]domain.Job, error)
	getFn    func(ctx context.Context, id string) (*domain.Job, error)
	createFn func(ctx context.Context, in ports.CreateJobInput) (*domain.Job, error)
	updateFn func(ctx context.Context, id string, in ports.UpdateJobInput) (*domain.Job, error)
	deleteFn func(ctx context.Context, id string) error
}

func (s *stubJobService) List(ctx context.Context) ([]domain.Job, error) {
	return s.listFn(ctx)
}

func (s *stubJobService) Get(ctx context.Context, id string) (*domain.Job, error) {
	return s.getFn(ctx, id)
}

func (s *stubJobService) Create(ctx context.Context, in ports.CreateJobInput) (*domain.Job, error) {
	return s.createFn(ctx, in)
}

func (s *stubJobService) Update(ctx context.Context, id string, in ports.UpdateJobInput) (*domain.Job, error) {
	return s.updateFn(ctx, id, in)
}

func (s *stubJobService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func TestJobHandler_Create_Success(t *testing.T) {
	stub := &stubJobService{
		createFn: func(ctx context.Context, in ports.CreateJobInput) (*domain.Job, error) {
			if in.Title != "Backend Engineer" || in.Company != "Acme" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.Job{ID: "job_1", Title: in.Title, Company: in.Company, Status: domain.DefaultJobStatus}, nil
		},
	}
	handler := NewJobHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/jobs",
		`{"title":"Backend Engineer","company":"Acme"}`)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["status"] != domain.DefaultJobStatus {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestJobHandler_Create_MissingTitle(t *testing.T) {
	stub := &stubJobService{
		createFn: func(ctx context.Context, in ports.CreateJobInput) (*domain.Job, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewJobHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/api/jobs", `{"company":"Acme"}`)

	err := handler.Create(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestJobHandler_Get_NotFound(t *testing.T) {
	stub := &stubJobService{
		getFn: func(ctx context.Context, id string) (*domain.Job, error) {
			return nil, domain.ErrJobNotFound
		},
	}
	handler := NewJobHandler(stub)

	c, _ := newTestContext(t, http.MethodGet, "/api/jobs/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := handler.Get(c); !errors.Is(err, domain.ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestJobHandler_Delete(t *testing.T) {
	stub := &stubJobService{
		deleteFn: func(ctx context.Context, id string) error {
			if id != "job_1" {
				t.Fatalf("unexpected id: %s", id)
			}
			return nil
		},
	}
	handler := NewJobHandler(stub)

	c, rec := newTestContext(t, http.MethodDelete, "/api/jobs/job_1", "")
	c.SetParamNames("id")
	c.SetParamValues("job_1")

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "job removed" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}
