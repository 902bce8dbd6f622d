package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/jobdeck/jobdeck-api/internal/core/domain"
	"github.com/jobdeck/jobdeck-api/internal/core/ports"
)

type stubPipelineService struct {
	listFn   func(ctx context.Context) ([]domain.Pipeline, error)
	getFn    func(ctx context.Context, id string) (*domain.Pipeline, error)
	createFn func(ctx context.Context, in ports.CreatePipelineInput) (*domain.Pipeline, error)
	updateFn func(ctx context.Context, id string, in ports.UpdatePipelineInput) (*domain.Pipeline, error)
	deleteFn func(ctx context.Context, id string) error
}

func (s *stubPipelineService) List(ctx context.Context) ([]domain.Pipeline, error) {
	return s.listFn(ctx)
}

func (s *stubPipelineService) Get(ctx context.Context, id string) (*domain.Pipeline, error) {
	return s.getFn(ctx, id)
}

func (s *stubPipelineService) Create(ctx context.Context, in ports.CreatePipelineInput) (*domain.Pipeline, error) {
	return s.createFn(ctx, in)
}

func (s *stubPipelineService) Update(ctx context.Context, id string, in ports.UpdatePipelineInput) (*domain.Pipeline, error) {
	return s.updateFn(ctx, id, in)
}

func (s *stubPipelineService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func TestPipelineHandler_Update_OmittedStagesStayNil(t *testing.T) {
	var gotInput ports.UpdatePipelineInput
	stub := &stubPipelineService{
		updateFn: func(ctx context.Context, id string, in ports.UpdatePipelineInput) (*domain.Pipeline, error) {
			gotInput = in
			return &domain.Pipeline{ID: id, Name: "Default"}, nil
		},
	}
	handler := NewPipelineHandler(stub)

	// An absent stages key must bind to nil so the stored list is kept.
	c, _ := newTestContext(t, http.MethodPut, "/api/pipelines/pipeline_1", `{"name":"Renamed"}`)
	c.SetParamNames("id")
	c.SetParamValues("pipeline_1")

	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if gotInput.Stages != nil {
		t.Fatalf("expected nil stages for omitted key, got %v", gotInput.Stages)
	}
}

func TestPipelineHandler_Update_EmptyStagesClear(t *testing.T) {
	var gotInput ports.UpdatePipelineInput
	stub := &stubPipelineService{
		updateFn: func(ctx context.Context, id string, in ports.UpdatePipelineInput) (*domain.Pipeline, error) {
			gotInput = in
			return &domain.Pipeline{ID: id, Name: "Default", Stages: []string{}}, nil
		},
	}
	handler := NewPipelineHandler(stub)

	c, _ := newTestContext(t, http.MethodPut, "/api/pipelines/pipeline_1", `{"stages":[]}`)
	c.SetParamNames("id")
	c.SetParamValues("pipeline_1")

	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if gotInput.Stages == nil || len(gotInput.Stages) != 0 {
		t.Fatalf("expected empty stages slice, got %v", gotInput.Stages)
	}
}

func TestPipelineHandler_Create(t *testing.T) {
	stub := &stubPipelineService{
		createFn: func(ctx context.Context, in ports.CreatePipelineInput) (*domain.Pipeline, error) {
			return &domain.Pipeline{ID: "pipeline_1", Name: in.Name, Stages: in.Stages}, nil
		},
	}
	handler := NewPipelineHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/pipelines",
		`{"name":"Default","stages":["applied","interview","offer"]}`)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}
