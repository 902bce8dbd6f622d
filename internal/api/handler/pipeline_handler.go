package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jobdeck/jobdeck-api/internal/core/ports"
)

// PipelineHandler handles CRUD over pipelines.
type PipelineHandler struct {
	pipelineService ports.PipelineService
}

func NewPipelineHandler(pipelineService ports.PipelineService) *PipelineHandler {
	return &PipelineHandler{pipelineService: pipelineService}
}

// List returns all pipelines.
//
// @Summary      List all pipelines
// @Tags         pipelines
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Pipeline
// @Failure      401  {object}  messageResponse
// @Router       /api/pipelines [get]
func (h *PipelineHandler) List(c echo.Context) error {
	pipelines, err := h.pipelineService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pipelines)
}

// Get returns one pipeline by id.
//
// @Summary      Get a pipeline by id
// @Tags         pipelines
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Pipeline id"
// @Success      200  {object}  domain.Pipeline
// @Failure      404  {object}  messageResponse
// @Router       /api/pipelines/{id} [get]
func (h *PipelineHandler) Get(c echo.Context) error {
	p, err := h.pipelineService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

// Create persists a new pipeline.
//
// @Summary      Create a pipeline
// @Tags         pipelines
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPipelineRequest  true  "Pipeline details"
// @Success      201   {object}  domain.Pipeline
// @Failure      400   {object}  messageResponse
// @Router       /api/pipelines [post]
func (h *PipelineHandler) Create(c echo.Context) error {
	var req createPipelineRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	p, err := h.pipelineService.Create(c.Request().Context(), ports.CreatePipelineInput{
		Name:        req.Name,
		Description: req.Description,
		Stages:      req.Stages,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, p)
}

// Update applies a partial update to a pipeline.
//
// @Summary      Update a pipeline by id
// @Tags         pipelines
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Pipeline id"
// @Param        body  body      updatePipelineRequest  true  "Fields to update"
// @Success      200   {object}  domain.Pipeline
// @Failure      404   {object}  messageResponse
// @Router       /api/pipelines/{id} [put]
func (h *PipelineHandler) Update(c echo.Context) error {
	var req updatePipelineRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	p, err := h.pipelineService.Update(c.Request().Context(), c.Param("id"), ports.UpdatePipelineInput{
		Name:        req.Name,
		Description: req.Description,
		Stages:      req.Stages,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

// Delete removes a pipeline permanently. Jobs referencing it keep their
// pipeline_id; no cascade runs.
//
// @Summary      Delete a pipeline by id
// @Tags         pipelines
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Pipeline id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /api/pipelines/{id} [delete]
func (h *PipelineHandler) Delete(c echo.Context) error {
	if err := h.pipelineService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "pipeline removed"})
}
