package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jobdeck/jobdeck-api/internal/core/ports"
)

// JobHandler handles CRUD over job applications.
type JobHandler struct {
	jobService ports.JobService
}

func NewJobHandler(jobService ports.JobService) *JobHandler {
	return &JobHandler{jobService: jobService}
}

// List returns all jobs in natural storage order.
//
// @Summary      List all jobs
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Job
// @Failure      401  {object}  messageResponse
// @Router       /api/jobs [get]
func (h *JobHandler) List(c echo.Context) error {
	jobs, err := h.jobService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, jobs)
}

// Get returns one job by id.
//
// @Summary      Get a job by id
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Job id"
// @Success      200  {object}  domain.Job
// @Failure      404  {object}  messageResponse
// @Router       /api/jobs/{id} [get]
func (h *JobHandler) Get(c echo.Context) error {
	job, err := h.jobService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, job)
}

// Create persists a new job.
//
// @Summary      Create a job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createJobRequest  true  "Job details"
// @Success      201   {object}  domain.Job
// @Failure      400   {object}  messageResponse
// @Router       /api/jobs [post]
func (h *JobHandler) Create(c echo.Context) error {
	var req createJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	job, err := h.jobService.Create(c.Request().Context(), ports.CreateJobInput{
		Title:       req.Title,
		Company:     req.Company,
		Description: req.Description,
		Location:    req.Location,
		URL:         req.URL,
		Salary:      req.Salary,
		Status:      req.Status,
		PipelineID:  req.PipelineID,
		CustomerID:  req.CustomerID,
		Notes:       req.Notes,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, job)
}

// Update applies a partial update to a job.
//
// @Summary      Update a job by id
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "Job id"
// @Param        body  body      updateJobRequest  true  "Fields to update"
// @Success      200   {object}  domain.Job
// @Failure      404   {object}  messageResponse
// @Router       /api/jobs/{id} [put]
func (h *JobHandler) Update(c echo.Context) error {
	var req updateJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	job, err := h.jobService.Update(c.Request().Context(), c.Param("id"), ports.UpdateJobInput{
		Title:       req.Title,
		Company:     req.Company,
		Description: req.Description,
		Location:    req.Location,
		URL:         req.URL,
		Salary:      req.Salary,
		Status:      req.Status,
		PipelineID:  req.PipelineID,
		CustomerID:  req.CustomerID,
		Notes:       req.Notes,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, job)
}

// Delete removes a job permanently.
//
// @Summary      Delete a job by id
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Job id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /api/jobs/{id} [delete]
func (h *JobHandler) Delete(c echo.Context) error {
	if err := h.jobService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "job removed"})
}
