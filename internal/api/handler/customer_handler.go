package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jobdeck/jobdeck-api/internal/core/ports"
)

// CustomerHandler handles CRUD over customer contacts.
type CustomerHandler struct {
	customerService ports.CustomerService
}

func NewCustomerHandler(customerService ports.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// List returns all customers.
//
// @Summary      List all customers
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Customer
// @Failure      401  {object}  messageResponse
// @Router       /api/customers [get]
func (h *CustomerHandler) List(c echo.Context) error {
	customers, err := h.customerService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customers)
}

// Get returns one customer by id.
//
// @Summary      Get a customer by id
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Customer id"
// @Success      200  {object}  domain.Customer
// @Failure      404  {object}  messageResponse
// @Router       /api/customers/{id} [get]
func (h *CustomerHandler) Get(c echo.Context) error {
	cust, err := h.customerService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cust)
}

// Create persists a new customer.
//
// @Summary      Create a customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCustomerRequest  true  "Customer details"
// @Success      201   {object}  domain.Customer
// @Failure      400   {object}  messageResponse
// @Router       /api/customers [post]
func (h *CustomerHandler) Create(c echo.Context) error {
	var req createCustomerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	cust, err := h.customerService.Create(c.Request().Context(), ports.CreateCustomerInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Company: req.Company,
		Notes:   req.Notes,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, cust)
}

// Update applies a partial update to a customer.
//
// @Summary      Update a customer by id
// @Tags         customers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Customer id"
// @Param        body  body      updateCustomerRequest  true  "Fields to update"
// @Success      200   {object}  domain.Customer
// @Failure      404   {object}  messageResponse
// @Router       /api/customers/{id} [put]
func (h *CustomerHandler) Update(c echo.Context) error {
	var req updateCustomerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	cust, err := h.customerService.Update(c.Request().Context(), c.Param("id"), ports.UpdateCustomerInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Company: req.Company,
		Notes:   req.Notes,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cust)
}

// Delete removes a customer permanently.
//
// @Summary      Delete a customer by id
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Customer id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /api/customers/{id} [delete]
func (h *CustomerHandler) Delete(c echo.Context) error {
	if err := h.customerService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "customer removed"})
}
