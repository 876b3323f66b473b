package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/itops/asset-tracker/internal/api/metrics"
	"github.com/itops/asset-tracker/internal/core/domain"
	"github.com/itops/asset-tracker/internal/core/ports"
)

// CatalogHandler handles HTTP requests for customers and manufacturers.
type CatalogHandler struct {
	service ports.CatalogService
}

func NewCatalogHandler(service ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

type namedRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// ListCustomers returns all customers.
//
// @Summary      List customers
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Customer
// @Router       /v1/customers [get]
func (h *CatalogHandler) ListCustomers(c echo.Context) error {
	customers, err := h.service.ListCustomers(c.Request().Context())
	if err != nil {
		return err
	}
	if customers == nil {
		customers = []*domain.Customer{}
	}
	return c.JSON(http.StatusOK, customers)
}

// CreateCustomer adds a customer.
//
// @Summary      Create a customer
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      namedRequest  true  "Customer details"
// @Success      201   {object}  domain.Customer
// @Failure      400   {object}  map[string]string
// @Router       /v1/customers [post]
func (h *CatalogHandler) CreateCustomer(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	req, err := bindNamed(c)
	if err != nil {
		return err
	}

	customer, err := h.service.CreateCustomer(c.Request().Context(), user, req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, customer)
}

// UpdateCustomer renames a customer.
//
// @Summary      Update a customer
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string        true  "Customer id"
// @Param        body  body      namedRequest  true  "Customer details"
// @Success      200   {object}  domain.Customer
// @Failure      404   {object}  map[string]string
// @Router       /v1/customers/{id} [put]
func (h *CatalogHandler) UpdateCustomer(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	req, err := bindNamed(c)
	if err != nil {
		return err
	}

	customer, err := h.service.UpdateCustomer(c.Request().Context(), user, c.Param("id"), req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customer)
}

// DeleteCustomer removes a customer; admin only.
//
// @Summary      Delete a customer
// @Tags         catalog
// @Security     BearerAuth
// @Param        id  path  string  true  "Customer id"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/customers/{id} [delete]
func (h *CatalogHandler) DeleteCustomer(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteCustomer(c.Request().Context(), user, c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			metrics.DeleteDeniedTotal.WithLabelValues("customer").Inc()
		}
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ListManufacturers returns all manufacturers.
//
// @Summary      List manufacturers
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Manufacturer
// @Router       /v1/manufacturers [get]
func (h *CatalogHandler) ListManufacturers(c echo.Context) error {
	manufacturers, err := h.service.ListManufacturers(c.Request().Context())
	if err != nil {
		return err
	}
	if manufacturers == nil {
		manufacturers = []*domain.Manufacturer{}
	}
	return c.JSON(http.StatusOK, manufacturers)
}

// CreateManufacturer adds a manufacturer.
//
// @Summary      Create a manufacturer
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      namedRequest  true  "Manufacturer details"
// @Success      201   {object}  domain.Manufacturer
// @Failure      400   {object}  map[string]string
// @Router       /v1/manufacturers [post]
func (h *CatalogHandler) CreateManufacturer(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	req, err := bindNamed(c)
	if err != nil {
		return err
	}

	manufacturer, err := h.service.CreateManufacturer(c.Request().Context(), user, req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, manufacturer)
}

// UpdateManufacturer renames a manufacturer.
//
// @Summary      Update a manufacturer
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string        true  "Manufacturer id"
// @Param        body  body      namedRequest  true  "Manufacturer details"
// @Success      200   {object}  domain.Manufacturer
// @Failure      404   {object}  map[string]string
// @Router       /v1/manufacturers/{id} [put]
func (h *CatalogHandler) UpdateManufacturer(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	req, err := bindNamed(c)
	if err != nil {
		return err
	}

	manufacturer, err := h.service.UpdateManufacturer(c.Request().Context(), user, c.Param("id"), req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, manufacturer)
}

// DeleteManufacturer removes a manufacturer; admin only.
//
// @Summary      Delete a manufacturer
// @Tags         catalog
// @Security     BearerAuth
// @Param        id  path  string  true  "Manufacturer id"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/manufacturers/{id} [delete]
func (h *CatalogHandler) DeleteManufacturer(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteManufacturer(c.Request().Context(), user, c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			metrics.DeleteDeniedTotal.WithLabelValues("manufacturer").Inc()
		}
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func bindNamed(c echo.Context) (*namedRequest, error) {
	var req namedRequest
	if err := c.Bind(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return &req, nil
}
