package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/itops/asset-tracker/internal/api/metrics"
	"github.com/itops/asset-tracker/internal/core/domain"
	"github.com/itops/asset-tracker/internal/core/ports"
)

// AssetHandler handles HTTP requests for asset operations.
type AssetHandler struct {
	service ports.AssetService
}

func NewAssetHandler(service ports.AssetService) *AssetHandler {
	return &AssetHandler{service: service}
}

type assetRequest struct {
	Category       string `json:"category" validate:"required,oneof=Laptop Desktop Keyboard Mouse Monitor Headset Printer Mobile Tablet Server"`
	Comments       string `json:"comments"`
	CustomerID     string `json:"customer_id"`
	ManufacturerID string `json:"manufacturer_id"`
}

// List returns all assets.
//
// @Summary      List assets
// @Tags         assets
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Asset
// @Failure      401  {object}  map[string]string
// @Router       /v1/assets [get]
func (h *AssetHandler) List(c echo.Context) error {
	assets, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	if assets == nil {
		assets = []*domain.Asset{}
	}
	return c.JSON(http.StatusOK, assets)
}

// Create records a new asset owned by the current user.
//
// @Summary      Create an asset
// @Tags         assets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      assetRequest  true  "Asset details"
// @Success      201   {object}  domain.Asset
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /v1/assets [post]
func (h *AssetHandler) Create(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req assetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	asset, err := h.service.Create(c.Request().Context(), user, ports.CreateAssetInput{
		Category:       req.Category,
		Comments:       req.Comments,
		CustomerID:     req.CustomerID,
		ManufacturerID: req.ManufacturerID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, asset)
}

// Update overwrites an asset's mutable fields.
//
// @Summary      Update an asset
// @Tags         assets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string        true  "Asset id"
// @Param        body  body      assetRequest  true  "Asset details"
// @Success      200   {object}  domain.Asset
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/assets/{id} [put]
func (h *AssetHandler) Update(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req assetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	asset, err := h.service.Update(c.Request().Context(), user, c.Param("id"), ports.UpdateAssetInput{
		Category:       req.Category,
		Comments:       req.Comments,
		CustomerID:     req.CustomerID,
		ManufacturerID: req.ManufacturerID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, asset)
}

// Delete removes an asset; admin only.
//
// @Summary      Delete an asset
// @Tags         assets
// @Security     BearerAuth
// @Param        id  path  string  true  "Asset id"
// @Success      204
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/assets/{id} [delete]
func (h *AssetHandler) Delete(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), user, c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			metrics.DeleteDeniedTotal.WithLabelValues("asset").Inc()
		}
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
