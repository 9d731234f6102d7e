package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cleancity/waste-collection-api/internal/core/domain"
	"github.com/cleancity/waste-collection-api/internal/core/ports"
)

// CleanerHandler handles cleaner self-service and admin management.
type CleanerHandler struct {
	service ports.CleanerService
}

func NewCleanerHandler(service ports.CleanerService) *CleanerHandler {
	return &CleanerHandler{service: service}
}

type cleanerStatusRequest struct {
	Status          string `json:"status" validate:"required,oneof=idle on_the_way arrived completed"`
	CurrentLocation string `json:"current_location"`
}

type cleanerAreaRequest struct {
	AssignedArea string `json:"assigned_area" validate:"required"`
}

// List returns all cleaners (admin view). Password hashes are never
// serialized.
func (h *CleanerHandler) List(c echo.Context) error {
	cleaners, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newListEnvelope(len(cleaners), cleaners))
}

// Profile returns the authenticated cleaner's own record.
func (h *CleanerHandler) Profile(c echo.Context) error {
	cleanerID, err := principalID(c)
	if err != nil {
		return err
	}

	cleaner, err := h.service.Profile(c.Request().Context(), cleanerID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newDataEnvelope(cleaner))
}

// UpdateStatus sets the authenticated cleaner's availability and
// location.
func (h *CleanerHandler) UpdateStatus(c echo.Context) error {
	var req cleanerStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	cleanerID, err := principalID(c)
	if err != nil {
		return err
	}

	cleaner, err := h.service.UpdateStatus(c.Request().Context(), cleanerID, domain.CleanerStatus(req.Status), req.CurrentLocation)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newDataEnvelope(cleaner))
}

// UpdateArea changes a cleaner's assigned area (admin only).
func (h *CleanerHandler) UpdateArea(c echo.Context) error {
	var req cleanerAreaRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	cleaner, err := h.service.UpdateArea(c.Request().Context(), c.Param("id"), req.AssignedArea)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newDataEnvelope(cleaner))
}

// LiveLocation returns the cleaner's most recent position (admin only).
func (h *CleanerHandler) LiveLocation(c echo.Context) error {
	loc, err := h.service.LiveLocation(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newDataEnvelope(loc))
}

// Delete removes a cleaner. Unknown ids still return success.
func (h *CleanerHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newDataEnvelope(map[string]any{}))
}
