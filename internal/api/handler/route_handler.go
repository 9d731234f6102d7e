package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cleancity/waste-collection-api/internal/api/metrics"
	"github.com/cleancity/waste-collection-api/internal/core/domain"
	"github.com/cleancity/waste-collection-api/internal/core/ports"
)

// RouteHandler handles HTTP requests for route scheduling.
type RouteHandler struct {
	service ports.RouteService
}

func NewRouteHandler(service ports.RouteService) *RouteHandler {
	return &RouteHandler{service: service}
}

type createRouteRequest struct {
	CleanerID string `json:"cleaner_id" validate:"required"`
	Area      string `json:"area"       validate:"required"`
	// Date is the calendar day of the route, RFC 3339 or YYYY-MM-DD.
	Date        string `json:"date"       validate:"required"`
	StartTime   string `json:"start_time" validate:"required"`
	EndTime     string `json:"end_time"   validate:"required"`
	Description string `json:"description"`
}

type routeStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=scheduled in_progress completed"`
}

// Create schedules a route for a cleaner (admin only).
func (h *RouteHandler) Create(c echo.Context) error {
	var req createRouteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	date, err := parseRouteDate(req.Date)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "date must be RFC 3339 or YYYY-MM-DD")
	}

	route, err := h.service.Create(c.Request().Context(), ports.CreateRouteInput{
		CleanerID:   req.CleanerID,
		Area:        req.Area,
		Date:        date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	metrics.RoutesCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, newDataEnvelope(route))
}

// ListAll returns every route (admin view).
func (h *RouteHandler) ListAll(c echo.Context) error {
	routes, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newListEnvelope(len(routes), routes))
}

// ListMine returns the authenticated cleaner's routes.
func (h *RouteHandler) ListMine(c echo.Context) error {
	cleanerID, err := principalID(c)
	if err != nil {
		return err
	}

	routes, err := h.service.ListForCleaner(c.Request().Context(), cleanerID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newListEnvelope(len(routes), routes))
}

// UpdateStatus sets the route's status on behalf of a cleaner.
func (h *RouteHandler) UpdateStatus(c echo.Context) error {
	var req routeStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	route, err := h.service.UpdateStatus(c.Request().Context(), c.Param("id"), domain.RouteStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newDataEnvelope(route))
}

// Delete removes a route. Unknown ids still return success.
func (h *RouteHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newDataEnvelope(map[string]any{}))
}

func parseRouteDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
