package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cleancity/waste-collection-api/internal/api/metrics"
	"github.com/cleancity/waste-collection-api/internal/core/domain"
	"github.com/cleancity/waste-collection-api/internal/core/ports"
)

// ComplaintHandler handles HTTP requests for the complaint workflow.
type ComplaintHandler struct {
	service ports.ComplaintService
}

func NewComplaintHandler(service ports.ComplaintService) *ComplaintHandler {
	return &ComplaintHandler{service: service}
}

type createComplaintRequest struct {
	// Description defaults to "Waste Not Collected" when omitted.
	Description string `json:"description"`
}

type assignComplaintRequest struct {
	CleanerID       string `json:"cleaner_id"       validate:"required"`
	ExpectedArrival string `json:"expected_arrival"`
}

type complaintStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending assigned collected not_collected"`
}

// Create files a new complaint for the authenticated resident.
func (h *ComplaintHandler) Create(c echo.Context) error {
	var req createComplaintRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	userID, err := principalID(c)
	if err != nil {
		return err
	}

	complaint, err := h.service.Create(c.Request().Context(), userID, req.Description)
	if err != nil {
		return err
	}

	metrics.ComplaintsCreatedTotal.WithLabelValues(complaint.Area).Inc()
	return c.JSON(http.StatusCreated, newDataEnvelope(complaint))
}

// ListMine returns the authenticated resident's complaints.
func (h *ComplaintHandler) ListMine(c echo.Context) error {
	userID, err := principalID(c)
	if err != nil {
		return err
	}

	complaints, err := h.service.ListForUser(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newListEnvelope(len(complaints), complaints))
}

// ListForCleaner returns the union of complaints in the cleaner's area
// and complaints assigned to them.
func (h *ComplaintHandler) ListForCleaner(c echo.Context) error {
	cleanerID, err := principalID(c)
	if err != nil {
		return err
	}

	complaints, err := h.service.ListForCleaner(c.Request().Context(), cleanerID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newListEnvelope(len(complaints), complaints))
}

// ListAll returns every complaint (admin view).
func (h *ComplaintHandler) ListAll(c echo.Context) error {
	complaints, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newListEnvelope(len(complaints), complaints))
}

// Assign binds the complaint to a cleaner.
func (h *ComplaintHandler) Assign(c echo.Context) error {
	var req assignComplaintRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	complaint, err := h.service.Assign(c.Request().Context(), ports.AssignComplaintInput{
		ComplaintID:     c.Param("id"),
		CleanerID:       req.CleanerID,
		ExpectedArrival: req.ExpectedArrival,
	})
	if err != nil {
		return err
	}

	metrics.ComplaintsAssignedTotal.Inc()
	return c.JSON(http.StatusOK, newDataEnvelope(complaint))
}

// UpdateStatus sets the complaint's status on behalf of a cleaner.
func (h *ComplaintHandler) UpdateStatus(c echo.Context) error {
	var req complaintStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	complaint, err := h.service.UpdateStatus(c.Request().Context(), c.Param("id"), domain.ComplaintStatus(req.Status))
	if err != nil {
		return err
	}

	metrics.ComplaintStatusUpdatesTotal.WithLabelValues(req.Status).Inc()
	return c.JSON(http.StatusOK, newDataEnvelope(complaint))
}

// Analytics returns fresh per-status complaint counts.
func (h *ComplaintHandler) Analytics(c echo.Context) error {
	summary, err := h.service.Analytics(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newDataEnvelope(summary))
}
