package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/railops/train-scheduler-go/internal/models"
	"github.com/railops/train-scheduler-go/internal/service"
	"github.com/railops/train-scheduler-go/pkg/response"
)

// TripHandler handles HTTP requests for scheduled trips, including the
// conflict-checked create path and the dry-run check endpoint
type TripHandler struct {
	service *service.TripService
}

// NewTripHandler creates a new trip handler
func NewTripHandler(service *service.TripService) *TripHandler {
	return &TripHandler{service: service}
}

// CreateTrip handles POST /api/v1/trips. Structural problems are 400,
// unknown trains or track segments 404, and scheduling conflicts 409 with
// the full conflict report; nothing is persisted unless the check passes.
func (h *TripHandler) CreateTrip(c *gin.Context) {
	var req models.TripCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	trip, report, err := h.service.CreateTrip(req)
	if err != nil {
		writeError(c, err)
		return
	}
	if report != nil {
		response.Conflict(c, "trip conflicts with existing schedule", report.Conflicts)
		return
	}
	c.JSON(http.StatusCreated, trip)
}

// CheckTrip handles POST /api/v1/trips/check, the dry-run path: identical
// detection logic to CreateTrip, no writes, 200 either way
func (h *TripHandler) CheckTrip(c *gin.Context) {
	var req models.TripCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	report, err := h.service.CheckTrip(req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// ListTrips handles GET /api/v1/trips
func (h *TripHandler) ListTrips(c *gin.Context) {
	skip, limit, ok := parsePagination(c)
	if !ok {
		return
	}
	trips, total, err := h.service.ListTrips(skip, limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.TripsResponse{
		Data:  trips,
		Total: total,
		Skip:  skip,
		Limit: limit,
	})
}

// GetTrip handles GET /api/v1/trips/:id
func (h *TripHandler) GetTrip(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	trip, err := h.service.GetTrip(id)
	if err != nil {
		writeError(c, err)
		return
	}
	if trip == nil {
		response.NotFound(c, "trip not found")
		return
	}
	c.JSON(http.StatusOK, trip)
}

// GetTripSegments handles GET /api/v1/trips/:id/segments, returning only
// the trip's legs with their track segments
func (h *TripHandler) GetTripSegments(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	trip, err := h.service.GetTrip(id)
	if err != nil {
		writeError(c, err)
		return
	}
	if trip == nil {
		response.NotFound(c, "trip not found")
		return
	}
	c.JSON(http.StatusOK, trip.Segments)
}

// UpdateTrip handles PUT /api/v1/trips/:id (status changes only).
// Reactivating a cancelled trip re-runs conflict detection and returns 409
// when the slot has been taken in the meantime.
func (h *TripHandler) UpdateTrip(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req models.TripUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body: "+err.Error())
		return
	}
	if req.Status == nil {
		response.BadRequest(c, "no fields to update")
		return
	}

	trip, report, err := h.service.UpdateTripStatus(id, *req.Status)
	if err != nil {
		writeError(c, err)
		return
	}
	if report != nil {
		response.Conflict(c, "trip conflicts with existing schedule", report.Conflicts)
		return
	}
	c.JSON(http.StatusOK, trip)
}

// DeleteTrip handles DELETE /api/v1/trips/:id
func (h *TripHandler) DeleteTrip(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteTrip(id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
