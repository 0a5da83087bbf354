package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/railops/train-scheduler-go/internal/models"
	"github.com/railops/train-scheduler-go/internal/service"
	"github.com/railops/train-scheduler-go/pkg/response"
)

// TrackSegmentHandler handles HTTP requests for track segments
type TrackSegmentHandler struct {
	service *service.TrackSegmentService
}

// NewTrackSegmentHandler creates a new track segment handler
func NewTrackSegmentHandler(service *service.TrackSegmentService) *TrackSegmentHandler {
	return &TrackSegmentHandler{service: service}
}

// CreateSegment handles POST /api/v1/segments
func (h *TrackSegmentHandler) CreateSegment(c *gin.Context) {
	var req models.TrackSegmentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	segment, err := h.service.CreateSegment(req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, segment)
}

// GetSegments handles GET /api/v1/segments
func (h *TrackSegmentHandler) GetSegments(c *gin.Context) {
	skip, limit, ok := parsePagination(c)
	if !ok {
		return
	}
	segments, err := h.service.GetSegments(skip, limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, segments)
}

// GetSegmentByID handles GET /api/v1/segments/:id
func (h *TrackSegmentHandler) GetSegmentByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	segment, err := h.service.GetSegmentByID(id)
	if err != nil {
		writeError(c, err)
		return
	}
	if segment == nil {
		response.NotFound(c, "track segment not found")
		return
	}
	c.JSON(http.StatusOK, segment)
}

// UpdateSegment handles PUT /api/v1/segments/:id
func (h *TrackSegmentHandler) UpdateSegment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req models.TrackSegmentUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	segment, err := h.service.UpdateSegment(id, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, segment)
}

// DeleteSegment handles DELETE /api/v1/segments/:id
func (h *TrackSegmentHandler) DeleteSegment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteSegment(id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
