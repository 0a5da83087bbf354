package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/railops/train-scheduler-go/internal/models"
	"github.com/railops/train-scheduler-go/internal/service"
	"github.com/railops/train-scheduler-go/pkg/response"
)

// StationHandler handles HTTP requests for stations
type StationHandler struct {
	service *service.StationService
}

// NewStationHandler creates a new station handler
func NewStationHandler(service *service.StationService) *StationHandler {
	return &StationHandler{service: service}
}

// CreateStation handles POST /api/v1/stations
func (h *StationHandler) CreateStation(c *gin.Context) {
	var req models.StationCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	station, err := h.service.CreateStation(req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, station)
}

// GetStations handles GET /api/v1/stations
func (h *StationHandler) GetStations(c *gin.Context) {
	skip, limit, ok := parsePagination(c)
	if !ok {
		return
	}
	stations, err := h.service.GetStations(skip, limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, stations)
}

// GetStationByID handles GET /api/v1/stations/:id
func (h *StationHandler) GetStationByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	station, err := h.service.GetStationByID(id)
	if err != nil {
		writeError(c, err)
		return
	}
	if station == nil {
		response.NotFound(c, "station not found")
		return
	}
	c.JSON(http.StatusOK, station)
}

// UpdateStation handles PUT /api/v1/stations/:id
func (h *StationHandler) UpdateStation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req models.StationUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	station, err := h.service.UpdateStation(id, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, station)
}

// DeleteStation handles DELETE /api/v1/stations/:id
func (h *StationHandler) DeleteStation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteStation(id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
