package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/railops/train-scheduler-go/internal/models"
	"github.com/railops/train-scheduler-go/internal/service"
	"github.com/railops/train-scheduler-go/pkg/response"
)

// TrainHandler handles HTTP requests for trains
type TrainHandler struct {
	service *service.TrainService
}

// NewTrainHandler creates a new train handler
func NewTrainHandler(service *service.TrainService) *TrainHandler {
	return &TrainHandler{service: service}
}

// CreateTrain handles POST /api/v1/trains
func (h *TrainHandler) CreateTrain(c *gin.Context) {
	var req models.TrainCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	train, err := h.service.CreateTrain(req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, train)
}

// GetTrains handles GET /api/v1/trains
func (h *TrainHandler) GetTrains(c *gin.Context) {
	skip, limit, ok := parsePagination(c)
	if !ok {
		return
	}
	trains, err := h.service.GetTrains(skip, limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, trains)
}

// GetTrainByID handles GET /api/v1/trains/:id
func (h *TrainHandler) GetTrainByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	train, err := h.service.GetTrainByID(id)
	if err != nil {
		writeError(c, err)
		return
	}
	if train == nil {
		response.NotFound(c, "train not found")
		return
	}
	c.JSON(http.StatusOK, train)
}

// UpdateTrain handles PUT /api/v1/trains/:id
func (h *TrainHandler) UpdateTrain(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req models.TrainUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	train, err := h.service.UpdateTrain(id, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, train)
}

// DeleteTrain handles DELETE /api/v1/trains/:id
func (h *TrainHandler) DeleteTrain(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteTrain(id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
