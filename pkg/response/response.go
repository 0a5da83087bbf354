package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/railops/train-scheduler-go/internal/models"
)

// ErrorBody is the standard error payload
type ErrorBody struct {
	Error string `json:"error"`
}

// ConflictBody is the payload returned when a write is blocked by
// scheduling conflicts
type ConflictBody struct {
	Message   string                  `json:"message"`
	Conflicts []models.ConflictRecord `json:"conflicts"`
}

// Error sends an error response with the given status
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorBody{Error: message})
}

// BadRequest sends a 400 bad request response
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// NotFound sends a 404 not found response
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// InternalError sends a 500 internal server error response
func InternalError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}

// Conflict sends a 409 response carrying the full conflict report
func Conflict(c *gin.Context, message string, conflicts []models.ConflictRecord) {
	c.JSON(http.StatusConflict, ConflictBody{Message: message, Conflicts: conflicts})
}
