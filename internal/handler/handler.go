package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/railops/train-scheduler-go/internal/scheduler"
	"github.com/railops/train-scheduler-go/internal/service"
	"github.com/railops/train-scheduler-go/pkg/response"
)

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "invalid id")
		return 0, false
	}
	return id, true
}

func parsePagination(c *gin.Context) (int, int, bool) {
	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil || skip < 0 {
		response.BadRequest(c, "skip must be a non-negative integer")
		return 0, 0, false
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if err != nil || limit < 1 || limit > 1000 {
		response.BadRequest(c, "limit must be an integer between 1 and 1000")
		return 0, 0, false
	}
	return skip, limit, true
}

// writeError maps service and scheduler error kinds to protocol responses:
// structural validation and rule violations are 400, dangling references
// are 404, anything else is 500. Conflict reports are not errors and never
// pass through here.
func writeError(c *gin.Context, err error) {
	var notFound *service.NotFoundError
	var rule *service.RuleError
	var validation *scheduler.ValidationError
	var reference *scheduler.ReferenceError

	switch {
	case errors.As(err, &notFound):
		response.NotFound(c, notFound.Error())
	case errors.As(err, &reference):
		response.NotFound(c, reference.Error())
	case errors.As(err, &rule):
		response.BadRequest(c, rule.Error())
	case errors.As(err, &validation):
		response.BadRequest(c, validation.Error())
	default:
		response.InternalError(c, err.Error())
	}
}
