package api

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/xCAELESTISOx/pacificapp--frontend/internal"
	"github.com/xCAELESTISOx/pacificapp--frontend/internal/response"
)

// statusFor maps domain errors onto HTTP statuses.
func statusFor(err error) int {
	var vErrs validator.ValidationErrors
	var numErr *strconv.NumError
	switch {
	case errors.As(err, &numErr):
		return 400
	case errors.Is(err, internal.ErrNotFound):
		return 404
	case errors.Is(err, internal.ErrInvalidCredentials), errors.Is(err, internal.ErrUnauthorized):
		return 401
	case errors.Is(err, internal.ErrPasswordMismatch):
		return 400
	case errors.As(err, &vErrs):
		return 400
	case errors.Is(err, internal.ErrSimulatedNetwork):
		return 502
	default:
		return 500
	}
}

func HandleError(c *gin.Context, logger internal.Logger, err error, msg string) {
	status := statusFor(err)
	requestID := c.GetString("request_id")
	logger.Errorf("[request_id=%s] %s: %v", requestID, msg, err)
	var resp response.APIResponse
	switch status {
	case 400:
		resp = response.BadRequest(msg + ": " + err.Error())
	case 401:
		resp = response.Unauthorized(msg + ": " + err.Error())
	case 404:
		resp = response.NotFound(msg + ": " + err.Error())
	case 500:
		resp = response.InternalError(msg + ": " + err.Error())
	default:
		resp = response.NewAppError(status, msg+": "+err.Error())
	}
	c.JSON(status, resp)
}

func HandleSuccess(c *gin.Context, logger internal.Logger, data interface{}, meta map[string]any) {
	requestID := c.GetString("request_id")
	logger.Infof("[request_id=%s] Success", requestID)
	c.JSON(200, response.Success(data, meta))
}

// pageParams reads ?page= and ?page_size=, zero meaning "use defaults".
func pageParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.Query("page"))
	pageSize, _ := strconv.Atoi(c.Query("page_size"))
	return page, pageSize
}

// idParam parses the :id path segment.
func idParam(c *gin.Context) (int, error) {
	return strconv.Atoi(c.Param("id"))
}

func dateRange(c *gin.Context) (string, string) {
	return c.Query("start_date"), c.Query("end_date")
}
